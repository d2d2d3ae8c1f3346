package automaton

// Validate checks the structural invariants from spec.md §3 that apply to
// every automaton regardless of compiler eligibility: a start node exists
// and is reachable by construction, every edge target and default target is
// a live node, every first-output/next-output reference is a live output,
// and the output reference structure is acyclic.
//
// It does not check determinism or the absence of epsilon edges — those are
// compiler-specific preconditions, checked by Deterministic and by
// compiler.Compile itself.
func Validate(a *Automaton) error {
	if a == nil {
		return ErrAutomatonNil
	}
	if a.start == NoNode {
		return ErrNoStart
	}
	if !a.validNode(a.start) {
		return ErrBadNode
	}

	return BreadthFirst(a, func(id NodeID, node *Node) error {
		for _, e := range node.Edges {
			if !a.validNode(e.Target) {
				return ErrDanglingTarget
			}
		}
		if node.Default != NoNode && !a.validNode(node.Default) {
			return ErrDanglingTarget
		}
		if node.FirstOutput != NoOutput {
			if !a.validOutput(node.FirstOutput) {
				return ErrDanglingTarget
			}
			if _, err := a.OutputChain(node.FirstOutput); err != nil {
				return err
			}
		}
		return nil
	})
}

// Deterministic reports whether every reachable node is deterministic: for
// each input byte c, the set of edges matching c reduces to at most one
// distinct (target, advance) pair (matching Target structs compare equal).
// Multi-valued edges to the same target with disjoint value sets are
// allowed and do not by themselves violate determinism.
//
// On the first violation found (breadth-first, lowest c first), it returns
// false and wraps ErrNotDeterministic identifying the offending node and
// byte; compiler.Compile treats this as fatal.
func Deterministic(a *Automaton) (bool, error) {
	var bad error
	err := BreadthFirst(a, func(id NodeID, node *Node) error {
		for c := 0; c < 256; c++ {
			targets := TargetsFor(node, byte(c))
			if len(targets) <= 1 {
				continue
			}
			first := targets[0]
			for _, t := range targets[1:] {
				if t != first {
					bad = &nonDeterminismError{Node: id, Input: byte(c)}
					return bad
				}
			}
		}
		return nil
	})
	if bad != nil {
		return false, bad
	}
	return err == nil, err
}

type nonDeterminismError struct {
	Node  NodeID
	Input byte
}

func (e *nonDeterminismError) Error() string {
	return ErrNotDeterministic.Error()
}

func (e *nonDeterminismError) Unwrap() error { return ErrNotDeterministic }

// HasEpsilonEdges reports whether any reachable node carries an epsilon
// edge. compiler.Compile rejects such automata per spec.md §3.
func HasEpsilonEdges(a *Automaton) (bool, error) {
	found := false
	err := BreadthFirst(a, func(_ NodeID, node *Node) error {
		for _, e := range node.Edges {
			if e.Set.IsEpsilon() {
				found = true
				return nil
			}
		}
		return nil
	})
	return found, err
}
