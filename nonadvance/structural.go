package nonadvance

import "github.com/ironautomata/eudoxus/automaton"

// structuralPass implements the Structural variant: it mutates the
// existing multi-edge list and default target in place, never splitting an
// edge, so the node can never grow.
//
// For each non-advancing multi-edge E with target B, if B is eligible for
// lookahead and every byte in E's value set maps (via TargetsFor) to the
// same singleton (D, adv), E is retargeted to (D, adv). The default target
// is handled symmetrically against the complement of all edges' covered
// bytes, per the resolution of spec.md §9's open question: the default is
// eligible iff every uncovered byte's lookahead agrees on one (D, adv).
func structuralPass(a *automaton.Automaton, node *automaton.Node) (int, error) {
	modified := 0
	covered := make([]bool, 256)

	for i := range node.Edges {
		e := &node.Edges[i]
		values := e.Set.Values()
		for _, c := range values {
			covered[c] = true
		}
		if e.Advance || len(values) == 0 {
			continue
		}
		b, err := a.Node(e.Target)
		if err != nil {
			return modified, err
		}
		if !eligibleLookahead(a, b) {
			continue
		}
		if target, ok := uniformTarget(b, values); ok {
			e.Target = target.Node
			e.Advance = target.Advance
			modified++
		}
	}

	if node.Default != automaton.NoNode && !node.AdvanceOnDefault {
		var complement []byte
		for c := 0; c < 256; c++ {
			if !covered[c] {
				complement = append(complement, byte(c))
			}
		}
		if len(complement) > 0 {
			b, err := a.Node(node.Default)
			if err != nil {
				return modified, err
			}
			if eligibleLookahead(a, b) {
				if target, ok := uniformTarget(b, complement); ok {
					node.Default = target.Node
					node.AdvanceOnDefault = target.Advance
					modified++
				}
			}
		}
	}

	return modified, nil
}
