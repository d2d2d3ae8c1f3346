package compiler

import "github.com/ironautomata/eudoxus/automaton"
import "github.com/ironautomata/eudoxus/format"

// chain is a detected run of linear, single-byte, advancing, in-degree-1
// nodes collapsible into one PC node (spec.md §4.4.2). head keeps its own
// identity (and may carry output/default); every other node on the path is
// absorbed and never separately encoded.
type chain struct {
	head             automaton.NodeID
	path             []byte
	final            automaton.Target
	hasOutput        bool
	firstOutput      automaton.OutputID
	hasDefault       bool
	defaultTarget    automaton.NodeID
	advanceOnDefault bool
}

// indegree counts, for every node, the edges and default targets pointing
// at it from any node of a, whether or not that node is reachable.
func indegree(a *automaton.Automaton) (map[automaton.NodeID]int, error) {
	deg := map[automaton.NodeID]int{}
	for i := 0; i < a.NodeCount(); i++ {
		node, err := a.Node(automaton.NodeID(i))
		if err != nil {
			return nil, err
		}
		for _, e := range node.Edges {
			deg[e.Target]++
		}
		if node.Default != automaton.NoNode {
			deg[node.Default]++
		}
	}
	return deg, nil
}

// detectChains finds every eligible PC chain, breadth-first and
// non-overlapping: a node absorbed into one chain's interior is never
// reused by another. Returns the chains keyed by head, and the set of
// absorbed interior node ids (which assemble must exclude from the
// ordinary node list).
func detectChains(a *automaton.Automaton) (map[automaton.NodeID]*chain, map[automaton.NodeID]bool, error) {
	deg, err := indegree(a)
	if err != nil {
		return nil, nil, err
	}
	start := a.Start()

	order, err := automaton.Reachable(a)
	if err != nil {
		return nil, nil, err
	}

	chains := map[automaton.NodeID]*chain{}
	consumed := map[automaton.NodeID]bool{}

	for _, head := range order {
		if consumed[head] {
			continue
		}
		if c, ok := tryChain(a, head, start, deg, consumed); ok {
			chains[head] = c
		}
	}
	return chains, consumed, nil
}

// passthroughEligible reports whether node can extend a chain headed by
// head: exactly one edge, and — for non-head nodes — the same default
// target and advance-on-default as head (a PC node falls to the head's
// default on a mismatch at any position) and no output of its own (a PC
// node has room for only the head's output).
func passthroughEligible(node, head *automaton.Node, isHead bool) (automaton.Edge, bool) {
	if len(node.Edges) != 1 {
		return automaton.Edge{}, false
	}
	if !isHead && (node.Default != head.Default ||
		(node.Default != automaton.NoNode && node.AdvanceOnDefault != head.AdvanceOnDefault)) {
		return automaton.Edge{}, false
	}
	if !isHead && node.FirstOutput != automaton.NoOutput {
		return automaton.Edge{}, false
	}
	e := node.Edges[0]
	if !e.Advance || e.Set.Kind() != automaton.Vector || e.Set.Len() != 1 {
		return automaton.Edge{}, false
	}
	return e, true
}

func tryChain(a *automaton.Automaton, head, start automaton.NodeID, deg map[automaton.NodeID]int, consumed map[automaton.NodeID]bool) (*chain, bool) {
	headNode := a.MustNode(head)

	var path []byte
	var interior []automaton.NodeID
	var final automaton.Target

	cur := head
	for {
		var curNode *automaton.Node
		if cur == head {
			curNode = headNode
		} else {
			curNode = a.MustNode(cur)
		}

		e, ok := passthroughEligible(curNode, headNode, cur == head)
		if !ok {
			final = automaton.Target{Node: cur, Advance: true}
			if cur != head {
				interior = interior[:len(interior)-1]
			}
			break
		}

		b := e.Set.Values()[0]
		path = append(path, b)
		nxt := e.Target

		if len(path) >= format.MaxPCChainLength || nxt == head || nxt == start || deg[nxt] != 1 || consumed[nxt] {
			final = automaton.Target{Node: nxt, Advance: true}
			break
		}
		interior = append(interior, nxt)
		cur = nxt
	}

	if len(path) < 2 {
		return nil, false
	}
	for _, id := range interior {
		consumed[id] = true
	}
	return &chain{
		head:             head,
		path:             path,
		final:            final,
		hasOutput:        headNode.FirstOutput != automaton.NoOutput,
		firstOutput:      headNode.FirstOutput,
		hasDefault:       headNode.Default != automaton.NoNode,
		defaultTarget:    headNode.Default,
		advanceOnDefault: headNode.AdvanceOnDefault,
	}, true
}
