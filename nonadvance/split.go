package nonadvance

import (
	"github.com/ironautomata/eudoxus/automaton"
	"github.com/ironautomata/eudoxus/optimize"
)

// splitPass implements the Aggressive and Conservative variants, which
// share everything except how they handle a lookahead that resolves to
// more than one target: aggressive splits the transition into |T| edges
// (growing the node), conservative leaves it unchanged.
//
// Per spec.md §4.3: "After aggressive/conservative modify a node, that
// node's edges are rebuilt by appending one single-value edge per
// (c, (target, advance)) pair, then the Edge Optimizer is run on it to
// recompact." The rebuild only happens if at least one byte's resolution
// changed.
func splitPass(a *automaton.Automaton, node *automaton.Node, aggressive bool) (int, error) {
	working := automaton.BuildTargetsByInput(node)
	modified := 0

	for c := 0; c < 256; c++ {
		targets := working[c]
		if len(targets) != 1 {
			continue // ambiguous or uncovered: not a single non-advancing transition
		}
		t := targets[0]
		if t.Advance {
			continue
		}
		b, err := a.Node(t.Node)
		if err != nil {
			return modified, err
		}
		if !eligibleLookahead(a, b) {
			continue
		}

		lookahead := automaton.TargetsFor(b, byte(c))
		switch {
		case len(lookahead) == 0:
			working[c] = nil
			modified++
		case len(lookahead) == 1:
			working[c] = lookahead
			modified++
		default:
			if aggressive {
				working[c] = append([]automaton.Target(nil), lookahead...)
				modified++
			}
			// conservative: leave working[c] as-is.
		}
	}

	if modified == 0 {
		return 0, nil
	}

	rebuild(node, working)
	optimize.Optimize(node)
	return modified, nil
}

// rebuild replaces node's edges with one single-value edge per
// (c, (target, advance)) pair recorded in working, and clears the default
// (the working map already folds in whatever the previous default covered).
func rebuild(node *automaton.Node, working [256][]automaton.Target) {
	node.Default = automaton.NoNode
	node.AdvanceOnDefault = true

	edges := make([]automaton.Edge, 0, 256)
	for c := 0; c < 256; c++ {
		for _, t := range working[c] {
			edges = append(edges, automaton.Edge{
				Target:  t.Node,
				Advance: t.Advance,
				Set:     automaton.VectorSet(byte(c)),
			})
		}
	}
	node.Edges = edges
}
