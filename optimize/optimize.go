// Package optimize implements the Edge Optimizer (spec.md §4.2): for a
// single node, it rewrites the outgoing edges and default target into a
// minimal equivalent representation under a fixed cost model, without
// changing the node's behavior on any input byte.
package optimize

import (
	"github.com/ironautomata/eudoxus/automaton"
)

// Cost model thresholds from spec.md §4.2: a vector edge costs one byte per
// listed value, a bitmap edge costs 32 bytes regardless of count. The
// break-even point between the two representations is 32 values.
const bitmapBreakeven = 32

// fullCoverage is the number of distinct input bytes (0..255).
const fullCoverage = 256

// group is one (target, advance) pair together with the ascending list of
// input bytes that reach it — automaton.TargetsFor inverted.
type group struct {
	target automaton.Target
	inputs []byte
}

// Optimize rewrites node's edges and default target into a minimal
// equivalent representation. node's behavior on every input byte is
// unchanged; FirstOutput is untouched. See spec.md §4.2 for the algorithm.
func Optimize(node *automaton.Node) {
	by := automaton.BuildTargetsByInput(node)
	groups, complete := invert(by)

	if len(groups) == 0 {
		node.Edges = nil
		node.Default = automaton.NoNode
		return
	}

	biggestIdx := indexOfBiggest(groups)
	biggest := groups[biggestIdx]

	hasFullCoverageGroup := false
	for _, g := range groups {
		if len(g.inputs) == fullCoverage {
			hasFullCoverageGroup = true
			break
		}
	}

	if complete && (!hasFullCoverageGroup || len(groups) == 1) {
		node.Default = biggest.target.Node
		node.AdvanceOnDefault = biggest.target.Advance
		groups = append(append([]group(nil), groups[:biggestIdx]...), groups[biggestIdx+1:]...)
	} else {
		node.Default = automaton.NoNode
	}

	edges := make([]automaton.Edge, 0, len(groups))
	for _, g := range groups {
		edges = append(edges, edgeFor(g))
	}
	node.Edges = edges
}

// invert builds, in first-seen order, the groups of (target, advance) pairs
// reachable from node and reports whether every input byte is covered by at
// least one of them.
func invert(by [256][]automaton.Target) ([]group, bool) {
	index := make(map[automaton.Target]int, len(by))
	var groups []group
	complete := true
	for c := 0; c < fullCoverage; c++ {
		targets := by[c]
		if len(targets) == 0 {
			complete = false
			continue
		}
		for _, t := range targets {
			idx, ok := index[t]
			if !ok {
				idx = len(groups)
				index[t] = idx
				groups = append(groups, group{target: t})
			}
			groups[idx].inputs = append(groups[idx].inputs, byte(c))
		}
	}
	return groups, complete
}

// indexOfBiggest returns the index of the group with the largest input set,
// breaking ties in favor of the first-seen group (strict-greater-than
// comparison preserves the first occurrence on equal size).
func indexOfBiggest(groups []group) int {
	best := 0
	for i := 1; i < len(groups); i++ {
		if len(groups[i].inputs) > len(groups[best].inputs) {
			best = i
		}
	}
	return best
}

// edgeFor picks the cheapest edge representation for g per the cost model:
// epsilon if it covers all 256 inputs, vector under the bitmap breakeven,
// bitmap otherwise.
func edgeFor(g group) automaton.Edge {
	var set automaton.InputSet
	switch {
	case len(g.inputs) == fullCoverage:
		set = automaton.EpsilonSet()
	case len(g.inputs) < bitmapBreakeven:
		set = automaton.VectorSet(g.inputs...)
	default:
		set = automaton.BitmapSet(g.inputs...)
	}
	return automaton.Edge{Target: g.target.Node, Advance: g.target.Advance, Set: set}
}
