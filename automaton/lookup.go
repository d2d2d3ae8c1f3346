package automaton

// Target is a (node, advance) pair reachable on some input byte.
type Target struct {
	Node    NodeID
	Advance bool
}

// EdgesFor returns, in declaration order, every edge of node that matches
// input byte c (including epsilon edges). It never considers node.Default —
// the default is a fallback, not an edge; use TargetsFor to fold it in.
// Lookups that find nothing return nil, never an error.
func EdgesFor(node *Node, c byte) []*Edge {
	var out []*Edge
	for i := range node.Edges {
		if node.Edges[i].Set.Matches(c) {
			out = append(out, &node.Edges[i])
		}
	}
	return out
}

// TargetsFor returns the (target, advance) pairs reachable from node on
// input byte c: one Target per matching edge, in edge order; if none match
// and node.Default is set, a single Target for the default; otherwise nil.
func TargetsFor(node *Node, c byte) []Target {
	edges := EdgesFor(node, c)
	if len(edges) == 0 {
		if node.Default == NoNode {
			return nil
		}
		return []Target{{Node: node.Default, Advance: node.AdvanceOnDefault}}
	}
	out := make([]Target, len(edges))
	for i, e := range edges {
		out[i] = Target{Node: e.Target, Advance: e.Advance}
	}
	return out
}

// BuildTargetsByInput computes TargetsFor(node, c) for every c in 0..255.
// The result is used by optimize.Optimize and nonadvance.Run to invert a
// node's behavior from "per edge" to "per input byte".
func BuildTargetsByInput(node *Node) [256][]Target {
	var by [256][]Target
	for c := 0; c < 256; c++ {
		by[c] = TargetsFor(node, byte(c))
	}
	return by
}
