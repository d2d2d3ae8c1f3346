package automaton

// Clone returns a deep copy of a: every node's edge list and every output
// are copied, so mutating the clone (e.g. running optimize.Optimize or
// nonadvance.Run experimentally) never affects the original. Grounded on
// core.Graph.Clone's deep-copy contract in the teacher package.
func (a *Automaton) Clone() *Automaton {
	clone := &Automaton{
		start:             a.start,
		noAdvanceNoOutput: a.noAdvanceNoOutput,
		nodes:             make([]*Node, len(a.nodes)),
		outputs:           make([]*Output, len(a.outputs)),
		metadata:          append([]MetadataEntry(nil), a.metadata...),
	}
	for i, n := range a.nodes {
		nn := &Node{
			FirstOutput:      n.FirstOutput,
			Default:          n.Default,
			AdvanceOnDefault: n.AdvanceOnDefault,
			Edges:            append([]Edge(nil), n.Edges...),
		}
		clone.nodes[i] = nn
	}
	for i, o := range a.outputs {
		clone.outputs[i] = &Output{Content: append([]byte(nil), o.Content...), Next: o.Next}
	}
	return clone
}
