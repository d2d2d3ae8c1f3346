// Package automaton provides the mutable intermediate graph used across the
// Eudoxus pipeline: an external generator builds it, optimize.Optimize and
// nonadvance.Run rewrite it, and compiler.Compile consumes it.
//
// What
//
//   - Node: first-output reference, default target + advance-on-default,
//     ordered edge list.
//   - Edge: target node, advance flag, InputSet (epsilon / vector / bitmap).
//   - Output: content bytes + next-output reference, forming a DAG of
//     shared suffixes (child→parent pointers only).
//   - Automaton: node/output arenas, start node, NoAdvanceNoOutput flag,
//     ordered Metadata.
//
// Why
//
//   - A single mutable graph that every pipeline stage can rewrite in place
//     without re-serializing between stages.
//   - Integer handles (NodeID/OutputID) instead of pointers keep the model
//     trivially cloneable and make default-target cycles (the start node's
//     self-loop on unknown bytes) free to represent.
//
// Determinism
//
//	BreadthFirst visits nodes in a fixed FIFO order for a given graph: each
//	node's Edges order is caller-controlled and never reshuffled, so two
//	traversals of an unmodified automaton always agree.
//
// Usage
//
//	a := automaton.New()
//	root := a.AddNode()
//	_ = a.SetStart(root)
//	child := a.AddNode()
//	_ = a.AddEdge(root, automaton.NewEdge(child, automaton.VectorSet('h')))
//	out := a.AddOutput([]byte("he"), automaton.NoOutput)
//	_ = a.SetFirstOutput(child, out)
//
// Errors
//
//   - ErrAutomatonNil, ErrNoStart, ErrBadNode, ErrBadOutput
//   - ErrDanglingTarget, ErrOutputCycle (Validate)
//   - ErrNotDeterministic, ErrEpsilonForbidden (compiler preconditions,
//     checked here via Deterministic/HasEpsilonEdges)
package automaton
