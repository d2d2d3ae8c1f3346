package automaton

// Generator documents the contract an external automaton builder (such as
// an Aho–Corasick dictionary compiler) is expected to drive against an
// Automaton. Building the Aho–Corasick algorithm itself is out of scope per
// spec.md §1 — this interface exists only so a generator can be written
// against a stable surface, and so tests in this module can stand in for
// one without depending on a real generator package.
//
// A Generator is expected to, in order: allocate nodes and outputs, wire
// edges and defaults, set first-outputs, designate the start node, attach
// metadata, and finally hand the resulting *Automaton to optimize.Optimize,
// nonadvance.Run, and compiler.Compile.
type Generator interface {
	// AddNode allocates a new node and returns its handle.
	AddNode() NodeID

	// AddOutput allocates a new output, chained to next, and returns its handle.
	AddOutput(content []byte, next OutputID) OutputID

	// AddEdge appends an edge to node's outgoing edge list.
	AddEdge(node NodeID, edge Edge) error

	// SetDefault sets node's default target and advance-on-default flag.
	SetDefault(node NodeID, target NodeID, advance bool) error

	// SetFirstOutput sets node's first-output reference.
	SetFirstOutput(node NodeID, output OutputID) error

	// SetStart designates the automaton's start node.
	SetStart(node NodeID) error

	// SetMetadata appends a key/value pair to the automaton's metadata.
	SetMetadata(key, value []byte)
}

// AddEdge appends edge to node's outgoing edge list. Returns ErrBadNode if
// node is out of range.
func (a *Automaton) AddEdge(node NodeID, edge Edge) error {
	n, err := a.Node(node)
	if err != nil {
		return err
	}
	n.Edges = append(n.Edges, edge)
	return nil
}

// SetDefault sets node's default target and advance-on-default flag.
// Returns ErrBadNode if node is out of range.
func (a *Automaton) SetDefault(node NodeID, target NodeID, advance bool) error {
	n, err := a.Node(node)
	if err != nil {
		return err
	}
	n.Default = target
	n.AdvanceOnDefault = advance
	return nil
}

// SetFirstOutput sets node's first-output reference. Returns ErrBadNode if
// node is out of range.
func (a *Automaton) SetFirstOutput(node NodeID, output OutputID) error {
	n, err := a.Node(node)
	if err != nil {
		return err
	}
	n.FirstOutput = output
	return nil
}

var _ Generator = (*Automaton)(nil)
