package automaton

// Visitor is called once per reachable node, in breadth-first order. If it
// returns an error, BreadthFirst aborts and surfaces that error.
type Visitor func(id NodeID, node *Node) error

// BreadthFirst visits every node reachable from a.Start() exactly once, in
// FIFO order: each edge target and, if present, the current node's default
// target are enqueued the first time they are sighted. Traversal order is
// stable for a given graph — node and edge order are never reordered to
// compute it, mirroring bfs.BFS's determinism guarantee in the teacher
// package (core.Graph.NeighborIDs returns edges in a fixed order; here
// Node.Edges is already the caller's fixed order).
//
// Returns ErrNoStart if no start node is set, ErrBadNode if Start() is out
// of range, or the first error returned by visit.
func BreadthFirst(a *Automaton, visit Visitor) error {
	if a == nil {
		return ErrAutomatonNil
	}
	if a.start == NoNode {
		return ErrNoStart
	}
	if !a.validNode(a.start) {
		return ErrBadNode
	}

	visited := make(map[NodeID]bool, len(a.nodes))
	queue := make([]NodeID, 0, len(a.nodes))

	enqueue := func(id NodeID) {
		if id == NoNode || visited[id] {
			return
		}
		visited[id] = true
		queue = append(queue, id)
	}

	enqueue(a.start)
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		node := a.nodes[id]
		for i := range node.Edges {
			enqueue(node.Edges[i].Target)
		}
		enqueue(node.Default)

		if err := visit(id, node); err != nil {
			return err
		}
	}
	return nil
}

// Reachable returns the set of nodes BreadthFirst would visit, in visit
// order.
func Reachable(a *Automaton) ([]NodeID, error) {
	var order []NodeID
	err := BreadthFirst(a, func(id NodeID, _ *Node) error {
		order = append(order, id)
		return nil
	})
	return order, err
}
