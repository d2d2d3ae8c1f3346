package optimize_test

import (
	"testing"

	"github.com/ironautomata/eudoxus/automaton"
	"github.com/ironautomata/eudoxus/optimize"
)

func BenchmarkOptimize(b *testing.B) {
	a := automaton.New()
	root := a.AddNode()
	for c := 0; c < 256; c++ {
		target := a.AddNode()
		_ = a.AddEdge(root, automaton.NewEdge(target, automaton.VectorSet(byte(c))))
	}
	node, _ := a.Node(root)
	edges := append([]automaton.Edge(nil), node.Edges...)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		node.Edges = append([]automaton.Edge(nil), edges...)
		optimize.Optimize(node)
	}
}
