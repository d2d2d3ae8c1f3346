package automaton_test

import (
	"testing"

	"github.com/ironautomata/eudoxus/automaton"
)

func buildChain(n int) *automaton.Automaton {
	a := automaton.New()
	prev := a.AddNode()
	_ = a.SetStart(prev)
	for i := 1; i < n; i++ {
		next := a.AddNode()
		_ = a.AddEdge(prev, automaton.NewEdge(next, automaton.VectorSet(byte(i%256))))
		prev = next
	}
	return a
}

func BenchmarkBreadthFirst(b *testing.B) {
	a := buildChain(1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = automaton.BreadthFirst(a, func(automaton.NodeID, *automaton.Node) error { return nil })
	}
}

func BenchmarkBuildTargetsByInput(b *testing.B) {
	a := buildChain(10)
	n, _ := a.Node(a.Start())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = automaton.BuildTargetsByInput(n)
	}
}
