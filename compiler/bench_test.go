package compiler_test

import (
	"fmt"
	"testing"

	"github.com/ironautomata/eudoxus/automaton"
	"github.com/ironautomata/eudoxus/compiler"
)

func buildChainOfLength(n int) *automaton.Automaton {
	a := automaton.New()
	prev := a.AddNode()
	_ = a.SetStart(prev)
	for i := 0; i < n; i++ {
		next := a.AddNode()
		_ = a.AddEdge(prev, automaton.NewEdge(next, automaton.VectorSet(byte('a'+i%26))))
		prev = next
	}
	out := a.AddOutput([]byte(fmt.Sprintf("match-%d", n)), automaton.NoOutput)
	_ = a.SetFirstOutput(prev, out)
	return a
}

func BenchmarkCompile_LinearChain(b *testing.B) {
	a := buildChainOfLength(200)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := compiler.Compile(a); err != nil {
			b.Fatal(err)
		}
	}
}
