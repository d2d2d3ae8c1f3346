package engine_test

import (
	"fmt"
	"testing"

	"github.com/ironautomata/eudoxus/automaton"
	"github.com/ironautomata/eudoxus/compiler"
	"github.com/ironautomata/eudoxus/engine"
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

func BenchmarkExecute_LinearChain(b *testing.B) {
	a := buildChainOfLength(200)
	res, err := compiler.Compile(a)
	if err != nil {
		b.Fatal(err)
	}
	eng, err := engine.Load(res.Image)
	if err != nil {
		b.Fatal(err)
	}
	input := make([]byte, 200)
	for i := range input {
		input[i] = byte('a' + i%26)
	}
	cb := func([]byte) engine.Signal { return engine.SignalContinue }

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		st, err := eng.CreateState(nil)
		if err != nil {
			b.Fatal(err)
		}
		if _, _, err := st.Execute(input, cb); err != nil {
			b.Fatal(err)
		}
	}
}
