package automaton_test

import (
	"fmt"

	"github.com/ironautomata/eudoxus/automaton"
)

// Example builds the two-word dictionary {"he", "she"} as a tiny automaton
// and reads back the output chain attached to the accepting node for "she".
func Example() {
	a := automaton.New()
	root := a.AddNode()
	_ = a.SetStart(root)

	h := a.AddNode()
	he := a.AddNode()
	s := a.AddNode()
	sh := a.AddNode()

	_ = a.AddEdge(root, automaton.NewEdge(h, automaton.VectorSet('h')))
	_ = a.AddEdge(root, automaton.NewEdge(s, automaton.VectorSet('s')))
	_ = a.AddEdge(h, automaton.NewEdge(he, automaton.VectorSet('e')))
	_ = a.AddEdge(s, automaton.NewEdge(sh, automaton.VectorSet('h')))
	_ = a.AddEdge(sh, automaton.NewEdge(he, automaton.VectorSet('e')))

	heOutput := a.AddOutput([]byte("he"), automaton.NoOutput)
	sheOutput := a.AddOutput([]byte("she"), heOutput)
	_ = a.SetFirstOutput(he, sheOutput)

	node, _ := a.Node(he)
	chain, _ := a.OutputChain(node.FirstOutput)
	for _, c := range chain {
		fmt.Println(string(c))
	}
	// Output:
	// she
	// he
}
