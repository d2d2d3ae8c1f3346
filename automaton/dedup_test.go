package automaton_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ironautomata/eudoxus/automaton"
)

func TestDedupOutputs_MergesIdenticalChains(t *testing.T) {
	a := automaton.New()
	tail1 := a.AddOutput([]byte("he"), automaton.NoOutput)
	tail2 := a.AddOutput([]byte("he"), automaton.NoOutput)
	n1 := a.AddNode()
	n2 := a.AddNode()
	require.NoError(t, a.SetFirstOutput(n1, tail1))
	require.NoError(t, a.SetFirstOutput(n2, tail2))

	removed, err := automaton.DedupOutputs(a)
	require.NoError(t, err)
	require.Equal(t, 1, removed)

	node1, _ := a.Node(n1)
	node2, _ := a.Node(n2)
	require.Equal(t, node1.FirstOutput, node2.FirstOutput)
}

func TestDedupOutputs_PreservesEmissionSequence(t *testing.T) {
	a := automaton.New()
	tail := a.AddOutput([]byte("a"), automaton.NoOutput)
	head1 := a.AddOutput([]byte("b"), tail)
	head2 := a.AddOutput([]byte("b"), tail)
	n1 := a.AddNode()
	n2 := a.AddNode()
	require.NoError(t, a.SetFirstOutput(n1, head1))
	require.NoError(t, a.SetFirstOutput(n2, head2))

	before1, _ := a.OutputChain(head1)
	before2, _ := a.OutputChain(head2)

	_, err := automaton.DedupOutputs(a)
	require.NoError(t, err)

	node1, _ := a.Node(n1)
	node2, _ := a.Node(n2)
	after1, err := a.OutputChain(node1.FirstOutput)
	require.NoError(t, err)
	after2, err := a.OutputChain(node2.FirstOutput)
	require.NoError(t, err)

	require.Equal(t, before1, after1)
	require.Equal(t, before2, after2)
}

func TestClone_IsIndependent(t *testing.T) {
	a, root, _, _, _ := buildDiamond(t)
	clone := a.Clone()

	n, _ := clone.Node(root)
	n.Edges = n.Edges[:0]

	orig, _ := a.Node(root)
	require.Len(t, orig.Edges, 2)
}
