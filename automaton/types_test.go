package automaton_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ironautomata/eudoxus/automaton"
)

func TestNew_EmptyAutomaton(t *testing.T) {
	a := automaton.New()
	require.Equal(t, 0, a.NodeCount())
	require.Equal(t, automaton.NoNode, a.Start())
}

func TestAddNode_AllocatesDistinctHandles(t *testing.T) {
	a := automaton.New()
	n0 := a.AddNode()
	n1 := a.AddNode()
	require.NotEqual(t, n0, n1)
	require.Equal(t, 2, a.NodeCount())
}

func TestSetStart_RejectsOutOfRange(t *testing.T) {
	a := automaton.New()
	err := a.SetStart(automaton.NodeID(5))
	require.ErrorIs(t, err, automaton.ErrBadNode)
}

func TestNode_RoundTrip(t *testing.T) {
	a := automaton.New()
	id := a.AddNode()
	n, err := a.Node(id)
	require.NoError(t, err)
	require.Equal(t, automaton.NoOutput, n.FirstOutput)
	require.Equal(t, automaton.NoNode, n.Default)
}

func TestOutputChain_FollowsLinks(t *testing.T) {
	a := automaton.New()
	tail := a.AddOutput([]byte("he"), automaton.NoOutput)
	head := a.AddOutput([]byte("she"), tail)

	chain, err := a.OutputChain(head)
	require.NoError(t, err)
	require.Equal(t, [][]byte{[]byte("she"), []byte("he")}, chain)
}

func TestOutputChain_DetectsCycle(t *testing.T) {
	a := automaton.New()
	id := a.AddOutput([]byte("x"), automaton.NoOutput)
	out, err := a.Output(id)
	require.NoError(t, err)
	out.Next = id // force a cycle

	_, err = a.OutputChain(id)
	require.ErrorIs(t, err, automaton.ErrOutputCycle)
}

func TestMetadata_PreservesOrder(t *testing.T) {
	a := automaton.New()
	a.SetMetadata([]byte("a"), []byte("1"))
	a.SetMetadata([]byte("b"), []byte("2"))
	got := a.Metadata()
	require.Len(t, got, 2)
	require.Equal(t, []byte("a"), got[0].Key)
	require.Equal(t, []byte("b"), got[1].Key)
}
