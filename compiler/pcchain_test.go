package compiler

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ironautomata/eudoxus/automaton"
)

// chainAutomaton builds start -A-> n1 -B-> n2 -C-> end, a textbook
// 3-hop PC-eligible chain with no branching anywhere on the path.
func chainAutomaton(t *testing.T) (*automaton.Automaton, automaton.NodeID, automaton.NodeID) {
	t.Helper()
	a := automaton.New()
	start := a.AddNode()
	n1 := a.AddNode()
	n2 := a.AddNode()
	end := a.AddNode()
	require.NoError(t, a.SetStart(start))
	require.NoError(t, a.AddEdge(start, automaton.NewEdge(n1, automaton.VectorSet('a'))))
	require.NoError(t, a.AddEdge(n1, automaton.NewEdge(n2, automaton.VectorSet('b'))))
	require.NoError(t, a.AddEdge(n2, automaton.NewEdge(end, automaton.VectorSet('c'))))
	return a, start, end
}

func TestDetectChains_CollapsesLinearRun(t *testing.T) {
	a, start, end := chainAutomaton(t)
	chains, consumed, err := detectChains(a)
	require.NoError(t, err)
	require.Contains(t, chains, start)

	c := chains[start]
	require.Equal(t, []byte("abc"), c.path)
	require.Equal(t, automaton.Target{Node: end, Advance: true}, c.final)
	require.False(t, c.hasOutput)
	require.False(t, c.hasDefault)

	// both interior nodes absorbed, end and start are not
	require.Len(t, consumed, 2)
	require.False(t, consumed[start])
	require.False(t, consumed[end])
}

func TestDetectChains_StopsAtBranchingNode(t *testing.T) {
	a := automaton.New()
	start := a.AddNode()
	mid := a.AddNode()
	d1 := a.AddNode()
	d2 := a.AddNode()
	require.NoError(t, a.SetStart(start))
	require.NoError(t, a.AddEdge(start, automaton.NewEdge(mid, automaton.VectorSet('a'))))
	require.NoError(t, a.AddEdge(mid, automaton.NewEdge(d1, automaton.VectorSet('b'))))
	require.NoError(t, a.AddEdge(mid, automaton.NewEdge(d2, automaton.VectorSet('c'))))

	chains, consumed, err := detectChains(a)
	require.NoError(t, err)
	// mid has two edges, so start→mid is a single hop: too short to
	// compress (chain length would be 1).
	require.NotContains(t, chains, start)
	require.Empty(t, consumed)
}

func TestDetectChains_StopsAtSharedInteriorNode(t *testing.T) {
	a := automaton.New()
	start := a.AddNode()
	other := a.AddNode()
	shared := a.AddNode()
	tail := a.AddNode()
	require.NoError(t, a.SetStart(start))
	require.NoError(t, a.AddEdge(start, automaton.NewEdge(shared, automaton.VectorSet('a'))))
	require.NoError(t, a.AddEdge(other, automaton.NewEdge(shared, automaton.VectorSet('x'))))
	require.NoError(t, a.AddEdge(shared, automaton.NewEdge(tail, automaton.VectorSet('b'))))

	chains, _, err := detectChains(a)
	require.NoError(t, err)
	// shared has in-degree 2 (start and other both point at it), so it
	// can never be absorbed as anyone's interior node.
	require.NotContains(t, chains, start)
}

func TestDetectChains_HeadMayCarryOutputAndDefault(t *testing.T) {
	a := automaton.New()
	start := a.AddNode()
	n1 := a.AddNode()
	end := a.AddNode()
	fallback := a.AddNode()
	require.NoError(t, a.SetStart(start))
	out := a.AddOutput([]byte("hit"), automaton.NoOutput)
	require.NoError(t, a.SetFirstOutput(start, out))
	require.NoError(t, a.SetDefault(start, fallback, true))
	require.NoError(t, a.SetDefault(n1, fallback, true))
	require.NoError(t, a.AddEdge(start, automaton.NewEdge(n1, automaton.VectorSet('a'))))
	require.NoError(t, a.AddEdge(n1, automaton.NewEdge(end, automaton.VectorSet('b'))))

	chains, _, err := detectChains(a)
	require.NoError(t, err)
	c, ok := chains[start]
	require.True(t, ok)
	require.True(t, c.hasOutput)
	require.True(t, c.hasDefault)
	require.Equal(t, fallback, c.defaultTarget)
}
