package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ironautomata/eudoxus/automaton"
	"github.com/ironautomata/eudoxus/compiler"
	"github.com/ironautomata/eudoxus/telemetry"
)

func twoNodeAutomaton(t *testing.T) *automaton.Automaton {
	t.Helper()
	a := automaton.New()
	root := a.AddNode()
	child := a.AddNode()
	require.NoError(t, a.SetStart(root))
	require.NoError(t, a.AddEdge(root, automaton.NewEdge(child, automaton.VectorSet('h'))))
	out := a.AddOutput([]byte("h"), automaton.NoOutput)
	require.NoError(t, a.SetFirstOutput(child, out))
	return a
}

func TestWrapCompile_RecordsSuccessMetrics(t *testing.T) {
	ctx := context.Background()
	p, err := telemetry.NewProvider(ctx, telemetry.DefaultConfig())
	require.NoError(t, err)

	a := twoNodeAutomaton(t)
	res, err := telemetry.WrapCompile(ctx, p, func() (*compiler.Result, error) {
		return compiler.Compile(a)
	})
	require.NoError(t, err)
	require.NotNil(t, res)

	families, err := p.Registry().Gather()
	require.NoError(t, err)
	require.NotEmpty(t, families)
}

func TestWrapCompile_RecordsFailureMetrics(t *testing.T) {
	ctx := context.Background()
	p, err := telemetry.NewProvider(ctx, telemetry.DefaultConfig())
	require.NoError(t, err)

	boom := errors.New("boom")
	_, err = telemetry.WrapCompile(ctx, p, func() (*compiler.Result, error) {
		return nil, boom
	})
	require.ErrorIs(t, err, boom)
}

func TestWrapCompile_NilProviderPassesThrough(t *testing.T) {
	ctx := context.Background()
	a := twoNodeAutomaton(t)
	res, err := telemetry.WrapCompile(ctx, nil, func() (*compiler.Result, error) {
		return compiler.Compile(a)
	})
	require.NoError(t, err)
	require.NotNil(t, res)
}
