package telemetry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ironautomata/eudoxus/compiler"
	"github.com/ironautomata/eudoxus/engine"
	"github.com/ironautomata/eudoxus/telemetry"
)

func TestWrapExecute_RecordsOutputsAndSteps(t *testing.T) {
	ctx := context.Background()
	p, err := telemetry.NewProvider(ctx, telemetry.DefaultConfig())
	require.NoError(t, err)

	a := twoNodeAutomaton(t)
	res, err := compiler.Compile(a)
	require.NoError(t, err)
	eng, err := engine.Load(res.Image)
	require.NoError(t, err)
	st, err := eng.CreateState(nil)
	require.NoError(t, err)

	var got [][]byte
	result, n, err := telemetry.WrapExecute(ctx, p, st, []byte("h"), func(content []byte) engine.Signal {
		got = append(got, content)
		return engine.SignalContinue
	})
	require.NoError(t, err)
	require.Equal(t, engine.ResultOK, result)
	require.Equal(t, 1, n)
	require.Equal(t, [][]byte{[]byte("h")}, got)

	families, err := p.Registry().Gather()
	require.NoError(t, err)
	require.NotEmpty(t, families)
}

func TestWrapExecute_NilProviderPassesThrough(t *testing.T) {
	ctx := context.Background()
	a := twoNodeAutomaton(t)
	res, err := compiler.Compile(a)
	require.NoError(t, err)
	eng, err := engine.Load(res.Image)
	require.NoError(t, err)
	st, err := eng.CreateState(nil)
	require.NoError(t, err)

	result, n, err := telemetry.WrapExecute(ctx, nil, st, []byte("h"), func([]byte) engine.Signal {
		return engine.SignalContinue
	})
	require.NoError(t, err)
	require.Equal(t, engine.ResultOK, result)
	require.Equal(t, 1, n)
}
