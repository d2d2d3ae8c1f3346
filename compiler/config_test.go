package compiler_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ironautomata/eudoxus/compiler"
	"github.com/ironautomata/eudoxus/format"
)

func TestDefaultConfig_Baseline(t *testing.T) {
	cfg := compiler.DefaultConfig()
	require.Equal(t, format.IDWidth(0), cfg.IDWidth)
	require.Equal(t, 1, cfg.AlignTo)
	require.Equal(t, 1.0, cfg.HighNodeWeight)
	require.False(t, cfg.BigEndian)
}

func TestOptions_OverrideDefaults(t *testing.T) {
	cfg := compiler.DefaultConfig()
	for _, opt := range []compiler.Option{
		compiler.WithIDWidth(format.Width4),
		compiler.WithAlignTo(8),
		compiler.WithHighNodeWeight(2.5),
		compiler.WithBigEndian(true),
	} {
		opt(&cfg)
	}
	require.Equal(t, format.Width4, cfg.IDWidth)
	require.Equal(t, 8, cfg.AlignTo)
	require.Equal(t, 2.5, cfg.HighNodeWeight)
	require.True(t, cfg.BigEndian)
}
