package compiler

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ironautomata/eudoxus/format"
)

func TestLowCost_MatchesHandComputedLayout(t *testing.T) {
	// header(1) + first_output(w=2) + out_degree(1) + 3*(value+target) +
	// default(w=2) + advance bitmap ceil(3/8)=1.
	got := lowCost(format.Width2, true, true, true, 3)
	want := 1 + 2 + 1 + 3*(1+2) + 2 + 1
	require.Equal(t, want, got)
}

func TestLowCost_NoEdgesOmitsOutDegreeAndBitmap(t *testing.T) {
	got := lowCost(format.Width1, false, false, false, 0)
	require.Equal(t, 1, got)
}

func TestHighCost_FullCoverageOmitsTargetBitmap(t *testing.T) {
	got := highCost(format.Width4, false, false, false, 256)
	want := 1 + 256*4
	require.Equal(t, want, got)
}

func TestHighCost_PartialCoverageAddsBitmap(t *testing.T) {
	got := highCost(format.Width4, false, false, false, 10)
	want := 1 + 32 + 10*4
	require.Equal(t, want, got)
}

func TestPCCost_InlineVsExplicitLength(t *testing.T) {
	inline := pcCost(format.Width2, false, false, 4)
	require.Equal(t, 1+2+4, inline)

	explicit := pcCost(format.Width2, false, false, 10)
	require.Equal(t, 1+1+2+10, explicit)
}
