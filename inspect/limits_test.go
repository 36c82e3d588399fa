package inspect_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cornerpoint/inspect"
	"github.com/katalvlaran/cornerpoint/synth"
)

// TestGridLimits_Box verifies the documented extent scenario: a 2×2×1 grid
// spanning x,y ∈ [0,10] with depths in [100,110].
func TestGridLimits_Box(t *testing.T) {
	src, err := synth.Box(2, 2, 1, 5, 5, 10, synth.WithOrigin(0, 0, 100))
	require.NoError(t, err)
	ins, err := inspect.New(src)
	require.NoError(t, err)

	lim, err := ins.GridLimits()
	require.NoError(t, err)
	require.Equal(t, inspect.Limits{
		XMin: 0, XMax: 10,
		YMin: 0, YMax: 10,
		ZMin: 100, ZMax: 110,
	}, lim)
}

// TestGridLimits_ShiftedOrigin covers a non-zero origin and a tilted depth
// field, whose z extent must come from the depth array, not the pillars.
func TestGridLimits_ShiftedOrigin(t *testing.T) {
	// Depths run from 1000 at (x=-50) to 1000+0.2*(100)+2*3 at the far
	// corner: x spans [-50,50], so the tilt adds [-10,10].
	src, err := synth.Box(4, 5, 3, 25, 10, 2,
		synth.WithOrigin(-50, 200, 1000), synth.WithXDip(0.2))
	require.NoError(t, err)
	ins, err := inspect.New(src)
	require.NoError(t, err)

	lim, err := ins.GridLimits()
	require.NoError(t, err)
	require.InDelta(t, -50, lim.XMin, volTol)
	require.InDelta(t, 50, lim.XMax, volTol)
	require.InDelta(t, 200, lim.YMin, volTol)
	require.InDelta(t, 250, lim.YMax, volTol)
	require.InDelta(t, 990, lim.ZMin, volTol)
	require.InDelta(t, 1016, lim.ZMax, volTol)
}

// TestGridLimits_RequiresSpecGrid verifies a DIMENS-only source is rejected
// even though every per-cell query works on it.
func TestGridLimits_RequiresSpecGrid(t *testing.T) {
	src, err := synth.Box(2, 2, 2, 1, 1, 1, synth.WithDimens())
	require.NoError(t, err)
	ins, err := inspect.New(src)
	require.NoError(t, err)

	_, err = ins.CellVolume(0, 0, 0)
	require.NoError(t, err)

	_, err = ins.GridLimits()
	require.ErrorIs(t, err, inspect.ErrMissingKeyword)
}
