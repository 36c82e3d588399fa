package synth_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cornerpoint/source"
	"github.com/katalvlaran/cornerpoint/synth"
)

// TestBox_ArrayShapes checks the emitted arrays have the lengths implied
// by the grid size.
func TestBox_ArrayShapes(t *testing.T) {
	const nx, ny, nz = 3, 4, 5
	src, err := synth.Box(nx, ny, nz, 10, 10, 1)
	require.NoError(t, err)

	coord, err := src.FloatValues(source.KwCoord)
	require.NoError(t, err)
	require.Len(t, coord, 6*(nx+1)*(ny+1))

	zcorn, err := src.FloatValues(source.KwZCorn)
	require.NoError(t, err)
	require.Len(t, zcorn, 8*nx*ny*nz)

	sg, err := src.SpecGrid()
	require.NoError(t, err)
	require.Equal(t, [3]int{nx, ny, nz}, sg.Dimensions)
}

// TestBox_PillarLayout spot-checks COORD: j-major pillar order, vertical
// pillars, bottom depth z0 + nz*dz.
func TestBox_PillarLayout(t *testing.T) {
	src, err := synth.Box(2, 2, 3, 10, 20, 5, synth.WithOrigin(100, 200, 1000))
	require.NoError(t, err)
	coord, err := src.FloatValues(source.KwCoord)
	require.NoError(t, err)

	// Pillar (1,2) sits at offset 6*(1 + 2*(nx+1)).
	p := 6 * (1 + 2*3)
	require.Equal(t, []float64{110, 240, 1000, 110, 240, 1015}, coord[p:p+6])
}

// TestBox_Errors covers validate-early rejection.
func TestBox_Errors(t *testing.T) {
	cases := []struct {
		name       string
		nx, ny, nz int
		dx, dy, dz float64
		err        error
	}{
		{"ZeroNX", 0, 1, 1, 1, 1, 1, synth.ErrBadDimension},
		{"NegativeNZ", 1, 1, -2, 1, 1, 1, synth.ErrBadDimension},
		{"ZeroDX", 1, 1, 1, 0, 1, 1, synth.ErrBadSpacing},
		{"NegativeDZ", 1, 1, 1, 1, 1, -0.5, synth.ErrBadSpacing},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := synth.Box(tc.nx, tc.ny, tc.nz, tc.dx, tc.dy, tc.dz)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

// TestBox_WithDimens verifies the DIMENS variant emits the triple and no
// SPECGRID record.
func TestBox_WithDimens(t *testing.T) {
	src, err := synth.Box(4, 2, 3, 1, 1, 1, synth.WithDimens())
	require.NoError(t, err)

	require.False(t, src.HasField(source.KwSpecGrid))
	dims, err := src.IntValues(source.KwDimens)
	require.NoError(t, err)
	require.Equal(t, []int{4, 2, 3}, dims)
}

// TestBox_Deterministic verifies two identical builds produce identical
// arrays.
func TestBox_Deterministic(t *testing.T) {
	a, err := synth.Box(3, 3, 3, 2, 4, 8, synth.WithXDip(0.1), synth.WithOrigin(1, 2, 3))
	require.NoError(t, err)
	b, err := synth.Box(3, 3, 3, 2, 4, 8, synth.WithXDip(0.1), synth.WithOrigin(1, 2, 3))
	require.NoError(t, err)

	za, _ := a.FloatValues(source.KwZCorn)
	zb, _ := b.FloatValues(source.KwZCorn)
	require.Equal(t, za, zb)

	ca, _ := a.FloatValues(source.KwCoord)
	cb, _ := b.FloatValues(source.KwCoord)
	require.Equal(t, ca, cb)
}
