// SPDX-License-Identifier: MIT
// Package: cornerpoint/synth
//
// box.go — uniform rectangular lattice constructor.
//
// Canonical model:
//   - (nx+1)×(ny+1) vertical pillars on a regular (dx,dy) lattice.
//   - nz layers of thickness dz; corner depths increase top-down.
//   - Optional x/y tilt added to every corner depth (pillars unchanged).
//
// Contract:
//   - nx,ny,nz ≥ 1 (else ErrBadDimension); dx,dy,dz > 0 (else ErrBadSpacing).
//   - Emits SPECGRID by default, DIMENS with WithDimens().
//   - Deterministic: same inputs ⇒ identical arrays.

package synth

import (
	"fmt"

	"github.com/katalvlaran/cornerpoint/source"
)

// Box constructs a uniform box grid: nx×ny×nz cells with pillar spacing
// (dx,dy) and layer thickness dz, top surface at the configured origin
// depth. The returned MapSource holds COORD, ZCORN and the dimension
// record, ready to hand to inspect.New.
//
// Every cell of a flat box has volume dx*dy*dz and dips (0,0); with
// WithXDip(s) the dips become (s,0) and the volume is unchanged, since the
// tilt shifts all four vertical edges of a cell equally.
//
// Complexity: O(nx*ny*nz) time and memory (the ZCORN array dominates).
func Box(nx, ny, nz int, dx, dy, dz float64, opts ...Option) (*source.MapSource, error) {
	if nx < 1 || ny < 1 || nz < 1 {
		return nil, fmt.Errorf("Box: %dx%dx%d: %w", nx, ny, nz, ErrBadDimension)
	}
	if dx <= 0 || dy <= 0 || dz <= 0 {
		return nil, fmt.Errorf("Box: spacing (%g,%g,%g): %w", dx, dy, dz, ErrBadSpacing)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	src := source.NewMapSource()

	if cfg.useDimens {
		src.SetInts(source.KwDimens, []int{nx, ny, nz})
	} else {
		src.SetSpecGrid(source.SpecGrid{
			Dimensions: [3]int{nx, ny, nz},
			NumRes:     1,
			CoordType:  "F",
		})
	}

	// COORD: pillars in j-major order, 6 values each, top point then
	// bottom point. Pillars are vertical: top and bottom share (x,y).
	coord := make([]float64, 0, 6*(nx+1)*(ny+1))
	zbot := cfg.z0 + dz*float64(nz)
	for pj := 0; pj <= ny; pj++ {
		for pi := 0; pi <= nx; pi++ {
			x := cfg.x0 + dx*float64(pi)
			y := cfg.y0 + dy*float64(pj)
			coord = append(coord, x, y, cfg.z0, x, y, zbot)
		}
	}
	src.SetFloats(source.KwCoord, coord)

	// ZCORN: a [2nz][2ny][2nx] block, x fastest. Doubled coordinate cc
	// maps to the physical lattice line (cc+1)/2, so paired corners of
	// adjacent cells coincide and the grid has matching faces.
	zcorn := make([]float64, 0, 8*nx*ny*nz)
	for kk := 0; kk < 2*nz; kk++ {
		depth := cfg.z0 + dz*float64((kk+1)/2)
		for jj := 0; jj < 2*ny; jj++ {
			y := cfg.y0 + dy*float64((jj+1)/2)
			for ii := 0; ii < 2*nx; ii++ {
				x := cfg.x0 + dx*float64((ii+1)/2)
				zcorn = append(zcorn, depth+cfg.xdip*x+cfg.ydip*y)
			}
		}
	}
	src.SetFloats(source.KwZCorn, zcorn)

	return src, nil
}
