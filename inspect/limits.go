package inspect

import (
	"fmt"
	"math"

	"github.com/katalvlaran/cornerpoint/source"
)

// GridLimits returns the grid's bounding extents as
// (XMin,XMax,YMin,YMax,ZMin,ZMax).
//
// X and Y extents come from the top (x,y) point of every pillar; with
// vertical pillars the bottom points add nothing. Z extents come from a
// scan of the entire depth array — the vertical extent is defined by the
// corner depths, not by pillar endpoints.
//
// Requires SPECGRID, COORD and ZCORN all present; returns
// ErrMissingKeyword otherwise, and ErrSizeMismatch for inconsistent
// arrays. Complexity: O(P + Z) over the pillar and depth arrays.
func (ins *Inspector) GridLimits() (Limits, error) {
	needed := []string{source.KwSpecGrid, source.KwCoord, source.KwZCorn}
	if !ins.src.HasFields(needed) {
		return Limits{}, fmt.Errorf("GridLimits: %s, %s and %s are required: %w",
			source.KwSpecGrid, source.KwCoord, source.KwZCorn, ErrMissingKeyword)
	}

	coord, err := ins.coordValues()
	if err != nil {
		return Limits{}, err
	}
	zcorn, err := ins.zcornValues()
	if err != nil {
		return Limits{}, err
	}

	lim := Limits{
		XMin: math.Inf(1), XMax: math.Inf(-1),
		YMin: math.Inf(1), YMax: math.Inf(-1),
		ZMin: math.Inf(1), ZMax: math.Inf(-1),
	}

	for p := 0; p < ins.size.Pillars(); p++ {
		x, y := coord[6*p], coord[6*p+1]
		lim.XMin = math.Min(lim.XMin, x)
		lim.XMax = math.Max(lim.XMax, x)
		lim.YMin = math.Min(lim.YMin, y)
		lim.YMax = math.Max(lim.YMax, y)
	}

	for _, z := range zcorn {
		lim.ZMin = math.Min(lim.ZMin, z)
		lim.ZMax = math.Max(lim.ZMax, z)
	}

	return lim, nil
}
