package inspect

import (
	"fmt"

	"github.com/katalvlaran/cornerpoint/source"
)

// Inspector answers geometric queries about one corner-point grid. It holds
// a read-only reference to the data source and the logical grid size fixed
// at construction; nothing else is cached. Every query re-fetches and
// re-validates the keyword arrays it needs, so a source mutated between
// calls is caught by the size checks rather than served stale.
//
// An Inspector is safe for concurrent use as long as the backing source is
// immutable or externally synchronized.
type Inspector struct {
	src  source.DataSource
	size Size
}

// New constructs an Inspector over src. It requires the COORD and ZCORN
// keywords to be present and resolves the logical grid size from SPECGRID
// (preferred) or DIMENS.
//
// Returns ErrMissingKeyword if COORD or ZCORN is absent,
// ErrNoDimensionSource if neither SPECGRID nor DIMENS is present, and
// ErrBadDimensions if any resolved dimension is not positive.
func New(src source.DataSource) (*Inspector, error) {
	if !src.HasFields([]string{source.KwCoord, source.KwZCorn}) {
		return nil, fmt.Errorf("New: %s and %s are required: %w",
			source.KwCoord, source.KwZCorn, ErrMissingKeyword)
	}

	var dims [3]int
	switch {
	case src.HasField(source.KwSpecGrid):
		sg, err := src.SpecGrid()
		if err != nil {
			return nil, fmt.Errorf("New: %w", err)
		}
		dims = sg.Dimensions
	case src.HasField(source.KwDimens):
		vals, err := src.IntValues(source.KwDimens)
		if err != nil {
			return nil, fmt.Errorf("New: %w", err)
		}
		if len(vals) < 3 {
			return nil, fmt.Errorf("New: %s holds %d values, need 3: %w",
				source.KwDimens, len(vals), ErrBadDimensions)
		}
		dims = [3]int{vals[0], vals[1], vals[2]}
	default:
		return nil, fmt.Errorf("New: %w", ErrNoDimensionSource)
	}

	for axis, n := range dims {
		if n < 1 {
			return nil, fmt.Errorf("New: dimension %d is %d: %w", axis, n, ErrBadDimensions)
		}
	}

	return &Inspector{
		src:  src,
		size: Size{NX: dims[0], NY: dims[1], NZ: dims[2]},
	}, nil
}

// GridSize returns the logical grid size resolved at construction.
// Complexity: O(1).
func (ins *Inspector) GridSize() Size {
	return ins.size
}

// coordValues fetches the COORD array and validates its length against
// 6 values per pillar. Returns ErrSizeMismatch on disagreement.
func (ins *Inspector) coordValues() ([]float64, error) {
	coord, err := ins.src.FloatValues(source.KwCoord)
	if err != nil {
		return nil, err
	}
	if want := 6 * ins.size.Pillars(); len(coord) != want {
		return nil, sizeMismatch(source.KwCoord, want, len(coord))
	}
	return coord, nil
}

// zcornValues fetches the ZCORN array and validates its length against
// 8 values per cell. Returns ErrSizeMismatch on disagreement.
func (ins *Inspector) zcornValues() ([]float64, error) {
	zcorn, err := ins.src.FloatValues(source.KwZCorn)
	if err != nil {
		return nil, err
	}
	if want := 8 * ins.size.Cells(); len(zcorn) != want {
		return nil, sizeMismatch(source.KwZCorn, want, len(zcorn))
	}
	return zcorn, nil
}
