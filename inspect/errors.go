package inspect

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid inspection.
var (
	// ErrMissingKeyword indicates a required keyword array (COORD, ZCORN,
	// or SPECGRID for GridLimits) is absent from the data source.
	ErrMissingKeyword = errors.New("inspect: required grid keyword missing")

	// ErrNoDimensionSource indicates the data source holds neither a
	// SPECGRID record nor a DIMENS triple; at least one is needed.
	ErrNoDimensionSource = errors.New("inspect: neither SPECGRID nor DIMENS present")

	// ErrBadDimensions indicates a declared grid dimension is zero or
	// negative, or a DIMENS array holds fewer than three values.
	ErrBadDimensions = errors.New("inspect: invalid grid dimensions")

	// ErrSizeMismatch indicates a fetched array's length disagrees with the
	// length implied by the grid size — the data source is corrupt or
	// inconsistent. Raised on first use of the offending array.
	ErrSizeMismatch = errors.New("inspect: keyword array size mismatch")

	// ErrCoordOutOfBounds indicates a logical coordinate outside [0,n) for
	// its axis. The wrapped message names the offending axis.
	ErrCoordOutOfBounds = errors.New("inspect: logical coordinate out of bounds")
)

// sizeMismatch reports the expected/actual lengths for a keyword array
// while preserving ErrSizeMismatch for errors.Is.
func sizeMismatch(keyword string, want, got int) error {
	return fmt.Errorf("%s: want %d values, got %d: %w", keyword, want, got, ErrSizeMismatch)
}
