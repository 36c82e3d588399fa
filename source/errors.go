package source

import (
	"errors"
	"fmt"
)

// Sentinel errors for data-source lookups.
var (
	// ErrUnknownField indicates a value getter named a field the source
	// does not hold. Check presence with HasField before fetching, or
	// branch with errors.Is.
	ErrUnknownField = errors.New("source: unknown field")

	// ErrNoSpecGrid indicates SpecGrid was called on a source that holds
	// no structured grid declaration.
	ErrNoSpecGrid = errors.New("source: no SPECGRID record")
)

// wrapUnknown attaches the offending field name to ErrUnknownField so that
// callers keep errors.Is semantics while messages stay diagnosable.
func wrapUnknown(name string) error {
	return fmt.Errorf("%q: %w", name, ErrUnknownField)
}
