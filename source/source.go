package source

// Grid keywords consumed by the inspection engine.
const (
	// KwCoord names the pillar-coordinate array: 6 doubles per pillar,
	// (x,y,z) of the pillar top followed by (x,y,z) of the pillar bottom,
	// for (nx+1)×(ny+1) pillars.
	KwCoord = "COORD"
	// KwZCorn names the corner-depth array: 8 doubles per cell, one per
	// logical corner.
	KwZCorn = "ZCORN"
	// KwSpecGrid names the structured grid declaration carrying the
	// logical dimensions.
	KwSpecGrid = "SPECGRID"
	// KwDimens names the flat 3-integer dimension triple used when no
	// SPECGRID record is present.
	KwDimens = "DIMENS"
)

// SpecGrid is the structured grid declaration record. Dimensions holds the
// logical (nx,ny,nz) size; NumRes and CoordType carry the auxiliary fields
// of the declaration and are not interpreted by the inspection engine.
type SpecGrid struct {
	Dimensions [3]int
	NumRes     int
	CoordType  string
}

// DataSource is the read-only view of an already-parsed grid description.
// Implementations must be safe for concurrent reads if shared between
// goroutines; the inspection engine itself never mutates a source.
type DataSource interface {
	// HasField reports whether the named keyword array is present.
	HasField(name string) bool

	// HasFields reports whether every named keyword array is present.
	HasFields(names []string) bool

	// FloatValues returns the named floating-point array.
	// Returns ErrUnknownField if the field is absent.
	FloatValues(name string) ([]float64, error)

	// IntValues returns the named integer array.
	// Returns ErrUnknownField if the field is absent.
	IntValues(name string) ([]int, error)

	// SpecGrid returns the structured grid declaration.
	// Returns ErrNoSpecGrid if the source holds none.
	SpecGrid() (SpecGrid, error)
}
