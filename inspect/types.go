package inspect

// Size is the logical grid size: the number of cells along each axis.
// All three components are positive for any Size produced by New.
type Size struct {
	NX, NY, NZ int
}

// Cells returns the total number of cells, NX*NY*NZ.
func (s Size) Cells() int { return s.NX * s.NY * s.NZ }

// Pillars returns the number of pillars, (NX+1)*(NY+1).
func (s Size) Pillars() int { return (s.NX + 1) * (s.NY + 1) }

// Corner indices into Corners. L/H denote the low/high side of the cell
// along x, y, z in that order; the depth formulas index positionally, so
// this order is part of the contract.
const (
	LLL = iota // x-low  y-low  z-low
	HLL        // x-high y-low  z-low
	LHL        // x-low  y-high z-low
	HHL        // x-high y-high z-low
	LLH        // x-low  y-low  z-high
	HLH        // x-high y-low  z-high
	LHH        // x-low  y-high z-high
	HHH        // x-high y-high z-high
)

// Corners holds the eight corner depths of one cell, indexed LLL..HHH.
type Corners [8]float64

// Limits is the grid's bounding extents. X and Y extents come from pillar
// top points; Z extents from a scan of the full depth array.
type Limits struct {
	XMin, XMax float64
	YMin, YMax float64
	ZMin, ZMax float64
}
