package inspect

import "fmt"

// ToLogicalCoords converts a linear cell index into 0-based logical
// (i,j,k) coordinates. Cells are numbered horizon by horizon, i fastest,
// then j, then k, so index 0 is cell (0,0,0) and index nx*ny*nz-1 is cell
// (nx-1,ny-1,nz-1).
//
// The arithmetic runs in 1-based space with remainders mapped into [1,n]
// (a zero remainder means the divisor itself). This boundary convention is
// load-bearing at horizon and row boundaries and is preserved verbatim;
// do not simplify it to plain 0-based div/mod.
//
// The index itself is not range-checked here: every per-cell query
// re-checks the resulting logical coordinates before touching any array.
// Complexity: O(1).
func (ins *Inspector) ToLogicalCoords(cellIdx int) (i, j, k int) {
	return ins.size.logicalCoords(cellIdx)
}

// logicalCoords is the pure conversion kernel behind ToLogicalCoords.
func (s Size) logicalCoords(cellIdx int) (i, j, k int) {
	perHorizon := s.NX * s.NY
	n := cellIdx + 1 // 1-based linear index

	// Index within the cell's horizon, in [1, perHorizon].
	horIdx := n - (n/perHorizon)*perHorizon
	if horIdx == 0 {
		horIdx = perHorizon
	}

	// Row position within the horizon, in [1, NX].
	i = horIdx - (horIdx/s.NX)*s.NX
	if i == 0 {
		i = s.NX
	}

	j = (horIdx-i)/s.NX + 1
	k = (n-s.NX*(j-1)-1)/perHorizon + 1

	return i - 1, j - 1, k - 1
}

// checkLogicalCoords verifies 0 <= i < NX, 0 <= j < NY, 0 <= k < NZ,
// reporting the offending axis. Every geometry query calls this before
// indexing into any keyword array.
func (ins *Inspector) checkLogicalCoords(i, j, k int) error {
	switch {
	case i < 0 || i >= ins.size.NX:
		return fmt.Errorf("first coordinate %d not in [0,%d): %w", i, ins.size.NX, ErrCoordOutOfBounds)
	case j < 0 || j >= ins.size.NY:
		return fmt.Errorf("second coordinate %d not in [0,%d): %w", j, ins.size.NY, ErrCoordOutOfBounds)
	case k < 0 || k >= ins.size.NZ:
		return fmt.Errorf("third coordinate %d not in [0,%d): %w", k, ins.size.NZ, ErrCoordOutOfBounds)
	}
	return nil
}

// pillarOffset returns the index of pillar (i,j) in pillar units; multiply
// by 6 for the flat COORD offset. Valid for 0 <= i <= NX, 0 <= j <= NY.
func (s Size) pillarOffset(i, j int) int {
	return i + j*(s.NX+1)
}

// cornerOffset returns the flat ZCORN offset of cell (i,j,k)'s LLL corner.
// Each logical axis step spans a low/high pair, hence the factor 2 on
// every stride.
func (s Size) cornerOffset(i, j, k int) int {
	return 2 * (i + j*2*s.NX + k*4*s.NX*s.NY)
}

// cornerStrides returns the ZCORN deltas separating a corner from its
// x-, y- and z-neighbors within one cell.
func (s Size) cornerStrides() (di, dj, dk int) {
	return 1, 2 * s.NX, 4 * s.NX * s.NY
}
