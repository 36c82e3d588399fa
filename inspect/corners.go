package inspect

// CellCorners returns the eight corner depths of cell (i,j,k), ordered
// LLL, HLL, LHL, HHL, LLH, HLH, LHH, HHH.
//
// Returns ErrCoordOutOfBounds before any array access if a coordinate is
// outside the grid, and ErrSizeMismatch if the ZCORN array disagrees with
// the grid size. Complexity: O(1) plus the size check.
func (ins *Inspector) CellCorners(i, j, k int) (Corners, error) {
	if err := ins.checkLogicalCoords(i, j, k); err != nil {
		return Corners{}, err
	}
	zcorn, err := ins.zcornValues()
	if err != nil {
		return Corners{}, err
	}
	return ins.size.cellCorners(zcorn, i, j, k), nil
}

// cellCorners reads the eight depths of cell (i,j,k) from a validated
// ZCORN slice. Offsets follow the fixed corner order: x varies fastest,
// then y, then z.
func (s Size) cellCorners(zcorn []float64, i, j, k int) Corners {
	ix := s.cornerOffset(i, j, k)
	di, dj, dk := s.cornerStrides()
	return Corners{
		zcorn[ix], zcorn[ix+di],
		zcorn[ix+dj], zcorn[ix+dj+di],
		zcorn[ix+dk], zcorn[ix+dk+di],
		zcorn[ix+dk+dj], zcorn[ix+dk+dj+di],
	}
}
