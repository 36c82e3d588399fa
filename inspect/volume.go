package inspect

// CellVolume returns the volume of cell (i,j,k).
//
// The horizontal cross-section is taken as half the 2-D cross product of
// the diagonals of the quadrilateral formed by the cell's four pillar top
// points; the vertical extent is the mean of the four top-to-bottom corner
// depth differences. Exact for vertical pillars, approximate otherwise —
// see the package documentation.
//
// Returns ErrCoordOutOfBounds before any array access for coordinates
// outside the grid, and ErrSizeMismatch if COORD or ZCORN disagrees with
// the grid size. Complexity: O(1) plus the size checks.
func (ins *Inspector) CellVolume(i, j, k int) (float64, error) {
	if err := ins.checkLogicalCoords(i, j, k); err != nil {
		return 0, err
	}
	coord, err := ins.coordValues()
	if err != nil {
		return 0, err
	}
	zcorn, err := ins.zcornValues()
	if err != nil {
		return 0, err
	}

	// Top (x,y) of the four bounding pillars: near, +x, +y, +x+y.
	s := ins.size
	pix := s.pillarOffset(i, j)
	px := [4]float64{
		coord[6*pix],
		coord[6*(pix+1)],
		coord[6*(pix+s.NX+1)],
		coord[6*(pix+s.NX+2)],
	}
	py := [4]float64{
		coord[6*pix+1],
		coord[6*(pix+1)+1],
		coord[6*(pix+s.NX+1)+1],
		coord[6*(pix+s.NX+2)+1],
	}

	// Base area: half the cross product of the quadrilateral's diagonals.
	diag1x, diag1y := px[3]-px[0], py[3]-py[0]
	diag2x, diag2y := px[2]-px[1], py[2]-py[1]
	area := 0.5 * (diag1x*diag2y - diag1y*diag2x)

	// Mean vertical extent over the four vertical edges.
	cz := s.cellCorners(zcorn, i, j, k)
	meanHeight := 0.25 * ((cz[LLH] - cz[LLL]) + (cz[HLH] - cz[HLL]) +
		(cz[LHH] - cz[LHL]) + (cz[HHH] - cz[HHL]))

	return area * meanHeight, nil
}

// CellVolumeAt is the linear-index form of CellVolume; it converts via
// ToLogicalCoords and delegates.
func (ins *Inspector) CellVolumeAt(cellIdx int) (float64, error) {
	i, j, k := ins.ToLogicalCoords(cellIdx)
	return ins.CellVolume(i, j, k)
}
