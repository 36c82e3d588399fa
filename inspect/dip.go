package inspect

// CellDips returns the dip slopes of cell (i,j,k) relative to the
// horizontal plane: the mean rise in depth per unit distance in the
// positive x-direction, and likewise for y.
//
// Each dip averages the rise-over-run of the four cell edges aligned with
// that axis, with run taken from the adjacent pillar top spacing. The
// computation assumes regularly placed vertical pillars — see the package
// documentation.
//
// Returns ErrCoordOutOfBounds before any array access for coordinates
// outside the grid, and ErrSizeMismatch if COORD or ZCORN disagrees with
// the grid size. Complexity: O(1) plus the size checks.
func (ins *Inspector) CellDips(i, j, k int) (xdip, ydip float64, err error) {
	if err = ins.checkLogicalCoords(i, j, k); err != nil {
		return 0, 0, err
	}
	coord, err := ins.coordValues()
	if err != nil {
		return 0, 0, err
	}
	zcorn, err := ins.zcornValues()
	if err != nil {
		return 0, 0, err
	}

	s := ins.size
	cz := s.cellCorners(zcorn, i, j, k)
	pix := s.pillarOffset(i, j)

	// Rise along the four x-aligned edges over the pillar-top x spacing.
	xlength := coord[6*(pix+1)] - coord[6*pix]
	xrise := [4]float64{
		(cz[HLL] - cz[LLL]) / xlength,
		(cz[HHL] - cz[LHL]) / xlength,
		(cz[HLH] - cz[LLH]) / xlength,
		(cz[HHH] - cz[LHH]) / xlength,
	}

	// Same for the four y-aligned edges.
	ylength := coord[6*(pix+s.NX+1)+1] - coord[6*pix+1]
	yrise := [4]float64{
		(cz[LHL] - cz[LLL]) / ylength,
		(cz[HHL] - cz[HLL]) / ylength,
		(cz[LHH] - cz[LLH]) / ylength,
		(cz[HHH] - cz[HLH]) / ylength,
	}

	xdip = (xrise[0] + xrise[1] + xrise[2] + xrise[3]) / 4
	ydip = (yrise[0] + yrise[1] + yrise[2] + yrise[3]) / 4

	return xdip, ydip, nil
}

// CellDipsAt is the linear-index form of CellDips; it converts via
// ToLogicalCoords and delegates.
func (ins *Inspector) CellDipsAt(cellIdx int) (xdip, ydip float64, err error) {
	i, j, k := ins.ToLogicalCoords(cellIdx)
	return ins.CellDips(i, j, k)
}
