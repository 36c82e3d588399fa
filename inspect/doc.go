// Package inspect computes per-cell geometry for corner-point structured
// grids: volume, local dip, corner depths, index conversion and bounding
// extents.
//
// What:
//
//   - Inspector wraps a source.DataSource holding COORD (pillar) and ZCORN
//     (corner-depth) arrays plus a logical (nx,ny,nz) grid size.
//   - CellVolume / CellDips / CellCorners answer per-cell queries by
//     logical (i,j,k) coordinates or by linear cell index.
//   - ToLogicalCoords converts a linear cell index to (i,j,k).
//   - GridLimits reports the grid's bounding extents.
//
// Why:
//
//   - Quality screening: spot degenerate or inverted cells by volume sign.
//   - Structural analysis: local dip maps from corner depths alone.
//   - Upscaling and reporting: bulk volumes and bounding boxes without a
//     full geometry kernel.
//
// Approximation:
//
//   - Volume and dip assume vertical pillars: volume is a prism with a
//     planar horizontal cross-section and averaged vertical extent, and dip
//     treats each cell face as a mean-slope plane. For tilted pillars the
//     results are approximate. This is a documented limitation of the
//     numerical contract, not an oversight.
//
// Complexity:
//
//   - All per-cell queries: O(1) index arithmetic after an O(1) size check.
//   - GridLimits: O(P + Z) over the pillar and depth arrays.
//
// Errors:
//
//   - ErrMissingKeyword / ErrNoDimensionSource / ErrBadDimensions:
//     construction-time configuration failures.
//   - ErrSizeMismatch: a fetched array disagrees with the stored grid size;
//     raised lazily on first use of the offending array.
//   - ErrCoordOutOfBounds: a logical coordinate outside [0,n), reported
//     per axis.
//
// All errors are unrecoverable at this layer and propagate immediately;
// branch with errors.Is.
package inspect
