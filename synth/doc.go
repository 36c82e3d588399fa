// SPDX-License-Identifier: MIT
// Package: cornerpoint/synth
//
// Package synth builds deterministic synthetic corner-point grids for
// tests, examples and benchmarks.
//
// What:
//
//   - Box(nx,ny,nz, dx,dy,dz, opts...) populates a source.MapSource with
//     SPECGRID (or DIMENS), COORD and ZCORN describing a uniform
//     rectangular lattice: pillar spacing (dx,dy), one depth step dz per
//     k-layer, top surface at the configured origin.
//   - Options tilt the depth field (WithXDip/WithYDip), move the origin
//     (WithOrigin), or swap the dimension record (WithDimens).
//
// Why:
//
//   - A box grid has closed-form geometry: every cell's volume is
//     dx*dy*dz and its dips equal the configured tilt. That makes these
//     grids exact oracles for the inspection engine.
//
// Determinism:
//
//   - Same arguments and options ⇒ byte-identical arrays. No RNG.
//
// Errors:
//
//   - ErrBadDimension: a cell count below 1.
//   - ErrBadSpacing: a non-positive spacing.
package synth
