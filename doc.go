// Package cornerpoint answers geometric questions about corner-point
// structured grids — the pillar-and-depth mesh description used in
// subsurface and reservoir modeling.
//
// What is cornerpoint?
//
//	A small, read-only inspection library that takes an already-parsed
//	grid description (a COORD pillar array, a ZCORN corner-depth array
//	and a logical grid size) and computes per-cell geometry:
//		• Linear cell index ↔ logical (i,j,k) coordinate conversion
//		• The eight corner depths of any cell
//		• Cell volume (vertical-pillar approximation)
//		• Local dip (slope) in the x- and y-directions
//		• Overall grid bounding extents
//
// Why choose cornerpoint?
//
//   - Pure computation – every query is O(1) index arithmetic over
//     in-memory arrays; no I/O, no locks, no hidden state
//   - Honest validation – array sizes are re-checked on every query, so a
//     corrupt or inconsistent source is caught at the point of use
//   - Pure Go – no cgo, no hidden deps
//
// Everything is organized under three subpackages:
//
//	source/  — the DataSource collaborator interface plus an in-memory
//	           MapSource implementation for tests and embedders
//	inspect/ — the Inspector query engine (volume, dips, corners, limits)
//	synth/   — deterministic synthetic grid builders for fixtures and
//	           benchmarks
//
// The file parser that produces COORD/ZCORN arrays is deliberately out of
// scope: bring your own parser and adapt it to source.DataSource.
//
//	go get github.com/katalvlaran/cornerpoint
package cornerpoint
