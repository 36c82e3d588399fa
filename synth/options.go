// SPDX-License-Identifier: MIT
// Package: cornerpoint/synth
//
// options.go — functional options for synthetic grid construction.
//
// Contract:
//   - Options are functional (type Option func(*config)).
//   - Any float64 is a legal origin or dip; no option panics.
//   - Everything flows through config; no hidden globals.

package synth

// Option customizes a synthetic grid before construction begins.
// Applying N options costs O(N) time, O(1) space.
type Option func(*config)

// config is the resolved construction configuration.
type config struct {
	x0, y0, z0 float64 // origin: top-surface corner of pillar (0,0)
	xdip, ydip float64 // depth added per unit x resp. y
	useDimens  bool    // emit DIMENS instead of SPECGRID
}

// defaultConfig returns the zero origin, flat, SPECGRID-declared config.
func defaultConfig() config {
	return config{}
}

// WithOrigin places the top-surface corner of pillar (0,0) at (x0,y0) with
// top depth z0. Default is the coordinate origin at depth 0.
func WithOrigin(x0, y0, z0 float64) Option {
	return func(c *config) {
		c.x0, c.y0, c.z0 = x0, y0, z0
	}
}

// WithXDip tilts every depth plane by adding s·x to each corner depth, so
// every cell dips by exactly (s, 0). Pillars stay vertical.
func WithXDip(s float64) Option {
	return func(c *config) {
		c.xdip = s
	}
}

// WithYDip tilts every depth plane by adding s·y to each corner depth, so
// every cell dips by exactly (0, s). Pillars stay vertical.
func WithYDip(s float64) Option {
	return func(c *config) {
		c.ydip = s
	}
}

// WithDimens declares the grid size as a flat DIMENS integer triple
// instead of a structured SPECGRID record. Useful for exercising the
// inspector's fallback dimension resolution.
func WithDimens() Option {
	return func(c *config) {
		c.useDimens = true
	}
}
