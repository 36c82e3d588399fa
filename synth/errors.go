// SPDX-License-Identifier: MIT
// Package: cornerpoint/synth
//
// errors.go — sentinel errors for the synth package.
//
// Error policy:
//   - Only package-level sentinels are exposed; branch with errors.Is.
//   - Constructors validate early and return wrapped sentinels; they
//     never panic at runtime.

package synth

import "errors"

// ErrBadDimension indicates a requested cell count below 1 on some axis.
var ErrBadDimension = errors.New("synth: grid dimension must be at least 1")

// ErrBadSpacing indicates a non-positive pillar spacing or layer thickness.
var ErrBadSpacing = errors.New("synth: grid spacing must be positive")
