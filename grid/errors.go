// SPDX-License-Identifier: MIT
// Package: lvinterpret/grid
//
// errors.go - sentinel errors for grid validation and construction.

package grid

import "errors"

var (
	// ErrMalformedGridRange indicates a window outside [0,1], inverted,
	// empty (Lo == Hi) or non-finite.
	ErrMalformedGridRange = errors.New("grid: malformed grid range, want 0 <= lo < hi <= 1")

	// ErrInvalidResolution indicates an auto axis with fewer than MinResolution points.
	ErrInvalidResolution = errors.New("grid: resolution too small")

	// ErrUnknownSpacing indicates a Spacing value outside the declared constants.
	ErrUnknownSpacing = errors.New("grid: unknown spacing")

	// ErrEmptyGrid indicates a supplied axis without values.
	ErrEmptyGrid = errors.New("grid: empty grid")

	// ErrNonFiniteGrid indicates a supplied value that is NaN or ±Inf.
	ErrNonFiniteGrid = errors.New("grid: NaN or Inf in grid")

	// ErrNoObservations indicates an auto axis resolved against no data.
	ErrNoObservations = errors.New("grid: no observed values")

	// ErrNoAxes indicates Product was called without axes.
	ErrNoAxes = errors.New("grid: no axes")
)
