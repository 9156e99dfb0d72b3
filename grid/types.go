// SPDX-License-Identifier: MIT
// Package: lvinterpret/grid
//
// types.go - grid window, spacing policy and the Axis variant.

package grid

import (
	"fmt"
	"math"
)

// Defaults (single source of truth).
const (
	// DefaultResolution is the number of auto points per swept feature.
	DefaultResolution = 100

	// MinResolution is the smallest auto resolution; both window endpoints are always emitted.
	MinResolution = 2
)

// Spacing selects how auto points are placed inside the window.
type Spacing int

const (
	// Uniform places points at equal value steps between the window quantiles.
	Uniform Spacing = iota

	// Percentile places points at equal percentile steps inside the window.
	Percentile
)

// String implements fmt.Stringer.
func (s Spacing) String() string {
	switch s {
	case Uniform:
		return "uniform"
	case Percentile:
		return "percentile"
	default:
		return fmt.Sprintf("Spacing(%d)", int(s))
	}
}

// ParseSpacing maps "uniform" / "percentile" to a Spacing.
func ParseSpacing(s string) (Spacing, error) {
	switch s {
	case "", "uniform", "linspace":
		return Uniform, nil
	case "percentile", "quantile":
		return Percentile, nil
	default:
		return 0, fmt.Errorf("ParseSpacing(%q): %w", s, ErrUnknownSpacing)
	}
}

// Range is a fractional percentile window of a feature's observed values.
type Range struct {
	Lo float64
	Hi float64
}

// DefaultRange covers the whole observed range.
var DefaultRange = Range{Lo: 0, Hi: 1}

// Validate checks 0 <= Lo < Hi <= 1 with both bounds finite.
// Returns a wrapped ErrMalformedGridRange otherwise.
func (r Range) Validate() error {
	if isNonFinite(r.Lo) || isNonFinite(r.Hi) || r.Lo < 0 || r.Hi > 1 || r.Lo >= r.Hi {
		return fmt.Errorf("Range(%g, %g): %w", r.Lo, r.Hi, ErrMalformedGridRange)
	}
	return nil
}

// Kind tags the Axis variant.
type Kind int

const (
	// KindAuto marks an axis generated from observed values.
	KindAuto Kind = iota

	// KindSupplied marks a caller-provided axis.
	KindSupplied
)

// Axis is the grid source for one swept feature. Build it with Auto or
// Supplied; the zero value is an invalid auto axis (resolution 0).
type Axis struct {
	kind       Kind
	values     []float64 // KindSupplied only
	resolution int       // KindAuto only
	window     Range     // KindAuto only
	spacing    Spacing   // KindAuto only
}

// Auto returns an axis of resolution points drawn from window with the given spacing.
func Auto(resolution int, window Range, spacing Spacing) Axis {
	return Axis{kind: KindAuto, resolution: resolution, window: window, spacing: spacing}
}

// Supplied returns an axis that yields a copy of values verbatim.
func Supplied(values []float64) Axis {
	own := make([]float64, len(values))
	copy(own, values)
	return Axis{kind: KindSupplied, values: own}
}

// Kind reports which variant a is.
func (a Axis) Kind() Kind { return a.kind }

// Len returns the number of points a will resolve to.
func (a Axis) Len() int {
	if a.kind == KindSupplied {
		return len(a.values)
	}
	return a.resolution
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
