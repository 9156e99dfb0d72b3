// SPDX-License-Identifier: MIT
// Package: lvinterpret/grid
//
// resolve.go - axis validation and point generation.
//
// Contract:
//   - Validate is pure and data-independent; callers run it for every axis
//     before touching data or predictors.
//   - Resolve never mutates observed.

package grid

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Validate checks the axis parameters without looking at any data.
//
// Supplied: at least one value, all finite.
// Auto: resolution >= MinResolution, valid window, known spacing.
func (a Axis) Validate() error {
	switch a.kind {
	case KindSupplied:
		if len(a.values) == 0 {
			return fmt.Errorf("Validate: %w", ErrEmptyGrid)
		}
		for i, v := range a.values {
			if isNonFinite(v) {
				return fmt.Errorf("Validate: value %d: %w", i, ErrNonFiniteGrid)
			}
		}
		return nil
	case KindAuto:
		if a.resolution < MinResolution {
			return fmt.Errorf("Validate: resolution %d < %d: %w", a.resolution, MinResolution, ErrInvalidResolution)
		}
		if err := a.window.Validate(); err != nil {
			return fmt.Errorf("Validate: %w", err)
		}
		if a.spacing != Uniform && a.spacing != Percentile {
			return fmt.Errorf("Validate: %v: %w", a.spacing, ErrUnknownSpacing)
		}
		return nil
	default:
		return fmt.Errorf("Validate: kind %d: %w", a.kind, ErrUnknownSpacing)
	}
}

// Resolve returns the grid values of a for a feature whose observed values
// are given. Supplied axes ignore observed.
//
// Stage 1 (Validate): a.Validate().
// Stage 2 (Supplied): return a copy.
// Stage 3 (Auto): sort a copy of observed, then place points per spacing.
//
// Complexity: O(m log m + resolution·m) for m observations (Percentile);
// O(m log m + resolution) for Uniform.
func (a Axis) Resolve(observed []float64) ([]float64, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	if a.kind == KindSupplied {
		out := make([]float64, len(a.values))
		copy(out, a.values)
		return out, nil
	}
	if len(observed) == 0 {
		return nil, fmt.Errorf("Resolve: %w", ErrNoObservations)
	}

	sorted := make([]float64, len(observed))
	copy(sorted, observed)
	sort.Float64s(sorted)

	out := make([]float64, a.resolution)
	switch a.spacing {
	case Percentile:
		ps := percentiles(a.resolution, a.window)
		for k, p := range ps {
			out[k] = stat.Quantile(p, stat.LinInterp, sorted, nil)
		}
	default:
		lo := stat.Quantile(a.window.Lo, stat.LinInterp, sorted, nil)
		hi := stat.Quantile(a.window.Hi, stat.LinInterp, sorted, nil)
		floats.Span(out, lo, hi)
		out[len(out)-1] = hi
	}
	return out, nil
}

// percentiles returns n equally spaced probabilities covering w, endpoints exact.
func percentiles(n int, w Range) []float64 {
	ps := floats.Span(make([]float64, n), w.Lo, w.Hi)
	for k := range ps {
		ps[k] = math.Min(math.Max(ps[k], w.Lo), w.Hi) // keep float drift inside [0,1]
	}
	ps[0], ps[n-1] = w.Lo, w.Hi
	return ps
}
