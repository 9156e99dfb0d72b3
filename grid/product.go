// SPDX-License-Identifier: MIT
// Package: lvinterpret/grid
//
// product.go - cartesian enumeration of resolved axes.

package grid

import "fmt"

// Point is one grid location: one value per swept feature, in axis order.
type Point []float64

// Product enumerates every combination of the given axes. The first axis
// is the outer loop and the last axis varies fastest, so for axes
// [a0 a1] × [b0 b1] the order is (a0,b0) (a0,b1) (a1,b0) (a1,b1).
//
// Errors: ErrNoAxes, ErrEmptyGrid for an empty axis.
// Complexity: O(Π len(axis) · len(axes)).
func Product(axes ...[]float64) ([]Point, error) {
	if len(axes) == 0 {
		return nil, fmt.Errorf("Product: %w", ErrNoAxes)
	}
	total := 1
	for i, ax := range axes {
		if len(ax) == 0 {
			return nil, fmt.Errorf("Product: axis %d: %w", i, ErrEmptyGrid)
		}
		total *= len(ax)
	}

	d := len(axes)
	points := make([]Point, total)
	flat := make([]float64, total*d) // one backing array for every point
	counter := make([]int, d)
	var j int
	for k := 0; k < total; k++ {
		p := Point(flat[k*d : (k+1)*d : (k+1)*d])
		for j = 0; j < d; j++ {
			p[j] = axes[j][counter[j]]
		}
		points[k] = p

		// odometer increment, last axis fastest
		for j = d - 1; j >= 0; j-- {
			counter[j]++
			if counter[j] < len(axes[j]) {
				break
			}
			counter[j] = 0
		}
	}
	return points, nil
}
