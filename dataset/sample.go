// SPDX-License-Identifier: MIT
// Package: lvinterpret/dataset
//
// sample.go - row selection and uniform subsampling.

package dataset

import (
	"fmt"
	"math/rand/v2"
	"sort"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/sampleuv"
)

// Rows returns a copy of the rows listed in idx, in the order given.
// Errors: ErrEmpty for an empty idx, ErrOutOfRange for a bad index.
// Complexity: O(len(idx)·c).
func (d *Dataset) Rows(idx []int) (*mat.Dense, error) {
	if len(idx) == 0 {
		return nil, fmt.Errorf("Rows: %w", ErrEmpty)
	}
	r, c := d.x.Dims()
	out := mat.NewDense(len(idx), c, nil)
	for k, i := range idx {
		if i < 0 || i >= r {
			return nil, fmt.Errorf("Rows: index %d: %w", i, ErrOutOfRange)
		}
		copy(out.RawRowView(k), d.x.RawRowView(i))
	}
	return out, nil
}

// Sample draws n distinct rows uniformly at random and returns them in
// ascending row order. When n >= Len() every row is returned. A nil src
// falls back to the global math/rand/v2 source (non-deterministic).
//
// Errors: ErrInvalidSampleSize when n < 1.
// Complexity: O(n·c) time, O(n) extra for the index draw.
func (d *Dataset) Sample(n int, src rand.Source) (*mat.Dense, error) {
	if n < 1 {
		return nil, fmt.Errorf("Sample(%d): %w", n, ErrInvalidSampleSize)
	}
	r := d.Len()
	if n >= r {
		return d.Matrix(), nil
	}

	idx := make([]int, n)
	sampleuv.WithoutReplacement(idx, r, src)
	sort.Ints(idx)

	return d.Rows(idx)
}
