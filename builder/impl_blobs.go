// SPDX-License-Identifier: MIT
// Package: lvinterpret/builder
//
// impl_blobs.go - isotropic Gaussian clusters with integer labels.

package builder

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Blobs draws perCenter points around each center with stdev sigma
// (WithSigma, default 1). Rows are grouped by center in center order;
// labels[i] is the index of the center row i was drawn around.
//
// Errors: ErrEmptyCenters, ErrDimMismatch (ragged or empty centers),
// ErrTooFewSamples (perCenter < 1), ErrNeedRandSource.
// Complexity: O(len(centers)·perCenter·d).
func Blobs(centers [][]float64, perCenter int, opts ...BuilderOption) (*mat.Dense, []int, error) {
	if len(centers) == 0 {
		return nil, nil, fmt.Errorf("%s: %w", MethodBlobs, ErrEmptyCenters)
	}
	d := len(centers[0])
	if d < MinFeatures {
		return nil, nil, fmt.Errorf("%s: empty center: %w", MethodBlobs, ErrDimMismatch)
	}
	for i, c := range centers {
		if len(c) != d {
			return nil, nil, fmt.Errorf("%s: center %d has %d coordinates, want %d: %w", MethodBlobs, i, len(c), d, ErrDimMismatch)
		}
	}
	if perCenter < MinSamples {
		return nil, nil, fmt.Errorf("%s: perCenter=%d: %w", MethodBlobs, perCenter, ErrTooFewSamples)
	}
	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil {
		return nil, nil, fmt.Errorf("%s: %w", MethodBlobs, ErrNeedRandSource)
	}

	noise := distuv.Normal{Mu: 0, Sigma: cfg.sigma, Src: cfg.rng}
	n := len(centers) * perCenter
	X := mat.NewDense(n, d, nil)
	labels := make([]int, n)
	row := 0
	for k, c := range centers {
		for s := 0; s < perCenter; s++ {
			for j, mu := range c {
				X.Set(row, j, mu+noise.Rand())
			}
			labels[row] = k
			row++
		}
	}
	return X, labels, nil
}
