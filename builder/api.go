// SPDX-License-Identifier: MIT
// Package: lvinterpret/builder
//
// api.go - public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildDataset(n, bopts, cons...). Resolves cfg, runs
//     cons in order, stacks their column blocks left to right.
//   - Public factories are declared here and implemented in impl_*.go.
//   - Determinism: same inputs, options, seed and constructor order ⇒
//     identical matrices.

package builder

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvinterpret/dataset"
)

// Constructor draws an n-row block of feature columns from the resolved
// builderConfig. Constructors validate early and return sentinel errors.
type Constructor func(n int, cfg builderConfig) (*mat.Dense, error)

// BuildMatrix resolves bopts and stacks the blocks of cons into one n×d
// matrix, d being the sum of block widths.
//
// Errors: ErrTooFewSamples, ErrConstructFailed (nil constructor, no
// constructors, wrong block height), plus constructor errors wrapped with
// "BuildMatrix: %w".
// Complexity: O(n·d) plus the cost of each constructor.
func BuildMatrix(n int, bopts []BuilderOption, cons ...Constructor) (*mat.Dense, error) {
	if n < MinSamples {
		return nil, fmt.Errorf("BuildMatrix: n=%d: %w", n, ErrTooFewSamples)
	}
	if len(cons) == 0 {
		return nil, fmt.Errorf("BuildMatrix: no constructors: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)

	blocks := make([]*mat.Dense, len(cons))
	width := 0
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildMatrix: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		b, err := fn(n, cfg)
		if err != nil {
			return nil, fmt.Errorf("BuildMatrix: %w", err)
		}
		if r, _ := b.Dims(); r != n {
			return nil, fmt.Errorf("BuildMatrix: block %d has %d rows, want %d: %w", i, r, n, ErrConstructFailed)
		}
		blocks[i] = b
		_, c := b.Dims()
		width += c
	}

	out := mat.NewDense(n, width, nil)
	col := 0
	for _, b := range blocks {
		_, c := b.Dims()
		out.Slice(0, n, col, col+c).(*mat.Dense).Copy(b)
		col += c
	}
	return out, nil
}

// BuildDataset is BuildMatrix followed by dataset.New, with columns named
// by the configured ID scheme.
func BuildDataset(n int, bopts []BuilderOption, cons ...Constructor) (*dataset.Dataset, error) {
	X, err := BuildMatrix(n, bopts, cons...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodBuildDataset, err)
	}
	_, d := X.Dims()
	ds, err := dataset.New(X, FeatureNames(d, bopts...))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodBuildDataset, err)
	}
	return ds, nil
}

// Gaussian returns a Constructor of dim iid normal columns with the
// configured mean and sigma. Requires an RNG.
func Gaussian(dim int) Constructor {
	return func(n int, cfg builderConfig) (*mat.Dense, error) {
		return buildGaussian(n, dim, cfg)
	}
}

// GaussianWith is Gaussian with an explicit location and scale for this
// block only, overriding WithMean/WithSigma. Panics if sigma <= 0.
func GaussianWith(dim int, mean, sigma float64) Constructor {
	if sigma <= 0 {
		panic("builder: GaussianWith(sigma<=0)")
	}
	return func(n int, cfg builderConfig) (*mat.Dense, error) {
		cfg.mean, cfg.sigma = mean, sigma
		return buildGaussian(n, dim, cfg)
	}
}

// Uniform returns a Constructor of dim iid columns uniform on [lo, hi).
// Requires an RNG.
func Uniform(dim int, lo, hi float64) Constructor {
	return func(n int, cfg builderConfig) (*mat.Dense, error) {
		return buildUniform(n, dim, lo, hi, cfg)
	}
}

// Categorical returns a Constructor of dim columns holding integer level
// codes 0..levels-1 drawn uniformly. Requires an RNG.
func Categorical(dim, levels int) Constructor {
	return func(n int, cfg builderConfig) (*mat.Dense, error) {
		return buildCategorical(n, dim, levels, cfg)
	}
}
