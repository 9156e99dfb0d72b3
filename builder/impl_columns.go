// SPDX-License-Identifier: MIT
// Package: lvinterpret/builder
//
// impl_columns.go - Gaussian, Uniform and Categorical column blocks.
//
// All three fill a fresh n×dim matrix row-major from cfg.rng, so the draw
// order (row by row, column by column) is part of the determinism contract.

package builder

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// checkBlock validates the shared preconditions of column constructors.
func checkBlock(method string, n, dim int, cfg builderConfig) error {
	if n < MinSamples {
		return fmt.Errorf("%s: n=%d: %w", method, n, ErrTooFewSamples)
	}
	if dim < MinFeatures {
		return fmt.Errorf("%s: dim=%d: %w", method, dim, ErrTooFewFeatures)
	}
	if cfg.rng == nil {
		return fmt.Errorf("%s: %w", method, ErrNeedRandSource)
	}
	return nil
}

// fill draws every cell of an n×dim matrix from next.
func fill(n, dim int, next func() float64) *mat.Dense {
	data := make([]float64, n*dim)
	for i := range data {
		data[i] = next()
	}
	return mat.NewDense(n, dim, data)
}

func buildGaussian(n, dim int, cfg builderConfig) (*mat.Dense, error) {
	if err := checkBlock(MethodGaussian, n, dim, cfg); err != nil {
		return nil, err
	}
	d := distuv.Normal{Mu: cfg.mean, Sigma: cfg.sigma, Src: cfg.rng}
	return fill(n, dim, d.Rand), nil
}

func buildUniform(n, dim int, lo, hi float64, cfg builderConfig) (*mat.Dense, error) {
	if err := checkBlock(MethodUniform, n, dim, cfg); err != nil {
		return nil, err
	}
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) || lo >= hi {
		return nil, fmt.Errorf("%s: [%g,%g): %w", MethodUniform, lo, hi, ErrInvalidRange)
	}
	d := distuv.Uniform{Min: lo, Max: hi, Src: cfg.rng}
	return fill(n, dim, d.Rand), nil
}

func buildCategorical(n, dim, levels int, cfg builderConfig) (*mat.Dense, error) {
	if err := checkBlock(MethodCategorical, n, dim, cfg); err != nil {
		return nil, err
	}
	if levels < MinLevels {
		return nil, fmt.Errorf("%s: levels=%d: %w", MethodCategorical, levels, ErrTooFewFeatures)
	}
	return fill(n, dim, func() float64 { return float64(cfg.rng.IntN(levels)) }), nil
}
