// SPDX-License-Identifier: MIT
// Package: lvinterpret/builder
//
// impl_targets.go - regression targets with known structure.
//
// LinearTarget:  y = X·coef + intercept (+ N(0, noise²))
// Friedman1:     x ~ U[0,1)^10,
//                y = 10·sin(π·x0·x1) + 20·(x2-0.5)² + 10·x3 + 5·x4 (+ N(0, noise²))
// Only the first five Friedman columns are informative, so the partial
// dependence of x5..x9 is flat.

package builder

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// LinearTarget returns X·coef + intercept, plus Gaussian noise when
// WithNoise(σ>0) is set (which then requires an RNG).
//
// Errors: ErrDimMismatch when len(coef) differs from the width of X,
// ErrNeedRandSource for noise without an RNG.
func LinearTarget(X mat.Matrix, coef []float64, intercept float64, opts ...BuilderOption) ([]float64, error) {
	r, c := X.Dims()
	if len(coef) != c {
		return nil, fmt.Errorf("%s: %d coefficients for %d columns: %w", MethodLinearTarget, len(coef), c, ErrDimMismatch)
	}
	cfg := newBuilderConfig(opts...)
	if cfg.noise > 0 && cfg.rng == nil {
		return nil, fmt.Errorf("%s: noise: %w", MethodLinearTarget, ErrNeedRandSource)
	}

	y := mat.NewVecDense(r, nil)
	y.MulVec(X, mat.NewVecDense(c, append([]float64(nil), coef...)))
	out := y.RawVector().Data
	for i := range out {
		out[i] += intercept
	}
	addNoise(out, cfg)
	return out, nil
}

// Friedman1 returns the n×10 Friedman #1 design matrix and its target.
func Friedman1(n int, opts ...BuilderOption) (*mat.Dense, []float64, error) {
	cfg := newBuilderConfig(opts...)
	X, err := buildUniform(n, Friedman1Features, 0, 1, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", MethodFriedman1, err)
	}
	y := make([]float64, n)
	for i := range y {
		y[i] = Friedman1Value(X.RawRowView(i))
	}
	addNoise(y, cfg)
	return X, y, nil
}

// Friedman1Value is the noiseless Friedman #1 target of one row; only x[0:5]
// are read. Panics if len(x) < 5.
func Friedman1Value(x []float64) float64 {
	x = x[:friedman1Active]
	return 10*math.Sin(math.Pi*x[0]*x[1]) + 20*(x[2]-0.5)*(x[2]-0.5) + 10*x[3] + 5*x[4]
}

// addNoise adds N(0, cfg.noise²) to every entry of y; no-op when noise is 0.
func addNoise(y []float64, cfg builderConfig) {
	if cfg.noise == 0 {
		return
	}
	d := distuv.Normal{Mu: 0, Sigma: cfg.noise, Src: cfg.rng}
	for i := range y {
		y[i] += d.Rand()
	}
}
