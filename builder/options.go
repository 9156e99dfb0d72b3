// SPDX-License-Identifier: MIT
// Package: lvinterpret/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   - Option constructors VALIDATE and PANIC on meaningless inputs.
//     Builders themselves never panic.
//   - Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math/rand/v2"
)

// BuilderOption customizes a builder by mutating a builderConfig before
// any data is drawn.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the column naming function: idx -> name.
// Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a PCG-backed *rand.Rand from seed (deterministic).
func WithSeed(seed uint64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewPCG(seed, seed))
	}
}

// WithMean sets the location of Gaussian columns.
func WithMean(mu float64) BuilderOption {
	return func(c *builderConfig) {
		c.mean = mu
	}
}

// WithSigma sets the scale of Gaussian columns and the spread of blobs.
// Panics if sigma <= 0.
func WithSigma(sigma float64) BuilderOption {
	if sigma <= 0 {
		panic("builder: WithSigma(sigma<=0)")
	}
	return func(c *builderConfig) {
		c.sigma = sigma
	}
}

// WithNoise sets the stdev of additive Gaussian noise on targets.
// Panics if sigma < 0. Zero means noiseless.
func WithNoise(sigma float64) BuilderOption {
	if sigma < 0 {
		panic("builder: WithNoise(sigma<0)")
	}
	return func(c *builderConfig) {
		c.noise = sigma
	}
}
