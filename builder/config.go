// SPDX-License-Identifier: MIT
// Package: lvinterpret/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   - idFn  = DefaultIDFn ("0","1","2",...)
//   - rng   = nil          (stochastic builders refuse to run unseeded)
//   - mean  = 0.0, sigma = 1.0 (Gaussian columns, blob spread)
//   - noise = 0.0          (targets are noiseless unless WithNoise)

package builder

import (
	"math/rand/v2"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Column name strategy: index -> name.
	idFn IDFn
	// RNG for stochastic draws; nil means "no randomness available".
	rng *rand.Rand

	mean  float64 // Gaussian location
	sigma float64 // Gaussian scale and blob spread, >0
	noise float64 // additive target noise stdev, >=0
}

// Deterministic defaults (named, no magic numbers).
const (
	defaultMean  = 0.0
	defaultSigma = 1.0
	defaultNoise = 0.0
)

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order (last wins).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:  DefaultIDFn,
		mean:  defaultMean,
		sigma: defaultSigma,
		noise: defaultNoise,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
