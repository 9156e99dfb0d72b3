// SPDX-License-Identifier: MIT
// Package: lvinterpret/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only package-level sentinels are exposed; callers branch with errors.Is.
//   - Implementations attach context with %w (method prefix first).
//   - Builders never panic at runtime; panics are confined to option
//     constructors (WithX...).

package builder

import "errors"

// ErrTooFewSamples indicates a row count below MinSamples.
var ErrTooFewSamples = errors.New("builder: too few samples")

// ErrTooFewFeatures indicates a column count below MinFeatures, or a
// categorical feature with fewer than MinLevels levels.
var ErrTooFewFeatures = errors.New("builder: too few features")

// ErrEmptyCenters indicates Blobs was called without cluster centers.
var ErrEmptyCenters = errors.New("builder: no centers")

// ErrDimMismatch indicates ragged centers or coefficients that do not match
// the matrix width.
var ErrDimMismatch = errors.New("builder: dimension mismatch")

// ErrInvalidRange indicates a uniform range with lo >= hi or non-finite bounds.
var ErrInvalidRange = errors.New("builder: invalid range")

// ErrNeedRandSource indicates a stochastic builder without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or a block with the wrong
// number of rows.
var ErrConstructFailed = errors.New("builder: construction failed")
