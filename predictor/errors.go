// SPDX-License-Identifier: MIT
// Package: lvinterpret/predictor
//
// errors.go - sentinel errors for predictor adapters and shape detection.

package predictor

import "errors"

var (
	// ErrNilFunc indicates an adapter built around a nil function.
	ErrNilFunc = errors.New("predictor: nil predict function")

	// ErrNilOutput indicates a predictor returned a nil matrix without an error.
	ErrNilOutput = errors.New("predictor: nil output")

	// ErrNoOutputs indicates an output with zero columns or zero rows.
	ErrNoOutputs = errors.New("predictor: empty output")

	// ErrRowMismatch indicates the output row count differs from the input row count.
	ErrRowMismatch = errors.New("predictor: output rows do not match input rows")

	// ErrClassCount indicates an output width that differs from the declared classes.
	ErrClassCount = errors.New("predictor: output width does not match class count")

	// ErrUnknownLabel indicates a label predictor emitted a label outside its classes.
	ErrUnknownLabel = errors.New("predictor: unknown class label")

	// ErrDuplicateClass indicates a repeated class name.
	ErrDuplicateClass = errors.New("predictor: duplicate class name")

	// ErrNoCoefficients indicates a reference model without coefficients.
	ErrNoCoefficients = errors.New("predictor: model has no coefficients")

	// ErrFeatureMismatch indicates X has a different column count than the model expects.
	ErrFeatureMismatch = errors.New("predictor: feature count mismatch")
)
