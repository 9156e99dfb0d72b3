// SPDX-License-Identifier: MIT
// Package: lvinterpret/dataset
//
// errors.go - sentinel errors for dataset construction and access.
//
// Error policy:
//   - Only package-level sentinels are exposed; callers branch with errors.Is.
//   - Context is attached with fmt.Errorf("Op: ...: %w", ErrX) at the call site.

package dataset

import "errors"

var (
	// ErrNilMatrix is returned when New receives a nil matrix.
	ErrNilMatrix = errors.New("dataset: nil matrix")

	// ErrEmpty indicates a matrix without rows or without columns.
	ErrEmpty = errors.New("dataset: matrix has no rows or columns")

	// ErrNameCount indicates len(names) differs from the number of columns.
	ErrNameCount = errors.New("dataset: feature name count does not match column count")

	// ErrEmptyName indicates a blank feature name.
	ErrEmptyName = errors.New("dataset: empty feature name")

	// ErrDuplicateName indicates two columns share a feature name.
	ErrDuplicateName = errors.New("dataset: duplicate feature name")

	// ErrNaNInf indicates a NaN or ±Inf cell; partial dependence needs finite data.
	ErrNaNInf = errors.New("dataset: NaN or Inf encountered")

	// ErrUnknownFeature indicates a feature name that is not part of the Dataset.
	ErrUnknownFeature = errors.New("dataset: unknown feature")

	// ErrOutOfRange indicates a row or column index outside the matrix.
	ErrOutOfRange = errors.New("dataset: index out of range")

	// ErrInvalidSampleSize indicates a sample size smaller than one row.
	ErrInvalidSampleSize = errors.New("dataset: sample size must be >= 1")
)
