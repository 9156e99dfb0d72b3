// SPDX-License-Identifier: MIT
// Package: lvinterpret/pdp
//
// errors.go - sentinel errors for partial dependence.
//
// Error classes:
//   - Validation (raised before any predictor call, no partial result):
//     ErrNilDataset, ErrNilPredictor, ErrFeatureCount, ErrDuplicateFeature,
//     ErrUnknownFeature, ErrGridFeature, ErrMalformedGridRange,
//     ErrInvalidResolution, ErrEmptyGrid, ErrNonFiniteGrid, ErrInvalidSampleSize.
//   - Output contract (raised while evaluating): ErrShapeChanged,
//     ErrClassNames, ErrDuplicateColumn, plus predictor.ErrRowMismatch etc.
//   - Predictor failures are returned wrapped with the grid point index;
//     errors.Is still matches the predictor's own error.
//
// Aliases re-export the lower-level sentinels so callers only import pdp.

package pdp

import (
	"errors"

	"github.com/katalvlaran/lvinterpret/dataset"
	"github.com/katalvlaran/lvinterpret/grid"
)

var (
	// ErrNilDataset indicates New was called without a Dataset.
	ErrNilDataset = errors.New("pdp: nil dataset")

	// ErrNilPredictor indicates Compute was called without a predictor.
	ErrNilPredictor = errors.New("pdp: nil predictor")

	// ErrFeatureCount indicates a sweep over other than one or two features.
	ErrFeatureCount = errors.New("pdp: one or two features required")

	// ErrDuplicateFeature indicates the same feature was requested twice.
	ErrDuplicateFeature = errors.New("pdp: duplicate feature")

	// ErrGridFeature indicates a user grid for a feature that is not swept.
	ErrGridFeature = errors.New("pdp: grid given for a feature that is not swept")

	// ErrInvalidSampleSize indicates sampling with a size below one row.
	ErrInvalidSampleSize = dataset.ErrInvalidSampleSize

	// ErrShapeChanged indicates the predictor output rank or width changed between grid points.
	ErrShapeChanged = errors.New("pdp: predictor output shape changed between calls")

	// ErrClassNames indicates WithClassNames does not match the predictor output width.
	ErrClassNames = errors.New("pdp: class name count does not match predictor outputs")

	// ErrDuplicateColumn indicates two result columns would share a name.
	ErrDuplicateColumn = errors.New("pdp: duplicate result column")

	// ErrUnknownColumn indicates a Table lookup by a missing column name.
	ErrUnknownColumn = errors.New("pdp: unknown column")

	// ErrOutOfRange indicates a Table row or column index outside the table.
	ErrOutOfRange = errors.New("pdp: index out of range")
)

// Re-exported sentinels.
var (
	// ErrUnknownFeature aliases dataset.ErrUnknownFeature.
	ErrUnknownFeature = dataset.ErrUnknownFeature

	// ErrMalformedGridRange aliases grid.ErrMalformedGridRange.
	ErrMalformedGridRange = grid.ErrMalformedGridRange

	// ErrInvalidResolution aliases grid.ErrInvalidResolution.
	ErrInvalidResolution = grid.ErrInvalidResolution

	// ErrEmptyGrid aliases grid.ErrEmptyGrid.
	ErrEmptyGrid = grid.ErrEmptyGrid

	// ErrNonFiniteGrid aliases grid.ErrNonFiniteGrid.
	ErrNonFiniteGrid = grid.ErrNonFiniteGrid
)
