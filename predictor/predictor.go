// SPDX-License-Identifier: MIT
// Package: lvinterpret/predictor
//
// predictor.go - the Predictor capability and runtime shape detection.

package predictor

import (
	"fmt"
	"strconv"

	"gonum.org/v1/gonum/mat"
)

// Predictor evaluates a fitted model on the rows of X.
//
// Implementations must treat X as read-only and must not retain it after
// returning. Predictors shared across goroutines must be safe for
// concurrent use.
type Predictor interface {
	Predict(X mat.Matrix) (mat.Matrix, error)
}

// Classifier is a Predictor whose 2-D output columns are named classes,
// in output column order.
type Classifier interface {
	Predictor
	Classes() []string
}

// Func adapts an ordinary function to Predictor.
type Func func(X mat.Matrix) (mat.Matrix, error)

// Predict calls f(X).
func (f Func) Predict(X mat.Matrix) (mat.Matrix, error) {
	return f(X)
}

// Shape is the detected rank and width of a predictor output.
type Shape struct {
	Vector  bool // 1-D output (one score per row)
	Outputs int  // 1 for vectors, k for r×k matrices
}

// String implements fmt.Stringer.
func (s Shape) String() string {
	if s.Vector {
		return "vector"
	}
	return fmt.Sprintf("matrix(%d)", s.Outputs)
}

// DetectShape inspects out, produced for an input of rows rows.
//
// Errors: ErrNilOutput, ErrNoOutputs, ErrRowMismatch.
// Complexity: O(1).
func DetectShape(out mat.Matrix, rows int) (Shape, error) {
	if out == nil {
		return Shape{}, fmt.Errorf("DetectShape: %w", ErrNilOutput)
	}
	if v, ok := out.(mat.Vector); ok {
		if v.Len() != rows {
			return Shape{}, fmt.Errorf("DetectShape: %d values for %d rows: %w", v.Len(), rows, ErrRowMismatch)
		}
		return Shape{Vector: true, Outputs: 1}, nil
	}
	r, c := out.Dims()
	if c == 0 || r == 0 {
		return Shape{}, fmt.Errorf("DetectShape: %d×%d: %w", r, c, ErrNoOutputs)
	}
	if r != rows {
		return Shape{}, fmt.Errorf("DetectShape: %d rows for %d inputs: %w", r, rows, ErrRowMismatch)
	}
	return Shape{Outputs: c}, nil
}

// ClassNames returns the k column names for p: its Classes() when p is a
// Classifier declaring exactly k classes, else "0", "1", ..., "k-1".
func ClassNames(p Predictor, k int) []string {
	if c, ok := p.(Classifier); ok {
		if names := c.Classes(); len(names) == k {
			out := make([]string, k)
			copy(out, names)
			return out
		}
	}
	out := make([]string, k)
	for i := range out {
		out[i] = strconv.Itoa(i)
	}
	return out
}

// validateClasses rejects duplicate class names.
func validateClasses(classes []string) error {
	seen := make(map[string]struct{}, len(classes))
	for _, c := range classes {
		if _, ok := seen[c]; ok {
			return fmt.Errorf("class %q: %w", c, ErrDuplicateClass)
		}
		seen[c] = struct{}{}
	}
	return nil
}
