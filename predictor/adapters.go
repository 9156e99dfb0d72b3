// SPDX-License-Identifier: MIT
// Package: lvinterpret/predictor
//
// adapters.go - wrap plain model functions into Predictor / Classifier.
//
// Contract:
//   - Constructors panic on a nil function (programmer error) and return an
//     error for data-dependent problems (duplicate classes).
//   - Predict never panics on model output; bad output becomes an error.

package predictor

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// FromVector adapts fn, which returns one score per row, into a 1-D Predictor.
// Panics if fn is nil.
func FromVector(fn func(X mat.Matrix) ([]float64, error)) Predictor {
	if fn == nil {
		panic(fmt.Errorf("FromVector: %w", ErrNilFunc))
	}
	return Func(func(X mat.Matrix) (mat.Matrix, error) {
		vals, err := fn(X)
		if err != nil {
			return nil, err
		}
		if len(vals) == 0 {
			return nil, fmt.Errorf("FromVector: %w", ErrNoOutputs)
		}
		return mat.NewVecDense(len(vals), vals), nil
	})
}

// probaPredictor names the columns of a probability function.
type probaPredictor struct {
	classes []string
	fn      Func
}

// FromProba adapts fn, which returns an r×k matrix of class scores, into a
// Classifier whose columns are named classes. Outputs whose width differs
// from len(classes) fail with ErrClassCount. Panics if fn is nil.
func FromProba(classes []string, fn Func) (Classifier, error) {
	if fn == nil {
		panic(fmt.Errorf("FromProba: %w", ErrNilFunc))
	}
	if len(classes) == 0 {
		return nil, fmt.Errorf("FromProba: %w", ErrNoOutputs)
	}
	if err := validateClasses(classes); err != nil {
		return nil, fmt.Errorf("FromProba: %w", err)
	}
	own := make([]string, len(classes))
	copy(own, classes)
	return &probaPredictor{classes: own, fn: fn}, nil
}

// Predict implements Predictor.
func (p *probaPredictor) Predict(X mat.Matrix) (mat.Matrix, error) {
	out, err := p.fn(X)
	if err != nil {
		return nil, err
	}
	if out == nil {
		return nil, fmt.Errorf("FromProba: %w", ErrNilOutput)
	}
	if _, c := out.Dims(); c != len(p.classes) {
		return nil, fmt.Errorf("FromProba: width %d for %d classes: %w", c, len(p.classes), ErrClassCount)
	}
	return out, nil
}

// Classes implements Classifier.
func (p *probaPredictor) Classes() []string {
	out := make([]string, len(p.classes))
	copy(out, p.classes)
	return out
}

// labelPredictor one-hot encodes string labels.
type labelPredictor struct {
	classes []string
	index   map[string]int
	fn      func(X mat.Matrix) ([]string, error)
}

// FromLabels adapts fn, which returns one class label per row, into a
// Classifier that emits an r×k one-hot matrix over classes. Averaging its
// output yields per-class frequencies. Labels outside classes fail with
// ErrUnknownLabel. Panics if fn is nil.
func FromLabels(classes []string, fn func(X mat.Matrix) ([]string, error)) (Classifier, error) {
	if fn == nil {
		panic(fmt.Errorf("FromLabels: %w", ErrNilFunc))
	}
	if len(classes) == 0 {
		return nil, fmt.Errorf("FromLabels: %w", ErrNoOutputs)
	}
	if err := validateClasses(classes); err != nil {
		return nil, fmt.Errorf("FromLabels: %w", err)
	}
	own := make([]string, len(classes))
	copy(own, classes)
	index := make(map[string]int, len(own))
	for i, c := range own {
		index[c] = i
	}
	return &labelPredictor{classes: own, index: index, fn: fn}, nil
}

// Predict implements Predictor.
func (p *labelPredictor) Predict(X mat.Matrix) (mat.Matrix, error) {
	labels, err := p.fn(X)
	if err != nil {
		return nil, err
	}
	if len(labels) == 0 {
		return nil, fmt.Errorf("FromLabels: %w", ErrNoOutputs)
	}
	out := mat.NewDense(len(labels), len(p.classes), nil)
	for i, l := range labels {
		k, ok := p.index[l]
		if !ok {
			return nil, fmt.Errorf("FromLabels: row %d label %q: %w", i, l, ErrUnknownLabel)
		}
		out.Set(i, k, 1)
	}
	return out, nil
}

// Classes implements Classifier.
func (p *labelPredictor) Classes() []string {
	out := make([]string, len(p.classes))
	copy(out, p.classes)
	return out
}
