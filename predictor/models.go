// SPDX-License-Identifier: MIT
// Package: lvinterpret/predictor
//
// models.go - closed-form reference models with fixed coefficients.
//
// Linear   y = X·β + b                      → vector
// Logistic p = σ(X·β + b), output [1-p, p]   → matrix(2)
// Softmax  p = softmax(X·Wᵀ + b)            → matrix(k)
//
// All three are safe for concurrent use (they never mutate themselves).

package predictor

import (
	"fmt"
	"math"
	"strconv"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Linear is y = X·Coef + Intercept.
type Linear struct {
	Coef      []float64
	Intercept float64
}

// Predict implements Predictor with a 1-D output.
func (m Linear) Predict(X mat.Matrix) (mat.Matrix, error) {
	return affine(X, m.Coef, m.Intercept)
}

// affine returns X·coef + b as a VecDense.
func affine(X mat.Matrix, coef []float64, b float64) (*mat.VecDense, error) {
	if len(coef) == 0 {
		return nil, ErrNoCoefficients
	}
	r, c := X.Dims()
	if c != len(coef) {
		return nil, fmt.Errorf("%d columns for %d coefficients: %w", c, len(coef), ErrFeatureMismatch)
	}
	beta := mat.NewVecDense(len(coef), append([]float64(nil), coef...))
	out := mat.NewVecDense(r, nil)
	out.MulVec(X, beta)
	floats.AddConst(b, out.RawVector().Data)
	return out, nil
}

// sigmoid is the logistic function, stable for large |z|.
func sigmoid(z float64) float64 {
	if z >= 0 {
		return 1 / (1 + math.Exp(-z))
	}
	e := math.Exp(z)
	return e / (1 + e)
}

// Logistic is a binary logistic model p(y=1|x) = σ(x·Coef + Intercept).
// ClassNames names the negative and positive class; empty means "0", "1".
type Logistic struct {
	Coef       []float64
	Intercept  float64
	ClassNames []string
}

// Classes implements Classifier.
func (m Logistic) Classes() []string {
	if len(m.ClassNames) == 2 {
		return []string{m.ClassNames[0], m.ClassNames[1]}
	}
	return []string{"0", "1"}
}

// Decision returns the raw score x·Coef + Intercept per row.
func (m Logistic) Decision(X mat.Matrix) (mat.Matrix, error) {
	return affine(X, m.Coef, m.Intercept)
}

// Predict implements Predictor with an r×2 output of [1-p, p] (predict_proba).
func (m Logistic) Predict(X mat.Matrix) (mat.Matrix, error) {
	z, err := affine(X, m.Coef, m.Intercept)
	if err != nil {
		return nil, err
	}
	n := z.Len()
	out := mat.NewDense(n, 2, nil)
	for i := 0; i < n; i++ {
		p := sigmoid(z.AtVec(i))
		out.Set(i, 0, 1-p)
		out.Set(i, 1, p)
	}
	return out, nil
}

// ClassIndex returns a 1-D predictor of hard 0/1 decisions (p >= 0.5);
// averaging it gives the positive rate.
func (m Logistic) ClassIndex() Predictor {
	return Func(func(X mat.Matrix) (mat.Matrix, error) {
		z, err := affine(X, m.Coef, m.Intercept)
		if err != nil {
			return nil, err
		}
		for i, v := range z.RawVector().Data {
			if v >= 0 {
				z.SetVec(i, 1)
			} else {
				z.SetVec(i, 0)
			}
		}
		return z, nil
	})
}

// Labels returns a Classifier that predicts string class labels.
func (m Logistic) Labels() Classifier {
	classes := m.Classes()
	c, err := FromLabels(classes, func(X mat.Matrix) ([]string, error) {
		z, err := affine(X, m.Coef, m.Intercept)
		if err != nil {
			return nil, err
		}
		out := make([]string, z.Len())
		for i, v := range z.RawVector().Data {
			out[i] = classes[boolIndex(v >= 0)]
		}
		return out, nil
	})
	if err != nil {
		// only reachable with duplicate ClassNames
		return errClassifier{err: err, classes: classes}
	}
	return c
}

// Softmax is a multinomial model p = softmax(x·Weightsᵀ + Intercepts).
// Weights is k×c (one row per class); Intercepts has length k or is nil.
type Softmax struct {
	Weights    *mat.Dense
	Intercepts []float64
	ClassNames []string
}

// Classes implements Classifier.
func (m Softmax) Classes() []string {
	if m.Weights == nil {
		return nil
	}
	k, _ := m.Weights.Dims()
	if len(m.ClassNames) == k {
		return append([]string(nil), m.ClassNames...)
	}
	out := make([]string, k)
	for i := range out {
		out[i] = strconv.Itoa(i)
	}
	return out
}

// Predict implements Predictor with an r×k probability output.
func (m Softmax) Predict(X mat.Matrix) (mat.Matrix, error) {
	if m.Weights == nil {
		return nil, ErrNoCoefficients
	}
	k, c := m.Weights.Dims()
	r, xc := X.Dims()
	if xc != c {
		return nil, fmt.Errorf("%d columns for %d weights: %w", xc, c, ErrFeatureMismatch)
	}
	if m.Intercepts != nil && len(m.Intercepts) != k {
		return nil, fmt.Errorf("%d intercepts for %d classes: %w", len(m.Intercepts), k, ErrClassCount)
	}

	out := mat.NewDense(r, k, nil)
	out.Mul(X, m.Weights.T())
	for i := 0; i < r; i++ {
		row := out.RawRowView(i)
		if m.Intercepts != nil {
			floats.Add(row, m.Intercepts)
		}
		hi := floats.Max(row)
		floats.AddConst(-hi, row)
		for j := range row {
			row[j] = math.Exp(row[j])
		}
		floats.Scale(1/floats.Sum(row), row)
	}
	return out, nil
}

// Labels returns a Classifier that predicts the argmax class label.
func (m Softmax) Labels() Classifier {
	classes := m.Classes()
	c, err := FromLabels(classes, func(X mat.Matrix) ([]string, error) {
		p, err := m.Predict(X)
		if err != nil {
			return nil, err
		}
		d := p.(*mat.Dense)
		r, _ := d.Dims()
		out := make([]string, r)
		for i := 0; i < r; i++ {
			out[i] = classes[floats.MaxIdx(d.RawRowView(i))]
		}
		return out, nil
	})
	if err != nil {
		return errClassifier{err: err, classes: classes}
	}
	return c
}

// errClassifier reports a construction error on every call.
type errClassifier struct {
	err     error
	classes []string
}

func (e errClassifier) Predict(mat.Matrix) (mat.Matrix, error) { return nil, e.err }
func (e errClassifier) Classes() []string                      { return e.classes }

func boolIndex(b bool) int {
	if b {
		return 1
	}
	return 0
}
