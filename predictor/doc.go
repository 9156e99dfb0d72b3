// Package predictor defines the opaque model capability consumed by
// partial dependence: something that maps a feature matrix to predictions.
//
// The capability is a single method,
//
//	Predict(X mat.Matrix) (mat.Matrix, error)
//
// whose output rank is inspected at runtime rather than declared:
//
//   - an output implementing mat.Vector (e.g. *mat.VecDense) is 1-D: one
//     score per row (regression, decision function, numeric class label);
//   - any other r×k matrix is 2-D: one column per class (predict_proba).
//
// Adapters cover the common shapes of fitted models:
//
//	FromVector(fn)          []float64 per call          → 1-D
//	FromProba(classes, fn)  r×k probabilities           → 2-D, named columns
//	FromLabels(classes, fn) string label per row        → 2-D one-hot, so the
//	                                                       mean is a class frequency
//
// Linear, Logistic and Softmax are closed-form reference models with fixed
// coefficients. They are not fitted here; they exist so fixtures, examples
// and the CLI can describe a model without an external ML library.
package predictor
