
// Package pdp computes partial dependence: the marginal effect of one or
// two features on the output of an opaque predictor.
//
// For every grid point the engine takes the (optionally subsampled) rows of
// a dataset.Dataset, overwrites the swept feature columns with the point's
// values, calls the predictor and averages its output over the rows:
//
//	pd(v) = 1/n · Σᵢ f(x_i with x_S := v)
//
// Grids are either supplied per feature (WithGrid) or built from the
// feature's empirical distribution inside a percentile window
// (WithGridResolution, WithGridRange, WithGridSpacing).
//
// The output rank of the predictor is detected from its first call: a
// mat.Vector yields a single "mean" column, an r×k matrix yields one column
// per class. The result Table lists, in order, the statistic columns, the
// optional "sd_*" columns (WithStdDev), "grid_id", and the swept values.
//
// Evaluation is synchronous by default. WithWorkers(n) spreads grid points
// over n goroutines; results are identical to the sequential run because
// each point writes its own slot.
//
// Every validation error is reported before the predictor is called; see
// errors.go for the sentinels, all matchable with errors.Is.
package pdp
