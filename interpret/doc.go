// Package interpret is the entry point for model interpretation: it owns a
// logger and the loaded reference data, and exposes partial dependence over
// any predictor.Predictor.
//
// Usage:
//
//	in, err := interpret.New(interpret.WithLogLevel("debug"))
//	if err := in.LoadData(X, []string{"age", "income"}); err != nil { ... }
//	tbl, err := in.PartialDependence(ctx, []string{"age"}, model,
//	    pdp.WithGridResolution(50))
//
// The default log level is warning. LoadData may be called again to swap
// the data; calls already running keep the Dataset they started with.
package interpret
