// Package lvinterpret explains the behavior of already fitted models through
// partial dependence: the average prediction of a model as one or two
// features are swept over a grid while every other feature keeps its
// observed values.
//
// What is inside:
//
//	dataset/   - immutable feature matrix + unique feature names, row sampling
//	grid/      - percentile windows, auto and supplied grid axes, cartesian product
//	predictor/ - the opaque Predict capability, output-shape detection,
//	             adapters (vector, probabilities, string labels), reference models
//	pdp/       - the partial dependence engine and its result Table
//	interpret/ - Interpretation: logger + loaded data + explanations
//	builder/   - seeded synthetic datasets (Gaussian, uniform, categorical,
//	             blobs, Friedman #1)
//	config/    - YAML run configuration for pdpctl
//	cmd/pdpctl - command line front-end
//
// Quick example:
//
//	ds, _ := dataset.New(X, []string{"rooms", "age"})
//	engine, _ := pdp.New(ds)
//	tbl, err := engine.Compute(ctx, []string{"rooms"}, model,
//	    pdp.WithGridResolution(50), pdp.WithGridRange(0.05, 0.95))
//
// Models are never fitted here: anything with
// Predict(mat.Matrix) (mat.Matrix, error) can be explained.
//
//	go get github.com/katalvlaran/lvinterpret
package lvinterpret
