// Package builder provides deterministic synthetic datasets for tests,
// examples and the pdpctl command: feature matrices drawn from seeded
// distributions, labelled Gaussian blobs and regression targets with a
// known structure.
//
// Design:
//   - One orchestrator, BuildDataset(n, bopts, cons...), stacks the column
//     blocks produced by each Constructor (Gaussian, Uniform, Categorical)
//     left to right and names the columns with the configured ID scheme.
//   - Functional options (BuilderOption) resolve into an immutable
//     builderConfig; option constructors panic on meaningless values.
//   - Randomness is explicit: every stochastic builder requires WithSeed or
//     WithRand and returns ErrNeedRandSource otherwise.
//   - Same options, seed and constructor order ⇒ identical data.
//
// Usage:
//
//	ds, err := builder.BuildDataset(500,
//	    []builder.BuilderOption{builder.WithSeed(42), builder.WithSymbNumb("x")},
//	    builder.Gaussian(3),
//	    builder.Uniform(1, 0, 10),
//	)
//	// ds.Names() == ["x0" "x1" "x2" "x3"]
//
// Targets with a known partial dependence:
//
//	y, err := builder.LinearTarget(ds.Matrix(), []float64{-10.1, 2.2, 6.1, 0}, 0)
//	X, y, err := builder.Friedman1(1000, builder.WithSeed(1))
package builder
