// Package grid builds the per-feature value grids that partial dependence
// sweeps over.
//
// A grid axis is a tagged variant resolved once per swept feature:
//
//   - Supplied(values) - an explicit, ordered list in the feature's native
//     units, used verbatim (no sorting, no deduplication).
//   - Auto(resolution, window, spacing) - resolution points generated from
//     the feature's empirical distribution, restricted to the percentile
//     window [Lo, Hi] ⊆ [0, 1].
//
// Percentile semantics:
//
//	Window bounds are percentiles of the observed values computed with
//	gonum stat.Quantile(p, stat.LinInterp, sorted, nil): piecewise-linear
//	interpolation of the empirical CDF, with p=0 giving the minimum and
//	p=1 the maximum.
//
//	Uniform spacing (default) places resolution equally spaced values
//	between the two window quantiles, endpoints included. Percentile
//	spacing places one value at each of resolution equally spaced
//	percentiles in the window, which follows the data density.
//
// Resolution larger than the number of distinct observed values still
// yields exactly resolution points; no approximation is applied.
//
// Multi-feature sweeps enumerate the cartesian product with Product, outer
// loop on the first axis and inner loop on the last.
package grid
