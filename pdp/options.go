// SPDX-License-Identifier: MIT
// Package: lvinterpret/pdp
//
// options.go - functional options for Engine construction and Compute calls.
//
// Contract:
//   - Option constructors panic only on programmer errors (nil functions,
//     non-positive worker counts).
//   - Data-dependent values (grid range, resolution, sample size, user
//     grids) are validated by Compute and reported as sentinel errors, so a
//     malformed range is an error value, never a panic.
//   - Later options override earlier ones.

package pdp

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvinterpret/grid"
)

// Defaults (single source of truth).
const (
	// DefaultResolution is the auto grid size per swept feature.
	DefaultResolution = grid.DefaultResolution

	// DefaultSampleSize is the row budget when sampling is enabled.
	DefaultSampleSize = 1000

	// DefaultWorkers evaluates grid points on the calling goroutine.
	DefaultWorkers = 1

	// MeanColumn names the statistic column of single-output predictors.
	MeanColumn = "mean"

	// GridIDColumn names the integer grid-point identifier column.
	GridIDColumn = "grid_id"

	// StdDevPrefix prefixes the optional standard deviation columns.
	StdDevPrefix = "sd_"

	// ColumnPrefix prefixes swept feature columns under the default formatter.
	ColumnPrefix = "val_"
)

// DefaultColumnName formats a swept feature column as "val_<name>".
func DefaultColumnName(name string) string {
	return ColumnPrefix + name
}

// Option configures a single Compute call.
type Option func(*config)

// config is the resolved per-call configuration.
type config struct {
	grids      map[string][]float64
	resolution int
	window     grid.Range
	spacing    grid.Spacing
	sample     bool
	sampleSize int
	seed       uint64
	formatter  func(string) string
	classNames []string
	stdDev     bool
	workers    int
}

// newConfig applies opts over the documented defaults.
func newConfig(opts ...Option) config {
	cfg := config{
		resolution: DefaultResolution,
		window:     grid.DefaultRange,
		spacing:    grid.Uniform,
		sampleSize: DefaultSampleSize,
		formatter:  DefaultColumnName,
		workers:    DefaultWorkers,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithGrid supplies the grid of feature verbatim; the resolution is ignored
// for that feature. Values are copied.
func WithGrid(feature string, values []float64) Option {
	own := make([]float64, len(values))
	copy(own, values)
	return func(c *config) {
		if c.grids == nil {
			c.grids = make(map[string][]float64)
		}
		c.grids[feature] = own
	}
}

// WithGridResolution sets the number of auto grid points (>= 2).
func WithGridResolution(n int) Option {
	return func(c *config) { c.resolution = n }
}

// WithGridRange sets the percentile window (0 <= lo < hi <= 1).
func WithGridRange(lo, hi float64) Option {
	return func(c *config) { c.window = grid.Range{Lo: lo, Hi: hi} }
}

// WithGridSpacing selects uniform or percentile placement of auto points.
func WithGridSpacing(s grid.Spacing) Option {
	return func(c *config) { c.spacing = s }
}

// WithSample toggles averaging over a random row subsample.
func WithSample(on bool) Option {
	return func(c *config) { c.sample = on }
}

// WithSampleSize sets the subsample size used when sampling is on.
func WithSampleSize(n int) Option {
	return func(c *config) { c.sampleSize = n }
}

// WithSeed fixes the subsample draw.
func WithSeed(seed uint64) Option {
	return func(c *config) { c.seed = seed }
}

// WithColumnNameFormatter overrides DefaultColumnName. Panics on nil.
func WithColumnNameFormatter(fn func(string) string) Option {
	if fn == nil {
		panic("pdp: WithColumnNameFormatter(nil)")
	}
	return func(c *config) { c.formatter = fn }
}

// WithClassNames names the per-class columns of a 2-D predictor, in output
// column order. It takes precedence over predictor.Classifier.
func WithClassNames(names ...string) Option {
	own := append([]string(nil), names...)
	return func(c *config) { c.classNames = own }
}

// WithStdDev adds one population standard deviation column per statistic.
func WithStdDev() Option {
	return func(c *config) { c.stdDev = true }
}

// WithWorkers evaluates grid points on n goroutines. The predictor must be
// safe for concurrent use when n > 1. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("pdp: WithWorkers(n<1)")
	}
	return func(c *config) { c.workers = n }
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLogger routes engine diagnostics to l. Panics on nil.
func WithLogger(l logrus.FieldLogger) EngineOption {
	if l == nil {
		panic("pdp: WithLogger(nil)")
	}
	return func(e *Engine) { e.log = l }
}

// discardLogger is the default: diagnostics are dropped.
func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
