// SPDX-License-Identifier: MIT
// Package: lvinterpret/pdp
//
// engine.go - the partial dependence engine.
//
// Algorithm (Compute):
//  1. Validate features, predictor and options; no predictor call happens
//     before every check passed.
//  2. Resolve one grid axis per swept feature (user grid or auto grid).
//  3. Enumerate grid points: 1-D in grid order, 2-D as the cartesian
//     product with the first feature as the outer loop.
//  4. Pick the base rows: the full Dataset or a seeded random subsample.
//  5. Evaluate point 0 on the calling goroutine and detect the output
//     shape; build the result columns.
//  6. Evaluate the remaining points (optionally on a worker pool), each
//     into its own preallocated slot.
//  7. Assemble the Table in grid order.
//
// Complexity: O(P · (n·d + cost(predict))) for P grid points and n×d base rows.

package pdp

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvinterpret/dataset"
	"github.com/katalvlaran/lvinterpret/grid"
	"github.com/katalvlaran/lvinterpret/predictor"
)

// MaxFeatures is the largest number of features swept together.
const MaxFeatures = 2

// seedStream decorrelates the two PCG words derived from one user seed.
const seedStream = 0x9e3779b97f4a7c15

// Engine computes partial dependence over one read-only Dataset.
// An Engine is stateless between calls and safe for concurrent use.
type Engine struct {
	data *dataset.Dataset
	log  logrus.FieldLogger
}

// New returns an Engine bound to data.
func New(data *dataset.Dataset, opts ...EngineOption) (*Engine, error) {
	if data == nil {
		return nil, fmt.Errorf("New: %w", ErrNilDataset)
	}
	e := &Engine{data: data, log: discardLogger()}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Data returns the Dataset the engine marginalizes over.
func (e *Engine) Data() *dataset.Dataset {
	return e.data
}

// plan is the validated, data-resolved work of one Compute call.
type plan struct {
	features []string
	cols     []int        // dataset column per feature
	points   []grid.Point // grid order
}

// Compute returns the partial dependence of p on features (one or two
// Dataset feature names).
//
// Result columns, in order: the statistic columns ("mean" for a 1-D
// predictor, one column per class otherwise), the optional "sd_*" columns,
// "grid_id", then one swept value column per feature named by the column
// formatter ("val_<name>" by default). One row per grid point.
//
// Errors: see errors.go. Validation errors are returned before p is called.
func (e *Engine) Compute(ctx context.Context, features []string, p predictor.Predictor, opts ...Option) (*Table, error) {
	start := time.Now()
	cfg := newConfig(opts...)

	pl, err := e.plan(features, p, cfg)
	if err != nil {
		return nil, fmt.Errorf("Compute: %w", err)
	}

	base, err := e.baseRows(cfg)
	if err != nil {
		return nil, fmt.Errorf("Compute: %w", err)
	}
	rows, _ := base.Dims()

	log := e.log.WithFields(logrus.Fields{
		"features": pl.features,
		"points":   len(pl.points),
		"rows":     rows,
		"sampled":  cfg.sample,
		"workers":  cfg.workers,
	})
	log.Debug("partial dependence started")

	ev := &evaluator{base: base, cols: pl.cols, p: p, stdDev: cfg.stdDev}
	slots := make([][]float64, len(pl.points))

	// Point 0 fixes the output shape for the whole sweep.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	first := mat.DenseCopyOf(base)
	if slots[0], err = ev.first(first, pl.points[0]); err != nil {
		return nil, fmt.Errorf("Compute: point 0: %w", err)
	}
	log.WithField("shape", ev.shape.String()).Debug("predictor output detected")

	columns, err := e.columns(pl, p, ev.shape, cfg)
	if err != nil {
		return nil, fmt.Errorf("Compute: %w", err)
	}

	if err := ev.rest(ctx, first, pl.points, slots, cfg.workers); err != nil {
		return nil, fmt.Errorf("Compute: %w", err)
	}

	tbl, err := assemble(columns, pl.points, slots)
	if err != nil {
		return nil, fmt.Errorf("Compute: %w", err)
	}
	log.WithField("elapsed", time.Since(start)).Debug("partial dependence finished")
	return tbl, nil
}

// plan validates the request and resolves grids.
//
// Stage 1 (Validate request): predictor, feature count, duplicates, names.
// Stage 2 (Validate options): grid window, user grids, sample size, axes.
// Stage 3 (Resolve): per-feature grid values and the point enumeration.
func (e *Engine) plan(features []string, p predictor.Predictor, cfg config) (*plan, error) {
	if p == nil {
		return nil, ErrNilPredictor
	}
	if len(features) < 1 || len(features) > MaxFeatures {
		return nil, fmt.Errorf("%d features: %w", len(features), ErrFeatureCount)
	}

	cols := make([]int, len(features))
	seen := make(map[string]struct{}, len(features))
	for i, f := range features {
		if _, ok := seen[f]; ok {
			return nil, fmt.Errorf("%q: %w", f, ErrDuplicateFeature)
		}
		seen[f] = struct{}{}
		j, err := e.data.Index(f)
		if err != nil {
			return nil, err
		}
		cols[i] = j
	}

	if err := cfg.window.Validate(); err != nil {
		return nil, err
	}
	for f := range cfg.grids {
		if _, ok := seen[f]; !ok {
			return nil, fmt.Errorf("%q: %w", f, ErrGridFeature)
		}
	}
	if cfg.sample && cfg.sampleSize < 1 {
		return nil, fmt.Errorf("sample size %d: %w", cfg.sampleSize, ErrInvalidSampleSize)
	}

	axes := make([]grid.Axis, len(features))
	for i, f := range features {
		if values, ok := cfg.grids[f]; ok {
			axes[i] = grid.Supplied(values)
		} else {
			axes[i] = grid.Auto(cfg.resolution, cfg.window, cfg.spacing)
		}
		if err := axes[i].Validate(); err != nil {
			return nil, fmt.Errorf("feature %q: %w", f, err)
		}
	}

	resolved := make([][]float64, len(features))
	for i, ax := range axes {
		observed, err := e.data.Column(cols[i])
		if err != nil {
			return nil, err
		}
		if resolved[i], err = ax.Resolve(observed); err != nil {
			return nil, fmt.Errorf("feature %q: %w", features[i], err)
		}
	}
	points, err := grid.Product(resolved...)
	if err != nil {
		return nil, err
	}

	return &plan{
		features: append([]string(nil), features...),
		cols:     cols,
		points:   points,
	}, nil
}

// baseRows returns the rows every grid point is evaluated on.
func (e *Engine) baseRows(cfg config) (*mat.Dense, error) {
	if !cfg.sample {
		return e.data.Matrix(), nil
	}
	src := rand.NewPCG(cfg.seed, cfg.seed^seedStream)
	return e.data.Sample(cfg.sampleSize, src)
}

// columns names the result columns for the detected output shape.
func (e *Engine) columns(pl *plan, p predictor.Predictor, shape predictor.Shape, cfg config) ([]string, error) {
	var stats []string
	switch {
	case shape.Vector:
		stats = []string{MeanColumn}
	case cfg.classNames != nil:
		if len(cfg.classNames) != shape.Outputs {
			return nil, fmt.Errorf("%d names for %d outputs: %w", len(cfg.classNames), shape.Outputs, ErrClassNames)
		}
		stats = append([]string(nil), cfg.classNames...)
	default:
		stats = predictor.ClassNames(p, shape.Outputs)
	}

	columns := make([]string, 0, 2*len(stats)+1+len(pl.features))
	columns = append(columns, stats...)
	if cfg.stdDev {
		for _, s := range stats {
			columns = append(columns, StdDevPrefix+s)
		}
	}
	columns = append(columns, GridIDColumn)
	for _, f := range pl.features {
		columns = append(columns, cfg.formatter(f))
	}

	seen := make(map[string]struct{}, len(columns))
	for _, c := range columns {
		if _, ok := seen[c]; ok {
			return nil, fmt.Errorf("%q: %w", c, ErrDuplicateColumn)
		}
		seen[c] = struct{}{}
	}
	return columns, nil
}

// assemble lays out slots, grid ids and swept values row by row.
func assemble(columns []string, points []grid.Point, slots [][]float64) (*Table, error) {
	c := len(columns)
	data := make([]float64, len(points)*c)
	for k, pt := range points {
		row := data[k*c : (k+1)*c]
		n := copy(row, slots[k])
		row[n] = float64(k)
		copy(row[n+1:], pt)
	}
	return newTable(columns, mat.NewDense(len(points), c, data))
}
