// SPDX-License-Identifier: MIT
// Package: lvinterpret/pdp
//
// evaluate.go - per-point evaluation and the worker pool.
//
// Each grid point k owns slots[k]; workers never share a slot or a scratch
// matrix, so the result order equals grid order without locks. Worker w
// handles points 1+w, 1+w+n, 1+w+2n, ... (point 0 is evaluated up front).

package pdp

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/lvinterpret/grid"
	"github.com/katalvlaran/lvinterpret/predictor"
)

// evaluator holds what every point evaluation shares (read-only after first).
type evaluator struct {
	base   *mat.Dense
	cols   []int
	p      predictor.Predictor
	stdDev bool
	shape  predictor.Shape
}

// first evaluates point pt on scratch and fixes the output shape.
func (ev *evaluator) first(scratch *mat.Dense, pt grid.Point) ([]float64, error) {
	out, rows, err := ev.predict(scratch, pt)
	if err != nil {
		return nil, err
	}
	shape, err := predictor.DetectShape(out, rows)
	if err != nil {
		return nil, err
	}
	ev.shape = shape
	return ev.reduce(out), nil
}

// next evaluates a later point and checks it against the detected shape.
func (ev *evaluator) next(scratch *mat.Dense, pt grid.Point) ([]float64, error) {
	out, rows, err := ev.predict(scratch, pt)
	if err != nil {
		return nil, err
	}
	shape, err := predictor.DetectShape(out, rows)
	if err != nil {
		return nil, err
	}
	if shape != ev.shape {
		return nil, fmt.Errorf("%s after %s: %w", shape, ev.shape, ErrShapeChanged)
	}
	return ev.reduce(out), nil
}

// predict overwrites the swept columns of scratch with pt and calls the predictor.
func (ev *evaluator) predict(scratch *mat.Dense, pt grid.Point) (mat.Matrix, int, error) {
	raw := scratch.RawMatrix()
	for f, j := range ev.cols {
		v := pt[f]
		for i := 0; i < raw.Rows; i++ {
			raw.Data[i*raw.Stride+j] = v
		}
	}
	out, err := ev.p.Predict(scratch)
	return out, raw.Rows, err
}

// reduce returns [means..., std-devs...] over the rows of out.
func (ev *evaluator) reduce(out mat.Matrix) []float64 {
	k := ev.shape.Outputs
	n := k
	if ev.stdDev {
		n = 2 * k
	}
	slot := make([]float64, n)
	var col []float64
	for j := 0; j < k; j++ {
		col = mat.Col(col, j, out)
		if ev.stdDev {
			slot[j], slot[k+j] = stat.PopMeanStdDev(col, nil)
		} else {
			slot[j] = stat.Mean(col, nil)
		}
	}
	return slot
}

// rest evaluates points[1:] with the given number of workers. scratch is
// the matrix point 0 ran on and is reused by the first worker.
func (ev *evaluator) rest(ctx context.Context, scratch *mat.Dense, points []grid.Point, slots [][]float64, workers int) error {
	if workers > len(points)-1 {
		workers = len(points) - 1
	}
	if workers <= 1 {
		return ev.stride(ctx, scratch, points, slots, 1, 1)
	}

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		buf := scratch
		if w > 0 {
			buf = mat.DenseCopyOf(ev.base)
		}
		start := 1 + w
		g.Go(func() error {
			return ev.stride(gctx, buf, points, slots, start, workers)
		})
	}
	if err := g.Wait(); err != nil {
		// a sibling failure cancels gctx; report the parent's cause when it is the parent
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	return nil
}

// stride evaluates points start, start+step, ... into their slots.
func (ev *evaluator) stride(ctx context.Context, scratch *mat.Dense, points []grid.Point, slots [][]float64, start, step int) error {
	for k := start; k < len(points); k += step {
		if err := ctx.Err(); err != nil {
			return err
		}
		slot, err := ev.next(scratch, points[k])
		if err != nil {
			return fmt.Errorf("point %d: %w", k, err)
		}
		slots[k] = slot
	}
	return nil
}
