package pdp_test

import (
	"context"
	"errors"
	"math"
	"sync/atomic"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/lvinterpret/builder"
	"github.com/katalvlaran/lvinterpret/dataset"
	"github.com/katalvlaran/lvinterpret/grid"
	"github.com/katalvlaran/lvinterpret/pdp"
	"github.com/katalvlaran/lvinterpret/predictor"
)

// assertPanics fails the test if fn does not panic.
func assertPanics(t *testing.T, fn func(), name string) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("%s: expected panic, but none occurred", name)
		}
	}()
	fn()
}

// sampleEngine wraps the 6×2 two-cluster fixture; feature names "0" and "1".
func sampleEngine(t *testing.T) *pdp.Engine {
	t.Helper()
	X := mat.NewDense(6, 2, []float64{
		-2, -1,
		-1, -1,
		-1, -2,
		1, 1,
		1, 2,
		2, 1,
	})
	ds, err := dataset.New(X, []string{"0", "1"})
	require.NoError(t, err)
	e, err := pdp.New(ds)
	require.NoError(t, err)
	return e
}

// sumModel predicts x0 + x1; on the fixture mean(x1) == 0, so pd(v) == v for feature "0".
var sumModel = predictor.Linear{Coef: []float64{1, 1}}

// counting wraps p and counts Predict calls.
type counting struct {
	p     predictor.Predictor
	calls atomic.Int64
}

func (c *counting) Predict(X mat.Matrix) (mat.Matrix, error) {
	c.calls.Add(1)
	return c.p.Predict(X)
}

func TestNew_NilDataset(t *testing.T) {
	t.Parallel()
	e, err := pdp.New(nil)
	assert.ErrorIs(t, err, pdp.ErrNilDataset)
	assert.Nil(t, e)
}

// TestCompute_Defaults: 1-D predictor, default resolution ⇒ 100 rows × 3 columns.
func TestCompute_Defaults(t *testing.T) {
	t.Parallel()
	e := sampleEngine(t)

	tbl, err := e.Compute(context.Background(), []string{"0"}, sumModel)
	require.NoError(t, err)

	r, c := tbl.Dims()
	assert.Equal(t, 100, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, []string{pdp.MeanColumn, pdp.GridIDColumn, "val_0"}, tbl.Columns())

	vals, err := tbl.Column("val_0")
	require.NoError(t, err)
	assert.Equal(t, -2.0, vals[0])
	assert.Equal(t, 2.0, vals[99])

	ids, err := tbl.Column(pdp.GridIDColumn)
	require.NoError(t, err)
	for i, id := range ids {
		assert.Equal(t, float64(i), id)
	}
}

// TestCompute_SuppliedGrid: a user grid is used verbatim, one row per value.
func TestCompute_SuppliedGrid(t *testing.T) {
	t.Parallel()
	e := sampleEngine(t)
	g := []float64{-2, -1, 1, 2}

	tbl, err := e.Compute(context.Background(), []string{"0"}, sumModel, pdp.WithGrid("0", g))
	require.NoError(t, err)
	assert.Equal(t, 4, tbl.Len())

	vals, _ := tbl.Column("val_0")
	assert.Equal(t, g, vals)
	means, _ := tbl.Column(pdp.MeanColumn)
	assert.InDeltaSlice(t, g, means, 1e-12)
}

// TestCompute_Resolution: resolution is honored even above the unique value count.
func TestCompute_Resolution(t *testing.T) {
	t.Parallel()
	e := sampleEngine(t)

	for _, res := range []int{2, 5, 37} {
		tbl, err := e.Compute(context.Background(), []string{"1"}, sumModel, pdp.WithGridResolution(res))
		require.NoError(t, err)
		assert.Equal(t, res, tbl.Len(), "resolution %d", res)
	}
}

// TestCompute_Percentile places points on empirical quantiles.
func TestCompute_Percentile(t *testing.T) {
	t.Parallel()
	e := sampleEngine(t)

	tbl, err := e.Compute(context.Background(), []string{"0"}, sumModel,
		pdp.WithGridResolution(3), pdp.WithGridSpacing(grid.Percentile))
	require.NoError(t, err)
	vals, _ := tbl.Column("val_0")
	require.Len(t, vals, 3)
	assert.Equal(t, -2.0, vals[0])
	assert.Equal(t, 2.0, vals[2])
	assert.True(t, vals[0] <= vals[1] && vals[1] <= vals[2])
}

// TestCompute_Multiclass: 3 classes over a 1-D sweep of 25 points ⇒ 25×5,
// column 4 is the swept value column.
func TestCompute_Multiclass(t *testing.T) {
	t.Parallel()

	centers := [][]float64{
		{5.0, 3.4, 1.5, 0.2},
		{5.9, 2.8, 4.3, 1.3},
		{6.6, 3.0, 5.6, 2.0},
	}
	X, _, err := builder.Blobs(centers, 50, builder.WithSeed(11), builder.WithSigma(0.3))
	require.NoError(t, err)
	names := []string{"sepal length (cm)", "sepal width (cm)", "petal length (cm)", "petal width (cm)"}
	ds, err := dataset.New(X, names)
	require.NoError(t, err)
	e, err := pdp.New(ds)
	require.NoError(t, err)

	model := predictor.Softmax{
		Weights: mat.NewDense(3, 4, []float64{
			-0.4, 0.9, -2.3, -1.0,
			0.5, -0.3, -0.2, -0.8,
			-0.1, -0.6, 2.5, 1.8,
		}),
		ClassNames: []string{"setosa", "versicolor", "virginica"},
	}

	tbl, err := e.Compute(context.Background(), []string{"sepal length (cm)"}, model, pdp.WithGridResolution(25))
	require.NoError(t, err)

	r, c := tbl.Dims()
	assert.Equal(t, 25, r)
	assert.Equal(t, 5, c)
	cols := tbl.Columns()
	assert.Equal(t, "val_sepal length (cm)", cols[4])
	assert.Equal(t, []string{"setosa", "versicolor", "virginica", pdp.GridIDColumn}, cols[:4])

	for i := 0; i < r; i++ {
		row, err := tbl.Row(i)
		require.NoError(t, err)
		assert.InDelta(t, 1, floats.Sum(row[:3]), 1e-9)
	}
}

// TestCompute_RegressionSlope: the partial dependence of a fitted linear
// model recovers the generating coefficient.
func TestCompute_RegressionSlope(t *testing.T) {
	t.Parallel()

	B := []float64{-10.1, 2.2, 6.1}
	ds, err := builder.BuildDataset(1000, []builder.BuilderOption{builder.WithSeed(42)}, builder.Gaussian(len(B)))
	require.NoError(t, err)
	X := ds.Matrix()
	y, err := builder.LinearTarget(X, B, 0, builder.WithNoise(0.5), builder.WithSeed(43))
	require.NoError(t, err)

	var beta mat.VecDense
	require.NoError(t, beta.SolveVec(X, mat.NewVecDense(len(y), y)))
	model := predictor.Linear{Coef: beta.RawVector().Data}

	e, err := pdp.New(ds)
	require.NoError(t, err)
	tbl, err := e.Compute(context.Background(), []string{"0"}, model, pdp.WithSample(true))
	require.NoError(t, err)

	vals, _ := tbl.Column("val_0")
	means, _ := tbl.Column(pdp.MeanColumn)
	_, slope := stat.LinearRegression(vals, means, nil, false)
	assert.InDelta(t, B[0], slope, 1)
}

// TestCompute_MalformedGridRange: rejected before the predictor runs.
func TestCompute_MalformedGridRange(t *testing.T) {
	t.Parallel()
	e := sampleEngine(t)

	for _, w := range [][2]float64{{0.01, 1.01}, {-0.1, 0.5}, {0.5, 0.5}, {0.9, 0.1}, {math.NaN(), 1}} {
		p := &counting{p: sumModel}
		tbl, err := e.Compute(context.Background(), []string{"0"}, p, pdp.WithGridRange(w[0], w[1]))
		assert.ErrorIs(t, err, pdp.ErrMalformedGridRange, "range %v", w)
		assert.Nil(t, tbl)
		assert.Zero(t, p.calls.Load(), "range %v", w)
	}
}

// TestCompute_Validation: every request error is returned with no predictor call.
func TestCompute_Validation(t *testing.T) {
	t.Parallel()
	e := sampleEngine(t)

	tests := []struct {
		name     string
		features []string
		opts     []pdp.Option
		want     error
	}{
		{"noFeatures", nil, nil, pdp.ErrFeatureCount},
		{"threeFeatures", []string{"0", "1", "0"}, nil, pdp.ErrFeatureCount},
		{"duplicate", []string{"0", "0"}, nil, pdp.ErrDuplicateFeature},
		{"unknown", []string{"age"}, nil, pdp.ErrUnknownFeature},
		{"resolution", []string{"0"}, []pdp.Option{pdp.WithGridResolution(1)}, pdp.ErrInvalidResolution},
		{"emptyGrid", []string{"0"}, []pdp.Option{pdp.WithGrid("0", nil)}, pdp.ErrEmptyGrid},
		{"nanGrid", []string{"0"}, []pdp.Option{pdp.WithGrid("0", []float64{1, math.NaN()})}, pdp.ErrNonFiniteGrid},
		{"gridForOther", []string{"0"}, []pdp.Option{pdp.WithGrid("1", []float64{1})}, pdp.ErrGridFeature},
		{"sampleSize", []string{"0"}, []pdp.Option{pdp.WithSample(true), pdp.WithSampleSize(0)}, pdp.ErrInvalidSampleSize},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			p := &counting{p: sumModel}
			tbl, err := e.Compute(context.Background(), tc.features, p, tc.opts...)
			assert.ErrorIs(t, err, tc.want)
			assert.Nil(t, tbl)
			assert.Zero(t, p.calls.Load())
		})
	}

	_, err := e.Compute(context.Background(), []string{"0"}, nil)
	assert.ErrorIs(t, err, pdp.ErrNilPredictor)
}

// TestCompute_TwoFeatures: cross product with the first feature as the outer loop.
func TestCompute_TwoFeatures(t *testing.T) {
	t.Parallel()
	e := sampleEngine(t)

	tbl, err := e.Compute(context.Background(), []string{"0", "1"}, sumModel, pdp.WithGridResolution(10))
	require.NoError(t, err)
	r, c := tbl.Dims()
	assert.Equal(t, 100, r)
	assert.Equal(t, []string{pdp.MeanColumn, pdp.GridIDColumn, "val_0", "val_1"}, tbl.Columns())
	assert.Equal(t, 4, c)

	v0, _ := tbl.Column("val_0")
	v1, _ := tbl.Column("val_1")
	means, _ := tbl.Column(pdp.MeanColumn)
	for i := 0; i < 10; i++ {
		assert.Equal(t, v0[0], v0[i])
	}
	assert.NotEqual(t, v1[0], v1[1])
	for i := range means {
		assert.InDelta(t, v0[i]+v1[i], means[i], 1e-12)
	}
}

// TestCompute_Classifiers covers hard labels, probabilities and string labels.
func TestCompute_Classifiers(t *testing.T) {
	t.Parallel()
	e := sampleEngine(t)
	logit := predictor.Logistic{Coef: []float64{2, 2}, ClassNames: []string{"neg", "pos"}}

	tests := []struct {
		name string
		p    predictor.Predictor
		cols []string
	}{
		{"classIndex", logit.ClassIndex(), []string{pdp.MeanColumn, pdp.GridIDColumn, "val_0"}},
		{"proba", logit, []string{"neg", "pos", pdp.GridIDColumn, "val_0"}},
		{"labels", logit.Labels(), []string{"neg", "pos", pdp.GridIDColumn, "val_0"}},
		{"anonymous", predictor.Func(logit.Predict), []string{"0", "1", pdp.GridIDColumn, "val_0"}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			tbl, err := e.Compute(context.Background(), []string{"0"}, tc.p, pdp.WithGridResolution(7))
			require.NoError(t, err)
			assert.Equal(t, tc.cols, tbl.Columns())
			assert.Equal(t, 7, tbl.Len())
		})
	}

	// label frequencies sum to one and the positive rate grows with x0
	tbl, err := e.Compute(context.Background(), []string{"0"}, logit.Labels(), pdp.WithGrid("0", []float64{-5, 5}))
	require.NoError(t, err)
	pos, _ := tbl.Column("pos")
	neg, _ := tbl.Column("neg")
	assert.Equal(t, []float64{0, 1}, pos)
	assert.Equal(t, []float64{1, 0}, neg)
}

// TestCompute_ClassNames: explicit names override the predictor and are checked.
func TestCompute_ClassNames(t *testing.T) {
	t.Parallel()
	e := sampleEngine(t)
	logit := predictor.Logistic{Coef: []float64{1, 1}}

	tbl, err := e.Compute(context.Background(), []string{"0"}, logit, pdp.WithClassNames("no", "yes"))
	require.NoError(t, err)
	assert.Equal(t, []string{"no", "yes"}, tbl.Columns()[:2])

	_, err = e.Compute(context.Background(), []string{"0"}, logit, pdp.WithClassNames("a", "b", "c"))
	assert.ErrorIs(t, err, pdp.ErrClassNames)
}

// TestCompute_ColumnFormatter: custom names, collisions rejected.
func TestCompute_ColumnFormatter(t *testing.T) {
	t.Parallel()
	e := sampleEngine(t)

	tbl, err := e.Compute(context.Background(), []string{"0", "1"}, sumModel,
		pdp.WithGridResolution(2),
		pdp.WithColumnNameFormatter(func(s string) string { return "feature_" + s }))
	require.NoError(t, err)
	assert.Equal(t, []string{pdp.MeanColumn, pdp.GridIDColumn, "feature_0", "feature_1"}, tbl.Columns())

	_, err = e.Compute(context.Background(), []string{"0"}, sumModel,
		pdp.WithColumnNameFormatter(func(string) string { return pdp.MeanColumn }))
	assert.ErrorIs(t, err, pdp.ErrDuplicateColumn)
}

// TestCompute_StdDev: population spread of predictions over rows.
func TestCompute_StdDev(t *testing.T) {
	t.Parallel()
	e := sampleEngine(t)

	tbl, err := e.Compute(context.Background(), []string{"0"}, sumModel,
		pdp.WithGrid("0", []float64{0, 1}), pdp.WithStdDev())
	require.NoError(t, err)
	assert.Equal(t, []string{pdp.MeanColumn, "sd_mean", pdp.GridIDColumn, "val_0"}, tbl.Columns())

	// with x0 fixed the spread is that of x1 = {-1,-1,-2,1,2,1}
	_, want := stat.PopMeanStdDev([]float64{-1, -1, -2, 1, 2, 1}, nil)
	sd, _ := tbl.Column("sd_mean")
	assert.InDeltaSlice(t, []float64{want, want}, sd, 1e-12)
}

// TestCompute_Sampling: equal seeds give equal tables; the sample bounds the rows seen.
func TestCompute_Sampling(t *testing.T) {
	t.Parallel()

	ds, err := builder.BuildDataset(500, []builder.BuilderOption{builder.WithSeed(3)}, builder.Gaussian(2))
	require.NoError(t, err)
	e, err := pdp.New(ds)
	require.NoError(t, err)

	var rows atomic.Int64
	p := predictor.Func(func(X mat.Matrix) (mat.Matrix, error) {
		r, _ := X.Dims()
		rows.Store(int64(r))
		return sumModel.Predict(X)
	})
	opts := []pdp.Option{pdp.WithSample(true), pdp.WithSampleSize(50), pdp.WithSeed(9), pdp.WithGridResolution(5)}

	a, err := e.Compute(context.Background(), []string{"1"}, p, opts...)
	require.NoError(t, err)
	assert.EqualValues(t, 50, rows.Load())
	b, err := e.Compute(context.Background(), []string{"1"}, p, opts...)
	require.NoError(t, err)
	assert.True(t, mat.Equal(a.Matrix(), b.Matrix()))

	c, err := e.Compute(context.Background(), []string{"1"}, p, append(opts, pdp.WithSeed(10))...)
	require.NoError(t, err)
	assert.False(t, mat.Equal(a.Matrix(), c.Matrix()))

	// sample larger than the dataset uses every row
	_, err = e.Compute(context.Background(), []string{"1"}, p, pdp.WithSample(true), pdp.WithSampleSize(5000), pdp.WithGridResolution(2))
	require.NoError(t, err)
	assert.EqualValues(t, 500, rows.Load())
}

// TestCompute_WorkersMatchSequential: parallel evaluation is order-preserving.
func TestCompute_WorkersMatchSequential(t *testing.T) {
	t.Parallel()

	X, _, err := builder.Friedman1(300, builder.WithSeed(5))
	require.NoError(t, err)
	ds, err := dataset.New(X, builder.FeatureNames(builder.Friedman1Features, builder.WithSymbNumb("x")))
	require.NoError(t, err)
	e, err := pdp.New(ds)
	require.NoError(t, err)

	model := predictor.Softmax{Weights: mat.NewDense(3, 10, []float64{
		1, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 1, 0, 1, 0, 0, 0, 0, 0, 0,
		0, 0, 1, 0, 1, 0, 0, 0, 0, 0,
	})}

	seq, err := e.Compute(context.Background(), []string{"x0", "x3"}, model, pdp.WithGridResolution(9))
	require.NoError(t, err)
	for _, w := range []int{2, 4, 100} {
		par, err := e.Compute(context.Background(), []string{"x0", "x3"}, model, pdp.WithGridResolution(9), pdp.WithWorkers(w))
		require.NoError(t, err)
		assert.True(t, mat.Equal(seq.Matrix(), par.Matrix()), "workers %d", w)
	}
}

// TestCompute_ShapeChanged: later outputs must keep the first output's shape.
func TestCompute_ShapeChanged(t *testing.T) {
	t.Parallel()
	e := sampleEngine(t)

	var calls atomic.Int64
	p := predictor.Func(func(X mat.Matrix) (mat.Matrix, error) {
		if calls.Add(1) == 1 {
			return sumModel.Predict(X)
		}
		return predictor.Logistic{Coef: []float64{1, 1}}.Predict(X)
	})
	_, err := e.Compute(context.Background(), []string{"0"}, p, pdp.WithGridResolution(3))
	assert.ErrorIs(t, err, pdp.ErrShapeChanged)

	short := predictor.Func(func(mat.Matrix) (mat.Matrix, error) {
		return mat.NewVecDense(2, nil), nil
	})
	_, err = e.Compute(context.Background(), []string{"0"}, short)
	assert.ErrorIs(t, err, predictor.ErrRowMismatch)
}

// TestCompute_PredictorError: failures propagate, matchable with errors.Is.
func TestCompute_PredictorError(t *testing.T) {
	t.Parallel()
	e := sampleEngine(t)
	boom := errors.New("boom")

	for _, workers := range []int{1, 3} {
		var calls atomic.Int64
		p := predictor.Func(func(X mat.Matrix) (mat.Matrix, error) {
			if calls.Add(1) == 4 {
				return nil, boom
			}
			return sumModel.Predict(X)
		})
		tbl, err := e.Compute(context.Background(), []string{"0"}, p, pdp.WithGridResolution(10), pdp.WithWorkers(workers))
		assert.ErrorIs(t, err, boom, "workers %d", workers)
		assert.Nil(t, tbl)
	}
}

// TestCompute_ContextCanceled stops before or between points.
func TestCompute_ContextCanceled(t *testing.T) {
	t.Parallel()
	e := sampleEngine(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := &counting{p: sumModel}
	_, err := e.Compute(ctx, []string{"0"}, p)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, p.calls.Load())

	for _, workers := range []int{1, 4} {
		ctx, cancel := context.WithCancel(context.Background())
		var calls atomic.Int64
		mid := predictor.Func(func(X mat.Matrix) (mat.Matrix, error) {
			if calls.Add(1) == 2 {
				cancel()
			}
			return sumModel.Predict(X)
		})
		_, err := e.Compute(ctx, []string{"0"}, mid, pdp.WithWorkers(workers))
		assert.ErrorIs(t, err, context.Canceled, "workers %d", workers)
		assert.Less(t, calls.Load(), int64(100))
		cancel()
	}
}

// TestCompute_DatasetUntouched: evaluation never writes through to the Dataset.
func TestCompute_DatasetUntouched(t *testing.T) {
	t.Parallel()
	e := sampleEngine(t)
	before := e.Data().Matrix()

	_, err := e.Compute(context.Background(), []string{"0", "1"}, sumModel, pdp.WithGridResolution(4), pdp.WithWorkers(2))
	require.NoError(t, err)
	assert.True(t, mat.Equal(before, e.Data().Matrix()))
}

// TestEngine_Logging: debug entries carry the run fields.
func TestEngine_Logging(t *testing.T) {
	t.Parallel()

	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	ds, err := dataset.New(mat.NewDense(2, 1, []float64{0, 1}), []string{"x"})
	require.NoError(t, err)
	e, err := pdp.New(ds, pdp.WithLogger(logger))
	require.NoError(t, err)

	_, err = e.Compute(context.Background(), []string{"x"}, predictor.Linear{Coef: []float64{1}}, pdp.WithGridResolution(3))
	require.NoError(t, err)

	entries := hook.AllEntries()
	require.NotEmpty(t, entries)
	assert.Equal(t, 3, entries[0].Data["points"])
	assert.Equal(t, "partial dependence finished", hook.LastEntry().Message)
}

func TestOptions_Panics(t *testing.T) {
	t.Parallel()
	assertPanics(t, func() { pdp.WithColumnNameFormatter(nil) }, "WithColumnNameFormatter(nil)")
	assertPanics(t, func() { pdp.WithWorkers(0) }, "WithWorkers(0)")
	assertPanics(t, func() { pdp.WithLogger(nil) }, "WithLogger(nil)")
}
