package interpret_test

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvinterpret/dataset"
	"github.com/katalvlaran/lvinterpret/interpret"
	"github.com/katalvlaran/lvinterpret/pdp"
	"github.com/katalvlaran/lvinterpret/predictor"
)

func sampleX() *mat.Dense {
	return mat.NewDense(6, 2, []float64{-2, -1, -1, -1, -1, -2, 1, 1, 1, 2, 2, 1})
}

func TestNew_LogLevel(t *testing.T) {
	t.Parallel()

	in, err := interpret.New()
	require.NoError(t, err)
	assert.Equal(t, logrus.WarnLevel, in.Logger().GetLevel())

	in, err = interpret.New(interpret.WithLogLevel("debug"))
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, in.Logger().GetLevel())

	_, err = interpret.New(interpret.WithLogLevel("loud"))
	assert.ErrorIs(t, err, interpret.ErrInvalidLogLevel)
}

func TestNew_WithLogger(t *testing.T) {
	t.Parallel()

	logger, _ := logtest.NewNullLogger()
	logger.SetLevel(logrus.ErrorLevel)
	in, err := interpret.New(interpret.WithLogger(logger))
	require.NoError(t, err)
	assert.Same(t, logger, in.Logger())
	assert.Equal(t, logrus.ErrorLevel, logger.GetLevel())

	defer func() {
		assert.NotNil(t, recover(), "WithLogger(nil) should panic")
	}()
	interpret.WithLogger(nil)
}

func TestPartialDependence_NoData(t *testing.T) {
	t.Parallel()

	in, err := interpret.New()
	require.NoError(t, err)
	assert.Nil(t, in.Data())

	_, err = in.PartialDependence(context.Background(), []string{"0"}, predictor.Linear{Coef: []float64{1, 1}})
	assert.ErrorIs(t, err, interpret.ErrNoData)
}

func TestPartialDependence_LoadData(t *testing.T) {
	t.Parallel()

	logger, hook := logtest.NewNullLogger()
	in, err := interpret.New(interpret.WithLogger(logger), interpret.WithLogLevel("debug"))
	require.NoError(t, err)
	require.NoError(t, in.LoadData(sampleX(), []string{"0", "1"}))
	assert.Equal(t, []string{"0", "1"}, in.Data().Names())

	tbl, err := in.PartialDependence(context.Background(), []string{"0"}, predictor.Linear{Coef: []float64{1, 1}})
	require.NoError(t, err)
	r, c := tbl.Dims()
	assert.Equal(t, 100, r)
	assert.Equal(t, 3, c)

	var sawPDP bool
	for _, e := range hook.AllEntries() {
		if e.Data["component"] == "pdp" {
			sawPDP = true
		}
	}
	assert.True(t, sawPDP, "engine debug entries are routed through the facade logger")
}

func TestPartialDependence_Errors(t *testing.T) {
	t.Parallel()

	logger, hook := logtest.NewNullLogger()
	in, err := interpret.New(interpret.WithLogger(logger))
	require.NoError(t, err)

	err = in.LoadData(sampleX(), []string{"0"})
	assert.ErrorIs(t, err, dataset.ErrNameCount)

	require.NoError(t, in.LoadData(sampleX(), []string{"0", "1"}))
	_, err = in.PartialDependence(context.Background(), []string{"0"},
		predictor.Linear{Coef: []float64{1, 1}}, pdp.WithGridRange(0.01, 1.01))
	assert.ErrorIs(t, err, pdp.ErrMalformedGridRange)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
}
