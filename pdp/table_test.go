package pdp_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvinterpret/pdp"
)

func smallTable(t *testing.T) *pdp.Table {
	t.Helper()
	tbl, err := sampleEngine(t).Compute(context.Background(), []string{"0"}, sumModel,
		pdp.WithGrid("0", []float64{-1, 0.5}))
	require.NoError(t, err)
	return tbl
}

func TestTable_Accessors(t *testing.T) {
	t.Parallel()
	tbl := smallTable(t)

	row, err := tbl.Row(1)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.5, 1, 0.5}, row, 1e-12)

	v, err := tbl.At(0, 2)
	require.NoError(t, err)
	assert.Equal(t, -1.0, v)

	col, err := tbl.ColumnAt(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1}, col)

	assert.Len(t, tbl.Rows(), 2)
	recs := tbl.Records()
	require.Len(t, recs, 2)
	assert.Equal(t, 0.5, recs[1]["val_0"])
	assert.Equal(t, 1.0, recs[1][pdp.GridIDColumn])
}

func TestTable_Errors(t *testing.T) {
	t.Parallel()
	tbl := smallTable(t)

	_, err := tbl.Column("nope")
	assert.ErrorIs(t, err, pdp.ErrUnknownColumn)
	_, err = tbl.ColumnAt(3)
	assert.ErrorIs(t, err, pdp.ErrOutOfRange)
	_, err = tbl.Row(-1)
	assert.ErrorIs(t, err, pdp.ErrOutOfRange)
	_, err = tbl.At(2, 0)
	assert.ErrorIs(t, err, pdp.ErrOutOfRange)
}

func TestTable_Copies(t *testing.T) {
	t.Parallel()
	tbl := smallTable(t)

	cols := tbl.Columns()
	cols[0] = "changed"
	assert.Equal(t, pdp.MeanColumn, tbl.Columns()[0])

	m := tbl.Matrix()
	m.Set(0, 0, 42)
	v, _ := tbl.At(0, 0)
	assert.NotEqual(t, 42.0, v)
}

func TestTable_WriteCSV(t *testing.T) {
	t.Parallel()
	tbl := smallTable(t)

	var buf bytes.Buffer
	require.NoError(t, tbl.WriteCSV(&buf))
	assert.Equal(t, "mean,grid_id,val_0\n-1,0,-1\n0.5,1,0.5\n", buf.String())
}
