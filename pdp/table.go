// SPDX-License-Identifier: MIT
// Package: lvinterpret/pdp
//
// table.go - Table, the named-column result of Compute.

package pdp

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"gonum.org/v1/gonum/mat"
)

// Table holds one row per grid point under named columns.
// A Table is immutable; accessors return copies.
type Table struct {
	columns []string
	index   map[string]int
	data    *mat.Dense
}

// newTable wraps data (owned by the Table from now on) under columns.
func newTable(columns []string, data *mat.Dense) (*Table, error) {
	_, c := data.Dims()
	if c != len(columns) {
		return nil, fmt.Errorf("newTable: %d columns for %d names: %w", c, len(columns), ErrOutOfRange)
	}
	index := make(map[string]int, len(columns))
	for j, name := range columns {
		if _, ok := index[name]; ok {
			return nil, fmt.Errorf("newTable: %q: %w", name, ErrDuplicateColumn)
		}
		index[name] = j
	}
	return &Table{columns: append([]string(nil), columns...), index: index, data: data}, nil
}

// Columns returns the column names in order.
func (t *Table) Columns() []string {
	return append([]string(nil), t.columns...)
}

// Dims returns (rows, columns).
func (t *Table) Dims() (int, int) {
	return t.data.Dims()
}

// Len returns the number of rows (grid points).
func (t *Table) Len() int {
	r, _ := t.data.Dims()
	return r
}

// Column returns a copy of the named column.
func (t *Table) Column(name string) ([]float64, error) {
	j, ok := t.index[name]
	if !ok {
		return nil, fmt.Errorf("Column: %q: %w", name, ErrUnknownColumn)
	}
	return mat.Col(nil, j, t.data), nil
}

// ColumnAt returns a copy of column j.
func (t *Table) ColumnAt(j int) ([]float64, error) {
	if j < 0 || j >= len(t.columns) {
		return nil, fmt.Errorf("ColumnAt: %d: %w", j, ErrOutOfRange)
	}
	return mat.Col(nil, j, t.data), nil
}

// Row returns a copy of row i.
func (t *Table) Row(i int) ([]float64, error) {
	if i < 0 || i >= t.Len() {
		return nil, fmt.Errorf("Row: %d: %w", i, ErrOutOfRange)
	}
	return mat.Row(nil, i, t.data), nil
}

// At returns the value at row i, column j.
func (t *Table) At(i, j int) (float64, error) {
	if i < 0 || i >= t.Len() || j < 0 || j >= len(t.columns) {
		return 0, fmt.Errorf("At: (%d,%d): %w", i, j, ErrOutOfRange)
	}
	return t.data.At(i, j), nil
}

// Matrix returns a copy of the values.
func (t *Table) Matrix() *mat.Dense {
	return mat.DenseCopyOf(t.data)
}

// Rows returns the values as row slices.
func (t *Table) Rows() [][]float64 {
	out := make([][]float64, t.Len())
	for i := range out {
		out[i] = mat.Row(nil, i, t.data)
	}
	return out
}

// Records returns one column-name → value map per row, for encoders.
func (t *Table) Records() []map[string]float64 {
	out := make([]map[string]float64, t.Len())
	for i := range out {
		rec := make(map[string]float64, len(t.columns))
		for j, name := range t.columns {
			rec[name] = t.data.At(i, j)
		}
		out[i] = rec
	}
	return out
}

// WriteCSV writes a header line followed by one line per row.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.columns); err != nil {
		return fmt.Errorf("WriteCSV: %w", err)
	}
	line := make([]string, len(t.columns))
	for i := 0; i < t.Len(); i++ {
		for j := range line {
			line[j] = strconv.FormatFloat(t.data.At(i, j), 'g', -1, 64)
		}
		if err := cw.Write(line); err != nil {
			return fmt.Errorf("WriteCSV: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("WriteCSV: %w", err)
	}
	return nil
}
