// SPDX-License-Identifier: MIT
// Package: lvinterpret/dataset
//
// dataset.go - immutable feature matrix with named columns.
//
// Contract:
//   - New validates shape, names and finiteness, then stores a private copy.
//   - Accessors never expose the backing *mat.Dense; they return copies.
//   - A *Dataset is safe for concurrent readers.

package dataset

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Dataset is an immutable numeric matrix whose columns carry unique names.
type Dataset struct {
	x     *mat.Dense     // private copy, row-major
	names []string       // len == columns
	index map[string]int // name -> column
}

// New builds a Dataset from X and its feature names.
//
// Stage 1 (Validate): X non-nil and non-empty, one unique non-blank name per column.
// Stage 2 (Copy): take a dense copy of X.
// Stage 3 (Finite): reject NaN/±Inf cells with their row and feature.
//
// Errors: ErrNilMatrix, ErrEmpty, ErrNameCount, ErrEmptyName,
// ErrDuplicateName, ErrNaNInf (all wrapped with "New: ").
// Complexity: O(r·c) time and memory.
func New(X mat.Matrix, names []string) (*Dataset, error) {
	if X == nil {
		return nil, fmt.Errorf("New: %w", ErrNilMatrix)
	}
	r, c := X.Dims()
	if r == 0 || c == 0 {
		return nil, fmt.Errorf("New: %d×%d: %w", r, c, ErrEmpty)
	}
	if len(names) != c {
		return nil, fmt.Errorf("New: %d names for %d columns: %w", len(names), c, ErrNameCount)
	}

	index := make(map[string]int, c)
	for j, name := range names {
		if name == "" {
			return nil, fmt.Errorf("New: column %d: %w", j, ErrEmptyName)
		}
		if prev, ok := index[name]; ok {
			return nil, fmt.Errorf("New: %q at columns %d and %d: %w", name, prev, j, ErrDuplicateName)
		}
		index[name] = j
	}

	x := mat.DenseCopyOf(X)
	var i, j int
	for i = 0; i < r; i++ {
		row := x.RawRowView(i)
		for j = 0; j < c; j++ {
			if math.IsNaN(row[j]) || math.IsInf(row[j], 0) {
				return nil, fmt.Errorf("New: row %d feature %q: %w", i, names[j], ErrNaNInf)
			}
		}
	}

	own := make([]string, c)
	copy(own, names)

	return &Dataset{x: x, names: own, index: index}, nil
}

// Dims returns (samples, features).
func (d *Dataset) Dims() (int, int) {
	return d.x.Dims()
}

// Len returns the number of samples (rows).
func (d *Dataset) Len() int {
	r, _ := d.x.Dims()
	return r
}

// Names returns a copy of the ordered feature names.
func (d *Dataset) Names() []string {
	out := make([]string, len(d.names))
	copy(out, d.names)
	return out
}

// Has reports whether name is a feature of d.
func (d *Dataset) Has(name string) bool {
	_, ok := d.index[name]
	return ok
}

// Index returns the column of feature name, or ErrUnknownFeature.
func (d *Dataset) Index(name string) (int, error) {
	j, ok := d.index[name]
	if !ok {
		return 0, fmt.Errorf("Index(%q): %w", name, ErrUnknownFeature)
	}
	return j, nil
}

// At returns the cell (i, j).
func (d *Dataset) At(i, j int) (float64, error) {
	r, c := d.x.Dims()
	if i < 0 || i >= r || j < 0 || j >= c {
		return 0, fmt.Errorf("At(%d,%d): %w", i, j, ErrOutOfRange)
	}
	return d.x.At(i, j), nil
}

// Column returns a copy of column j.
func (d *Dataset) Column(j int) ([]float64, error) {
	_, c := d.x.Dims()
	if j < 0 || j >= c {
		return nil, fmt.Errorf("Column(%d): %w", j, ErrOutOfRange)
	}
	return mat.Col(nil, j, d.x), nil
}

// ColumnByName returns a copy of the observed values of feature name.
func (d *Dataset) ColumnByName(name string) ([]float64, error) {
	j, err := d.Index(name)
	if err != nil {
		return nil, err
	}
	return mat.Col(nil, j, d.x), nil
}

// Matrix returns a dense copy of the whole Dataset.
func (d *Dataset) Matrix() *mat.Dense {
	return mat.DenseCopyOf(d.x)
}
