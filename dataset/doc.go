// Package dataset holds the read-only reference data that partial dependence
// marginalizes over: a finite numeric matrix (n_samples × n_features) plus an
// ordered list of unique feature names.
//
// A Dataset is built once with New, which copies the input, so later
// mutation of the caller's matrix is never observed. Every accessor returns
// copies; nothing in this package writes to a loaded Dataset.
//
// Usage:
//
//	import "github.com/katalvlaran/lvinterpret/dataset"
//
//	X := mat.NewDense(3, 2, []float64{1, 2, 3, 4, 5, 6})
//	ds, err := dataset.New(X, []string{"age", "income"})
//	if err != nil {
//	  // handle ErrNameCount, ErrDuplicateName, ErrNaNInf ...
//	}
//	j, _ := ds.Index("income") // 1
//
// Sampling:
//
//	Sample(n, src) draws n distinct rows without replacement (gonum
//	sampleuv) and returns them in ascending row order. Requests for at
//	least as many rows as the Dataset holds return every row.
package dataset
