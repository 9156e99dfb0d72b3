package config

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvinterpret/builder"
	"github.com/katalvlaran/lvinterpret/dataset"
	"github.com/katalvlaran/lvinterpret/grid"
	"github.com/katalvlaran/lvinterpret/pdp"
	"github.com/katalvlaran/lvinterpret/predictor"
)

// BuildDataset draws the configured synthetic dataset.
func (c *Config) BuildDataset() (*dataset.Dataset, error) {
	if err := c.Dataset.validate(); err != nil {
		return nil, err
	}
	bopts := []builder.BuilderOption{builder.WithSeed(c.Dataset.Seed)}
	switch c.Dataset.Naming {
	case NamingExcel:
		bopts = append(bopts, builder.WithExcelColumnIDs())
	case NamingPrefix:
		bopts = append(bopts, builder.WithSymbNumb(c.Dataset.Prefix))
	}

	cons := make([]builder.Constructor, 0, len(c.Dataset.Columns))
	for _, col := range c.Dataset.Columns {
		switch col.Kind {
		case ColumnGaussian:
			cons = append(cons, gaussianBlock(col))
		case ColumnUniform:
			cons = append(cons, builder.Uniform(col.Count, col.Low, col.High))
		case ColumnCategorical:
			cons = append(cons, builder.Categorical(col.Count, col.Levels))
		}
	}
	ds, err := builder.BuildDataset(c.Dataset.Samples, bopts, cons...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build dataset")
	}
	return ds, nil
}

// gaussianBlock defaults a zero sigma to the standard normal scale.
func gaussianBlock(col Column) builder.Constructor {
	sigma := col.Sigma
	if sigma == 0 {
		sigma = 1
	}
	return builder.GaussianWith(col.Count, col.Mean, sigma)
}

// BuildPredictor returns the configured reference model in the configured
// output form.
func (c *Config) BuildPredictor() (predictor.Predictor, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	m := c.Model
	switch m.Kind {
	case ModelLinear:
		return predictor.Linear{Coef: m.Coef, Intercept: m.Intercept}, nil
	case ModelLogistic:
		lr := predictor.Logistic{Coef: m.Coef, Intercept: m.Intercept, ClassNames: m.Classes}
		switch m.Output {
		case OutputScore:
			return lr.ClassIndex(), nil
		case OutputLabels:
			return lr.Labels(), nil
		}
		return lr, nil
	case ModelSoftmax:
		k := len(m.Weights)
		w := mat.NewDense(k, len(m.Weights[0]), nil)
		for i, row := range m.Weights {
			w.SetRow(i, row)
		}
		sm := predictor.Softmax{Weights: w, Intercepts: m.Intercepts, ClassNames: m.Classes}
		if m.Output == OutputLabels {
			return sm.Labels(), nil
		}
		return sm, nil
	}
	return nil, errors.Wrapf(ErrInvalid, "unknown model kind %q", m.Kind)
}

// Options translates the grid, sampling and worker settings into Compute options.
func (c *Config) Options() ([]pdp.Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	spacing, err := grid.ParseSpacing(c.Grid.Spacing)
	if err != nil {
		return nil, errors.Wrap(ErrInvalid, err.Error())
	}
	opts := []pdp.Option{
		pdp.WithGridResolution(c.Grid.Resolution),
		pdp.WithGridRange(c.Grid.Range[0], c.Grid.Range[1]),
		pdp.WithGridSpacing(spacing),
		pdp.WithSample(c.Sample.Enabled),
		pdp.WithSampleSize(c.Sample.Size),
		pdp.WithSeed(c.Sample.Seed),
		pdp.WithWorkers(c.Workers),
	}
	for f, values := range c.Grid.Values {
		opts = append(opts, pdp.WithGrid(f, values))
	}
	if c.StdDev {
		opts = append(opts, pdp.WithStdDev())
	}
	return opts, nil
}
