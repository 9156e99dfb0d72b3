package config

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/lvinterpret/grid"
)

// Validate checks the structure of c. Values the engine validates itself
// (grid range, resolution, user grids) are left to it.
func (c *Config) Validate() error {
	if err := c.Dataset.validate(); err != nil {
		return err
	}
	if err := c.Model.validate(c.Dataset.width()); err != nil {
		return err
	}
	if len(c.Features) == 0 {
		return errors.Wrap(ErrInvalid, "features required")
	}
	if len(c.Grid.Range) != 2 {
		return errors.Wrapf(ErrInvalid, "grid range needs 2 values, got %d", len(c.Grid.Range))
	}
	if _, err := grid.ParseSpacing(c.Grid.Spacing); err != nil {
		return errors.Wrapf(ErrInvalid, "grid spacing: %v", err)
	}
	if c.Workers < 1 {
		return errors.Wrapf(ErrInvalid, "workers must be >= 1, got %d", c.Workers)
	}
	return nil
}

func (d Dataset) width() int {
	w := 0
	for _, col := range d.Columns {
		w += col.Count
	}
	return w
}

func (d Dataset) validate() error {
	if d.Samples < 1 {
		return errors.Wrapf(ErrInvalid, "dataset samples must be >= 1, got %d", d.Samples)
	}
	if len(d.Columns) == 0 {
		return errors.Wrap(ErrInvalid, "dataset columns required")
	}
	switch d.Naming {
	case NamingDecimal, NamingExcel:
	case NamingPrefix:
		if d.Prefix == "" {
			return errors.Wrap(ErrInvalid, "prefix naming requires dataset prefix")
		}
	default:
		return errors.Wrapf(ErrInvalid, "unknown naming %q", d.Naming)
	}
	for i, col := range d.Columns {
		if col.Count < 1 {
			return errors.Wrapf(ErrInvalid, "column block %d: count must be >= 1", i)
		}
		switch col.Kind {
		case ColumnGaussian:
			if col.Sigma < 0 {
				return errors.Wrapf(ErrInvalid, "column block %d: sigma must be >= 0", i)
			}
		case ColumnUniform:
			if col.Low >= col.High {
				return errors.Wrapf(ErrInvalid, "column block %d: low must be < high", i)
			}
		case ColumnCategorical:
			if col.Levels < 2 {
				return errors.Wrapf(ErrInvalid, "column block %d: levels must be >= 2", i)
			}
		default:
			return errors.Wrapf(ErrInvalid, "column block %d: unknown kind %q", i, col.Kind)
		}
	}
	return nil
}

func (m Model) validate(width int) error {
	switch m.Kind {
	case ModelLinear:
		if len(m.Coef) != width {
			return errors.Wrapf(ErrInvalid, "linear model: %d coefficients for %d features", len(m.Coef), width)
		}
		if m.Output != OutputScore {
			return errors.Wrapf(ErrInvalid, "linear model: output %q not supported", m.Output)
		}
	case ModelLogistic:
		if len(m.Coef) != width {
			return errors.Wrapf(ErrInvalid, "logistic model: %d coefficients for %d features", len(m.Coef), width)
		}
		if len(m.Classes) != 0 && len(m.Classes) != 2 {
			return errors.Wrapf(ErrInvalid, "logistic model: %d classes", len(m.Classes))
		}
	case ModelSoftmax:
		if len(m.Weights) < 2 {
			return errors.Wrapf(ErrInvalid, "softmax model: need >= 2 weight rows, got %d", len(m.Weights))
		}
		for k, row := range m.Weights {
			if len(row) != width {
				return errors.Wrapf(ErrInvalid, "softmax model: weight row %d has %d values for %d features", k, len(row), width)
			}
		}
		if len(m.Intercepts) != 0 && len(m.Intercepts) != len(m.Weights) {
			return errors.Wrapf(ErrInvalid, "softmax model: %d intercepts for %d classes", len(m.Intercepts), len(m.Weights))
		}
		if len(m.Classes) != 0 && len(m.Classes) != len(m.Weights) {
			return errors.Wrapf(ErrInvalid, "softmax model: %d classes for %d weight rows", len(m.Classes), len(m.Weights))
		}
	default:
		return errors.Wrapf(ErrInvalid, "unknown model kind %q", m.Kind)
	}
	if m.Kind != ModelLinear {
		switch m.Output {
		case OutputScore, OutputProba, OutputLabels:
		default:
			return errors.Wrapf(ErrInvalid, "unknown model output %q", m.Output)
		}
	}
	return nil
}
