// Package config reads the YAML run configuration of the pdpctl command:
// which synthetic dataset to build, which reference model to explain, and
// how to compute partial dependence.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvinterpret/pdp"
)

const (
	fileMode = 0600

	ColumnGaussian    = "gaussian"
	ColumnUniform     = "uniform"
	ColumnCategorical = "categorical"

	ModelLinear   = "linear"
	ModelLogistic = "logistic"
	ModelSoftmax  = "softmax"

	OutputScore  = "score"
	OutputProba  = "proba"
	OutputLabels = "labels"

	NamingDecimal = "decimal"
	NamingExcel   = "excel"
	NamingPrefix  = "prefix"
)

// ErrInvalid marks every validation failure; match with errors.Is.
var ErrInvalid = errors.New("invalid config")

// Config represents one pdpctl run.
type Config struct {
	Dataset  Dataset  `yaml:"dataset"`
	Model    Model    `yaml:"model"`
	Features []string `yaml:"features"`
	Grid     Grid     `yaml:"grid"`
	Sample   Sample   `yaml:"sample"`
	Workers  int      `yaml:"workers"`
	StdDev   bool     `yaml:"stddev"`
}

// Dataset describes a synthetic dataset built column block by column block.
type Dataset struct {
	Samples int      `yaml:"samples"`
	Seed    uint64   `yaml:"seed"`
	Naming  string   `yaml:"naming"`
	Prefix  string   `yaml:"prefix"`
	Columns []Column `yaml:"columns,omitempty"`
}

// Column is one block of identically distributed columns.
type Column struct {
	Kind   string  `yaml:"kind"`
	Count  int     `yaml:"count"`
	Mean   float64 `yaml:"mean"`
	Sigma  float64 `yaml:"sigma"`
	Low    float64 `yaml:"low"`
	High   float64 `yaml:"high"`
	Levels int     `yaml:"levels"`
}

// Model holds the coefficients of a reference model.
type Model struct {
	Kind       string      `yaml:"kind"`
	Output     string      `yaml:"output"`
	Coef       []float64   `yaml:"coef,omitempty"`
	Intercept  float64     `yaml:"intercept"`
	Weights    [][]float64 `yaml:"weights,omitempty"`
	Intercepts []float64   `yaml:"intercepts,omitempty"`
	Classes    []string    `yaml:"classes,omitempty"`
}

// Grid configures grid construction.
type Grid struct {
	Resolution int                  `yaml:"resolution"`
	Range      []float64            `yaml:"range,omitempty"`
	Spacing    string               `yaml:"spacing"`
	Values     map[string][]float64 `yaml:"values,omitempty"`
}

// Sample configures row subsampling.
type Sample struct {
	Enabled bool   `yaml:"enabled"`
	Size    int    `yaml:"size"`
	Seed    uint64 `yaml:"seed"`
}

// Default returns a configuration with every optional field set.
func Default() *Config {
	return &Config{
		Dataset: Dataset{
			Samples: 1000,
			Naming:  NamingDecimal,
		},
		Model: Model{
			Kind:   ModelLinear,
			Output: OutputScore,
		},
		Grid: Grid{
			Resolution: pdp.DefaultResolution,
			Range:      []float64{0, 1},
			Spacing:    "uniform",
		},
		Sample: Sample{
			Size: pdp.DefaultSampleSize,
		},
		Workers: pdp.DefaultWorkers,
	}
}

// Load reads the YAML file at path over Default and validates the result.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path required")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "error reading config file: %s", path)
	}
	c, err := Parse(b)
	if err != nil {
		return nil, errors.Wrapf(err, "error loading config file: %s", path)
	}
	return c, nil
}

// Parse decodes YAML over Default and validates the result.
func Parse(b []byte) (*Config, error) {
	c := Default()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Save writes c to path as YAML.
func Save(path string, c *Config) error {
	if path == "" {
		return errors.New("config path required")
	}
	if c == nil {
		return errors.New("config required")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}
	if err := os.WriteFile(path, b, fileMode); err != nil {
		return errors.Wrapf(err, "failed to write config file: %s", path)
	}
	return nil
}
