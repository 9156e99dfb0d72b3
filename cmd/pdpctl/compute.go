package main

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvinterpret/config"
	"github.com/katalvlaran/lvinterpret/interpret"
	"github.com/katalvlaran/lvinterpret/pdp"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
	formatCSV  = "csv"
)

var (
	configFlag = &cli.StringFlag{
		Name:     "config",
		Aliases:  []string{"c"},
		Usage:    "Path to the YAML run configuration",
		Required: true,
	}

	formatFlag = &cli.StringFlag{
		Name:  "format",
		Usage: "Output format [json, yaml, csv]",
		Value: formatJSON,
	}

	computeCmd = &cli.Command{
		Name:    "compute",
		Aliases: []string{"pd"},
		Usage:   "Compute partial dependence for the configured model and features",
		Flags: []cli.Flag{
			configFlag,
			formatFlag,
		},
		Action: cmdCompute,
	}

	versionCmd = &cli.Command{
		Name:  "version",
		Usage: "Prints version",
		Action: func(c *cli.Context) error {
			_, err := io.WriteString(c.App.Writer, c.App.Version+"\n")
			return err
		},
	}
)

// result is the encoded form of a Table.
type result struct {
	Features []string             `json:"features" yaml:"features"`
	Columns  []string             `json:"columns" yaml:"columns"`
	Rows     []map[string]float64 `json:"rows" yaml:"rows"`
}

func cmdCompute(c *cli.Context) error {
	format := c.String(formatFlag.Name)
	if format == "yml" {
		format = formatYAML
	}
	switch format {
	case formatJSON, formatYAML, formatCSV:
	default:
		return errors.Errorf("unsupported format: %s", format)
	}

	cfg, err := config.Load(c.String(configFlag.Name))
	if err != nil {
		return errors.Wrap(err, "error loading config")
	}
	log.Debugf("config: %+v", cfg)

	tbl, err := run(c, cfg)
	if err != nil {
		return err
	}
	if err := encode(c.App.Writer, format, cfg.Features, tbl); err != nil {
		return errors.Wrapf(err, "error encoding result as %s", format)
	}
	return nil
}

// run builds the dataset and model of cfg and computes the table.
func run(c *cli.Context, cfg *config.Config) (*pdp.Table, error) {
	in, err := interpret.New(interpret.WithLogger(log.StandardLogger()))
	if err != nil {
		return nil, errors.Wrap(err, "error creating interpretation")
	}
	ds, err := cfg.BuildDataset()
	if err != nil {
		return nil, err
	}
	if err := in.SetData(ds); err != nil {
		return nil, errors.Wrap(err, "error loading data")
	}
	p, err := cfg.BuildPredictor()
	if err != nil {
		return nil, errors.Wrap(err, "error building model")
	}
	opts, err := cfg.Options()
	if err != nil {
		return nil, errors.Wrap(err, "error reading options")
	}

	tbl, err := in.PartialDependence(c.Context, cfg.Features, p, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "error computing partial dependence of %v", cfg.Features)
	}
	return tbl, nil
}

func encode(w io.Writer, format string, features []string, tbl *pdp.Table) error {
	switch format {
	case formatCSV:
		return tbl.WriteCSV(w)
	case formatYAML:
		e := yaml.NewEncoder(w)
		if err := e.Encode(newResult(features, tbl)); err != nil {
			return err
		}
		return e.Close()
	default:
		e := json.NewEncoder(w)
		e.SetIndent("", "  ")
		return e.Encode(newResult(features, tbl))
	}
}

func newResult(features []string, tbl *pdp.Table) result {
	return result{Features: features, Columns: tbl.Columns(), Rows: tbl.Records()}
}
