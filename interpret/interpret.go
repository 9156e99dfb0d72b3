// SPDX-License-Identifier: MIT
// Package: lvinterpret/interpret
//
// interpret.go - Interpretation: logger + loaded data + explanations.

package interpret

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvinterpret/dataset"
	"github.com/katalvlaran/lvinterpret/pdp"
	"github.com/katalvlaran/lvinterpret/predictor"
)

// DefaultLogLevel is the level of the logger New creates.
const DefaultLogLevel = "warning"

// Interpretation holds the reference data explanations are computed over.
// It is safe for concurrent use.
type Interpretation struct {
	log *logrus.Logger

	mu     sync.RWMutex
	engine *pdp.Engine
}

// Option configures New.
type Option func(*options)

type options struct {
	level  string
	logger *logrus.Logger
}

// WithLogLevel sets the level by name ("debug", "info", "warning", "error", ...).
// An unknown name makes New fail with ErrInvalidLogLevel.
func WithLogLevel(level string) Option {
	return func(o *options) { o.level = level }
}

// WithLogger uses l instead of a fresh stderr logger. The level set by
// WithLogLevel, if any, is applied to l. Panics on nil.
func WithLogger(l *logrus.Logger) Option {
	if l == nil {
		panic("interpret: WithLogger(nil)")
	}
	return func(o *options) { o.logger = l }
}

// New returns an Interpretation without data.
func New(opts ...Option) (*Interpretation, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	log := o.logger
	if log == nil {
		log = logrus.New()
		log.SetOutput(os.Stderr)
		if o.level == "" {
			o.level = DefaultLogLevel
		}
	}
	if o.level != "" {
		lvl, err := logrus.ParseLevel(o.level)
		if err != nil {
			return nil, fmt.Errorf("New: %q: %w", o.level, ErrInvalidLogLevel)
		}
		log.SetLevel(lvl)
	}
	return &Interpretation{log: log}, nil
}

// Logger returns the logger explanations report to.
func (in *Interpretation) Logger() *logrus.Logger {
	return in.log
}

// LoadData builds the reference Dataset from X and names (copied).
func (in *Interpretation) LoadData(X mat.Matrix, names []string) error {
	ds, err := dataset.New(X, names)
	if err != nil {
		return fmt.Errorf("LoadData: %w", err)
	}
	return in.SetData(ds)
}

// SetData installs an already built Dataset.
func (in *Interpretation) SetData(ds *dataset.Dataset) error {
	e, err := pdp.New(ds, pdp.WithLogger(in.log.WithField("component", "pdp")))
	if err != nil {
		return fmt.Errorf("SetData: %w", err)
	}

	in.mu.Lock()
	in.engine = e
	in.mu.Unlock()

	r, c := ds.Dims()
	in.log.WithFields(logrus.Fields{"rows": r, "features": c}).Info("data loaded")
	return nil
}

// Data returns the loaded Dataset, or nil.
func (in *Interpretation) Data() *dataset.Dataset {
	in.mu.RLock()
	defer in.mu.RUnlock()
	if in.engine == nil {
		return nil
	}
	return in.engine.Data()
}

// PartialDependence computes the partial dependence of p on features over
// the loaded data. See pdp.Engine.Compute for options and errors.
func (in *Interpretation) PartialDependence(ctx context.Context, features []string, p predictor.Predictor, opts ...pdp.Option) (*pdp.Table, error) {
	in.mu.RLock()
	e := in.engine
	in.mu.RUnlock()
	if e == nil {
		return nil, fmt.Errorf("PartialDependence: %w", ErrNoData)
	}

	tbl, err := e.Compute(ctx, features, p, opts...)
	if err != nil {
		in.log.WithError(err).WithField("features", features).Warn("partial dependence failed")
		return nil, err
	}
	return tbl, nil
}
