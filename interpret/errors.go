// SPDX-License-Identifier: MIT
// Package: lvinterpret/interpret
//
// errors.go - sentinel errors for the interpretation facade.

package interpret

import "errors"

var (
	// ErrNoData indicates PartialDependence was called before LoadData.
	ErrNoData = errors.New("interpret: no data loaded")

	// ErrInvalidLogLevel indicates a log level name logrus does not know.
	ErrInvalidLogLevel = errors.New("interpret: invalid log level")
)
