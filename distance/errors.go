// SPDX-License-Identifier: MIT

package distance

import (
	"errors"

	"github.com/katalvlaran/motionalign/core"
)

var (
	// ErrDimensionMismatch is core.ErrDimensionMismatch, re-exported so that
	// callers of this package can match it without importing core.
	ErrDimensionMismatch = core.ErrDimensionMismatch

	// ErrInvalidMetric indicates an unknown metric name or series type.
	ErrInvalidMetric = errors.New("distance: invalid metric")
)
