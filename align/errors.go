// SPDX-License-Identifier: MIT

package align

import (
	"errors"

	"github.com/katalvlaran/motionalign/core"
)

var (
	// ErrDimensionMismatch is core.ErrDimensionMismatch: compared frames (or
	// frames within one sequence) have different widths.
	ErrDimensionMismatch = core.ErrDimensionMismatch

	// ErrInvariantViolation indicates an impossible backtrack pointer during
	// traceback. It signals a fill bug or non-finite costs (NaN/±Inf frames),
	// never a recoverable condition.
	ErrInvariantViolation = errors.New("align: invariant violation")

	// ErrBadOptions indicates an invalid Options combination or value.
	ErrBadOptions = errors.New("align: invalid options")
)
