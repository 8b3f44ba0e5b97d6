// SPDX-License-Identifier: MIT

package series

import "errors"

var (
	// ErrNoFrames indicates an input without any time points.
	ErrNoFrames = errors.New("series: no time points")

	// ErrMalformedLine indicates a line that cannot be split into numeric triples.
	ErrMalformedLine = errors.New("series: malformed line")

	// ErrTypeMismatch indicates two series of different types were combined.
	ErrTypeMismatch = errors.New("series: series types differ")

	// ErrNotPositions indicates a positions-only operation on another type.
	ErrNotPositions = errors.New("series: operation only valid for positions")
)
