// SPDX-License-Identifier: MIT

package distance

import (
	"fmt"

	"github.com/katalvlaran/motionalign/core"
	"github.com/katalvlaran/motionalign/euler"
)

// Orientation reads a and b as (yaw, pitch, roll) triples in degrees and
// returns the angle in radians of the rotation between them.
// Unlike Euclidean on raw angles, 359° and 1° are 2° apart.
func Orientation(a, b core.Point) (float64, error) {
	if len(a) != core.PointDim || len(b) != core.PointDim {
		return 0, fmt.Errorf("orientation needs %d components, got %d and %d: %w",
			core.PointDim, len(a), len(b), ErrDimensionMismatch)
	}
	p, err := euler.ToQuaternion(a[0], a[1], a[2], euler.Degrees)
	if err != nil {
		return 0, err
	}
	q, err := euler.ToQuaternion(b[0], b[1], b[2], euler.Degrees)
	if err != nil {
		return 0, err
	}

	return euler.Angle(p, q), nil
}
