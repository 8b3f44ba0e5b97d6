// SPDX-License-Identifier: MIT

package distance

import (
	"fmt"
	"math"

	"github.com/katalvlaran/motionalign/core"
	"gonum.org/v1/gonum/floats"
)

// PointFunc computes a non-negative dissimilarity between two Points.
// Implementations must return ErrDimensionMismatch (possibly wrapped) when
// the Points have different lengths.
type PointFunc func(a, b core.Point) (float64, error)

// SquaredEuclidean returns Σ(a[i]−b[i])².
//
// Complexity: O(len(a)).
func SquaredEuclidean(a, b core.Point) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("points of length %d and %d: %w", len(a), len(b), ErrDimensionMismatch)
	}
	diff := make([]float64, len(a))
	floats.SubTo(diff, a, b)

	return floats.Dot(diff, diff), nil
}

// Euclidean returns the square root of SquaredEuclidean(a, b).
func Euclidean(a, b core.Point) (float64, error) {
	sq, err := SquaredEuclidean(a, b)
	if err != nil {
		return 0, err
	}

	return math.Sqrt(sq), nil
}

// FrameDistance sums fn over every aligned point index of a and b.
//
// The Frames must have the same width; otherwise ErrDimensionMismatch is
// returned. Errors from fn are returned with the failing point index.
//
// Complexity: O(width · cost(fn)).
func FrameDistance(a, b core.Frame, fn PointFunc) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("frames of width %d and %d: %w", len(a), len(b), ErrDimensionMismatch)
	}
	var sum float64
	for c := range a {
		d, err := fn(a[c], b[c])
		if err != nil {
			return 0, fmt.Errorf("point %d: %w", c, err)
		}
		sum += d
	}

	return sum, nil
}
