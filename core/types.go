// SPDX-License-Identifier: MIT

package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core value checks.
var (
	// ErrDimensionMismatch indicates two Points, two Frames or two Sequences
	// that are expected to correspond have incompatible widths.
	ErrDimensionMismatch = errors.New("core: dimension mismatch")
)

// PointDim is the number of components in a tracked Point.
const PointDim = 3

// Point is an ordered tuple of real components, normally (x, y, z).
// It is a slice so that malformed input of another arity stays
// representable and is reported instead of silently truncated.
type Point []float64

// Frame is the ordered set of Points captured at one time step.
type Frame []Point

// Sequence is an ordered list of Frames describing one recording.
type Sequence []Frame

// Width returns the number of Points in the frame.
func (f Frame) Width() int { return len(f) }

// Equal reports whether f and g hold the same Points in the same order.
func (f Frame) Equal(g Frame) bool {
	if len(f) != len(g) {
		return false
	}
	for i := range f {
		if len(f[i]) != len(g[i]) {
			return false
		}
		for k := range f[i] {
			if f[i][k] != g[i][k] {
				return false
			}
		}
	}

	return true
}

// Len returns the number of Frames.
func (s Sequence) Len() int { return len(s) }

// Width returns the common Frame width of s.
//
// An empty Sequence has width 0. If any Frame differs in width from the
// first one, Width returns ErrDimensionMismatch naming the offending index.
//
// Complexity: O(len(s)).
func (s Sequence) Width() (int, error) {
	if len(s) == 0 {
		return 0, nil
	}
	w := len(s[0])
	for i := 1; i < len(s); i++ {
		if len(s[i]) != w {
			return 0, fmt.Errorf("frame %d has %d points, frame 0 has %d: %w", i, len(s[i]), w, ErrDimensionMismatch)
		}
	}

	return w, nil
}

// Equal reports whether s and t contain equal Frames in the same order.
func (s Sequence) Equal(t Sequence) bool {
	if len(s) != len(t) {
		return false
	}
	for i := range s {
		if !s[i].Equal(t[i]) {
			return false
		}
	}

	return true
}

// CompatibleWidths verifies that a and b are internally consistent and that
// any Frame of a can be compared with any Frame of b.
//
// Empty sequences are compatible with everything: they never take part in
// a frame comparison.
func CompatibleWidths(a, b Sequence) error {
	wa, err := a.Width()
	if err != nil {
		return fmt.Errorf("first sequence: %w", err)
	}
	wb, err := b.Width()
	if err != nil {
		return fmt.Errorf("second sequence: %w", err)
	}
	if len(a) > 0 && len(b) > 0 && wa != wb {
		return fmt.Errorf("frames have %d and %d points: %w", wa, wb, ErrDimensionMismatch)
	}

	return nil
}
