// SPDX-License-Identifier: MIT

package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/motionalign/core"
	"github.com/katalvlaran/motionalign/distance"
	"github.com/katalvlaran/motionalign/dtw"
)

// WritePath writes a DTW warping path in the WriteAlignment layout: the
// frames of a visited by the path, Separator, then the frames of b.
// A frame repeats once per path step that stays on it.
func WritePath(w io.Writer, a, b core.Sequence, path []dtw.Coord) error {
	for k, c := range path {
		if c.I < 0 || c.I >= len(a) || c.J < 0 || c.J >= len(b) {
			return fmt.Errorf("report: path step %d (%d,%d) outside %dx%d", k, c.I, c.J, len(a), len(b))
		}
	}
	bw := bufio.NewWriter(w)
	for _, c := range path {
		bw.WriteString(FormatFrame(a[c.I]))
		bw.WriteByte('\n')
	}
	bw.WriteString(Separator)
	bw.WriteByte('\n')
	for _, c := range path {
		bw.WriteString(FormatFrame(b[c.J]))
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// PathCosts returns the frame distance of every step of a warping path.
func PathCosts(a, b core.Sequence, path []dtw.Coord, fn distance.PointFunc) ([]ColumnCost, error) {
	if fn == nil {
		return nil, fmt.Errorf("report: nil distance function")
	}
	out := make([]ColumnCost, len(path))
	for k, c := range path {
		if c.I < 0 || c.I >= len(a) || c.J < 0 || c.J >= len(b) {
			return nil, fmt.Errorf("report: path step %d (%d,%d) outside %dx%d", k, c.I, c.J, len(a), len(b))
		}
		d, err := distance.FrameDistance(a[c.I], b[c.J], fn)
		if err != nil {
			return nil, fmt.Errorf("report: path step %d: %w", k, err)
		}
		out[k] = ColumnCost{Column: k, Cost: d}
	}

	return out, nil
}
