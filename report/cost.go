// SPDX-License-Identifier: MIT

package report

import (
	"fmt"

	"github.com/katalvlaran/motionalign/align"
	"github.com/katalvlaran/motionalign/distance"
)

// ColumnCost is the cost profile entry of one alignment column.
type ColumnCost struct {
	Column int
	// Cost is the frame distance of a matched column and 0 for a gap.
	Cost float64
	Gap  bool
}

// ColumnCosts evaluates fn on every matched column of res.
// Gap columns are reported with Gap set, since their price depends on the
// gap model rather than on the frames.
func ColumnCosts(res align.Result, fn distance.PointFunc) ([]ColumnCost, error) {
	if fn == nil {
		return nil, fmt.Errorf("report: nil distance function")
	}
	out := make([]ColumnCost, res.Len())
	for k := range out {
		a, b := res.A[k], res.B[k]
		out[k].Column = k
		if a.IsGap() || b.IsGap() {
			out[k].Gap = true
			continue
		}
		d, err := distance.FrameDistance(a.Frame, b.Frame, fn)
		if err != nil {
			return nil, fmt.Errorf("report: column %d: %w", k, err)
		}
		out[k].Cost = d
	}

	return out, nil
}

// split separates matched and gap columns.
func split(costs []ColumnCost) (matched, gaps []ColumnCost) {
	for _, c := range costs {
		if c.Gap {
			gaps = append(gaps, c)
		} else {
			matched = append(matched, c)
		}
	}

	return matched, gaps
}
