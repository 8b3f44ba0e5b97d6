// SPDX-License-Identifier: MIT

package align

import (
	"fmt"
	"math"

	"github.com/katalvlaran/motionalign/core"
	"github.com/katalvlaran/motionalign/distance"
)

// Align computes the optimal global alignment of a and b.
//
// Algorithm outline (GapNone / GapLinear):
//  1. Let n = len(a), m = len(b). Allocate an (n+1)×(m+1) matrix M.
//  2. Initialize:
//     M[0][0] = (0, None)
//     M[i][0] = (i·g, Up)    for i = 1..n
//     M[0][j] = (j·g, Left)  for j = 1..m
//     where g = 0 for GapNone, GapCost for GapLinear (row 0 is free
//     when FreeEndGaps is set).
//  3. For i = 1..n, j = 1..m:
//     left  = M[i][j-1] + gap
//     up    = M[i-1][j] + gap
//     diag  = M[i-1][j-1] + FrameDistance(a[i-1], b[j-1])
//     M[i][j] = first strict minimum of (left, up, diag)
//     where gap = +∞ for GapNone.
//  4. Traceback from (n, m), or from the best cell of row n under
//     FreeEndGaps, then reverse.
//
// GapAffine runs the three-state variant described on alignAffine.
//
// Errors:
//   - ErrBadOptions         — invalid opts or nil fn.
//   - ErrDimensionMismatch  — frames of different widths.
//   - ErrInvariantViolation — NaN frame distance or impossible pointer
//     during traceback.
//
// No partial Result is returned on error.
func Align(a, b core.Sequence, fn distance.PointFunc, opts Options) (Result, error) {
	if fn == nil {
		return Result{}, fmt.Errorf("%w: nil distance function", ErrBadOptions)
	}
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}
	if err := core.CompatibleWidths(a, b); err != nil {
		return Result{}, err
	}

	if opts.Gap == GapAffine {
		return alignAffine(a, b, fn, opts)
	}

	return alignLinear(a, b, fn, opts)
}

// alignLinear fills the single-state matrix used by GapNone and GapLinear.
func alignLinear(a, b core.Sequence, fn distance.PointFunc, opts Options) (Result, error) {
	n, m := len(a), len(b)
	inf := math.Inf(1)

	gap, border := inf, 0.0
	if opts.Gap == GapLinear {
		gap, border = opts.GapCost, opts.GapCost
	}
	rowBorder := border
	if opts.FreeEndGaps {
		rowBorder = 0
	}

	M := newGrid(n+1, m+1)
	*M.at(0, 0) = Cell{Score: 0, Back: None}
	for i := 1; i <= n; i++ {
		*M.at(i, 0) = Cell{Score: float64(i) * border, Back: Up}
	}
	for j := 1; j <= m; j++ {
		*M.at(0, j) = Cell{Score: float64(j) * rowBorder, Back: Left}
	}

	var candidates [3]float64
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			cost, err := frameCost(a, b, i, j, fn)
			if err != nil {
				return Result{}, err
			}
			candidates[0] = M.at(i, j-1).Score + gap
			candidates[1] = M.at(i-1, j).Score + gap
			candidates[2] = M.at(i-1, j-1).Score + cost

			best := Cell{Score: inf, Back: None}
			for k, v := range candidates {
				if v < best.Score {
					best = Cell{Score: v, Back: Direction(k + 1)}
				}
			}
			*M.at(i, j) = best
		}
	}

	endJ := m
	if opts.FreeEndGaps {
		endJ = bestInRow(m, func(j int) float64 { return M.at(n, j).Score })
	}

	t := newTrace(a, b)
	t.trailing(m, endJ)
	i, j := n, endJ
	for i > 0 && j > 0 {
		var err error
		if i, j, err = t.emit(M.at(i, j).Back, i, j); err != nil {
			return Result{}, err
		}
	}
	t.drain(i, j)

	return t.result(M.at(n, endJ).Score), nil
}

// frameCost prices matching a[i-1] with b[j-1]. A NaN cost is reported
// instead of letting the gap candidates route around it.
func frameCost(a, b core.Sequence, i, j int, fn distance.PointFunc) (float64, error) {
	cost, err := distance.FrameDistance(a[i-1], b[j-1], fn)
	if err != nil {
		return 0, fmt.Errorf("frames a[%d], b[%d]: %w", i-1, j-1, err)
	}
	if math.IsNaN(cost) {
		return 0, fmt.Errorf("%w: frames a[%d], b[%d]: distance is NaN", ErrInvariantViolation, i-1, j-1)
	}

	return cost, nil
}

// bestInRow returns the column of the minimum score in the last row,
// preferring the rightmost cell on ties. score(m) seeds the search.
func bestInRow(m int, score func(j int) float64) int {
	best, bestScore := m, score(m)
	for j := m - 1; j >= 0; j-- {
		if s := score(j); s < bestScore {
			best, bestScore = j, s
		}
	}

	return best
}

// trace accumulates alignment columns from the end towards the start.
type trace struct {
	a, b       core.Sequence
	colA, colB []Slot
	moves      []Direction
}

func newTrace(a, b core.Sequence) *trace {
	capHint := len(a) + len(b)
	return &trace{
		a:     a,
		b:     b,
		colA:  make([]Slot, 0, capHint),
		colB:  make([]Slot, 0, capHint),
		moves: make([]Direction, 0, capHint),
	}
}

// emit appends the column for move d taken into cell (i, j) and returns
// the predecessor cell. Unknown moves and moves leaving the matrix are
// invariant violations.
func (t *trace) emit(d Direction, i, j int) (int, int, error) {
	switch {
	case d == Left && j > 0:
		t.push(Gap, t.slotB(j-1), d)
		return i, j - 1, nil
	case d == Up && i > 0:
		t.push(t.slotA(i-1), Gap, d)
		return i - 1, j, nil
	case d == Diagonal && i > 0 && j > 0:
		t.push(t.slotA(i-1), t.slotB(j-1), d)
		return i - 1, j - 1, nil
	default:
		return i, j, fmt.Errorf("%w: pointer %v at cell (%d,%d)", ErrInvariantViolation, d, i, j)
	}
}

// trailing emits b[endJ..m-1] against GAPs, last frame first.
func (t *trace) trailing(m, endJ int) {
	for j := m; j > endJ; j-- {
		t.push(Gap, t.slotB(j-1), Left)
	}
}

// drain finishes the traceback once one index has reached zero.
func (t *trace) drain(i, j int) {
	for ; i > 0; i-- {
		t.push(t.slotA(i-1), Gap, Up)
	}
	for ; j > 0; j-- {
		t.push(Gap, t.slotB(j-1), Left)
	}
}

func (t *trace) push(sa, sb Slot, d Direction) {
	t.colA = append(t.colA, sa)
	t.colB = append(t.colB, sb)
	t.moves = append(t.moves, d)
}

func (t *trace) slotA(i int) Slot { return Slot{Index: i, Frame: t.a[i]} }
func (t *trace) slotB(j int) Slot { return Slot{Index: j, Frame: t.b[j]} }

// result reverses the accumulated columns into forward order.
func (t *trace) result(score float64) Result {
	for l, r := 0, len(t.moves)-1; l < r; l, r = l+1, r-1 {
		t.colA[l], t.colA[r] = t.colA[r], t.colA[l]
		t.colB[l], t.colB[r] = t.colB[r], t.colB[l]
		t.moves[l], t.moves[r] = t.moves[r], t.moves[l]
	}

	return Result{A: t.colA, B: t.colB, Moves: t.moves, Score: score}
}
