// SPDX-License-Identifier: MIT

package align

import (
	"fmt"
	"math"

	"github.com/katalvlaran/motionalign/core"
	"github.com/katalvlaran/motionalign/distance"
)

// affineCell holds one score and one predecessor state per DP state.
// States are indexed by Direction−1: Left (gap in A), Up (gap in B),
// Diagonal (match), which is also the tie-break order.
type affineCell struct {
	score [3]float64
	from  [3]Direction
}

type affineGrid struct {
	cols  int
	cells []affineCell
}

func (g *affineGrid) at(i, j int) *affineCell { return &g.cells[i*g.cols+j] }

func slot(d Direction) int { return int(d) - 1 }

// best returns the first strict minimum of cand in Left, Up, Diagonal order.
func best(cand [3]float64) (float64, Direction) {
	score, dir := math.Inf(1), None
	for k, v := range cand {
		if v < score {
			score, dir = v, Direction(k+1)
		}
	}

	return score, dir
}

// alignAffine runs the three-state (Gotoh) recurrence:
//
//	D[i][j] = cost(i,j) + min(L[i-1][j-1], U[i-1][j-1], D[i-1][j-1])
//	U[i][j] = min(L[i-1][j] + open, U[i-1][j] + extend, D[i-1][j] + open)
//	L[i][j] = min(L[i][j-1] + extend, U[i][j-1] + open, D[i][j-1] + open)
//
// with D[0][0] = 0 as the start state. A gap run of k frames therefore
// costs open + (k−1)·extend. Row 0 gap runs are free under FreeEndGaps.
// Traceback starts at the best state of the end cell and follows the
// per-state predecessors back to (0,0).
func alignAffine(a, b core.Sequence, fn distance.PointFunc, opts Options) (Result, error) {
	n, m := len(a), len(b)
	inf := math.Inf(1)
	open, extend := opts.GapOpen, opts.GapExtend

	M := &affineGrid{cols: m + 1, cells: make([]affineCell, (n+1)*(m+1))}
	for k := range M.cells {
		M.cells[k].score = [3]float64{inf, inf, inf}
	}

	L, U, D := slot(Left), slot(Up), slot(Diagonal)
	M.at(0, 0).score[D] = 0
	for i := 1; i <= n; i++ {
		c := M.at(i, 0)
		c.score[U] = open + float64(i-1)*extend
		c.from[U] = Up
		if i == 1 {
			c.from[U] = Diagonal
		}
	}
	for j := 1; j <= m; j++ {
		c := M.at(0, j)
		c.score[L] = open + float64(j-1)*extend
		if opts.FreeEndGaps {
			c.score[L] = 0
		}
		c.from[L] = Left
		if j == 1 {
			c.from[L] = Diagonal
		}
	}

	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			cost, err := frameCost(a, b, i, j, fn)
			if err != nil {
				return Result{}, err
			}
			c := M.at(i, j)

			diag := M.at(i-1, j-1)
			s, d := best(diag.score)
			c.score[D], c.from[D] = s+cost, d

			up := M.at(i-1, j)
			c.score[U], c.from[U] = best([3]float64{
				up.score[L] + open,
				up.score[U] + extend,
				up.score[D] + open,
			})

			left := M.at(i, j-1)
			c.score[L], c.from[L] = best([3]float64{
				left.score[L] + extend,
				left.score[U] + open,
				left.score[D] + open,
			})
		}
	}

	endJ := m
	if opts.FreeEndGaps {
		endJ = bestInRow(m, func(j int) float64 {
			s, _ := best(M.at(n, j).score)
			return s
		})
	}
	total, state := best(M.at(n, endJ).score)

	t := newTrace(a, b)
	t.trailing(m, endJ)
	i, j := n, endJ
	for i > 0 || j > 0 {
		if state == None || math.IsInf(M.at(i, j).score[slot(state)], 1) {
			return Result{}, fmt.Errorf("%w: unreachable state %v at cell (%d,%d)", ErrInvariantViolation, state, i, j)
		}
		prev := M.at(i, j).from[slot(state)]
		var err error
		if i, j, err = t.emit(state, i, j); err != nil {
			return Result{}, err
		}
		state = prev
	}

	return t.result(total), nil
}
