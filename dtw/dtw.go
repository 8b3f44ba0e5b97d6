// SPDX-License-Identifier: MIT

package dtw

import (
	"fmt"
	"math"

	"github.com/katalvlaran/motionalign/core"
	"github.com/katalvlaran/motionalign/distance"
)

// DTW computes the Dynamic Time Warping distance between a and b.
// Returns (distance, path, error).
//
// Algorithm Outline (Full-Matrix):
//  1. Let n = len(a), m = len(b). Allocate (n+1)x(m+1) DP matrix D.
//  2. Initialize:
//     D[0][0] = 0
//     D[i][0] = +∞ for i=1..n
//     D[0][j] = +∞ for j=1..m
//  3. For i = 1..n:
//     For j = 1..m (and |i-j| ≤ Window, if constrained):
//     cost  = FrameDistance(a[i-1], b[j-1], fn)
//     ins   = D[i-1][j]   + SlopePenalty
//     del   = D[i][j-1]   + SlopePenalty
//     match = D[i-1][j-1]
//     D[i][j] = cost + min(ins, del, match)
//  4. distance = D[n][m].
//  5. If ReturnPath, backtrack from (n,m) choosing the predecessor with the
//     smallest step value, preferring the diagonal on ties.
//
// Errors:
//   - ErrBadInput          — nil fn, Window < -1, negative or NaN penalty.
//   - ErrPathNeedsMatrix   — ReturnPath=true outside FullMatrix mode.
//   - ErrEmptyInput        — either input is empty.
//   - core.ErrDimensionMismatch — frames of different widths.
func DTW(a, b core.Sequence, fn distance.PointFunc, opts *Options) (float64, []Coord, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := validate(fn, o); err != nil {
		return 0, nil, err
	}
	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		return 0, nil, ErrEmptyInput
	}
	if err := core.CompatibleWidths(a, b); err != nil {
		return 0, nil, err
	}

	window := math.MaxInt32
	if o.Window >= 0 {
		window = o.Window
	}
	cost := func(i, j int) (float64, error) {
		d, err := distance.FrameDistance(a[i-1], b[j-1], fn)
		if err != nil {
			return 0, fmt.Errorf("frames a[%d], b[%d]: %w", i-1, j-1, err)
		}
		return d, nil
	}

	switch o.MemoryMode {
	case TwoRows:
		d, err := twoRows(n, m, window, o.SlopePenalty, cost)
		return d, nil, err
	case NoMemory:
		d, err := oneRow(n, m, window, o.SlopePenalty, cost)
		return d, nil, err
	}

	dp, err := fullMatrix(n, m, window, o.SlopePenalty, cost)
	if err != nil {
		return 0, nil, err
	}
	var path []Coord
	if o.ReturnPath && !math.IsInf(dp[n][m], 1) {
		path = backtrack(dp, n, m, o.SlopePenalty)
	}

	return dp[n][m], path, nil
}

func validate(fn distance.PointFunc, o Options) error {
	if fn == nil {
		return fmt.Errorf("%w: nil distance function", ErrBadInput)
	}
	if o.Window < -1 {
		return fmt.Errorf("%w: window %d < -1", ErrBadInput, o.Window)
	}
	if math.IsNaN(o.SlopePenalty) || o.SlopePenalty < 0 {
		return fmt.Errorf("%w: slope penalty %v", ErrBadInput, o.SlopePenalty)
	}
	switch o.MemoryMode {
	case FullMatrix:
	case TwoRows, NoMemory:
		if o.ReturnPath {
			return ErrPathNeedsMatrix
		}
	default:
		return fmt.Errorf("%w: memory mode %d", ErrBadInput, o.MemoryMode)
	}

	return nil
}

type costFunc func(i, j int) (float64, error)

func fullMatrix(n, m, window int, penalty float64, cost costFunc) ([][]float64, error) {
	inf := math.Inf(1)
	dp := make([][]float64, n+1)
	for i := range dp {
		dp[i] = make([]float64, m+1)
		for j := range dp[i] {
			dp[i][j] = inf
		}
	}
	dp[0][0] = 0

	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if abs(i-j) > window {
				continue
			}
			c, err := cost(i, j)
			if err != nil {
				return nil, err
			}
			dp[i][j] = c + min3(dp[i-1][j]+penalty, dp[i][j-1]+penalty, dp[i-1][j-1])
		}
	}

	return dp, nil
}

func twoRows(n, m, window int, penalty float64, cost costFunc) (float64, error) {
	inf := math.Inf(1)
	prev := make([]float64, m+1)
	curr := make([]float64, m+1)
	for j := 1; j <= m; j++ {
		prev[j] = inf
	}

	for i := 1; i <= n; i++ {
		curr[0] = inf
		for j := 1; j <= m; j++ {
			if abs(i-j) > window {
				curr[j] = inf
				continue
			}
			c, err := cost(i, j)
			if err != nil {
				return 0, err
			}
			curr[j] = c + min3(prev[j]+penalty, curr[j-1]+penalty, prev[j-1])
		}
		prev, curr = curr, prev
	}

	return prev[m], nil
}

// oneRow updates a single row in place; diag carries D[i-1][j-1].
func oneRow(n, m, window int, penalty float64, cost costFunc) (float64, error) {
	inf := math.Inf(1)
	row := make([]float64, m+1)
	for j := 1; j <= m; j++ {
		row[j] = inf
	}

	for i := 1; i <= n; i++ {
		diag := row[0]
		row[0] = inf
		for j := 1; j <= m; j++ {
			up := row[j]
			if abs(i-j) > window {
				row[j] = inf
			} else {
				c, err := cost(i, j)
				if err != nil {
					return 0, err
				}
				row[j] = c + min3(up+penalty, row[j-1]+penalty, diag)
			}
			diag = up
		}
	}

	return row[m], nil
}

// backtrack walks from (n,m) to (1,1). On equal step values the diagonal
// wins, then the vertical step.
func backtrack(dp [][]float64, n, m int, penalty float64) []Coord {
	path := make([]Coord, 0, n+m)
	i, j := n, m
	for i > 0 && j > 0 {
		path = append(path, Coord{I: i - 1, J: j - 1})
		match := dp[i-1][j-1]
		ins := dp[i-1][j] + penalty
		del := dp[i][j-1] + penalty
		switch {
		case match <= ins && match <= del:
			i, j = i-1, j-1
		case ins <= del:
			i--
		default:
			j--
		}
	}
	// reverse path in-place
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return path
}

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// min3 returns the minimum of three float64 values.
func min3(a, b, c float64) float64 {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
