// SPDX-License-Identifier: MIT

package align

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/motionalign/core"
)

// Direction is the backtrack pointer stored in an alignment Cell.
// The numeric order is also the tie-break order.
type Direction uint8

const (
	// None marks the traceback terminal at (0,0) and unreachable cells.
	None Direction = iota

	// Left consumes a frame of B only (gap in A).
	Left

	// Up consumes a frame of A only (gap in B).
	Up

	// Diagonal matches a frame of A with a frame of B.
	Diagonal
)

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case None:
		return "none"
	case Left:
		return "left"
	case Up:
		return "up"
	case Diagonal:
		return "diagonal"
	default:
		return fmt.Sprintf("direction(%d)", uint8(d))
	}
}

// Cell is one entry of the DP matrix: best partial score and the move
// that produced it.
type Cell struct {
	Score float64
	Back  Direction
}

// grid is a row-major (rows × cols) matrix of Cells allocated per call.
type grid struct {
	cols  int
	cells []Cell
}

func newGrid(rows, cols int) *grid {
	return &grid{cols: cols, cells: make([]Cell, rows*cols)}
}

func (g *grid) at(i, j int) *Cell { return &g.cells[i*g.cols+j] }

// GapIndex is the Slot.Index of a GAP.
const GapIndex = -1

// Slot is one side of an alignment column: a Frame together with its index
// in the source Sequence, or a GAP.
type Slot struct {
	Index int
	Frame core.Frame
}

// Gap is the GAP placeholder.
var Gap = Slot{Index: GapIndex}

// IsGap reports whether s is a GAP.
func (s Slot) IsGap() bool { return s.Index == GapIndex }

// Result is a finished alignment.
type Result struct {
	// A and B are parallel: column k pairs A[k] with B[k].
	A, B []Slot

	// Moves holds the transition of every column, in forward order.
	Moves []Direction

	// Score is the total cost of the chosen path.
	Score float64
}

// Len returns the number of alignment columns.
func (r Result) Len() int { return len(r.Moves) }

// Matches returns the (indexA, indexB) pairs of all Diagonal columns.
func (r Result) Matches() [][2]int {
	var out [][2]int
	for k, mv := range r.Moves {
		if mv == Diagonal {
			out = append(out, [2]int{r.A[k].Index, r.B[k].Index})
		}
	}

	return out
}

// Gaps returns the number of GAP slots on the A side and on the B side.
func (r Result) Gaps() (inA, inB int) {
	for k := range r.Moves {
		if r.A[k].IsGap() {
			inA++
		}
		if r.B[k].IsGap() {
			inB++
		}
	}

	return inA, inB
}

// GapModel selects how Left/Up moves are priced.
type GapModel int

const (
	// GapNone is the legacy model: free borders, +∞ interior gaps.
	GapNone GapModel = iota

	// GapLinear charges Options.GapCost per gapped frame.
	GapLinear

	// GapAffine charges GapOpen for the first and GapExtend for every
	// further frame of a gap run.
	GapAffine
)

var gapModelNames = [...]string{
	GapNone:   "none",
	GapLinear: "linear",
	GapAffine: "affine",
}

// String implements fmt.Stringer.
func (g GapModel) String() string {
	if g < 0 || int(g) >= len(gapModelNames) {
		return fmt.Sprintf("gapmodel(%d)", int(g))
	}

	return gapModelNames[g]
}

// ParseGapModel maps "none", "linear" or "affine" (any case) to a GapModel.
func ParseGapModel(s string) (GapModel, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for g, n := range gapModelNames {
		if n == name {
			return GapModel(g), nil
		}
	}

	return GapNone, fmt.Errorf("%w: unknown gap model %q (valid options: %s)",
		ErrBadOptions, s, strings.Join(gapModelNames[:], ","))
}

// Options configures Align.
//
// Fields:
//   - Gap         — gap model (default GapNone, the legacy behaviour).
//   - GapCost     — per-frame cost for GapLinear.
//   - GapOpen     — cost of the first frame of a gap run for GapAffine.
//   - GapExtend   — cost of every further frame of a run for GapAffine.
//   - FreeEndGaps — leading/trailing gaps that consume B are free.
//     Not allowed with GapNone.
type Options struct {
	Gap         GapModel
	GapCost     float64
	GapOpen     float64
	GapExtend   float64
	FreeEndGaps bool
}

// DefaultOptions returns the legacy configuration.
func DefaultOptions() Options {
	return Options{Gap: GapNone}
}

// Validate checks the Options for consistency.
//
// Costs used by the selected model must be finite and non-negative.
// Costs of other models are ignored.
func (o Options) Validate() error {
	switch o.Gap {
	case GapNone:
		if o.FreeEndGaps {
			return fmt.Errorf("%w: free end gaps need a linear or affine gap model", ErrBadOptions)
		}
	case GapLinear:
		if err := checkCost("gap cost", o.GapCost); err != nil {
			return err
		}
	case GapAffine:
		if err := checkCost("gap open", o.GapOpen); err != nil {
			return err
		}
		if err := checkCost("gap extend", o.GapExtend); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: unknown gap model %d", ErrBadOptions, int(o.Gap))
	}

	return nil
}

func checkCost(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return fmt.Errorf("%w: %s must be finite and non-negative, got %v", ErrBadOptions, name, v)
	}

	return nil
}
