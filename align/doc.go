// Package align performs global pairwise alignment of two frame Sequences,
// the multi-dimensional analogue of Needleman–Wunsch sequence alignment.
//
// What does it produce?
//
//	Two gap-padded sequences of equal length. Column k pairs A[k] with
//	B[k]; either side may be a GAP when the other recording has no
//	counterpart (dropped or inserted frames).
//
//	A: f0  f1  --- f2
//	B: g0  g1  g2  g3
//
// Cost model:
//
//	Matching two Frames (Diagonal) costs distance.FrameDistance under the
//	caller's PointFunc. Gap costs depend on Options.Gap:
//
//	  GapNone   — legacy model. Borders are free, interior Left/Up moves are
//	              +∞, so past the border only Diagonal moves are possible.
//	  GapLinear — each gapped frame costs GapCost.
//	  GapAffine — a run of k gapped frames costs GapOpen + (k−1)·GapExtend,
//	              computed with a three-state (Match/GapX/GapY) machine.
//
//	FreeEndGaps (linear and affine only) makes gaps that consume B before
//	the first or after the last frame of A free, locating A inside B.
//
// Determinism:
//
//	Equal candidates are resolved in the fixed order Left < Up < Diagonal.
//	Together with a row-major fill this makes the traceback reproducible.
//
// Usage:
//
//	res, err := align.Align(seq1, seq2, distance.Euclidean, align.DefaultOptions())
//	for k := range res.A {
//	    // res.A[k], res.B[k]
//	}
//
// Complexity:
//
//   - Time:   O(n·m·w) where w is the frame width
//   - Memory: O(n·m); the full matrix is kept for traceback
//
// Align is stateless; independent calls may run concurrently. AlignAll
// fans one reference out against many queries on a bounded worker pool.
package align
