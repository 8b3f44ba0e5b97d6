package align_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/motionalign/align"
	"github.com/katalvlaran/motionalign/distance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	D = align.Diagonal
	L = align.Left
	U = align.Up
)

// TestAlign_LinearGapPlacement drops the one frame b does not have.
func TestAlign_LinearGapPlacement(t *testing.T) {
	opts := align.Options{Gap: align.GapLinear, GapCost: 0.5}
	res, err := align.Align(line(0, 1, 2, 3), line(0, 1, 3), distance.Euclidean, opts)
	require.NoError(t, err)

	if diff := cmp.Diff([]align.Direction{D, D, U, D}, res.Moves); diff != "" {
		t.Fatalf("moves (-want +got):\n%s", diff)
	}
	assert.Equal(t, 0.5, res.Score)
	assert.True(t, res.B[2].IsGap())
	assert.Equal(t, 2, res.A[2].Index)
}

// TestAlign_AffineFavoursOneRun: two missing frames form a single run
// priced open + extend.
func TestAlign_AffineFavoursOneRun(t *testing.T) {
	a := line(0, 1, 2, 3, 4, 5)
	b := line(0, 1, 4, 5)

	affine, err := align.Align(a, b, distance.Euclidean, align.Options{Gap: align.GapAffine, GapOpen: 1, GapExtend: 0.1})
	require.NoError(t, err)
	if diff := cmp.Diff([]align.Direction{D, D, U, U, D, D}, affine.Moves); diff != "" {
		t.Fatalf("moves (-want +got):\n%s", diff)
	}
	assert.InDelta(t, 1.1, affine.Score, 1e-12)
	assert.Equal(t, [][2]int{{0, 0}, {1, 1}, {4, 2}, {5, 3}}, affine.Matches())

	linear, err := align.Align(a, b, distance.Euclidean, align.Options{Gap: align.GapLinear, GapCost: 1})
	require.NoError(t, err)
	assert.Equal(t, 2.0, linear.Score)
	assert.Equal(t, affine.Matches(), linear.Matches())
}

// TestAlign_AffineEqualsLinear: open == extend reduces to linear pricing.
func TestAlign_AffineEqualsLinear(t *testing.T) {
	pairs := [][2][]float64{
		{{0, 1, 2, 3}, {0, 1, 3}},
		{{5, 1, 4}, {1, 5, 9, 2, 6}},
		{{1}, {1, 2, 3}},
		{{}, {1, 2}},
	}
	for _, c := range []float64{0.25, 1, 3} {
		for _, p := range pairs {
			a, b := line(p[0]...), line(p[1]...)
			lin, err := align.Align(a, b, distance.Euclidean, align.Options{Gap: align.GapLinear, GapCost: c})
			require.NoError(t, err)
			aff, err := align.Align(a, b, distance.Euclidean, align.Options{Gap: align.GapAffine, GapOpen: c, GapExtend: c})
			require.NoError(t, err)
			assert.InDelta(t, lin.Score, aff.Score, 1e-9, "cost %v pair %v", c, p)
		}
	}
}

// TestAlign_FreeEndGaps locates a short sequence inside a longer one.
func TestAlign_FreeEndGaps(t *testing.T) {
	a := line(2, 3)
	b := line(0, 1, 2, 3, 4)

	free, err := align.Align(a, b, distance.Euclidean, align.Options{Gap: align.GapLinear, GapCost: 1, FreeEndGaps: true})
	require.NoError(t, err)
	if diff := cmp.Diff([]align.Direction{L, L, D, D, L}, free.Moves); diff != "" {
		t.Fatalf("moves (-want +got):\n%s", diff)
	}
	assert.Zero(t, free.Score)
	assert.Equal(t, [][2]int{{0, 2}, {1, 3}}, free.Matches())

	global, err := align.Align(a, b, distance.Euclidean, align.Options{Gap: align.GapLinear, GapCost: 1})
	require.NoError(t, err)
	assert.Equal(t, 3.0, global.Score, "three gapped frames of b are charged")
	assert.Equal(t, free.Matches(), global.Matches())

	affine, err := align.Align(a, b, distance.Euclidean, align.Options{Gap: align.GapAffine, GapOpen: 1, GapExtend: 1, FreeEndGaps: true})
	require.NoError(t, err)
	assert.Zero(t, affine.Score)
	assert.Equal(t, free.Matches(), affine.Matches())
	assert.Equal(t, 5, affine.Len())
}

// TestOptions_Validate covers every rejected combination.
func TestOptions_Validate(t *testing.T) {
	assert.NoError(t, align.DefaultOptions().Validate())
	assert.NoError(t, align.Options{Gap: align.GapLinear}.Validate(), "zero linear cost is allowed")

	bad := []align.Options{
		{Gap: align.GapNone, FreeEndGaps: true},
		{Gap: align.GapLinear, GapCost: -1},
		{Gap: align.GapLinear, GapCost: math.Inf(1)},
		{Gap: align.GapAffine, GapOpen: math.NaN(), GapExtend: 1},
		{Gap: align.GapAffine, GapOpen: 1, GapExtend: -0.5},
		{Gap: align.GapModel(7)},
	}
	for _, o := range bad {
		assert.ErrorIs(t, o.Validate(), align.ErrBadOptions, "%+v", o)
		_, err := align.Align(line(1), line(1), distance.Euclidean, o)
		assert.ErrorIs(t, err, align.ErrBadOptions, "Align must validate %+v", o)
	}
}

// TestParseGapModel round-trips the textual names.
func TestParseGapModel(t *testing.T) {
	for _, g := range []align.GapModel{align.GapNone, align.GapLinear, align.GapAffine} {
		got, err := align.ParseGapModel(g.String())
		require.NoError(t, err)
		assert.Equal(t, g, got)
	}
	got, err := align.ParseGapModel(" Affine ")
	require.NoError(t, err)
	assert.Equal(t, align.GapAffine, got)

	_, err = align.ParseGapModel("quadratic")
	assert.ErrorIs(t, err, align.ErrBadOptions)
	assert.Contains(t, err.Error(), "none,linear,affine")
	assert.Equal(t, "gapmodel(9)", align.GapModel(9).String())
	assert.Equal(t, "direction(9)", align.Direction(9).String())
}
