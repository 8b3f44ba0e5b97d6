package align_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/motionalign/align"
	"github.com/katalvlaran/motionalign/core"
	"github.com/katalvlaran/motionalign/distance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAlignAll_Order returns one result per query in input order.
func TestAlignAll_Order(t *testing.T) {
	ref := line(0, 1, 2, 3)
	queries := []core.Sequence{
		line(0, 1, 2, 3),
		line(1, 2),
		line(3, 2, 1, 0, 9),
	}

	results, err := align.AlignAll(context.Background(), ref, queries, distance.Euclidean, align.DefaultOptions(), 2)
	require.NoError(t, err)
	require.Len(t, results, len(queries))
	for k, q := range queries {
		single, err := align.Align(ref, q, distance.Euclidean, align.DefaultOptions())
		require.NoError(t, err)
		assert.Equal(t, single, results[k], "query %d", k)
	}
	assert.Zero(t, results[0].Score)
}

// TestAlignAll_FirstError reports the failing query index.
func TestAlignAll_FirstError(t *testing.T) {
	ref := line(0, 1)
	queries := []core.Sequence{
		line(0, 1),
		{{{0, 0, 0}, {1, 1, 1}}},
	}

	_, err := align.AlignAll(context.Background(), ref, queries, distance.Euclidean, align.DefaultOptions(), 0)
	assert.ErrorIs(t, err, align.ErrDimensionMismatch)
	assert.Contains(t, err.Error(), "query 1")
}

// TestAlignAll_Canceled does not start work on a done context.
func TestAlignAll_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := align.AlignAll(ctx, line(0), []core.Sequence{line(0)}, distance.Euclidean, align.DefaultOptions(), 1)
	assert.ErrorIs(t, err, context.Canceled)
}

// TestAlignAll_BadOptions validates before scheduling.
func TestAlignAll_BadOptions(t *testing.T) {
	_, err := align.AlignAll(context.Background(), line(0), nil, distance.Euclidean, align.Options{Gap: align.GapNone, FreeEndGaps: true}, 1)
	assert.ErrorIs(t, err, align.ErrBadOptions)

	_, err = align.AlignAll(context.Background(), line(0), nil, nil, align.DefaultOptions(), 1)
	assert.ErrorIs(t, err, align.ErrBadOptions)
}
