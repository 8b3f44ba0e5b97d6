package series_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/motionalign/align"
	"github.com/katalvlaran/motionalign/core"
	"github.com/katalvlaran/motionalign/distance"
	"github.com/katalvlaran/motionalign/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustNew(t *testing.T, frames core.Sequence, typ string) *series.TimeSeries {
	t.Helper()
	ts, err := series.New(frames, typ)
	require.NoError(t, err)

	return ts
}

// TestNew validates type and emptiness.
func TestNew(t *testing.T) {
	ts := mustNew(t, core.Sequence{{{1, 2, 3}}}, " ANGLES ")
	assert.Equal(t, distance.Angles, ts.Type)

	_, err := series.New(core.Sequence{{{1, 2, 3}}}, "quaternions")
	assert.ErrorIs(t, err, distance.ErrInvalidMetric)
	assert.Contains(t, err.Error(), "angles,positions")

	_, err = series.New(nil, distance.Positions)
	assert.ErrorIs(t, err, series.ErrNoFrames)
}

// TestEqual compares type, shape and values.
func TestEqual(t *testing.T) {
	frames := core.Sequence{{{1, 2, 3}}, {{4, 5, 6}}}
	a := mustNew(t, frames, distance.Positions)
	b := mustNew(t, core.Sequence{{{1, 2, 3}}, {{4, 5, 6}}}, distance.Positions)
	c := mustNew(t, frames, distance.Angles)
	d := mustNew(t, core.Sequence{{{1, 2, 3}}, {{4, 5, 7}}}, distance.Positions)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c), "type differs")
	assert.False(t, a.Equal(d), "value differs")
	assert.False(t, a.Equal(nil))
}

// TestCenters averages every component of every column.
func TestCenters(t *testing.T) {
	ts := mustNew(t, core.Sequence{
		{{0, 0, 0}, {10, 10, 10}},
		{{2, 4, 6}, {10, 10, 10}},
	}, distance.Positions)

	got, err := ts.Centers()
	require.NoError(t, err)
	want := []core.Point{{1, 2, 3}, {10, 10, 10}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Centers mismatch (-want +got):\n%s", diff)
	}
}

// TestCentered translates a copy and leaves the input untouched.
func TestCentered(t *testing.T) {
	ts := mustNew(t, core.Sequence{
		{{0, 0, 0}, {10, 10, 10}},
		{{2, 4, 6}, {10, 10, 10}},
	}, distance.Positions)

	out, err := ts.Centered([]core.Point{{0, 0, 0}, {0, 0, 0}})
	require.NoError(t, err)
	want := core.Sequence{
		{{-1, -2, -3}, {0, 0, 0}},
		{{1, 2, 3}, {0, 0, 0}},
	}
	if diff := cmp.Diff(want, out.Frames); diff != "" {
		t.Fatalf("Centered mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 0.0, ts.Frames[0][0][0], "input must not change")

	_, err = ts.Centered([]core.Point{{0, 0, 0}})
	assert.ErrorIs(t, err, core.ErrDimensionMismatch)

	angles := mustNew(t, ts.Frames, distance.Angles)
	_, err = angles.Centered([]core.Point{{0, 0, 0}, {0, 0, 0}})
	assert.ErrorIs(t, err, series.ErrNotPositions)
}

// TestAlign_Centering removes a constant offset before alignment.
func TestAlign_Centering(t *testing.T) {
	x := mustNew(t, core.Sequence{{{0, 0, 0}}, {{1, 0, 0}}, {{2, 0, 0}}}, distance.Positions)
	y := mustNew(t, core.Sequence{{{5, 5, 5}}, {{6, 5, 5}}, {{7, 5, 5}}}, distance.Positions)

	raw, err := series.Align(x, y, series.AlignConfig{Options: align.DefaultOptions()})
	require.NoError(t, err)
	assert.Greater(t, raw.Score, 0.0)

	centered, err := series.Align(x, y, series.AlignConfig{
		Metric:  distance.MetricSquaredEuclidean,
		Center:  true,
		Options: align.DefaultOptions(),
	})
	require.NoError(t, err)
	assert.InDelta(t, 0.0, centered.Score, 1e-12)
	assert.Equal(t, [][2]int{{0, 0}, {1, 1}, {2, 2}}, centered.Matches())
}

// TestAlign_Errors checks type agreement and metric lookup.
func TestAlign_Errors(t *testing.T) {
	frames := core.Sequence{{{0, 0, 0}}}
	pos := mustNew(t, frames, distance.Positions)
	ang := mustNew(t, frames, distance.Angles)

	_, err := series.Align(pos, ang, series.AlignConfig{})
	assert.ErrorIs(t, err, series.ErrTypeMismatch)

	_, err = series.Align(ang, ang, series.AlignConfig{Metric: "cosine"})
	assert.ErrorIs(t, err, distance.ErrInvalidMetric)

	res, err := series.Align(ang, ang, series.AlignConfig{Center: true})
	require.NoError(t, err, "centering is skipped for angles")
	assert.Zero(t, res.Score)
}
