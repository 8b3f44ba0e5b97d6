package distance_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/motionalign/core"
	"github.com/katalvlaran/motionalign/distance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestResolve_Known resolves every registered metric in every scope.
func TestResolve_Known(t *testing.T) {
	a, b := core.Point{0, 0, 0}, core.Point{1, 2, 2}
	want := map[string]float64{
		distance.MetricEuclidean:        3,
		distance.MetricSquaredEuclidean: 9,
	}
	for _, typ := range distance.SeriesTypes() {
		for _, name := range distance.Metrics(typ) {
			if name == distance.MetricOrientation {
				continue
			}
			fn, err := distance.Resolve(typ, name)
			require.NoError(t, err, "%s/%s", typ, name)
			got, err := fn(a, b)
			require.NoError(t, err)
			assert.Equal(t, want[name], got, "%s/%s", typ, name)
		}
	}
}

// TestResolve_CaseInsensitive mirrors the lower-casing of user input.
func TestResolve_CaseInsensitive(t *testing.T) {
	fn, err := distance.Resolve(" Positions ", "SQUARED_Euclidean")
	require.NoError(t, err)
	got, err := fn(core.Point{0, 0, 0}, core.Point{1, 2, 2})
	require.NoError(t, err)
	assert.Equal(t, 9.0, got)
}

// TestResolve_Invalid lists the valid options in the error.
func TestResolve_Invalid(t *testing.T) {
	_, err := distance.Resolve(distance.Positions, "manhattan")
	assert.ErrorIs(t, err, distance.ErrInvalidMetric)
	assert.Contains(t, err.Error(), "euclidean,squared_euclidean")

	_, err = distance.Resolve("velocities", distance.MetricEuclidean)
	assert.ErrorIs(t, err, distance.ErrInvalidMetric)
	assert.Contains(t, err.Error(), "angles,positions")
}

// TestRegistryListing exposes a stable, sorted view of the registry.
func TestRegistryListing(t *testing.T) {
	assert.Equal(t, []string{distance.Angles, distance.Positions}, distance.SeriesTypes())
	assert.Equal(t, []string{distance.MetricEuclidean, distance.MetricOrientation, distance.MetricSquaredEuclidean}, distance.Metrics("angles"))
	assert.Equal(t, []string{distance.MetricEuclidean, distance.MetricSquaredEuclidean}, distance.Metrics("positions"))
	assert.Nil(t, distance.Metrics("unknown"))
	assert.True(t, distance.ValidSeriesType("ANGLES"))
	assert.False(t, distance.ValidSeriesType(""))
}

// TestResolve_OrientationScope keeps the angle-only metric out of positions.
func TestResolve_OrientationScope(t *testing.T) {
	_, err := distance.Resolve(distance.Positions, distance.MetricOrientation)
	assert.ErrorIs(t, err, distance.ErrInvalidMetric)

	fn, err := distance.Resolve(distance.Angles, "Orientation")
	require.NoError(t, err)
	got, err := fn(core.Point{0, 0, 0}, core.Point{0, 0, 90})
	require.NoError(t, err)
	assert.InDelta(t, math.Pi/2, got, 1e-12)
}
