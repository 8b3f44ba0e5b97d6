package euler_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/motionalign/euler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/num/quat"
)

const tol = 1e-12

func assertQuat(t *testing.T, want, got quat.Number) {
	t.Helper()
	assert.InDelta(t, want.Real, got.Real, tol, "real")
	assert.InDelta(t, want.Imag, got.Imag, tol, "i")
	assert.InDelta(t, want.Jmag, got.Jmag, tol, "j")
	assert.InDelta(t, want.Kmag, got.Kmag, tol, "k")
}

// TestToQuaternion_Axes checks a single rotation about each axis.
func TestToQuaternion_Axes(t *testing.T) {
	h := math.Sqrt2 / 2
	cases := []struct {
		name             string
		yaw, pitch, roll float64
		want             quat.Number
	}{
		{"identity", 0, 0, 0, quat.Number{Real: 1}},
		{"yaw", 90, 0, 0, quat.Number{Real: h, Kmag: h}},
		{"pitch", 0, 90, 0, quat.Number{Real: h, Jmag: h}},
		{"roll", 0, 0, 90, quat.Number{Real: h, Imag: h}},
		{"half-turn", 180, 0, 0, quat.Number{Kmag: 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := euler.ToQuaternion(tc.yaw, tc.pitch, tc.roll, euler.Degrees)
			require.NoError(t, err)
			assertQuat(t, tc.want, got)
		})
	}
}

// TestToQuaternion_Units: degrees and radians describe the same rotation,
// and the empty unit means degrees.
func TestToQuaternion_Units(t *testing.T) {
	deg, err := euler.ToQuaternion(30, -45, 60, euler.Degrees)
	require.NoError(t, err)
	rad, err := euler.ToQuaternion(math.Pi/6, -math.Pi/4, math.Pi/3, euler.Radians)
	require.NoError(t, err)
	def, err := euler.ToQuaternion(30, -45, 60, "")
	require.NoError(t, err)

	assertQuat(t, deg, rad)
	assertQuat(t, deg, def)
	assert.InDelta(t, 1.0, quat.Abs(deg), tol, "unit quaternion")

	_, err = euler.ToQuaternion(0, 0, 0, "gradians")
	assert.ErrorIs(t, err, euler.ErrInvalidUnit)
	assert.Contains(t, err.Error(), "degrees,radians")
}

// TestToQuaternion_Composition matches the product yaw * pitch * roll.
func TestToQuaternion_Composition(t *testing.T) {
	y, _ := euler.ToQuaternion(40, 0, 0, euler.Degrees)
	p, _ := euler.ToQuaternion(0, 25, 0, euler.Degrees)
	r, _ := euler.ToQuaternion(0, 0, -70, euler.Degrees)
	got, err := euler.ToQuaternion(40, 25, -70, euler.Degrees)
	require.NoError(t, err)

	assertQuat(t, quat.Mul(quat.Mul(y, p), r), got)
}

// TestAngle measures the rotation between orientations.
func TestAngle(t *testing.T) {
	id, _ := euler.ToQuaternion(0, 0, 0, euler.Degrees)
	yaw, _ := euler.ToQuaternion(90, 0, 0, euler.Degrees)
	full, _ := euler.ToQuaternion(360, 0, 0, euler.Degrees)

	assert.InDelta(t, math.Pi/2, euler.Angle(id, yaw), tol)
	assert.InDelta(t, 0, euler.Angle(id, full), 1e-7, "q and -q are the same orientation")
	assert.InDelta(t, 0, euler.Angle(yaw, yaw), 1e-7)
}

// TestParseUnit accepts any case and defaults to degrees.
func TestParseUnit(t *testing.T) {
	u, err := euler.ParseUnit(" RADIANS ")
	require.NoError(t, err)
	assert.Equal(t, euler.Radians, u)

	u, err = euler.ParseUnit("")
	require.NoError(t, err)
	assert.Equal(t, euler.Degrees, u)

	_, err = euler.ParseUnit("turns")
	assert.ErrorIs(t, err, euler.ErrInvalidUnit)
	assert.Equal(t, []euler.Unit{euler.Degrees, euler.Radians}, euler.Units())
}
