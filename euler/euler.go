// SPDX-License-Identifier: MIT

package euler

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/num/quat"
)

// ErrInvalidUnit is returned for an angle unit other than Degrees or Radians.
var ErrInvalidUnit = errors.New("euler: invalid unit")

// Unit names the unit of an angle triple.
type Unit string

const (
	Degrees Unit = "degrees"
	Radians Unit = "radians"
)

// Units lists the accepted units.
func Units() []Unit { return []Unit{Degrees, Radians} }

// ParseUnit matches s case-insensitively. The empty string selects Degrees.
func ParseUnit(s string) (Unit, error) {
	u := Unit(strings.ToLower(strings.TrimSpace(s)))
	switch u {
	case "":
		return Degrees, nil
	case Degrees, Radians:
		return u, nil
	}

	return "", fmt.Errorf("%w: %q (valid options: %s,%s)", ErrInvalidUnit, s, Degrees, Radians)
}

// ToQuaternion returns the unit quaternion for the Z-Y-X rotation
// (yaw about z, then pitch about y, then roll about x).
// An empty unit means Degrees.
func ToQuaternion(yaw, pitch, roll float64, unit Unit) (quat.Number, error) {
	switch unit {
	case "", Degrees:
		yaw, pitch, roll = toRadians(yaw), toRadians(pitch), toRadians(roll)
	case Radians:
	default:
		return quat.Number{}, fmt.Errorf("%w: %q (valid options: %s,%s)", ErrInvalidUnit, unit, Degrees, Radians)
	}

	sy, cy := math.Sincos(yaw * 0.5)
	sp, cp := math.Sincos(pitch * 0.5)
	sr, cr := math.Sincos(roll * 0.5)

	return quat.Number{
		Real: cy*cp*cr + sy*sp*sr,
		Imag: cy*cp*sr - sy*sp*cr,
		Jmag: sy*cp*sr + cy*sp*cr,
		Kmag: sy*cp*cr - cy*sp*sr,
	}, nil
}

// Angle returns the rotation angle in radians, within [0, π], that takes
// orientation p to orientation q. Both must be unit quaternions. q and -q
// describe the same orientation and yield 0.
func Angle(p, q quat.Number) float64 {
	dot := p.Real*q.Real + p.Imag*q.Imag + p.Jmag*q.Jmag + p.Kmag*q.Kmag
	dot = math.Abs(dot)
	if dot > 1 {
		dot = 1
	}

	return 2 * math.Acos(dot)
}

func toRadians(deg float64) float64 { return deg * math.Pi / 180 }
