// SPDX-License-Identifier: MIT

// Package euler converts Euler angle triples into unit quaternions.
//
// Angle series store one (yaw, pitch, roll) triple per tracked joint. The
// rotations are applied in Z-Y-X order: yaw about z, pitch about y and
// roll about x. Converting to quaternions lets callers compare orientations
// without the wrap-around and gimbal artefacts of raw angle differences;
// see Angle.
//
// Units default to degrees, matching the recording tools that produce the
// series. Radians are accepted with Radians.
package euler
