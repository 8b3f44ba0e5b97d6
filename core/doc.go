// Package core defines the value types shared by every motionalign package:
// Point, Frame and Sequence.
//
// A Point is one tracked entity at one instant: a 3D position (x, y, z) or an
// Euler angle triple. A Frame is the ordered set of Points captured at one
// time step, one entry per tracked joint or sensor. A Sequence is a full
// recording, an ordered list of Frames.
//
//	Sequence
//	  ├─ Frame 0: [ (x,y,z) (x,y,z) … ]
//	  ├─ Frame 1: [ (x,y,z) (x,y,z) … ]
//	  └─ …
//
// Invariants:
//
//   - All Frames of one Sequence share the same width (number of Points).
//     The invariant is not enforced on construction; aligners call
//     Sequence.Width before allocating any DP storage.
//   - Values are treated as immutable. Aligners never modify their inputs;
//     aligned outputs reference the caller's Frames.
//
// The package has no dependencies beyond the standard library and no
// package-level mutable state.
package core
