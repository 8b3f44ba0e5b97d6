// SPDX-License-Identifier: MIT

// Package distance computes dissimilarities between tracked Points and
// between whole Frames, and resolves metric names to functions.
//
// What is measured?
//
//	A PointFunc compares two Points (position or angle triples).
//	FrameDistance sums a PointFunc over every aligned point index of two
//	Frames; the sum is the cost of matching the Frames in an alignment.
//
// Metrics:
//
//   - euclidean          √Σ(aᵢ−bᵢ)²
//   - squared_euclidean  Σ(aᵢ−bᵢ)²
//   - orientation        rotation angle between two Euler triples
//     (angles only; see package euler)
//
// Registry:
//
//	Metrics are looked up by name inside a time-series type scope
//	("positions", "angles"). Both scopes share the Euclidean metrics;
//	orientation is registered for angles only.
//
//	fn, err := distance.Resolve("positions", "euclidean")
//	cost, err := distance.FrameDistance(f1, f2, fn)
//
// Errors:
//
//   - ErrDimensionMismatch — Points or Frames of different length.
//   - ErrInvalidMetric     — unknown metric or series type; the error
//     message lists the valid options.
//
// All functions are pure and safe for concurrent use.
package distance
