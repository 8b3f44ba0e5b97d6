// Package dtw computes Dynamic Time Warping (DTW) distances between two
// frame Sequences, with optional warping path and memory optimizations.
//
// 🚀 What is DTW?
//
//	DTW finds the best match between two recordings by warping the time
//	axis to minimize cumulative frame distance. Unlike package align it
//	never leaves a frame unmatched: a frame may be matched to several
//	frames of the other recording instead. Typical uses:
//	  • Gesture / motion matching at different speeds
//	  • Comparing sensor traces sampled at drifting rates
//	  • Nearest-recording search and clustering
//
// ✨ Key features:
//   - full-matrix mode: exact O(N·M) time & memory, path recovery
//   - two-row and single-row modes: O(M) memory, distance only
//   - optional Sakoe–Chiba window (|i−j| ≤ w) for speed & constraint
//   - slope penalty to discourage excessive stretching
//   - pluggable point metric (distance.PointFunc), summed per frame
//
// ⚙️ Usage:
//
//	opts := dtw.DefaultOptions()
//	opts.Window = 10
//	opts.ReturnPath = true
//
//	dist, path, err := dtw.DTW(seqA, seqB, distance.Euclidean, &opts)
//
// Performance:
//
//   - Time:   O(N·M·W) where W is the frame width
//   - Memory: O(N·M) (FullMatrix) or O(M) (TwoRows, NoMemory)
package dtw
