// Package series loads motion recordings and wraps them in a typed
// TimeSeries container.
//
// Input format: one frame per line, comma-separated numbers grouped in
// triples, one triple per tracked point:
//
//	x0,y0,z0,x1,y1,z1,…
//
// Files ending in ".gz" are decompressed transparently. Blank lines are
// skipped; a line whose value count is not a multiple of three, or that
// holds a non-numeric value, is rejected with its line number.
//
// A TimeSeries carries its type ("positions" or "angles"), which scopes
// metric lookup in package distance. Position series can be centered onto
// another series' per-point centroids to remove translational offset
// before alignment.
package series
