// Package motionalign is your toolkit for comparing recorded motion:
// skeleton positions or joint angles sampled over time, aligned frame by
// frame so that two performances of the same movement can be compared.
//
// What is in the box?
//
//	• Frames: one time point of every tracked 3D point (core)
//	• Metrics: Euclidean, squared Euclidean, orientation (distance)
//	• Global alignment with legacy, linear or affine gaps (align)
//	• Dynamic Time Warping over frames (dtw)
//	• Typed time series, CSV/gzip loading, centroid centering (series)
//	• Euler angle → quaternion conversion (euler)
//	• Text rendering, cost plots and HTML charts (report)
//	• JSON/HuJSON run settings (config)
//	• The motionalign command (cmd/motionalign)
//
// Under the hood, the packages are layered:
//
//	core/     — Point, Frame, Sequence and width checks
//	distance/ — PointFunc metrics, FrameDistance and the metric registry
//	align/    — DP fill, traceback, gap models and AlignAll
//	dtw/      — warping distance and path in three memory modes
//	series/   — TimeSeries container, Parse and Load
//	euler/    — ToQuaternion and Angle
//	report/   — WriteAlignment, WritePath, ColumnCosts, PlotCost, RenderHTML
//	config/   — RunConfig with defaults and validation
//
// Quick ASCII example (one point per frame, legacy gaps):
//
//	a:  ---  (0,0,0)
//	b: (0,0,0) (1,1,1)
//
//	the single frame of a is matched with the last frame of b and the
//	leftover frame of b is paired with a GAP.
//
//	go install github.com/katalvlaran/motionalign/cmd/motionalign@latest
package motionalign
