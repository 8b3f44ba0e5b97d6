// SPDX-License-Identifier: MIT

package series

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/motionalign/align"
	"github.com/katalvlaran/motionalign/core"
	"github.com/katalvlaran/motionalign/distance"
	"gonum.org/v1/gonum/stat"
)

// TimeSeries is one typed recording: each row is a time point (Frame),
// each column a tracked point.
type TimeSeries struct {
	Type   string
	Frames core.Sequence
}

// New wraps frames in a TimeSeries of the given type. The type is
// lower-cased and must be registered in package distance.
func New(frames core.Sequence, seriesType string) (*TimeSeries, error) {
	typ, err := checkType(seriesType)
	if err != nil {
		return nil, err
	}
	if len(frames) == 0 {
		return nil, ErrNoFrames
	}

	return &TimeSeries{Type: typ, Frames: frames}, nil
}

func checkType(seriesType string) (string, error) {
	typ := strings.ToLower(strings.TrimSpace(seriesType))
	if !distance.ValidSeriesType(typ) {
		return "", fmt.Errorf("%w: invalid series type %q (valid options: %s)",
			distance.ErrInvalidMetric, seriesType, strings.Join(distance.SeriesTypes(), ","))
	}

	return typ, nil
}

// NumRows returns the number of time points.
func (ts *TimeSeries) NumRows() int { return len(ts.Frames) }

// NumCols returns the number of tracked points per time point.
func (ts *TimeSeries) NumCols() int {
	if len(ts.Frames) == 0 {
		return 0
	}
	return len(ts.Frames[0])
}

// Len is NumRows.
func (ts *TimeSeries) Len() int { return ts.NumRows() }

// Equal reports whether both series have the same type, shape and values.
func (ts *TimeSeries) Equal(other *TimeSeries) bool {
	if ts == nil || other == nil {
		return ts == other
	}
	if ts.Type != other.Type || ts.NumRows() != other.NumRows() || ts.NumCols() != other.NumCols() {
		return false
	}

	return ts.Frames.Equal(other.Frames)
}

// Centers returns the per-column centroid: for every tracked point, the mean
// of each component over all time points.
//
// Errors:
//   - core.ErrDimensionMismatch — ragged frames or points.
func (ts *TimeSeries) Centers() ([]core.Point, error) {
	cols, err := ts.Frames.Width()
	if err != nil {
		return nil, err
	}
	rows := ts.NumRows()
	centers := make([]core.Point, cols)
	buf := make([]float64, rows)
	for j := 0; j < cols; j++ {
		dim := len(ts.Frames[0][j])
		c := make(core.Point, dim)
		for v := 0; v < dim; v++ {
			for i := 0; i < rows; i++ {
				p := ts.Frames[i][j]
				if len(p) != dim {
					return nil, fmt.Errorf("frame %d point %d has %d components, want %d: %w",
						i, j, len(p), dim, core.ErrDimensionMismatch)
				}
				buf[i] = p[v]
			}
			c[v] = stat.Mean(buf, nil)
		}
		centers[j] = c
	}

	return centers, nil
}

// Centered returns a copy of ts translated so that its per-column centroids
// equal centers. ts is not modified.
//
// Errors:
//   - ErrNotPositions           — ts is not a positions series.
//   - core.ErrDimensionMismatch — len(centers) or a center's arity differs
//     from the series.
func (ts *TimeSeries) Centered(centers []core.Point) (*TimeSeries, error) {
	if ts.Type != distance.Positions {
		return nil, fmt.Errorf("%w: got %s", ErrNotPositions, ts.Type)
	}
	if len(centers) != ts.NumCols() {
		return nil, fmt.Errorf("%d centers for %d columns: %w", len(centers), ts.NumCols(), core.ErrDimensionMismatch)
	}
	mine, err := ts.Centers()
	if err != nil {
		return nil, err
	}
	deltas := make([]core.Point, len(centers))
	for j := range centers {
		if len(centers[j]) != len(mine[j]) {
			return nil, fmt.Errorf("center %d has %d components, want %d: %w",
				j, len(centers[j]), len(mine[j]), core.ErrDimensionMismatch)
		}
		d := make(core.Point, len(mine[j]))
		for v := range d {
			d[v] = mine[j][v] - centers[j][v]
		}
		deltas[j] = d
	}

	frames := make(core.Sequence, len(ts.Frames))
	for i, row := range ts.Frames {
		f := make(core.Frame, len(row))
		for j, p := range row {
			q := make(core.Point, len(p))
			for v := range p {
				q[v] = p[v] - deltas[j][v]
			}
			f[j] = q
		}
		frames[i] = f
	}

	return &TimeSeries{Type: ts.Type, Frames: frames}, nil
}

// AlignConfig selects how two TimeSeries are aligned.
type AlignConfig struct {
	// Metric is looked up in the registry scope of the series type;
	// empty selects distance.DefaultMetric.
	Metric string

	// Center translates a positions series y onto the centroids of x before
	// alignment. Ignored for angle series.
	Center bool

	// Options are passed to align.Align.
	Options align.Options
}

// Align aligns x with y under cfg. Both series must share a type. When y
// is centered, the B side of the Result refers to the centered frames.
func Align(x, y *TimeSeries, cfg AlignConfig) (align.Result, error) {
	if x.Type != y.Type {
		return align.Result{}, fmt.Errorf("%w: %s vs %s", ErrTypeMismatch, x.Type, y.Type)
	}
	metric := cfg.Metric
	if metric == "" {
		metric = distance.DefaultMetric
	}
	fn, err := distance.Resolve(x.Type, metric)
	if err != nil {
		return align.Result{}, err
	}

	if cfg.Center && y.Type == distance.Positions {
		centers, err := x.Centers()
		if err != nil {
			return align.Result{}, fmt.Errorf("first series: %w", err)
		}
		if y, err = y.Centered(centers); err != nil {
			return align.Result{}, fmt.Errorf("second series: %w", err)
		}
	}

	return align.Align(x.Frames, y.Frames, fn, cfg.Options)
}
