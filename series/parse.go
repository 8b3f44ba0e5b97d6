// SPDX-License-Identifier: MIT

package series

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/motionalign/core"
	"github.com/klauspost/compress/gzip"
)

// maxLineBytes bounds a single frame line; wide skeletons produce long lines.
const maxLineBytes = 16 * 1024 * 1024

// Parse reads one frame per line from r.
//
// Errors:
//   - ErrMalformedLine — non-numeric value or a value count that is not a
//     multiple of core.PointDim; the message names the line.
//   - ErrNoFrames      — no non-blank line was found.
func Parse(r io.Reader) (core.Sequence, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var frames core.Sequence
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		f, err := parseFrame(line)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrMalformedLine, lineNo, err)
		}
		frames = append(frames, f)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("series: read: %w", err)
	}
	if len(frames) == 0 {
		return nil, ErrNoFrames
	}

	return frames, nil
}

func parseFrame(line string) (core.Frame, error) {
	cols := strings.Split(line, ",")
	if len(cols)%core.PointDim != 0 {
		return nil, fmt.Errorf("%d values is not a multiple of %d", len(cols), core.PointDim)
	}
	vals := make([]float64, len(cols))
	for k, c := range cols {
		v, err := strconv.ParseFloat(strings.TrimSpace(c), 64)
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", k, err)
		}
		vals[k] = v
	}
	f := make(core.Frame, 0, len(vals)/core.PointDim)
	for k := 0; k < len(vals); k += core.PointDim {
		f = append(f, core.Point(vals[k:k+core.PointDim:k+core.PointDim]))
	}

	return f, nil
}

// Load reads the file at path, decompressing it when the name ends in
// ".gz" (any case), and returns a TimeSeries of the given type.
// The type is validated before the file is opened.
func Load(path, seriesType string) (*TimeSeries, error) {
	typ, err := checkType(seriesType)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("series: open: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(strings.ToLower(path), ".gz") {
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("series: %s: %w", path, err)
		}
		defer zr.Close()
		r = zr
	}

	frames, err := Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &TimeSeries{Type: typ, Frames: frames}, nil
}
