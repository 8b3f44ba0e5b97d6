// SPDX-License-Identifier: MIT

// Package config loads motionalign run settings from JSON or HuJSON files.
//
// Every field is optional. Unset fields fall back to the defaults returned
// by the Get* accessors, so a partial file only overrides what it names.
// The command line applies its flags on top of a loaded file.
package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/motionalign/align"
	"github.com/katalvlaran/motionalign/distance"
	"github.com/katalvlaran/motionalign/dtw"
	"github.com/tailscale/hujson"
)

// Alignment modes.
const (
	ModeNW  = "nw"
	ModeDTW = "dtw"
)

const maxFileSize = 1 * 1024 * 1024 // 1MB

// RunConfig holds the settings of one motionalign run.
type RunConfig struct {
	// Input
	SeriesType *string `json:"series_type,omitempty"`
	Metric     *string `json:"metric,omitempty"`
	Center     *bool   `json:"center,omitempty"`

	// Engine
	Mode        *string  `json:"mode,omitempty"` // "nw" or "dtw"
	Gap         *string  `json:"gap,omitempty"`  // "none", "linear" or "affine"
	GapCost     *float64 `json:"gap_cost,omitempty"`
	GapOpen     *float64 `json:"gap_open,omitempty"`
	GapExtend   *float64 `json:"gap_extend,omitempty"`
	FreeEndGaps *bool    `json:"free_end_gaps,omitempty"`

	// DTW
	Window       *int     `json:"window,omitempty"`
	SlopePenalty *float64 `json:"slope_penalty,omitempty"`

	// Batch
	Workers *int `json:"workers,omitempty"`
}

func ptrFloat64(v float64) *float64 { return &v }
func ptrBool(v bool) *bool          { return &v }
func ptrString(v string) *string    { return &v }
func ptrInt(v int) *int             { return &v }

// DefaultRunConfig returns a RunConfig with every field set to its default.
func DefaultRunConfig() *RunConfig {
	return &RunConfig{
		SeriesType:   ptrString(distance.Positions),
		Metric:       ptrString(distance.DefaultMetric),
		Center:       ptrBool(false),
		Mode:         ptrString(ModeNW),
		Gap:          ptrString(align.GapNone.String()),
		GapCost:      ptrFloat64(1),
		GapOpen:      ptrFloat64(1),
		GapExtend:    ptrFloat64(0.5),
		FreeEndGaps:  ptrBool(false),
		Window:       ptrInt(-1),
		SlopePenalty: ptrFloat64(0),
		Workers:      ptrInt(0),
	}
}

// Load reads a RunConfig from path. The file must have a .json or .hujson
// extension and be at most 1MB. Comments and trailing commas are accepted
// in both. Fields omitted from the file stay nil.
func Load(path string) (*RunConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" && ext != ".hujson" {
		return nil, fmt.Errorf("config file must have .json or .hujson extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	data, err = hujson.Standardize(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg := &RunConfig{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks every set field and the engine options they produce.
func (c *RunConfig) Validate() error {
	if !distance.ValidSeriesType(c.GetSeriesType()) {
		return fmt.Errorf("%w: series_type %q (valid options: %s)",
			distance.ErrInvalidMetric, c.GetSeriesType(), strings.Join(distance.SeriesTypes(), ","))
	}
	if _, err := distance.Resolve(c.GetSeriesType(), c.GetMetric()); err != nil {
		return err
	}

	switch c.GetMode() {
	case ModeNW, ModeDTW:
	default:
		return fmt.Errorf("mode must be %s or %s, got %q", ModeNW, ModeDTW, c.GetMode())
	}

	if c.Gap != nil {
		if _, err := align.ParseGapModel(*c.Gap); err != nil {
			return err
		}
	}
	if err := c.AlignOptions().Validate(); err != nil {
		return err
	}

	if c.GetWindow() < -1 {
		return fmt.Errorf("window must be -1 or non-negative, got %d", c.GetWindow())
	}
	if p := c.GetSlopePenalty(); p < 0 || math.IsNaN(p) {
		return fmt.Errorf("slope_penalty must be non-negative, got %f", p)
	}
	if c.GetWorkers() < 0 {
		return fmt.Errorf("workers must be non-negative, got %d", c.GetWorkers())
	}

	return nil
}

// GetSeriesType returns the lower-cased series_type value or the default.
func (c *RunConfig) GetSeriesType() string {
	if c.SeriesType == nil || *c.SeriesType == "" {
		return distance.Positions
	}
	return strings.ToLower(strings.TrimSpace(*c.SeriesType))
}

// GetMetric returns the metric value or the default.
func (c *RunConfig) GetMetric() string {
	if c.Metric == nil || *c.Metric == "" {
		return distance.DefaultMetric
	}
	return *c.Metric
}

// GetCenter returns the center value or the default.
func (c *RunConfig) GetCenter() bool {
	if c.Center == nil {
		return false
	}
	return *c.Center
}

// GetMode returns the lower-cased mode value or the default.
func (c *RunConfig) GetMode() string {
	if c.Mode == nil || *c.Mode == "" {
		return ModeNW
	}
	return strings.ToLower(strings.TrimSpace(*c.Mode))
}

// invalidGap is returned for an unparseable gap value so that
// align.Options.Validate rejects it.
const invalidGap = align.GapModel(-1)

// GetGap returns the parsed gap model, GapNone when unset, or a model that
// fails align.Options.Validate when the value does not parse.
func (c *RunConfig) GetGap() align.GapModel {
	if c.Gap == nil {
		return align.GapNone
	}
	g, err := align.ParseGapModel(*c.Gap)
	if err != nil {
		return invalidGap
	}
	return g
}

// GetGapCost returns the gap_cost value or the default.
func (c *RunConfig) GetGapCost() float64 {
	if c.GapCost == nil {
		return 1
	}
	return *c.GapCost
}

// GetGapOpen returns the gap_open value or the default.
func (c *RunConfig) GetGapOpen() float64 {
	if c.GapOpen == nil {
		return 1
	}
	return *c.GapOpen
}

// GetGapExtend returns the gap_extend value or the default.
func (c *RunConfig) GetGapExtend() float64 {
	if c.GapExtend == nil {
		return 0.5
	}
	return *c.GapExtend
}

// GetFreeEndGaps returns the free_end_gaps value or the default.
func (c *RunConfig) GetFreeEndGaps() bool {
	if c.FreeEndGaps == nil {
		return false
	}
	return *c.FreeEndGaps
}

// GetWindow returns the window value or -1 (unconstrained).
func (c *RunConfig) GetWindow() int {
	if c.Window == nil {
		return -1
	}
	return *c.Window
}

// GetSlopePenalty returns the slope_penalty value or the default.
func (c *RunConfig) GetSlopePenalty() float64 {
	if c.SlopePenalty == nil {
		return 0
	}
	return *c.SlopePenalty
}

// GetWorkers returns the workers value; 0 means no concurrency limit.
func (c *RunConfig) GetWorkers() int {
	if c.Workers == nil {
		return 0
	}
	return *c.Workers
}

// AlignOptions builds the alignment engine options.
func (c *RunConfig) AlignOptions() align.Options {
	return align.Options{
		Gap:         c.GetGap(),
		GapCost:     c.GetGapCost(),
		GapOpen:     c.GetGapOpen(),
		GapExtend:   c.GetGapExtend(),
		FreeEndGaps: c.GetFreeEndGaps(),
	}
}

// DTWOptions builds distance-only DTW options.
func (c *RunConfig) DTWOptions() dtw.Options {
	o := dtw.DefaultOptions()
	o.Window = c.GetWindow()
	o.SlopePenalty = c.GetSlopePenalty()

	return o
}
