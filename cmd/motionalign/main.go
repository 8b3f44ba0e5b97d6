// SPDX-License-Identifier: MIT

// Command motionalign aligns recorded motion time series.
//
// Usage:
//
//	motionalign [flags] <reference> <query> [query...]
//
// Each input file holds one frame per line as comma-separated x,y,z
// triples; files ending in .gz are decompressed. Every query is aligned
// against the reference and printed as the aligned reference, a "==="
// line, then the aligned query. Results for several queries are separated
// by a blank line.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/katalvlaran/motionalign/align"
	"github.com/katalvlaran/motionalign/config"
	"github.com/katalvlaran/motionalign/core"
	"github.com/katalvlaran/motionalign/distance"
	"github.com/katalvlaran/motionalign/dtw"
	"github.com/katalvlaran/motionalign/report"
	"github.com/katalvlaran/motionalign/series"
)

const (
	exitOK      = 0
	exitRuntime = 1
	exitUsage   = 2
)

var errUsage = errors.New("usage")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// options is the parsed command line.
type options struct {
	cfg     *config.RunConfig
	inputs  []string
	plot    string
	html    string
	verbose bool
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "motionalign: ", 0)

	opts, err := parseArgs(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		if !errors.Is(err, errUsage) {
			logger.Print(err)
		}
		return exitUsage
	}

	if err := execute(ctx, opts, stdout, logger); err != nil {
		logger.Print(err)
		return exitRuntime
	}

	return exitOK
}

func parseArgs(args []string, stderr io.Writer) (*options, error) {
	def := config.DefaultRunConfig()
	fs := flag.NewFlagSet("motionalign", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "USAGE: motionalign [flags] <reference> <query> [query...]\n\nFlags:\n")
		fs.PrintDefaults()
	}

	seriesType := fs.String("type", *def.SeriesType, "series type: "+strings.Join(distance.SeriesTypes(), ", "))
	metric := fs.String("metric", *def.Metric, "distance metric (see package distance)")
	center := fs.Bool("center", *def.Center, "translate each positions query onto the reference centroids")
	mode := fs.String("mode", *def.Mode, "alignment mode: nw or dtw")
	gap := fs.String("gap", *def.Gap, "gap model: none, linear or affine")
	gapCost := fs.Float64("gap-cost", *def.GapCost, "per-frame gap cost (linear)")
	gapOpen := fs.Float64("gap-open", *def.GapOpen, "gap opening cost (affine)")
	gapExtend := fs.Float64("gap-extend", *def.GapExtend, "gap extension cost (affine)")
	freeEnds := fs.Bool("free-ends", *def.FreeEndGaps, "do not charge leading and trailing gaps in the query")
	window := fs.Int("window", *def.Window, "DTW band half-width, -1 for none")
	slope := fs.Float64("slope", *def.SlopePenalty, "DTW penalty per non-diagonal step")
	workers := fs.Int("workers", *def.Workers, "maximum concurrent alignments, 0 for no limit")
	configPath := fs.String("config", "", "load settings from a .json or .hujson file; flags override it")
	plotPath := fs.String("plot", "", "write the cost profile image to this file (png, svg, pdf)")
	htmlPath := fs.String("html", "", "write the cost profile as an HTML chart to this file")
	verbose := fs.Bool("v", false, "log progress and scores")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}
		return nil, errUsage // already reported by fs
	}
	if fs.NArg() < 2 {
		fs.Usage()
		return nil, errUsage
	}

	cfg := &config.RunConfig{}
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "type":
			cfg.SeriesType = seriesType
		case "metric":
			cfg.Metric = metric
		case "center":
			cfg.Center = center
		case "mode":
			cfg.Mode = mode
		case "gap":
			cfg.Gap = gap
		case "gap-cost":
			cfg.GapCost = gapCost
		case "gap-open":
			cfg.GapOpen = gapOpen
		case "gap-extend":
			cfg.GapExtend = gapExtend
		case "free-ends":
			cfg.FreeEndGaps = freeEnds
		case "window":
			cfg.Window = window
		case "slope":
			cfg.SlopePenalty = slope
		case "workers":
			cfg.Workers = workers
		}
	})
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &options{
		cfg:     cfg,
		inputs:  fs.Args(),
		plot:    *plotPath,
		html:    *htmlPath,
		verbose: *verbose,
	}, nil
}

func execute(ctx context.Context, opts *options, stdout io.Writer, logger *log.Logger) error {
	cfg := opts.cfg
	runID := uuid.NewString()[:8]
	vlog := func(format string, args ...any) {
		if opts.verbose {
			logger.Printf("[%s] "+format, append([]any{runID}, args...)...)
		}
	}
	vlog("mode %s, series type %s, metric %s, %d queries",
		cfg.GetMode(), cfg.GetSeriesType(), cfg.GetMetric(), len(opts.inputs)-1)

	fn, err := distance.Resolve(cfg.GetSeriesType(), cfg.GetMetric())
	if err != nil {
		return err
	}

	ref, err := series.Load(opts.inputs[0], cfg.GetSeriesType())
	if err != nil {
		return err
	}
	vlog("loaded %s: %d frames x %d points", opts.inputs[0], ref.NumRows(), ref.NumCols())

	var centers []core.Point
	if cfg.GetCenter() && ref.Type == distance.Positions {
		if centers, err = ref.Centers(); err != nil {
			return fmt.Errorf("%s: %w", opts.inputs[0], err)
		}
	}

	queries := make([]core.Sequence, 0, len(opts.inputs)-1)
	for _, path := range opts.inputs[1:] {
		q, err := series.Load(path, cfg.GetSeriesType())
		if err != nil {
			return err
		}
		vlog("loaded %s: %d frames x %d points", path, q.NumRows(), q.NumCols())
		if centers != nil {
			if q, err = q.Centered(centers); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
		}
		queries = append(queries, q.Frames)
	}

	var costs [][]report.ColumnCost
	switch cfg.GetMode() {
	case config.ModeDTW:
		costs, err = runDTW(ref.Frames, queries, fn, cfg.DTWOptions(), opts.inputs[1:], stdout, vlog)
	default:
		costs, err = runNW(ctx, ref.Frames, queries, fn, cfg, opts.inputs[1:], stdout, vlog)
	}
	if err != nil {
		return err
	}

	return writeProfiles(opts, costs, vlog)
}

func runNW(ctx context.Context, ref core.Sequence, queries []core.Sequence, fn distance.PointFunc,
	cfg *config.RunConfig, names []string, stdout io.Writer, vlog func(string, ...any)) ([][]report.ColumnCost, error) {
	vlog("aligning %d queries (gap model %s, workers %d)", len(queries), cfg.GetGap(), cfg.GetWorkers())
	results, err := align.AlignAll(ctx, ref, queries, fn, cfg.AlignOptions(), cfg.GetWorkers())
	if err != nil {
		return nil, err
	}

	costs := make([][]report.ColumnCost, len(results))
	for k, res := range results {
		if k > 0 {
			fmt.Fprintln(stdout)
		}
		if err := report.WriteAlignment(stdout, res); err != nil {
			return nil, err
		}
		inA, inB := res.Gaps()
		vlog("%s: score %f, %d columns, %d gaps in reference, %d gaps in query",
			names[k], res.Score, res.Len(), inA, inB)
		if costs[k], err = report.ColumnCosts(res, fn); err != nil {
			return nil, err
		}
	}

	return costs, nil
}

func runDTW(ref core.Sequence, queries []core.Sequence, fn distance.PointFunc,
	o dtw.Options, names []string, stdout io.Writer, vlog func(string, ...any)) ([][]report.ColumnCost, error) {
	o.ReturnPath = true
	o.MemoryMode = dtw.FullMatrix

	costs := make([][]report.ColumnCost, len(queries))
	for k, q := range queries {
		d, path, err := dtw.DTW(ref, q, fn, &o)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", names[k], err)
		}
		if path == nil {
			return nil, fmt.Errorf("%s: no warping path within window %d", names[k], o.Window)
		}
		if k > 0 {
			fmt.Fprintln(stdout)
		}
		if err := report.WritePath(stdout, ref, q, path); err != nil {
			return nil, err
		}
		vlog("%s: dtw distance %f, %d steps", names[k], d, len(path))
		if costs[k], err = report.PathCosts(ref, q, path, fn); err != nil {
			return nil, err
		}
	}

	return costs, nil
}

// writeProfiles saves the requested cost plots. With several queries the
// query number is inserted before the file extension.
func writeProfiles(opts *options, costs [][]report.ColumnCost, vlog func(string, ...any)) error {
	for k, c := range costs {
		title := fmt.Sprintf("%s vs %s", filepath.Base(opts.inputs[0]), filepath.Base(opts.inputs[k+1]))
		if opts.plot != "" {
			path := numbered(opts.plot, k, len(costs))
			if err := report.PlotCost(c, title, path); err != nil {
				return err
			}
			vlog("wrote %s", path)
		}
		if opts.html != "" {
			path := numbered(opts.html, k, len(costs))
			if err := writeHTML(path, c, title); err != nil {
				return err
			}
			vlog("wrote %s", path)
		}
	}

	return nil
}

func writeHTML(path string, costs []report.ColumnCost, title string) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := report.RenderHTML(f, costs, title); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

func numbered(path string, k, n int) string {
	if n == 1 {
		return path
	}
	ext := filepath.Ext(path)

	return fmt.Sprintf("%s-%d%s", strings.TrimSuffix(path, ext), k+1, ext)
}
