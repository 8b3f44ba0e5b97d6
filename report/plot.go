// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	costColor = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	gapColor  = color.RGBA{R: 214, G: 39, B: 40, A: 255}
)

// PlotCost draws the cost profile to path. Matched columns form a line,
// gap columns are marked on the x axis. The image format follows the file
// extension (png, svg, pdf, ...).
func PlotCost(costs []ColumnCost, title, path string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Alignment column"
	p.Y.Label.Text = "Frame distance"
	p.Add(plotter.NewGrid())

	matched, gaps := split(costs)
	if len(matched) > 0 {
		pts := make(plotter.XYs, len(matched))
		for i, c := range matched {
			pts[i] = plotter.XY{X: float64(c.Column), Y: c.Cost}
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("report: cost line: %w", err)
		}
		line.Color = costColor
		line.Width = vg.Points(1)
		p.Add(line)
		p.Legend.Add("match", line)
	}
	if len(gaps) > 0 {
		pts := make(plotter.XYs, len(gaps))
		for i, c := range gaps {
			pts[i] = plotter.XY{X: float64(c.Column), Y: 0}
		}
		sc, err := plotter.NewScatter(pts)
		if err != nil {
			return fmt.Errorf("report: gap markers: %w", err)
		}
		sc.GlyphStyle.Color = gapColor
		sc.GlyphStyle.Shape = draw.CrossGlyph{}
		sc.GlyphStyle.Radius = vg.Points(3)
		p.Add(sc)
		p.Legend.Add("gap", sc)
	}

	p.Legend.Top = true
	p.Legend.Left = false
	p.Legend.XOffs = -10
	p.Legend.YOffs = -10

	if err := p.Save(14*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("report: save %s: %w", path, err)
	}

	return nil
}
