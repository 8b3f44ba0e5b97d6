// SPDX-License-Identifier: MIT

// Package report renders alignment results.
//
// WriteAlignment produces the line-oriented text form: one line per
// column of the first aligned sequence, a "===" separator, then one line
// per column of the second. A GAP prints as "---"; a frame prints every
// point as "%f,%f,%f", with points joined by commas.
//
// ColumnCosts measures the frame distance of every matched column.
// PlotCost draws that profile to an image file with gonum/plot, and
// RenderHTML writes it as an interactive go-echarts page.
package report
