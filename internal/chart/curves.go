// Package chart renders capacity curve families, either as an image
// file or as a quick terminal plot.
package chart

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/guptarohit/asciigraph"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/alexiusacademia/gopile/internal/capacity"
)

// Design-chart convention: capacity across the page, length down the
// page, one trace per diameter.
var palette = []color.RGBA{
	{R: 31, G: 119, B: 180, A: 255},
	{R: 255, G: 127, B: 14, A: 255},
	{R: 44, G: 160, B: 44, A: 255},
	{R: 214, G: 39, B: 40, A: 255},
	{R: 148, G: 103, B: 189, A: 255},
	{R: 140, G: 86, B: 75, A: 255},
	{R: 227, G: 119, B: 194, A: 255},
}

// ExportCurves writes the curve family to an image file. The format
// follows the file extension (png, svg, pdf and the other formats
// gonum/plot supports).
func ExportCurves(curves []capacity.Curve, title, filename string) error {
	if len(curves) == 0 {
		return fmt.Errorf("no curves to plot")
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Total Capacity (kN)"
	p.Y.Label.Text = "Pile Length (m)"
	// Length increases downward, as on a borehole log.
	p.Y.Scale = plot.InvertedScale{Normalizer: plot.LinearScale{}}
	p.Legend.Top = true

	for i, curve := range curves {
		pts := make(plotter.XYs, len(curve.Points))
		for j, pt := range curve.Points {
			pts[j] = plotter.XY{X: pt.Capacity, Y: pt.Length}
		}

		line, scatter, err := plotter.NewLinePoints(pts)
		if err != nil {
			return err
		}
		c := palette[i%len(palette)]
		line.LineStyle.Width = vg.Points(1.5)
		line.LineStyle.Color = c
		scatter.GlyphStyle.Color = c
		scatter.GlyphStyle.Radius = vg.Points(2)
		p.Add(line, scatter)
		p.Legend.Add(fmt.Sprintf("D=%.1fm", curve.Diameter), line, scatter)
	}

	width := 6 * vg.Inch
	height := 8 * vg.Inch

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	return p.Save(width, height, filename)
}

// RenderTerminal returns an ASCII rendering of the curve family,
// capacity against length index, one series per diameter.
func RenderTerminal(curves []capacity.Curve, height int) string {
	if len(curves) == 0 {
		return ""
	}
	if height <= 0 {
		height = 15
	}

	series := make([][]float64, len(curves))
	legends := make([]string, len(curves))
	for i, curve := range curves {
		vals := make([]float64, len(curve.Points))
		for j, pt := range curve.Points {
			vals[j] = pt.Capacity
		}
		series[i] = vals
		legends[i] = fmt.Sprintf("D=%.1fm", curve.Diameter)
	}

	graph := asciigraph.PlotMany(series,
		asciigraph.Height(height),
		asciigraph.Caption("Total Capacity (kN) vs Length Step"),
		asciigraph.SeriesLegends(legends...),
	)

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(graph)
	sb.WriteString("\n\n")
	if n := len(curves[0].Points); n > 0 {
		sb.WriteString(fmt.Sprintf("  Length axis: %.0f m to %.0f m in %d steps\n",
			curves[0].Points[0].Length, curves[0].Points[n-1].Length, n))
	}
	return sb.String()
}
