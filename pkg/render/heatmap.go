package render

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/matzehuels/evalcharts/pkg/chart"
)

const (
	heatmapRowHeight = 0.3 // inches per row
	heatmapChrome    = 1.8 // inches for title, ticks and axis label
	paletteColors    = 256
)

var (
	colorBarWidth  = vg.Inch
	colorBarMargin = vg.Points(40)
)

// heatGrid adapts ordered heatmap rows to plotter.GridXYZ. Grid row 0 is
// the bottom of the plot, so rows are read back to front.
type heatGrid struct {
	h    chart.Heatmap
	rows []chart.HeatmapRow
}

func (g heatGrid) Dims() (c, r int) { return len(g.h.Steps), len(g.rows) }
func (g heatGrid) X(c int) float64  { return float64(c) }
func (g heatGrid) Y(r int) float64  { return float64(r) }

func (g heatGrid) Z(c, r int) float64 {
	v, _ := g.h.Cell(g.rows[len(g.rows)-1-r].Values[c])
	return v
}

// colorMap returns the fixed [0, 1] color scale.
func colorMap() palette.ColorMap {
	cm := moreland.Kindlmann()
	cm.SetMin(0)
	cm.SetMax(1)
	return cm
}

// HeatmapFigureHeight returns the figure height in inches for n rows, never
// below the theme's figure height.
func (r *Renderer) HeatmapFigureHeight(n int) float64 {
	return math.Max(r.theme.FigureHeight, heatmapRowHeight*float64(n)+heatmapChrome)
}

// Heatmap draws the questions × steps grid with a color bar on the right.
func (r *Renderer) Heatmap(h chart.Heatmap) (*Figure, error) {
	if err := h.Validate(); err != nil {
		return nil, err
	}
	rows := h.Rows()
	n := len(rows)
	steps := len(h.Steps)

	cm := colorMap()
	grid := heatGrid{h: h, rows: rows}
	hm := plotter.NewHeatMap(grid, cm.Palette(paletteColors))
	hm.Min, hm.Max = 0, 1
	hm.NaN = color.White

	p := r.newPlot(h.Title, "", "")
	p.Add(hm)

	labels := &cellLabels{label: annotationStyle(p, r.theme.Fonts.CellValue, text.XCenter, text.YCenter)}
	for i, row := range rows {
		for c, v := range row.Values {
			if shown, masked := h.Cell(v); !masked {
				labels.cells = append(labels.cells, cellLabel{x: float64(c), y: float64(n - 1 - i), value: v, shade: shown})
			}
		}
	}
	p.Add(labels)

	for _, s := range h.Separators() {
		y := float64(n-s) - 0.5
		sep, err := straightLine(-0.5, y, float64(steps)-0.5, y, vg.Points(1.5))
		if err != nil {
			return nil, renderErr(h.Kind(), h.Title, err)
		}
		p.Add(sep)
	}

	ticks := make([]string, n)
	for i, row := range rows {
		ticks[n-1-i] = row.Label()
	}
	p.NominalX(h.Steps...)
	p.NominalY(ticks...)
	p.X.Min, p.X.Max = -0.5, float64(steps)-0.5
	p.Y.Min, p.Y.Max = -0.5, float64(n)-0.5

	bar := r.colorBar(cm)

	return &Figure{
		Width:  inches(r.theme.FigureWidth),
		Height: inches(r.HeatmapFigureHeight(n)),
		Draw: func(dc draw.Canvas) {
			w := dc.Max.X - dc.Min.X
			p.Draw(draw.Crop(dc, 0, -colorBarWidth, 0, 0))
			bar.Draw(draw.Crop(dc, w-colorBarWidth, 0, colorBarMargin, -colorBarMargin))
		},
	}, nil
}

// colorBar builds the legend plot for the heatmap color scale. The bands
// are vector fills so every backend, PDF included, can draw them.
func (r *Renderer) colorBar(cm palette.ColorMap) *plot.Plot {
	p := plot.New()
	p.Add(&colorScale{colors: cm.Palette(paletteColors).Colors(), min: cm.Min(), max: cm.Max()})
	p.HideX()
	p.Y.Tick.Label.Font.Size = vg.Points(r.theme.Fonts.TickLabel)
	p.Y.Label.Text = "Accuracy"
	p.Y.Label.TextStyle.Font.Size = vg.Points(r.theme.Fonts.AxisLabel)
	return p
}
