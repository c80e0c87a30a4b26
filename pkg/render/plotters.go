package render

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/matzehuels/evalcharts/pkg/chart"
)

// Gaps between value labels and the bar tips they annotate.
var (
	barLabelOffset   = vg.Points(3)
	deltaLabelOffset = vg.Points(5)
)

// rect returns the corners of an axis-aligned rectangle.
func rect(x0, y0, x1, y1 vg.Length) []vg.Point {
	return []vg.Point{{X: x0, Y: y0}, {X: x0, Y: y1}, {X: x1, Y: y1}, {X: x1, Y: y0}}
}

// fillThumbnail paints a legend swatch.
func fillThumbnail(c *draw.Canvas, clr color.Color) {
	c.FillPolygon(clr, rect(c.Min.X, c.Min.Y, c.Max.X, c.Max.Y))
}

// columnBars draws the vertical bars of one grouped-bar series.
type columnBars struct {
	bars     []chart.Bar
	color    color.Color
	annotate bool
	label    text.Style
}

func (b *columnBars) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	for _, bar := range b.bars {
		x0, x1 := trX(bar.Left), trX(bar.Right)
		y0, y1 := trY(0), trY(bar.Value)
		c.FillPolygon(b.color, c.ClipPolygonXY(rect(x0, y0, x1, y1)))
		if b.annotate {
			pt := vg.Point{X: trX(bar.Center()), Y: y1 + barLabelOffset}
			c.FillText(b.label, pt, bar.Label())
		}
	}
}

func (b *columnBars) DataRange() (xmin, xmax, ymin, ymax float64) {
	for i, bar := range b.bars {
		if i == 0 {
			xmin, xmax = bar.Left, bar.Right
		}
		xmin, xmax = min(xmin, bar.Left), max(xmax, bar.Right)
		ymin, ymax = min(ymin, bar.Value), max(ymax, bar.Value)
	}
	return xmin, xmax, ymin, ymax
}

func (b *columnBars) Thumbnail(c *draw.Canvas) { fillThumbnail(c, b.color) }

// rowBars draws sorted horizontal delta bars, bar i centered on y = i.
type rowBars struct {
	items  []chart.Delta
	height float64
	color  color.Color
	label  text.Style
}

func (b *rowBars) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	for i, it := range b.items {
		y := float64(i)
		x0, x1 := trX(0), trX(it.Value)
		y0, y1 := trY(y-b.height/2), trY(y+b.height/2)
		c.FillPolygon(b.color, c.ClipPolygonXY(rect(x0, y0, x1, y1)))

		sty := b.label
		pt := vg.Point{Y: trY(y)}
		if it.Positive() {
			sty.XAlign = text.XLeft
			pt.X = x1 + deltaLabelOffset
		} else {
			sty.XAlign = text.XRight
			pt.X = x1 - deltaLabelOffset
		}
		c.FillText(sty, pt, it.Annotation())
	}
}

func (b *rowBars) DataRange() (xmin, xmax, ymin, ymax float64) {
	for _, it := range b.items {
		xmin, xmax = min(xmin, it.Value), max(xmax, it.Value)
	}
	return xmin, xmax, -0.5, float64(len(b.items)) - 0.5
}

// cellLabels prints heatmap values at cell centers. Text switches to white
// on dark cells.
type cellLabels struct {
	cells []cellLabel
	label text.Style
}

type cellLabel struct {
	x, y  float64
	value float64 // printed
	shade float64 // clamped value the cell is colored by
}

func (l *cellLabels) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	for _, cell := range l.cells {
		sty := l.label
		if cell.shade < 0.5 {
			sty.Color = color.White
		}
		c.FillText(sty, vg.Point{X: trX(cell.x), Y: trY(cell.y)}, chart.FormatCell(cell.value))
	}
}

// colorScale draws a vertical color legend as one filled band per palette
// color, spanning [min, max] on the y axis and [0, 1] on the x axis.
type colorScale struct {
	colors   []color.Color
	min, max float64
}

func (s *colorScale) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	if len(s.colors) == 0 {
		return
	}
	step := (s.max - s.min) / float64(len(s.colors))
	x0, x1 := trX(0), trX(1)
	for i, clr := range s.colors {
		y0 := trY(s.min + float64(i)*step)
		y1 := trY(s.min + float64(i+1)*step)
		c.FillPolygon(clr, c.ClipPolygonXY(rect(x0, y0, x1, y1)))
	}
}

func (s *colorScale) DataRange() (xmin, xmax, ymin, ymax float64) {
	return 0, 1, s.min, s.max
}
