package render

import (
	"math"

	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"

	"github.com/matzehuels/evalcharts/pkg/chart"
)

const (
	deltaFigureWidth  = 11.5 // inches
	deltaMinHeight    = 5.5  // inches
	deltaRowHeight    = 0.35 // inches per bar
	deltaBarThickness = 0.8  // data units
)

// DeltaFigureHeight returns the figure height in inches for n bars.
func DeltaFigureHeight(n int) float64 {
	return math.Max(deltaMinHeight, deltaRowHeight*float64(n))
}

// DeltaBar draws sorted horizontal bars with a reference line at zero.
func (r *Renderer) DeltaBar(d chart.DeltaBar) (*Figure, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	items := d.Sorted()
	labels := make([]string, len(items))
	for i, it := range items {
		labels[i] = it.Label
	}

	p := r.newPlot(d.Title, d.XLabel, "")
	p.Add(verticalGrid())
	p.Add(&rowBars{
		items:  items,
		height: deltaBarThickness,
		color:  plotutil.Color(0),
		label:  annotationStyle(p, r.theme.Fonts.DeltaValue, text.XLeft, text.YCenter),
	})

	n := float64(len(items))
	zero, err := straightLine(0, -0.5, 0, n-0.5, vg.Points(1))
	if err != nil {
		return nil, renderErr(d.Kind(), d.Title, err)
	}
	p.Add(zero)

	p.NominalY(labels...)

	// Leave room beside the outermost tips for their labels.
	ext := d.Extent()
	pad := math.Max(ext.Span()*0.15, 0.02)
	p.X.Min, p.X.Max = ext.Min-pad, ext.Max+pad
	p.Y.Min, p.Y.Max = -0.6, n-0.4

	h := DeltaFigureHeight(len(items))
	return plotFigure(p, inches(deltaFigureWidth), inches(h)), nil
}
