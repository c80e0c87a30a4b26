package render

import (
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/matzehuels/evalcharts/pkg/chart"
)

// Line draws one line with circle markers per series.
func (r *Renderer) Line(l chart.Line) (*Figure, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	p := r.newPlot(l.Title, "", l.YLabel)
	p.Add(plotter.NewGrid())

	for i, s := range l.Series {
		xys := make(plotter.XYs, len(s.Values))
		for j, v := range s.Values {
			xys[j] = plotter.XY{X: float64(j), Y: v}
		}
		line, points, err := plotter.NewLinePoints(xys)
		if err != nil {
			return nil, renderErr(l.Kind(), l.Title, err)
		}
		clr := plotutil.Color(i)
		line.Color = clr
		line.Width = vg.Points(2)
		points.Shape = draw.CircleGlyph{}
		points.Color = clr
		points.Radius = vg.Points(3.5)

		p.Add(line, points)
		p.Legend.Add(s.Name, line, points)
	}

	p.NominalX(l.XLabels...)
	p.X.Min, p.X.Max = -0.25, float64(len(l.XLabels))-0.75
	p.Y.Min, p.Y.Max = l.YRange.Min, l.YRange.Max

	return plotFigure(p, inches(r.theme.FigureWidth), inches(r.theme.FigureHeight)), nil
}
