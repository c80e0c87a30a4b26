package render

import (
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/text"

	"github.com/matzehuels/evalcharts/pkg/chart"
)

// GroupedBar draws clustered vertical bars, one color per series.
func (r *Renderer) GroupedBar(g chart.GroupedBar) (*Figure, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	p := r.newPlot(g.Title, "", g.YLabel)
	p.Add(horizontalGrid())

	bySeries := make([][]chart.Bar, len(g.Series))
	for _, b := range g.Bars() {
		bySeries[b.Series] = append(bySeries[b.Series], b)
	}

	label := annotationStyle(p, r.theme.Fonts.BarValue, text.XCenter, text.YBottom)
	for i, s := range g.Series {
		bars := &columnBars{
			bars:     bySeries[i],
			color:    plotutil.Color(i),
			annotate: g.Annotate,
			label:    label,
		}
		p.Add(bars)
		p.Legend.Add(s.Name, bars)
	}

	p.NominalX(g.Categories...)
	p.X.Min, p.X.Max = -0.5, float64(len(g.Categories))-0.5
	p.Y.Min, p.Y.Max = g.YRange.Min, g.YRange.Max

	return plotFigure(p, inches(r.theme.FigureWidth), inches(r.theme.FigureHeight)), nil
}
