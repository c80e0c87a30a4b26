package render

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/matzehuels/evalcharts/pkg/chart"
	"github.com/matzehuels/evalcharts/pkg/errors"
	"github.com/matzehuels/evalcharts/pkg/style"
)

// Renderer draws chart models with a fixed theme. It holds no mutable state
// and is safe for concurrent use.
type Renderer struct {
	theme style.Theme
}

// New creates a renderer for theme.
func New(theme style.Theme) *Renderer {
	return &Renderer{theme: theme}
}

// Theme returns the renderer's theme.
func (r *Renderer) Theme() style.Theme { return r.theme }

// Render validates c and dispatches to the renderer for its kind.
func (r *Renderer) Render(c chart.Chart) (*Figure, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	switch c := c.(type) {
	case chart.GroupedBar:
		return r.GroupedBar(c)
	case chart.DeltaBar:
		return r.DeltaBar(c)
	case chart.Line:
		return r.Line(c)
	case chart.Heatmap:
		return r.Heatmap(c)
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported chart type %T", c)
	}
}

// newPlot creates a plot with the theme's title and font sizes applied.
func (r *Renderer) newPlot(title, xLabel, yLabel string) *plot.Plot {
	f := r.theme.Fonts
	p := plot.New()

	p.Title.Text = r.theme.Title(title)
	p.Title.Padding = vg.Points(r.theme.TitlePadding)
	p.Title.TextStyle.Font.Size = vg.Points(f.Title)

	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.X.Label.TextStyle.Font.Size = vg.Points(f.AxisLabel)
	p.Y.Label.TextStyle.Font.Size = vg.Points(f.AxisLabel)
	p.X.Tick.Label.Font.Size = vg.Points(f.TickLabel)
	p.Y.Tick.Label.Font.Size = vg.Points(f.TickLabel)

	p.Legend.TextStyle.Font.Size = vg.Points(f.Legend)
	p.Legend.Top = true
	p.Legend.Left = true
	return p
}

// annotationStyle derives a label style from the plot's tick labels.
func annotationStyle(p *plot.Plot, size float64, xAlign text.XAlignment, yAlign text.YAlignment) text.Style {
	sty := p.X.Tick.Label
	sty.Font.Size = vg.Points(size)
	sty.Rotation = 0
	sty.XAlign = xAlign
	sty.YAlign = yAlign
	return sty
}

// horizontalGrid returns a light grid with horizontal lines only.
func horizontalGrid() *plotter.Grid {
	g := plotter.NewGrid()
	g.Vertical.Color = nil
	return g
}

// verticalGrid returns a light grid with vertical lines only.
func verticalGrid() *plotter.Grid {
	g := plotter.NewGrid()
	g.Horizontal.Color = nil
	return g
}

// plotFigure wraps a single plot into a figure.
func plotFigure(p *plot.Plot, w, h vg.Length) *Figure {
	return &Figure{
		Width:  w,
		Height: h,
		Draw:   func(dc draw.Canvas) { p.Draw(dc) },
	}
}

// straightLine builds a two-point line plotter.
func straightLine(x0, y0, x1, y1 float64, width vg.Length) (*plotter.Line, error) {
	l, err := plotter.NewLine(plotter.XYs{{X: x0, Y: y0}, {X: x1, Y: y1}})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "build line")
	}
	l.Width = width
	return l, nil
}

func renderErr(kind chart.Kind, title string, err error) error {
	return errors.Wrap(errors.ErrCodeRenderFailed, err, "%s %q", kind, title)
}
