package sink

import (
	"bytes"
	"image/color"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgsvg"

	"github.com/matzehuels/evalcharts/pkg/errors"
	"github.com/matzehuels/evalcharts/pkg/render"
)

// RenderSVG draws fig as an SVG document with a white background.
func RenderSVG(fig *render.Figure) ([]byte, error) {
	c := vgsvg.New(fig.Width, fig.Height)
	dc := draw.New(c)
	fillBackground(dc)
	fig.Draw(dc)

	var buf bytes.Buffer
	if _, err := c.WriteTo(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "encode svg")
	}
	return buf.Bytes(), nil
}

// fillBackground paints the whole canvas white.
func fillBackground(dc draw.Canvas) {
	dc.FillPolygon(color.White, []vg.Point{
		{X: dc.Min.X, Y: dc.Min.Y},
		{X: dc.Min.X, Y: dc.Max.Y},
		{X: dc.Max.X, Y: dc.Max.Y},
		{X: dc.Max.X, Y: dc.Min.Y},
	})
}
