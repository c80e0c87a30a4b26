package sink

import (
	"bytes"

	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgpdf"

	"github.com/matzehuels/evalcharts/pkg/errors"
	"github.com/matzehuels/evalcharts/pkg/render"
)

// RenderPDF draws fig as a single-page PDF.
func RenderPDF(fig *render.Figure) ([]byte, error) {
	c := vgpdf.New(fig.Width, fig.Height)
	dc := draw.New(c)
	fillBackground(dc)
	fig.Draw(dc)

	var buf bytes.Buffer
	if _, err := c.WriteTo(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "encode pdf")
	}
	return buf.Bytes(), nil
}
