package sink

import (
	"github.com/matzehuels/evalcharts/pkg/errors"
	"github.com/matzehuels/evalcharts/pkg/render"
	"github.com/matzehuels/evalcharts/pkg/style"
)

// Encode renders fig in the named format. PNG options apply only to PNG.
func Encode(fig *render.Figure, format string, opts ...PNGOption) ([]byte, error) {
	switch format {
	case style.FormatPNG:
		return RenderPNG(fig, opts...)
	case style.FormatSVG:
		return RenderSVG(fig)
	case style.FormatPDF:
		return RenderPDF(fig)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "invalid format: %s (must be 'png', 'svg', or 'pdf')", format)
	}
}
