package sink

import (
	"bytes"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/matzehuels/evalcharts/pkg/errors"
	"github.com/matzehuels/evalcharts/pkg/render"
)

// DefaultDPI is the raster resolution used when none is given.
const DefaultDPI = 220

// defaultTrimMargin is the whitespace kept around trimmed content, in pixels.
const defaultTrimMargin = 12

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	dpi    int
	trim   bool
	margin int
}

// WithDPI sets the raster resolution.
func WithDPI(dpi int) PNGOption {
	return func(r *pngRenderer) { r.dpi = dpi }
}

// WithTrim enables or disables whitespace cropping (default enabled).
func WithTrim(trim bool) PNGOption {
	return func(r *pngRenderer) { r.trim = trim }
}

// WithTrimMargin sets the whitespace kept around trimmed content, in pixels.
func WithTrimMargin(px int) PNGOption {
	return func(r *pngRenderer) { r.margin = px }
}

// RasterizeFigure draws fig onto a white RGBA image at the given DPI.
func RasterizeFigure(fig *render.Figure, dpi int) image.Image {
	c := vgimg.NewWith(
		vgimg.UseWH(fig.Width, fig.Height),
		vgimg.UseDPI(dpi),
		vgimg.UseBackgroundColor(color.White),
	)
	fig.Draw(draw.New(c))
	return c.Image()
}

// RenderPNG rasterizes fig and encodes it as PNG.
func RenderPNG(fig *render.Figure, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{dpi: DefaultDPI, trim: true, margin: defaultTrimMargin}
	for _, opt := range opts {
		opt(&r)
	}
	if r.dpi <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidStyle, "dpi must be positive, got %d", r.dpi)
	}

	img := RasterizeFigure(fig, r.dpi)
	if r.trim {
		img = Trim(img, r.margin)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "encode png")
	}
	return buf.Bytes(), nil
}

// Trim crops img to the bounding box of pixels that differ from its top-left
// pixel, extended by margin pixels on each side and clamped to the image. An
// image with no content is returned unchanged.
func Trim(img image.Image, margin int) image.Image {
	content, ok := contentBounds(img)
	if !ok {
		return img
	}
	crop := image.Rect(
		content.Min.X-margin, content.Min.Y-margin,
		content.Max.X+margin, content.Max.Y+margin,
	).Intersect(img.Bounds())
	if crop == img.Bounds() {
		return img
	}
	return imaging.Crop(img, crop)
}

// contentBounds returns the smallest rectangle holding every pixel whose
// color differs from the background (the top-left pixel).
func contentBounds(img image.Image) (image.Rectangle, bool) {
	b := img.Bounds()
	if b.Empty() {
		return image.Rectangle{}, false
	}
	bg := color.RGBAModel.Convert(img.At(b.Min.X, b.Min.Y)).(color.RGBA)
	same := func(x, y int) bool {
		return color.RGBAModel.Convert(img.At(x, y)).(color.RGBA) == bg
	}
	if rgba, ok := img.(*image.RGBA); ok {
		same = func(x, y int) bool {
			i := rgba.PixOffset(x, y)
			p := rgba.Pix[i : i+4 : i+4]
			return p[0] == bg.R && p[1] == bg.G && p[2] == bg.B && p[3] == bg.A
		}
	}

	minX, minY, maxX, maxY := b.Max.X, b.Max.Y, b.Min.X-1, b.Min.Y-1
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if same(x, y) {
				continue
			}
			minX, maxX = min(minX, x), max(maxX, x)
			minY, maxY = min(minY, y), max(maxY, y)
		}
	}
	if maxX < minX {
		return image.Rectangle{}, false
	}
	return image.Rect(minX, minY, maxX+1, maxY+1), true
}
