package sink

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/matzehuels/evalcharts/pkg/chart"
	"github.com/matzehuels/evalcharts/pkg/errors"
	"github.com/matzehuels/evalcharts/pkg/render"
	"github.com/matzehuels/evalcharts/pkg/style"
)

// boxFigure is a 2x1 inch figure with a black box in its middle.
func boxFigure() *render.Figure {
	return &render.Figure{
		Width:  2 * vg.Inch,
		Height: vg.Inch,
		Draw: func(dc draw.Canvas) {
			x0, x1 := dc.Min.X+0.75*vg.Inch, dc.Min.X+1.25*vg.Inch
			y0, y1 := dc.Min.Y+0.25*vg.Inch, dc.Min.Y+0.75*vg.Inch
			dc.FillPolygon(color.Black, []vg.Point{{X: x0, Y: y0}, {X: x0, Y: y1}, {X: x1, Y: y1}, {X: x1, Y: y0}})
		},
	}
}

func decodePNG(t *testing.T, data []byte) image.Image {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode() error: %v", err)
	}
	return img
}

func TestRenderPNGUntrimmed(t *testing.T) {
	data, err := RenderPNG(boxFigure(), WithDPI(100), WithTrim(false))
	if err != nil {
		t.Fatalf("RenderPNG() error: %v", err)
	}
	b := decodePNG(t, data).Bounds()
	if b.Dx() != 200 || b.Dy() != 100 {
		t.Errorf("size = %dx%d, want 200x100", b.Dx(), b.Dy())
	}
}

func TestRenderPNGTrimmed(t *testing.T) {
	data, err := RenderPNG(boxFigure(), WithDPI(100), WithTrimMargin(5))
	if err != nil {
		t.Fatalf("RenderPNG() error: %v", err)
	}
	b := decodePNG(t, data).Bounds()
	// The box is 50x50 pixels; allow for antialiased edges.
	if b.Dx() < 58 || b.Dx() > 64 || b.Dy() < 58 || b.Dy() > 64 {
		t.Errorf("trimmed size = %dx%d, want about 60x60", b.Dx(), b.Dy())
	}
}

func TestRenderPNGBadDPI(t *testing.T) {
	if _, err := RenderPNG(boxFigure(), WithDPI(0)); !errors.Is(err, errors.ErrCodeInvalidStyle) {
		t.Errorf("RenderPNG(dpi=0) = %v, want INVALID_STYLE", err)
	}
}

func TestTrim(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 100, 80))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	for y := 30; y < 35; y++ {
		for x := 40; x < 50; x++ {
			img.Set(x, y, color.Black)
		}
	}

	got := Trim(img, 2).Bounds()
	if got.Dx() != 14 || got.Dy() != 9 {
		t.Errorf("Trim() size = %dx%d, want 14x9", got.Dx(), got.Dy())
	}

	// A margin reaching past the edges is clamped.
	got = Trim(img, 60).Bounds()
	if got.Dx() != 100 || got.Dy() != 80 {
		t.Errorf("Trim(60) size = %dx%d, want 100x80", got.Dx(), got.Dy())
	}
}

func TestTrimBlank(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 10, 10))
	if got := Trim(img, 1); got != image.Image(img) {
		t.Error("Trim() of a blank image should return it unchanged")
	}
}

func TestRenderSVG(t *testing.T) {
	data, err := RenderSVG(boxFigure())
	if err != nil {
		t.Fatalf("RenderSVG() error: %v", err)
	}
	if !bytes.Contains(data, []byte("<svg")) {
		t.Error("RenderSVG() output is not an SVG document")
	}
}

func TestRenderPDF(t *testing.T) {
	data, err := RenderPDF(boxFigure())
	if err != nil {
		t.Fatalf("RenderPDF() error: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("RenderPDF() output starts with %q", data[:min(len(data), 8)])
	}
}

func TestEncodeHeatmap(t *testing.T) {
	h := chart.Heatmap{
		Title: "Heatmap",
		Steps: []string{"Pre"},
		Categories: []chart.HeatmapCategory{
			{Name: "A", Questions: []chart.HeatmapQuestion{{ID: "Q1", Values: []float64{0.5}}}},
		},
	}
	fig, err := render.New(style.Default()).Render(h)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	for _, format := range []string{"png", "svg", "pdf"} {
		t.Run(format, func(t *testing.T) {
			data, err := Encode(fig, format, WithDPI(30))
			if err != nil {
				t.Fatalf("Encode(%s) error: %v", format, err)
			}
			if len(data) == 0 {
				t.Errorf("Encode(%s) returned no data", format)
			}
		})
	}
}

func TestEncode(t *testing.T) {
	for _, format := range []string{"png", "svg", "pdf"} {
		t.Run(format, func(t *testing.T) {
			data, err := Encode(boxFigure(), format, WithDPI(72))
			if err != nil {
				t.Fatalf("Encode(%s) error: %v", format, err)
			}
			if len(data) == 0 {
				t.Errorf("Encode(%s) returned no data", format)
			}
		})
	}

	if _, err := Encode(boxFigure(), "gif"); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("Encode(gif) = %v, want INVALID_FORMAT", err)
	}
}
