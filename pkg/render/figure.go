package render

import (
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Figure is a drawing of fixed size. Draw paints the whole figure onto the
// canvas it is given; the canvas has the figure's size.
type Figure struct {
	Width  vg.Length
	Height vg.Length
	Draw   func(dc draw.Canvas)
}

// inches converts a size in inches to a canvas length.
func inches(v float64) vg.Length {
	return vg.Length(v) * vg.Inch
}
