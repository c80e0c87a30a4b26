// Package sink encodes drawn figures into output formats.
//
// # Overview
//
// A "sink" transforms a [render.Figure] into bytes. This package provides:
//
//   - PNG: raster output at a fixed DPI, trimmed to its content
//   - SVG: scalable vector output
//   - PDF: print-ready vector output
//
// All three use gonum's vg backends (vgimg, vgsvg, vgpdf), so no external
// tools are needed.
//
// # PNG Output
//
// [RenderPNG] rasterizes the figure on a white background and, by default,
// crops away the surrounding whitespace, keeping a small margin:
//
//	png, err := sink.RenderPNG(fig, sink.WithDPI(220))
//	png, err := sink.RenderPNG(fig, sink.WithTrim(false))
//
// # Format Dispatch
//
// [Encode] picks the renderer from a format name:
//
//	data, err := sink.Encode(fig, "svg")
//
// [render.Figure]: github.com/matzehuels/evalcharts/pkg/render.Figure
package sink
