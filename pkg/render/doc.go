// Package render draws chart models onto gonum/plot canvases.
//
// # Overview
//
// A [Renderer] turns a [chart.Chart] into a [Figure]: a fixed-size drawing
// that can be encoded to any format by the [sink] package. Renderers never
// touch the filesystem.
//
//	r := render.New(style.Default())
//	fig, err := r.Render(chart.GroupedBar{...})
//	png, err := sink.Encode(fig, sink.WithFormat("png"), sink.WithDPI(220))
//
// # Chart Types
//
//   - [chart.GroupedBar]: bars placed in data units by [chart.GroupedBar.Bars],
//     legend in the upper left, optional value labels above each bar
//   - [chart.DeltaBar]: horizontal bars sorted ascending with a zero line and
//     signed labels outside each tip
//   - [chart.Line]: one line with circle markers per series
//   - [chart.Heatmap]: rows from [chart.Heatmap.Rows], separators between
//     categories, per-cell labels and a color bar on the right
//
// Bars are drawn by small plotters in this package rather than
// [plotter.BarChart], whose widths are in canvas units; the chart geometry
// is defined in data units.
//
// [sink]: github.com/matzehuels/evalcharts/pkg/render/sink
// [plotter.BarChart]: gonum.org/v1/plot/plotter.BarChart
package render
