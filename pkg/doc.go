// Package pkg provides the libraries behind evalcharts.
//
// # Overview
//
// evalcharts turns fixed tables of evaluation accuracies into a directory of
// chart images. The pkg directory is organized by stage:
//
//  1. [results] - Accuracy tables and their aggregations (means, deltas)
//  2. [chart] - Renderer-independent chart models and their geometry
//  3. [render] - Drawing chart models with gonum/plot, and [render/sink] for
//     encoding them as PNG, SVG or PDF
//  4. [output] - The flat output directory
//  5. [manifest] - The manifest.json and index.md describing a run
//  6. [pipeline] - Orchestration (render → encode → write, per job)
//
// Supporting packages: [style] (figure constants and TOML overrides),
// [errors] (coded errors), [observability] (instrumentation hooks) and
// [buildinfo] (version stamping).
//
// # Architecture
//
//	literal tables ([results])
//	         ↓
//	chart models ([chart])
//	         ↓
//	figures ([render])
//	         ↓
//	PNG/SVG/PDF bytes ([render/sink])
//	         ↓
//	<stem>.<format> files ([output]) + index ([manifest])
//
// # Quick Start
//
//	theme := style.Default()
//	fig, err := render.New(theme).Render(chart.GroupedBar{
//	    Title:      "Overall Summary",
//	    Categories: []string{"all", "perception", "strategy"},
//	    Series: []chart.Series{
//	        {Name: "Pre-Train", Values: []float64{0.160, 0.207, 0.003}},
//	        {Name: "Post-Visual", Values: []float64{0.284, 0.367, 0.007}},
//	    },
//	    YLabel:   "Accuracy",
//	    YRange:   chart.Range{Min: 0, Max: 0.45},
//	    Annotate: true,
//	})
//	if err != nil {
//	    return err
//	}
//	png, err := sink.RenderPNG(fig, sink.WithDPI(theme.DPI))
package pkg
