// Package pipeline turns a list of chart jobs into files on disk.
//
// Each [Job] pairs a filename stem with a chart model. [Runner.Execute]
// processes the jobs strictly in order: render the chart, encode the
// figure in the theme's format, write <stem>.<format> into the output
// directory. A failed job stops the batch; files already written stay on
// disk and a rerun overwrites them.
//
// # Usage
//
//	theme := style.Default()
//	runner := pipeline.NewRunner(render.New(theme), output.New("plots"), logger)
//	result, err := runner.Execute(ctx, jobs, pipeline.Options{Index: true})
//	if err != nil {
//	    return err
//	}
//	fmt.Println("Done. Plots written to:", result.Dir)
//
// The context is checked between jobs, so cancelling it stops the batch
// after the chart being written.
package pipeline

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/evalcharts/pkg/chart"
	"github.com/matzehuels/evalcharts/pkg/errors"
	"github.com/matzehuels/evalcharts/pkg/manifest"
)

// Job is one chart to generate.
type Job struct {
	Stem  string
	Chart chart.Chart
}

// Options configures a run.
type Options struct {
	// Index writes manifest.json and index.md after the charts.
	Index bool

	// Logger overrides the runner's logger for this run.
	Logger *log.Logger
}

// Artifact describes one written file.
type Artifact struct {
	Stem string
	Kind chart.Kind
	Path string
	Size int
}

// Result contains the outputs of a run.
type Result struct {
	// Dir is the absolute output directory.
	Dir string

	// Artifacts lists the chart files in job order.
	Artifacts []Artifact

	// Manifest describes the charts; it is filled even when Index is off.
	Manifest *manifest.Manifest

	// IndexFiles holds the paths of manifest.json and index.md, if written.
	IndexFiles []string

	Stats Stats
}

// Stats contains run statistics.
type Stats struct {
	Charts     int
	Bytes      int
	RenderTime time.Duration
	WriteTime  time.Duration
}

// ValidateJobs checks that every job has a chart and a usable, unique stem.
func ValidateJobs(jobs []Job) error {
	if len(jobs) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "no chart jobs")
	}
	seen := make(map[string]bool, len(jobs))
	for _, j := range jobs {
		if err := errors.ValidateStem(j.Stem); err != nil {
			return err
		}
		if j.Stem == manifest.JSONStem || j.Stem == manifest.MarkdownStem {
			return errors.New(errors.ErrCodeInvalidInput, "stem %q is reserved for the index", j.Stem)
		}
		if seen[j.Stem] {
			return errors.New(errors.ErrCodeInvalidInput, "duplicate stem %q", j.Stem)
		}
		seen[j.Stem] = true
		if j.Chart == nil {
			return errors.New(errors.ErrCodeInvalidInput, "job %q has no chart", j.Stem)
		}
	}
	return nil
}
