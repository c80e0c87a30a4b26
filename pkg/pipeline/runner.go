package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/evalcharts/pkg/manifest"
	"github.com/matzehuels/evalcharts/pkg/observability"
	"github.com/matzehuels/evalcharts/pkg/output"
	"github.com/matzehuels/evalcharts/pkg/render"
	"github.com/matzehuels/evalcharts/pkg/render/sink"
	"github.com/matzehuels/evalcharts/pkg/style"
)

// Runner renders chart jobs and writes them to an output directory.
//
// The Runner keeps no per-run state; format and DPI come from the
// renderer's theme.
type Runner struct {
	Renderer *render.Renderer
	Output   *output.Dir
	Logger   *log.Logger
}

// NewRunner creates a runner. A nil logger selects log.Default().
func NewRunner(r *render.Renderer, out *output.Dir, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Renderer: r, Output: out, Logger: logger}
}

// Execute generates every job in order and, if requested, the index files.
func (r *Runner) Execute(ctx context.Context, jobs []Job, opts Options) (*Result, error) {
	if err := ValidateJobs(jobs); err != nil {
		return nil, fmt.Errorf("invalid jobs: %w", err)
	}
	theme := r.Renderer.Theme()
	if err := theme.Validate(); err != nil {
		return nil, fmt.Errorf("invalid theme: %w", err)
	}
	logger := r.Logger
	if opts.Logger != nil {
		logger = opts.Logger
	}

	if err := r.Output.Ensure(); err != nil {
		return nil, err
	}
	dir, err := r.Output.Resolve()
	if err != nil {
		return nil, err
	}

	result := &Result{
		Dir:      dir,
		Manifest: &manifest.Manifest{Format: theme.Format},
	}
	if theme.Format == style.FormatPNG {
		result.Manifest.DPI = theme.DPI
	}

	for _, job := range jobs {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		art, err := r.runJob(ctx, job, &result.Stats)
		if err != nil {
			return result, fmt.Errorf("%s: %w", job.Stem, err)
		}
		result.Artifacts = append(result.Artifacts, art)
		if err := result.Manifest.Add(job.Stem, job.Chart, output.FileName(job.Stem, theme.Format)); err != nil {
			return result, fmt.Errorf("%s: %w", job.Stem, err)
		}
		logger.Debug("wrote chart", "stem", job.Stem, "kind", art.Kind, "bytes", art.Size)
	}

	logger.Info("generated charts",
		"count", result.Stats.Charts,
		"bytes", result.Stats.Bytes,
		"render", result.Stats.RenderTime,
		"write", result.Stats.WriteTime)

	if opts.Index {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		files, err := r.writeIndex(ctx, result.Manifest)
		if err != nil {
			return result, fmt.Errorf("index: %w", err)
		}
		result.IndexFiles = files
		logger.Debug("wrote index", "files", len(files))
	}

	return result, nil
}

// runJob renders, encodes and writes a single chart.
func (r *Runner) runJob(ctx context.Context, job Job, stats *Stats) (art Artifact, err error) {
	kind := job.Chart.Kind()
	hooks := observability.Render()
	hooks.OnChartStart(ctx, job.Stem, string(kind))

	start := time.Now()
	var size int
	defer func() {
		hooks.OnChartComplete(ctx, job.Stem, string(kind), size, time.Since(start), err)
	}()

	theme := r.Renderer.Theme()
	fig, err := r.Renderer.Render(job.Chart)
	if err != nil {
		return Artifact{}, err
	}
	data, err := sink.Encode(fig, theme.Format, sink.WithDPI(theme.DPI))
	if err != nil {
		return Artifact{}, err
	}
	size = len(data)
	rendered := time.Now()
	stats.RenderTime += rendered.Sub(start)

	path, err := r.Output.Write(ctx, job.Stem, theme.Format, data)
	if err != nil {
		return Artifact{}, err
	}
	stats.WriteTime += time.Since(rendered)
	stats.Charts++
	stats.Bytes += size

	return Artifact{Stem: job.Stem, Kind: kind, Path: path, Size: size}, nil
}

// writeIndex writes manifest.json and index.md.
func (r *Runner) writeIndex(ctx context.Context, m *manifest.Manifest) ([]string, error) {
	var js, md bytes.Buffer
	if err := manifest.WriteJSON(m, &js); err != nil {
		return nil, err
	}
	if err := manifest.WriteMarkdown(m, &md); err != nil {
		return nil, err
	}

	jsonPath, err := r.Output.Write(ctx, manifest.JSONStem, "json", js.Bytes())
	if err != nil {
		return nil, err
	}
	mdPath, err := r.Output.Write(ctx, manifest.MarkdownStem, "md", md.Bytes())
	if err != nil {
		return nil, err
	}
	return []string{jsonPath, mdPath}, nil
}
