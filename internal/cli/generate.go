package cli

import (
	"context"
	"fmt"

	"github.com/matzehuels/evalcharts/internal/paper"
	"github.com/matzehuels/evalcharts/pkg/observability"
	"github.com/matzehuels/evalcharts/pkg/output"
	"github.com/matzehuels/evalcharts/pkg/pipeline"
	"github.com/matzehuels/evalcharts/pkg/render"
	"github.com/matzehuels/evalcharts/pkg/style"
)

// generateOpts holds the flags of the root command.
type generateOpts struct {
	out       string // output directory
	format    string // overrides the theme's format when set
	stylePath string // optional TOML theme file
	noIndex   bool   // skip index.md and manifest.json
}

func defaultGenerateOpts() *generateOpts {
	return &generateOpts{out: output.DefaultDir}
}

// loadTheme reads the theme file, if any, and applies the format flag.
func loadTheme(opts *generateOpts) (style.Theme, error) {
	theme, err := style.Load(opts.stylePath)
	if err != nil {
		return style.Theme{}, err
	}
	if opts.format != "" {
		theme.Format = opts.format
	}
	if err := theme.Validate(); err != nil {
		return style.Theme{}, err
	}
	return theme, nil
}

// runGenerate renders every chart into opts.out.
func (c *CLI) runGenerate(ctx context.Context, opts *generateOpts) error {
	logger := loggerFromContext(ctx)

	theme, err := loadTheme(opts)
	if err != nil {
		return err
	}
	jobs, err := paper.Jobs()
	if err != nil {
		return err
	}

	hooks := newChartHooks(logger, len(jobs))
	if c.Interactive {
		hooks.spinner = newSpinnerWithContext(ctx, "Rendering charts")
		hooks.spinner.Start()
	}
	observability.SetRenderHooks(hooks)
	observability.SetOutputHooks(hooks)
	defer observability.Reset()

	logger.Debug("generating charts", "jobs", len(jobs), "format", theme.Format, "dpi", theme.DPI, "out", opts.out)
	prog := newProgress(logger)

	runner := pipeline.NewRunner(render.New(theme), output.New(opts.out), logger)
	result, err := runner.Execute(ctx, jobs, pipeline.Options{Index: !opts.noIndex})
	if err != nil {
		stopSpinnerWithError(hooks.spinner)
		return err
	}
	summary := fmt.Sprintf("Rendered %d charts", len(result.Artifacts))
	if hooks.spinner != nil {
		hooks.spinner.StopWithSuccess(summary)
	}
	prog.done(summary)

	for _, art := range result.Artifacts {
		printFile(art.Path)
	}
	for _, path := range result.IndexFiles {
		printFile(path)
	}
	printDone(result.Dir)
	return nil
}

// stopSpinnerWithError clears the spinner, noting whether the run was
// interrupted or failed.
func stopSpinnerWithError(s *Spinner) {
	if s == nil {
		return
	}
	if s.Cancelled() {
		s.StopWithError("Interrupted")
		return
	}
	s.StopWithError("Rendering failed")
}
