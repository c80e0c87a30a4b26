package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/evalcharts/pkg/buildinfo"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "evalcharts"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Interactive enables the terminal spinner while charts render.
	Interactive bool
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command. Running it without a
// subcommand generates every chart.
func (c *CLI) RootCommand() *cobra.Command {
	opts := defaultGenerateOpts()

	root := &cobra.Command{
		Use:   appName,
		Short: "Generate the evaluation-accuracy figures",
		Long: `evalcharts renders the evaluation-accuracy figures of the paper (summary bars,
per-focus deltas, curriculum trends and per-question heatmaps) into a directory
of image files.`,
		Version:      buildinfo.Version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := withLogger(cmd.Context(), c.Logger)
			return c.runGenerate(ctx, opts)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.Flags().StringVarP(&opts.out, "out", "o", opts.out, "output directory")
	root.Flags().StringVarP(&opts.format, "format", "f", "", "output format: png (default), svg, pdf")
	root.Flags().StringVar(&opts.stylePath, "style", "", "theme file (.toml or .yaml) overriding the built-in figure style")
	root.Flags().BoolVar(&opts.noIndex, "no-index", false, "skip writing index.md and manifest.json")

	root.AddCommand(c.listCommand())
	root.AddCommand(c.completionCommand())

	return root
}
