package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/evalcharts/internal/paper"
)

// listCommand prints the charts a run would generate, without rendering.
func (c *CLI) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the charts that would be generated",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			jobs, err := paper.Jobs()
			if err != nil {
				return err
			}
			for _, j := range jobs {
				printKeyValue(string(j.Chart.Kind()), j.Stem)
			}
			printDetail("%d charts", len(jobs))
			return nil
		},
	}
}
