package cmd

import (
	"github.com/spf13/cobra"

	"github.com/idlab-discover/EBPlot-cli/internal/compose"
)

// forwardCmd represents the forward command
var forwardCmd = &cobra.Command{
	Use:   "forward",
	Short: "Plot the synthetic model curves",
	Long:  "Plot the synthetic light and radial-velocity curves of the forward model, in absolute time or, with --phase, folded on the configured ephemeris.",
	RunE: func(cmd *cobra.Command, args []string) error {
		run, err := resolveRun("forward", compose.Forward)
		if err != nil {
			return err
		}
		return executeRender(cmd, run)
	},
}

func init() {
	bindRenderFlags(forwardCmd, "forward")
}
