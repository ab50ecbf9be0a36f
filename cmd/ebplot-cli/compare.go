package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idlab-discover/EBPlot-cli/internal/compose"
)

// compareCmd represents the compare command
var compareCmd = &cobra.Command{
	Use:     "compare",
	Aliases: []string{"comparison"},
	Short:   "Plot observations against the model and report chi-square",
	Long:    "Plot observed points with error bars, the synthetic model and their residuals, and print one chi-square line per dataset. Use --summary-out to also export the summaries as YAML.",
	RunE: func(cmd *cobra.Command, args []string) error {
		run, err := resolveRun("compare", compose.Comparison)
		if err != nil {
			return err
		}
		return executeRender(cmd, run)
	},
}

func init() {
	bindRenderFlags(compareCmd, "compare")
	compareCmd.Flags().String("summary-out", "", "Write the chi-square summaries to this YAML file")
	_ = viper.BindPFlag("compare.summary-out", compareCmd.Flags().Lookup("summary-out"))
}
