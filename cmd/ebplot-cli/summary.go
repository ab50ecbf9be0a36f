package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idlab-discover/EBPlot-cli/internal/apperr"
	"github.com/idlab-discover/EBPlot-cli/internal/chi2"
	"github.com/idlab-discover/EBPlot-cli/internal/config"
	"github.com/idlab-discover/EBPlot-cli/internal/sampleio"
	"github.com/idlab-discover/EBPlot-cli/internal/ui"
	"github.com/idlab-discover/EBPlot-cli/pkg/ebplot"
)

// summaryCmd represents the summary command
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print the chi-square of every dataset without plotting",
	RunE:  runSummary,
}

func runSummary(cmd *cobra.Command, args []string) error {
	level, err := resolveLogLevel("summary")
	if err != nil {
		return err
	}
	input := strings.TrimSpace(viper.GetString("summary.input"))
	if input == "" {
		return apperr.User("--input is required")
	}
	style, err := config.Load(viper.GetViper())
	if err != nil {
		return err
	}
	wireLogging(level, cmd.ErrOrStderr())

	coll, err := ebplot.ReadSamples(input, viper.GetString("summary.format"))
	if err != nil {
		return err
	}
	sums, err := ebplot.Summarize(coll, chi2.WriterSink{W: cmd.OutOrStdout()})
	if err != nil {
		return err
	}

	if out := strings.TrimSpace(viper.GetString("summary.summary-out")); out != "" {
		if err := writeSummaryReport(out, input, sums); err != nil {
			return err
		}
	}

	ui.NewSummaryUI(cmd.ErrOrStderr(), level == "quiet").PrintReport(chiSquareReport(style, "summary", input, "", sums))
	return nil
}

// writeSummaryReport exports summaries that were computed without a figure.
func writeSummaryReport(path, input string, sums []chi2.Summary) error {
	return sampleio.WriteSummaries(path, sampleio.NewReport("summary", input, "", sums))
}

func init() {
	summaryCmd.Flags().StringP("input", "i", "", "Sample table (text, CSV or YAML)")
	summaryCmd.Flags().StringP("format", "f", "", "Input format: auto|text|csv|yaml")
	summaryCmd.Flags().String("summary-out", "", "Write the chi-square summaries to this YAML file")
	summaryCmd.Flags().String("log-level", "", "Log level: quiet|standard|debug")

	for _, f := range []string{"input", "format", "summary-out", "log-level"} {
		_ = viper.BindPFlag("summary."+f, summaryCmd.Flags().Lookup(f))
	}
}
