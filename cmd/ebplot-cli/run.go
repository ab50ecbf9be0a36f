package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idlab-discover/EBPlot-cli/internal/apperr"
	"github.com/idlab-discover/EBPlot-cli/internal/chi2"
	"github.com/idlab-discover/EBPlot-cli/internal/compose"
	"github.com/idlab-discover/EBPlot-cli/internal/config"
	"github.com/idlab-discover/EBPlot-cli/internal/render"
	"github.com/idlab-discover/EBPlot-cli/internal/sample"
	"github.com/idlab-discover/EBPlot-cli/internal/sampleio"
	"github.com/idlab-discover/EBPlot-cli/internal/ui"
	"github.com/idlab-discover/EBPlot-cli/pkg/ebplot"
)

// renderRun is one fully resolved forward or compare invocation.
type renderRun struct {
	mode       compose.Mode
	input      string
	format     string
	output     string
	summaryOut string
	dpi        int
	level      string
}

// resolveLogLevel reads "<name>.log-level" (config, env or flag).
func resolveLogLevel(name string) (string, error) {
	level := strings.ToLower(strings.TrimSpace(viper.GetString(name + ".log-level")))
	if level == "" {
		level = "standard"
	}
	switch level {
	case "quiet", "standard", "debug":
		return level, nil
	default:
		return "", apperr.Userf("invalid --log-level %q (expected quiet|standard|debug)", level)
	}
}

// wireLogging routes the internal package logs to w at debug level and
// silences them otherwise.
func wireLogging(level string, w io.Writer) {
	if level != "debug" {
		w = nil
	}
	compose.SetLogger(w)
	render.SetLogger(w)
	sampleio.SetLogger(w)
}

// resolveRun reads the settings a render command shares from viper under
// "<name>.*".
func resolveRun(name string, kind compose.Kind) (renderRun, error) {
	level, err := resolveLogLevel(name)
	if err != nil {
		return renderRun{}, err
	}

	layout := "time"
	if viper.GetBool(name + ".phase") {
		layout = "phase"
	}
	mode, err := compose.ParseMode(kind.String(), layout)
	if err != nil {
		return renderRun{}, err
	}

	input := strings.TrimSpace(viper.GetString(name + ".input"))
	if input == "" {
		return renderRun{}, apperr.User("--input is required")
	}

	dpi := viper.GetInt(name + ".dpi")
	if dpi <= 0 {
		return renderRun{}, apperr.Userf("invalid --dpi %d (must be positive)", dpi)
	}

	output := strings.TrimSpace(viper.GetString(name + ".output"))
	if output == "" {
		output = mode.DefaultOutput()
	}

	return renderRun{
		mode:       mode,
		input:      input,
		format:     viper.GetString(name + ".format"),
		output:     output,
		summaryOut: strings.TrimSpace(viper.GetString(name + ".summary-out")),
		dpi:        dpi,
		level:      level,
	}, nil
}

// executeRender reads the samples, draws the figure and reports summaries.
// Chi-square lines go to stdout; progress and boxes go to stderr so the
// lines can be piped.
func executeRender(cmd *cobra.Command, run renderRun) error {
	style, err := config.Load(viper.GetViper())
	if err != nil {
		return err
	}

	quiet := run.level == "quiet"
	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()
	wireLogging(run.level, stderr)

	rui := ui.NewRenderUI(stderr, quiet)
	rui.StartWorkflow(run.mode.String())

	var col chi2.Collector
	res, err := renderSteps(rui, style, run, &col)
	rui.FinishWorkflow()

	// Lines produced before a failure are still reported.
	lines := chi2.WriterSink{W: stdout}
	for _, s := range col.Summaries {
		if werr := lines.Report(s); werr != nil && err == nil {
			err = werr
		}
	}
	if err != nil {
		return err
	}

	rui.PrintSummary(res.Output, run.dpi, run.mode.String())
	if run.mode.Kind == compose.Comparison {
		ui.NewSummaryUI(stderr, quiet).PrintReport(chiSquareReport(style, run.mode.String(), run.input, res.Output, res.Summaries))
	}
	return nil
}

func renderSteps(rui *ui.RenderUI, style config.Style, run renderRun, sink chi2.Sink) (ebplot.Result, error) {
	rui.StartReading(run.input)
	coll, err := sampleio.ReadCollection(run.input, run.format)
	if err != nil {
		rui.Fail(err)
		return ebplot.Result{}, err
	}
	rui.CompleteReading(coll.Len(), len(coll.IDs()))

	rui.StartRendering(run.output)
	res, err := ebplot.Render(coll, run.mode, ebplot.Options{
		Style:  &style,
		Output: run.output,
		DPI:    run.dpi,
		Sink:   sink,
	})
	if err != nil {
		rui.Fail(err)
		return ebplot.Result{}, err
	}
	rui.CompleteRendering(res.Output, len(res.Panels))

	if run.summaryOut == "" {
		rui.SkipWriting("no --summary-out")
		return res, nil
	}
	rui.StartWriting(run.summaryOut)
	report := ebplot.NewReport(run.mode, run.input, res.Output, res.Summaries)
	if err := ebplot.WriteReport(run.summaryOut, report); err != nil {
		rui.Fail(err)
		return ebplot.Result{}, fmt.Errorf("write summary: %w", err)
	}
	rui.CompleteWriting(run.summaryOut, len(res.Summaries))
	return res, nil
}

// datasetNames maps dataset ids to their configured display names.
func datasetNames(style config.Style) map[sample.DatasetID]string {
	names := make(map[sample.DatasetID]string)
	for _, p := range compose.DefaultLayout(style) {
		for _, r := range p.Roles {
			names[r.Dataset] = r.Name
		}
	}
	return names
}

func chiSquareReport(style config.Style, mode, input, output string, sums []chi2.Summary) ui.ChiSquareReport {
	names := datasetNames(style)
	r := ui.ChiSquareReport{Mode: mode, Input: input, Output: output}
	for _, s := range sums {
		r.Rows = append(r.Rows, ui.ChiSquareRow{
			Dataset: int(s.Dataset),
			Name:    names[s.Dataset],
			Chi2:    s.Chi2,
			Points:  s.Points,
		})
	}
	return r
}

// bindRenderFlags registers the flags forward and compare share and binds
// them to viper as "<name>.<flag>".
func bindRenderFlags(c *cobra.Command, name string) {
	c.Flags().Bool("phase", false, "Fold time into orbital phase instead of plotting absolute time")
	c.Flags().StringP("input", "i", "", "Sample table (text, CSV or YAML)")
	c.Flags().StringP("format", "f", "", "Input format: auto|text|csv|yaml")
	c.Flags().StringP("output", "o", "", "Output PNG path (default <variant>_<layout>.png)")
	c.Flags().Int("dpi", ebplot.DefaultDPI, "Output resolution in dots per inch")
	c.Flags().String("log-level", "", "Log level: quiet|standard|debug")

	for _, f := range []string{"phase", "input", "format", "output", "dpi", "log-level"} {
		_ = viper.BindPFlag(name+"."+f, c.Flags().Lookup(f))
	}
}
