package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/idlab-discover/EBPlot-cli/internal/apperr"
	"github.com/idlab-discover/EBPlot-cli/internal/compose"
	"github.com/idlab-discover/EBPlot-cli/internal/sampleio"
	"github.com/idlab-discover/EBPlot-cli/pkg/ebplot"
)

// interactiveCmd represents the interactive command
var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Choose variant, layout, input and output in a form",
	RunE:  runInteractive,
}

// interactiveAnswers holds the form values.
type interactiveAnswers struct {
	kind       string
	layout     string
	input      string
	format     string
	output     string
	dpi        string
	summaryOut string
	confirm    bool
}

func runInteractive(cmd *cobra.Command, args []string) error {
	a := interactiveAnswers{
		kind:   compose.Comparison.String(),
		layout: compose.AbsoluteTime.String(),
		format: string(sampleio.FormatAuto),
		dpi:    strconv.Itoa(ebplot.DefaultDPI),
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("EBPlot").
				Description("Render a model figure from a sample table.\nPress Enter to keep the suggested value.").
				Next(true).
				NextLabel("Continue"),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Variant").
				Options(
					huh.NewOption("Comparison (observations, residuals, chi-square)", compose.Comparison.String()),
					huh.NewOption("Forward model only", compose.Forward.String()),
				).
				Value(&a.kind),
			huh.NewSelect[string]().
				Title("Layout").
				Options(
					huh.NewOption("Absolute time", compose.AbsoluteTime.String()),
					huh.NewOption("Folded phase", compose.PhaseFolded.String()),
				).
				Value(&a.layout),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Sample table").
				Placeholder("model.dat").
				Validate(validateInputFile).
				Value(&a.input),
			huh.NewSelect[string]().
				Title("Format").
				Options(huh.NewOptions("auto", "text", "csv", "yaml")...).
				Value(&a.format),
			huh.NewInput().
				Title("Output PNG").
				Description("Leave empty for <variant>_<layout>.png").
				Value(&a.output),
			huh.NewInput().
				Title("DPI").
				Validate(validateDPI).
				Value(&a.dpi),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Summary YAML").
				Description("Optional; comparison only").
				Value(&a.summaryOut),
			huh.NewConfirm().
				Title("Render now?").
				Value(&a.confirm).
				Affirmative("Yes").
				Negative("No"),
		),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return apperr.ErrCancelled
		}
		return fmt.Errorf("interactive form: %w", err)
	}
	if !a.confirm {
		return apperr.ErrCancelled
	}

	run, err := a.toRun()
	if err != nil {
		return err
	}
	return executeRender(cmd, run)
}

func (a interactiveAnswers) toRun() (renderRun, error) {
	mode, err := compose.ParseMode(a.kind, a.layout)
	if err != nil {
		return renderRun{}, err
	}
	dpi, err := strconv.Atoi(strings.TrimSpace(a.dpi))
	if err != nil || dpi <= 0 {
		return renderRun{}, apperr.Userf("invalid dpi %q", a.dpi)
	}
	output := strings.TrimSpace(a.output)
	if output == "" {
		output = mode.DefaultOutput()
	}
	run := renderRun{
		mode:   mode,
		input:  strings.TrimSpace(a.input),
		format: a.format,
		output: output,
		dpi:    dpi,
		level:  "standard",
	}
	if mode.Kind == compose.Comparison {
		run.summaryOut = strings.TrimSpace(a.summaryOut)
	}
	return run, nil
}

func validateInputFile(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errors.New("a sample table is required")
	}
	info, err := os.Stat(s)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", s)
	}
	return nil
}

func validateDPI(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return errors.New("dpi must be a positive integer")
	}
	return nil
}
