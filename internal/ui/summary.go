package ui

import (
	"fmt"
	"io"
	"strings"

	"charm.land/lipgloss/v2"
)

// ChiSquareReport mirrors the chi2 summaries of one run
// to avoid circular imports
type ChiSquareReport struct {
	Mode   string
	Input  string
	Output string
	Rows   []ChiSquareRow
}

// ChiSquareRow is the contribution of one dataset.
type ChiSquareRow struct {
	Dataset int
	Name    string
	Chi2    float64
	Points  int
}

// Total sums every row.
func (r ChiSquareReport) Total() float64 {
	var sum float64
	for _, row := range r.Rows {
		sum += row.Chi2
	}
	return sum
}

// SummaryUI renders chi-square summaries for the compare and summary commands
type SummaryUI struct {
	writer io.Writer
	quiet  bool
}

// NewSummaryUI creates a new UI handler for chi-square summaries
func NewSummaryUI(w io.Writer, quiet bool) *SummaryUI {
	return &SummaryUI{writer: w, quiet: quiet}
}

// PrintReport renders the per-dataset breakdown in a box
func (s *SummaryUI) PrintReport(report ChiSquareReport) {
	if s.quiet {
		return
	}

	var output strings.Builder
	output.WriteString(Success.Bold(true).Render("Chi-square Summary"))
	output.WriteString("\n\n")

	if report.Mode != "" {
		output.WriteString(FormatKeyValue("Mode", report.Mode))
		output.WriteString("\n")
	}
	if report.Input != "" {
		output.WriteString(FormatKeyValue("Input", report.Input))
		output.WriteString("\n")
	}
	if report.Output != "" {
		output.WriteString(FormatKeyValue("Figure", report.Output))
		output.WriteString("\n")
	}
	output.WriteString("\n")

	if len(report.Rows) == 0 {
		output.WriteString(Warning.Render(WarnMark + " no datasets to summarize"))
	} else {
		output.WriteString(s.renderRows(report))
	}

	fmt.Fprintln(s.writer, SuccessBox.Render(output.String()))
}

func (s *SummaryUI) renderRows(report ChiSquareReport) string {
	var sb strings.Builder
	total := report.Total()

	sb.WriteString(SectionHeader.Render("Datasets"))
	sb.WriteString("\n")
	for _, row := range report.Rows {
		label := fmt.Sprintf("%d", row.Dataset)
		if row.Name != "" {
			label += " " + Dim.Render("("+row.Name+")")
		}
		sb.WriteString(FormatKeyValue("Dataset", Highlight.Render(label)))
		sb.WriteString("\n")

		share := 0.0
		if total > 0 {
			share = row.Chi2 / total
		}
		sb.WriteString(FormatKeyValue("χ²", fmt.Sprintf("%.10f", row.Chi2)))
		sb.WriteString("\n")
		sb.WriteString(FormatKeyValue("Share", renderShareBar(share, 30)+" "+Dim.Render(fmt.Sprintf("%.1f%%", share*100))))
		sb.WriteString("\n")
		sb.WriteString(Dim.Render(fmt.Sprintf("(%d points)", row.Points)))
		sb.WriteString("\n\n")
	}
	sb.WriteString(FormatKeyValue("Total χ²", Bold.Render(fmt.Sprintf("%.10f", total))))
	return sb.String()
}

// renderShareBar draws the fraction of the total a dataset contributes.
func renderShareBar(share float64, width int) string {
	if share < 0 {
		share = 0
	}
	if share > 1 {
		share = 1
	}
	filled := int(share*float64(width) + 0.5)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	// the dominant contributor is the one to look at first
	var style lipgloss.Style
	switch {
	case share >= 0.5:
		style = lipgloss.NewStyle().Foreground(ColorError)
	case share >= 0.25:
		style = lipgloss.NewStyle().Foreground(ColorWarning)
	default:
		style = lipgloss.NewStyle().Foreground(ColorSuccess)
	}
	return style.Render(bar)
}

// PrintSimpleReport prints the plain per-dataset lines and the total.
func (s *SummaryUI) PrintSimpleReport(report ChiSquareReport) {
	for _, row := range report.Rows {
		fmt.Fprintf(s.writer, "chi2 from dataset %d = %.10f\n", row.Dataset, row.Chi2)
	}
	if len(report.Rows) > 1 {
		fmt.Fprintf(s.writer, "total chi2 = %.10f\n", report.Total())
	}
}
