package sampleio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.yaml.in/yaml/v3"

	"github.com/idlab-discover/EBPlot-cli/internal/chi2"
)

// Report is the YAML export of one run's chi-square summaries.
type Report struct {
	RunID     string         `yaml:"run_id"`
	Mode      string         `yaml:"mode"`
	Input     string         `yaml:"input"`
	Output    string         `yaml:"output,omitempty"`
	Summaries []chi2.Summary `yaml:"summaries"`
	Total     float64        `yaml:"total"`
}

// NewReport stamps a fresh run id and totals the summaries.
func NewReport(mode, input, output string, summaries []chi2.Summary) Report {
	return Report{
		RunID:     uuid.NewString(),
		Mode:      mode,
		Input:     input,
		Output:    output,
		Summaries: summaries,
		Total:     chi2.Total(summaries),
	}
}

// WriteSummaries writes r to path as YAML. The extension must be .yaml or
// .yml.
func WriteSummaries(path string, r Report) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
	default:
		return fmt.Errorf("summary path extension %q is not .yaml or .yml", filepath.Ext(path))
	}
	if r.RunID == "" {
		r.RunID = uuid.NewString()
	}
	if r.Summaries == nil {
		r.Summaries = []chi2.Summary{}
	}

	data, err := yaml.Marshal(r)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	logf(path, "wrote %d summaries (run %s)", len(r.Summaries), r.RunID)
	return nil
}
