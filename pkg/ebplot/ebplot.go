// Package ebplot renders eclipsing-binary model figures and chi-square
// summaries for callers that drive the pipeline from Go instead of the CLI.
package ebplot

import (
	"github.com/idlab-discover/EBPlot-cli/internal/apperr"
	"github.com/idlab-discover/EBPlot-cli/internal/chi2"
	"github.com/idlab-discover/EBPlot-cli/internal/compose"
	"github.com/idlab-discover/EBPlot-cli/internal/config"
	"github.com/idlab-discover/EBPlot-cli/internal/render"
	"github.com/idlab-discover/EBPlot-cli/internal/sample"
	"github.com/idlab-discover/EBPlot-cli/internal/sampleio"
)

type (
	Collection   = sample.Collection
	Sample       = sample.Sample
	DatasetID    = sample.DatasetID
	Style        = config.Style
	Mode         = compose.Mode
	Result       = compose.Result
	DatasetEvent = compose.DatasetEvent
	DatasetHook  = compose.DatasetHook
	Summary      = chi2.Summary
	Sink         = chi2.Sink
	Report       = sampleio.Report
)

// DefaultDPI is the resolution used when Options.DPI is zero.
const DefaultDPI = 600

// Options tunes a Render call. The zero value renders with DefaultStyle at
// DefaultDPI to the mode's default file name.
type Options struct {
	Style  *Style
	Output string
	DPI    int
	Sink   Sink
	Hooks  []DatasetHook
}

// DefaultStyle returns the documented configuration defaults.
func DefaultStyle() Style { return config.Default() }

// ParseMode resolves a variant ("forward", "comparison") and layout ("time",
// "phase").
func ParseMode(kind, layout string) (Mode, error) { return compose.ParseMode(kind, layout) }

// NewCollection validates samples into a collection.
func NewCollection(samples []Sample) (Collection, error) { return sample.New(samples) }

// ReadSamples reads a sample table; format is auto, text, csv or yaml.
func ReadSamples(path, format string) (Collection, error) {
	return sampleio.ReadCollection(path, format)
}

// Render draws c in mode with the go-chart backend and writes a PNG.
func Render(c Collection, mode Mode, opts Options) (Result, error) {
	style := config.Default()
	if opts.Style != nil {
		style = *opts.Style
	}
	dpi := opts.DPI
	if dpi == 0 {
		dpi = DefaultDPI
	}
	if dpi < 0 {
		return Result{}, apperr.Wrap(apperr.ErrInvalidParameter, "dpi must be positive, got %d", dpi)
	}
	path := opts.Output
	if path == "" {
		path = mode.DefaultOutput()
	}

	copts := []compose.Option{compose.WithSummarySink(opts.Sink)}
	for _, h := range opts.Hooks {
		copts = append(copts, compose.WithDatasetHook(h))
	}
	comp := compose.New(render.NewBackend(), style, copts...)
	return comp.Render(c, mode, compose.Output{Path: path, DPI: float64(dpi)})
}

// Summarize aggregates every dataset in c by ascending id and reports each
// summary to sink, which may be nil.
func Summarize(c Collection, sink Sink) ([]Summary, error) {
	sums, err := chi2.SummarizeAll(c)
	if err != nil {
		return nil, err
	}
	if sink == nil {
		return sums, nil
	}
	for _, s := range sums {
		if err := sink.Report(s); err != nil {
			return nil, apperr.Backend("report summary", err)
		}
	}
	return sums, nil
}

// NewReport builds the YAML export for a run.
func NewReport(mode Mode, input, output string, sums []Summary) Report {
	return sampleio.NewReport(mode.String(), input, output, sums)
}

// WriteReport writes r as YAML to path (.yaml or .yml).
func WriteReport(path string, r Report) error { return sampleio.WriteSummaries(path, r) }
