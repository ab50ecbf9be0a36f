// Package chi2 aggregates the precomputed per-sample residual statistic into
// one goodness-of-fit figure per dataset and reports it to a summary sink.
package chi2

import (
	"fmt"
	"io"

	"github.com/idlab-discover/EBPlot-cli/internal/apperr"
	"github.com/idlab-discover/EBPlot-cli/internal/sample"
)

// Summary is the chi-square contribution of one dataset.
type Summary struct {
	Dataset sample.DatasetID `yaml:"dataset"`
	Chi2    float64          `yaml:"chi2"`
	Points  int              `yaml:"points"`
}

// Line renders the summary as "chi2 from dataset <id> = <value>" with ten
// decimals.
func (s Summary) Line() string {
	return fmt.Sprintf("chi2 from dataset %d = %.10f", int(s.Dataset), s.Chi2)
}

// Aggregate sums the residual statistic over idx, left to right in idx
// order so repeated runs produce bit-identical results.
func Aggregate(c sample.Collection, idx []int) (float64, error) {
	var sum float64
	for _, i := range idx {
		if i < 0 || i >= c.Len() {
			return 0, apperr.Wrap(apperr.ErrInvalidParameter, "index %d outside collection of %d samples", i, c.Len())
		}
		sum += c.At(i).Residual
	}
	return sum, nil
}

// Summarize selects dataset id and aggregates it.
func Summarize(c sample.Collection, id sample.DatasetID) (Summary, error) {
	idx := sample.Select(c, id)
	sum, err := Aggregate(c, idx)
	if err != nil {
		return Summary{}, err
	}
	return Summary{Dataset: id, Chi2: sum, Points: len(idx)}, nil
}

// SummarizeAll summarizes every dataset present in c, by ascending id.
func SummarizeAll(c sample.Collection) ([]Summary, error) {
	ids := c.IDs()
	out := make([]Summary, 0, len(ids))
	for _, id := range ids {
		s, err := Summarize(c, id)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// Total is the sum of all summaries.
func Total(summaries []Summary) float64 {
	var sum float64
	for _, s := range summaries {
		sum += s.Chi2
	}
	return sum
}

// Sink receives summaries as they are produced.
type Sink interface {
	Report(Summary) error
}

// WriterSink writes one Line per summary.
type WriterSink struct {
	W io.Writer
}

func (s WriterSink) Report(sum Summary) error {
	_, err := fmt.Fprintln(s.W, sum.Line())
	return err
}

// Collector keeps every reported summary in order.
type Collector struct {
	Summaries []Summary
}

func (c *Collector) Report(sum Summary) error {
	c.Summaries = append(c.Summaries, sum)
	return nil
}

// Tee fans a summary out to several sinks, stopping at the first error.
type Tee []Sink

func (t Tee) Report(sum Summary) error {
	for _, s := range t {
		if s == nil {
			continue
		}
		if err := s.Report(sum); err != nil {
			return err
		}
	}
	return nil
}
