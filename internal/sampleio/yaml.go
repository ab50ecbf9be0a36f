package sampleio

import (
	"errors"
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/idlab-discover/EBPlot-cli/internal/apperr"
	"github.com/idlab-discover/EBPlot-cli/internal/sample"
)

// columnsDoc is the YAML layout: one parallel array per column, as the model
// provider hands them over. uncertainty may be omitted; .nan marks a single
// absent value.
type columnsDoc struct {
	Time        []float64 `yaml:"time"`
	Observed    []float64 `yaml:"observed"`
	Synthetic   []float64 `yaml:"synthetic"`
	Uncertainty []float64 `yaml:"uncertainty,omitempty"`
	Dataset     []int     `yaml:"dataset"`
	Residual    []float64 `yaml:"residual"`
}

func decodeYAML(r io.Reader) (sample.Collection, error) {
	var doc columnsDoc
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return sample.Collection{}, nil
		}
		return sample.Collection{}, apperr.Wrap(apperr.ErrInvalidParameter, "yaml: %v", err)
	}
	return sample.FromColumns(doc.Time, doc.Observed, doc.Synthetic, doc.Uncertainty, doc.Dataset, doc.Residual)
}
