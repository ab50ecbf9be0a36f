// Package sample holds the observation/model sample pool of one model
// evaluation and the dataset selector that partitions it.
package sample

import (
	"math"
	"sort"
	"strconv"

	"github.com/idlab-discover/EBPlot-cli/internal/apperr"
)

// DatasetID enumerates an instrument/data-type group within a sample pool.
type DatasetID int

const (
	PhotometricBlue DatasetID = 1
	PhotometricRed  DatasetID = 2
	RVPrimary       DatasetID = 3
	RVSecondary     DatasetID = 4
)

func (id DatasetID) String() string { return strconv.Itoa(int(id)) }

// Sample is one observation/model pair. Uncertainty is NaN when absent.
type Sample struct {
	Time        float64
	Observed    float64
	Synthetic   float64
	Uncertainty float64
	Dataset     DatasetID
	Residual    float64
}

// HasUncertainty reports whether the sample carries an observational error.
func (s Sample) HasUncertainty() bool { return !math.IsNaN(s.Uncertainty) }

// Collection is an immutable, ordered pool of samples drawn from one model
// evaluation. The zero value is an empty collection.
type Collection struct {
	samples []Sample
}

// New validates and copies samples into a Collection.
func New(samples []Sample) (Collection, error) {
	out := make([]Sample, len(samples))
	for i, s := range samples {
		if s.Dataset <= 0 {
			return Collection{}, apperr.Wrap(apperr.ErrInvalidParameter, "sample %d: dataset id must be positive, got %d", i, s.Dataset)
		}
		for _, f := range []struct {
			name string
			v    float64
		}{{"time", s.Time}, {"observed", s.Observed}, {"synthetic", s.Synthetic}, {"residual", s.Residual}} {
			if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
				return Collection{}, apperr.Wrap(apperr.ErrInvalidParameter, "sample %d: %s must be finite, got %v", i, f.name, f.v)
			}
		}
		// NaN uncertainty means absent
		if s.HasUncertainty() && (s.Uncertainty < 0 || math.IsInf(s.Uncertainty, 0)) {
			return Collection{}, apperr.Wrap(apperr.ErrInvalidParameter, "sample %d: uncertainty must be finite and non-negative, got %v", i, s.Uncertainty)
		}
		out[i] = s
	}
	return Collection{samples: out}, nil
}

// FromColumns builds a Collection from parallel arrays, the shape in which
// the model provider hands them over. uncertainty may be nil when every
// record is purely synthetic.
func FromColumns(time, observed, synthetic, uncertainty []float64, ids []int, residual []float64) (Collection, error) {
	n := len(time)
	if uncertainty == nil {
		uncertainty = make([]float64, n)
		for i := range uncertainty {
			uncertainty[i] = math.NaN()
		}
	}
	columns := []struct {
		name string
		n    int
	}{
		{"observed", len(observed)},
		{"synthetic", len(synthetic)},
		{"uncertainty", len(uncertainty)},
		{"dataset", len(ids)},
		{"residual", len(residual)},
	}
	for _, col := range columns {
		if col.n != n {
			return Collection{}, apperr.Wrap(apperr.ErrLengthMismatch, "column %s has %d values, time has %d", col.name, col.n, n)
		}
	}

	samples := make([]Sample, n)
	for i := range samples {
		samples[i] = Sample{
			Time:        time[i],
			Observed:    observed[i],
			Synthetic:   synthetic[i],
			Uncertainty: uncertainty[i],
			Dataset:     DatasetID(ids[i]),
			Residual:    residual[i],
		}
	}
	return New(samples)
}

func (c Collection) Len() int { return len(c.samples) }

// At returns the sample at position i.
func (c Collection) At(i int) Sample { return c.samples[i] }

// IDs returns the distinct dataset ids present, ascending.
func (c Collection) IDs() []DatasetID {
	seen := make(map[DatasetID]struct{})
	var ids []DatasetID
	for _, s := range c.samples {
		if _, ok := seen[s.Dataset]; ok {
			continue
		}
		seen[s.Dataset] = struct{}{}
		ids = append(ids, s.Dataset)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Select returns the positions of all samples tagged with id, in original
// order. An empty result is valid.
func Select(c Collection, id DatasetID) []int {
	var idx []int
	for i, s := range c.samples {
		if s.Dataset == id {
			idx = append(idx, i)
		}
	}
	return idx
}

func (c Collection) gather(idx []int, field func(Sample) float64) []float64 {
	out := make([]float64, len(idx))
	for k, i := range idx {
		out[k] = field(c.samples[i])
	}
	return out
}

func (c Collection) Times(idx []int) []float64 {
	return c.gather(idx, func(s Sample) float64 { return s.Time })
}

func (c Collection) Observed(idx []int) []float64 {
	return c.gather(idx, func(s Sample) float64 { return s.Observed })
}

func (c Collection) Synthetic(idx []int) []float64 {
	return c.gather(idx, func(s Sample) float64 { return s.Synthetic })
}

// Uncertainties gathers uncertainties; absent values are reported as 0 so the
// result can be drawn directly as error-bar half-lengths.
func (c Collection) Uncertainties(idx []int) []float64 {
	return c.gather(idx, func(s Sample) float64 {
		if !s.HasUncertainty() {
			return 0
		}
		return s.Uncertainty
	})
}

func (c Collection) Residuals(idx []int) []float64 {
	return c.gather(idx, func(s Sample) float64 { return s.Residual })
}
