// Package axis computes padded display ranges covering the union of several
// value groups that share one panel axis.
package axis

import (
	"fmt"
	"math"

	"github.com/idlab-discover/EBPlot-cli/internal/apperr"
)

const (
	// DegenerateSpan replaces a zero data span so the displayed range never
	// collapses to a single value.
	DegenerateSpan = 1e-3

	// degenerateRelative widens DegenerateSpan for large magnitudes, where
	// v ± DegenerateSpan/2 would round back to v.
	degenerateRelative = 1e-9
)

// Range is a display interval; Min < Max for every Range this package returns.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

func (r Range) Span() float64 { return r.Max - r.Min }

// Contains reports whether v lies in the closed interval.
func (r Range) Contains(v float64) bool { return v >= r.Min && v <= r.Max }

func (r Range) String() string { return fmt.Sprintf("[%g, %g]", r.Min, r.Max) }

// Padding is the headroom added below (Low) and above (High) the data, as
// fractions of the data span.
type Padding struct {
	Low  float64 `yaml:"low"`
	High float64 `yaml:"high"`
}

// Fixed returns the explicit range [min, max].
func Fixed(min, max float64) (Range, error) {
	if math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0) || min >= max {
		return Range{}, apperr.Wrap(apperr.ErrInvalidParameter, "fixed range needs finite min < max, got [%v, %v]", min, max)
	}
	return Range{Min: min, Max: max}, nil
}

// Extent returns the raw minimum and maximum over all groups.
func Extent(groups ...[]float64) (Range, error) {
	lo, hi := math.Inf(1), math.Inf(-1)
	n := 0
	for _, g := range groups {
		for _, v := range g {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return Range{}, apperr.Wrap(apperr.ErrInvalidParameter, "non-finite value %v in axis data", v)
			}
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
			n++
		}
	}
	if n == 0 {
		return Range{}, apperr.Wrap(apperr.ErrEmptyInput, "no data points across %d groups", len(groups))
	}
	return Range{Min: lo, Max: hi}, nil
}

// Reconcile pads the union extent of groups outward:
//
//	[raw_min - pad.Low*span, raw_max + pad.High*span]
//
// A zero span is replaced by DegenerateSpan centred on the common value.
func Reconcile(groups [][]float64, pad Padding) (Range, error) {
	if pad.Low < 0 || pad.High < 0 || math.IsNaN(pad.Low) || math.IsNaN(pad.High) {
		return Range{}, apperr.Wrap(apperr.ErrInvalidParameter, "padding fractions must be non-negative, got low=%v high=%v", pad.Low, pad.High)
	}
	raw, err := Extent(groups...)
	if err != nil {
		return Range{}, err
	}

	span := raw.Span()
	if span == 0 {
		half := math.Max(DegenerateSpan/2, math.Abs(raw.Min)*degenerateRelative)
		raw = Range{Min: raw.Min - half, Max: raw.Max + half}
		span = raw.Span()
	}
	return Range{Min: raw.Min - pad.Low*span, Max: raw.Max + pad.High*span}, nil
}

// Accumulator collects value groups for one axis while a panel is drawn and
// reconciles them once the panel is complete.
type Accumulator struct {
	groups [][]float64
}

// Add records a group; empty groups are kept and simply contribute nothing.
func (a *Accumulator) Add(values ...[]float64) {
	a.groups = append(a.groups, values...)
}

// Len is the number of values collected so far.
func (a *Accumulator) Len() int {
	n := 0
	for _, g := range a.groups {
		n += len(g)
	}
	return n
}

func (a *Accumulator) Reconcile(pad Padding) (Range, error) {
	return Reconcile(a.groups, pad)
}
