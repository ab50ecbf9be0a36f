// Package phase folds absolute timestamps onto the orbital cycle and
// reorders folded data so a connecting line traverses phase monotonically.
package phase

import (
	"math"

	"github.com/idlab-discover/EBPlot-cli/internal/apperr"
)

// Ephemeris is the linear ephemeris of the binary: orbital period (days) and
// reference epoch (HJD).
type Ephemeris struct {
	Period float64
	Epoch  float64
}

// DefaultEphemeris is the ephemeris used for the reference system's figures.
var DefaultEphemeris = Ephemeris{Period: 5.732436, Epoch: 2457733.8493}

// Validate rejects a zero or non-finite period and a non-finite epoch.
func (e Ephemeris) Validate() error {
	if e.Period == 0 || math.IsNaN(e.Period) || math.IsInf(e.Period, 0) {
		return apperr.Wrap(apperr.ErrInvalidParameter, "period must be finite and non-zero, got %v", e.Period)
	}
	if math.IsNaN(e.Epoch) || math.IsInf(e.Epoch, 0) {
		return apperr.Wrap(apperr.ErrInvalidParameter, "reference epoch must be finite, got %v", e.Epoch)
	}
	return nil
}

// Phase folds t with the ephemeris.
func (e Ephemeris) Phase(t float64) (float64, error) {
	return Fold(t, e.Period, e.Epoch)
}

// Fold maps t to ((t-epoch)/period) mod 1 in [0,1), also for t before epoch.
func Fold(t, period, epoch float64) (float64, error) {
	if err := (Ephemeris{Period: period, Epoch: epoch}).Validate(); err != nil {
		return 0, err
	}
	return wrap((t - epoch) / period), nil
}

// FoldAll folds every time in ts and returns a slice of the same length.
func FoldAll(ts []float64, period, epoch float64) ([]float64, error) {
	if err := (Ephemeris{Period: period, Epoch: epoch}).Validate(); err != nil {
		return nil, err
	}
	out := make([]float64, len(ts))
	for i, t := range ts {
		out[i] = wrap((t - epoch) / period)
	}
	return out, nil
}

func wrap(cycles float64) float64 {
	f := math.Mod(cycles, 1)
	if f < 0 {
		f++
	}
	// -tiny + 1 rounds to exactly 1.
	if f >= 1 {
		f = 0
	}
	return f
}
