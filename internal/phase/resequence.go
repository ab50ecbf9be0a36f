package phase

import (
	"math"
	"sort"

	"github.com/idlab-discover/EBPlot-cli/internal/apperr"
)

// Order returns the permutation that sorts phases ascending. Equal phases
// keep their input order.
func Order(phases []float64) []int {
	perm := make([]int, len(phases))
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(a, b int) bool { return phases[perm[a]] < phases[perm[b]] })
	return perm
}

// Apply reorders values by perm. len(values) must equal len(perm).
func Apply(perm []int, values []float64) ([]float64, error) {
	if len(values) != len(perm) {
		return nil, apperr.Wrap(apperr.ErrLengthMismatch, "permutation has %d entries, values has %d", len(perm), len(values))
	}
	out := make([]float64, len(values))
	for k, i := range perm {
		out[k] = values[i]
	}
	return out, nil
}

// Resequence sorts phases ascending and carries each value along with its
// phase. A NaN phase has no place in the order and is rejected.
func Resequence(phases, values []float64) ([]float64, []float64, error) {
	if len(phases) != len(values) {
		return nil, nil, apperr.Wrap(apperr.ErrLengthMismatch, "phases has %d entries, values has %d", len(phases), len(values))
	}
	for i, p := range phases {
		if math.IsNaN(p) {
			return nil, nil, apperr.Wrap(apperr.ErrInvalidParameter, "phase %d is NaN", i)
		}
	}
	perm := Order(phases)
	sortedPhases, _ := Apply(perm, phases)
	sortedValues, _ := Apply(perm, values)
	return sortedPhases, sortedValues, nil
}
