package phase

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idlab-discover/EBPlot-cli/internal/apperr"
)

func TestResequence_Scenario(t *testing.T) {
	ph, vals, err := Resequence([]float64{0.5, 0}, []float64{10, 20})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.5}, ph)
	assert.Equal(t, []float64{20, 10}, vals)
}

func TestResequence_PairingAndMonotonic(t *testing.T) {
	phases := []float64{0.9, 0.1, 0.5, 0.3, 0.7, 0.0, 0.95}
	values := []float64{9, 1, 5, 3, 7, 0, 9.5}

	ph, vals, err := Resequence(phases, values)
	require.NoError(t, err)

	assert.True(t, sort.Float64sAreSorted(ph))
	for i := range ph {
		// values were built as 10*phase, so pairing is checkable directly
		assert.InDelta(t, ph[i]*10, vals[i], 1e-12)
	}
	assert.ElementsMatch(t, values, vals)
	// inputs are untouched
	assert.Equal(t, 0.9, phases[0])
}

func TestResequence_TiesKeepInputOrder(t *testing.T) {
	ph, vals, err := Resequence(
		[]float64{0.5, 0.2, 0.5, 0.2, 0.5},
		[]float64{1, 2, 3, 4, 5},
	)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.2, 0.2, 0.5, 0.5, 0.5}, ph)
	assert.Equal(t, []float64{2, 4, 1, 3, 5}, vals)
}

func TestResequence_PermutingIdenticalEntriesIsInvisible(t *testing.T) {
	a, av, err := Resequence([]float64{0.4, 0.1, 0.4, 0.7}, []float64{8, 2, 8, 1})
	require.NoError(t, err)
	b, bv, err := Resequence([]float64{0.4, 0.4, 0.7, 0.1}, []float64{8, 8, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Equal(t, av, bv)
}

func TestResequence_LengthMismatch(t *testing.T) {
	_, _, err := Resequence([]float64{0.1, 0.2}, []float64{1})
	require.ErrorIs(t, err, apperr.ErrLengthMismatch)
}

func TestResequence_RejectsNaNPhase(t *testing.T) {
	_, _, err := Resequence([]float64{0.2, math.NaN(), 0.1}, []float64{1, 2, 3})
	require.ErrorIs(t, err, apperr.ErrInvalidParameter)
}

func TestResequence_Empty(t *testing.T) {
	ph, vals, err := Resequence(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, ph)
	assert.Empty(t, vals)
}

func TestOrderApply_ParallelColumns(t *testing.T) {
	perm := Order([]float64{0.6, 0.2, 0.4})
	assert.Equal(t, []int{1, 2, 0}, perm)

	errs, err := Apply(perm, []float64{0.06, 0.02, 0.04})
	require.NoError(t, err)
	assert.Equal(t, []float64{0.02, 0.04, 0.06}, errs)

	_, err = Apply(perm, []float64{1})
	require.ErrorIs(t, err, apperr.ErrLengthMismatch)
}
