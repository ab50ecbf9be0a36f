package sample

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idlab-discover/EBPlot-cli/internal/apperr"
)

func scenario(t *testing.T) Collection {
	t.Helper()
	c, err := FromColumns(
		[]float64{0, 1, 2, 3, 4, 5},
		[]float64{10, 20, 30, 40, 50, 60},
		[]float64{11, 19, 31, 39, 51, 59},
		[]float64{0.1, 0.1, 0.2, 0.2, 1, 1},
		[]int{1, 1, 2, 2, 3, 4},
		[]float64{0.5, 1.5, 2, 3, 4, 5},
	)
	require.NoError(t, err)
	return c
}

func TestSelect_PreservesOrder(t *testing.T) {
	c := scenario(t)
	assert.Equal(t, []int{0, 1}, Select(c, PhotometricBlue))
	assert.Equal(t, []int{2, 3}, Select(c, PhotometricRed))
	assert.Equal(t, []int{4}, Select(c, RVPrimary))
	assert.Equal(t, []int{5}, Select(c, RVSecondary))
}

func TestSelect_UnknownIDIsEmpty(t *testing.T) {
	c := scenario(t)
	assert.Empty(t, Select(c, 9))
	assert.Empty(t, Select(Collection{}, PhotometricBlue))
}

func TestSelect_PartitionsCollection(t *testing.T) {
	c, err := FromColumns(
		[]float64{0, 1, 2, 3, 4, 5, 6, 7},
		make([]float64, 8),
		make([]float64, 8),
		nil,
		[]int{4, 1, 3, 1, 2, 4, 4, 3},
		make([]float64, 8),
	)
	require.NoError(t, err)

	seen := make(map[int]DatasetID)
	for _, id := range c.IDs() {
		for _, i := range Select(c, id) {
			prev, dup := seen[i]
			require.False(t, dup, "index %d selected by %d and %d", i, prev, id)
			seen[i] = id
		}
	}
	assert.Len(t, seen, c.Len())
	assert.Equal(t, []DatasetID{1, 2, 3, 4}, c.IDs())
}

func TestFromColumns_LengthMismatch(t *testing.T) {
	_, err := FromColumns([]float64{0, 1}, []float64{1}, []float64{1, 2}, nil, []int{1, 1}, []float64{0, 0})
	require.ErrorIs(t, err, apperr.ErrLengthMismatch)
}

func TestNew_RejectsInvalidSamples(t *testing.T) {
	_, err := New([]Sample{{Dataset: 0, Uncertainty: math.NaN()}})
	require.ErrorIs(t, err, apperr.ErrInvalidParameter)

	_, err = New([]Sample{{Dataset: 1, Uncertainty: -0.5}})
	require.ErrorIs(t, err, apperr.ErrInvalidParameter)

	_, err = New([]Sample{{Dataset: 1, Uncertainty: math.Inf(1)}})
	require.ErrorIs(t, err, apperr.ErrInvalidParameter)
}

func TestNew_RejectsNonFiniteValues(t *testing.T) {
	nan, inf := math.NaN(), math.Inf(-1)
	for name, s := range map[string]Sample{
		"time":      {Time: nan, Dataset: 1},
		"observed":  {Observed: inf, Dataset: 1},
		"synthetic": {Synthetic: nan, Dataset: 1},
		"residual":  {Residual: nan, Dataset: 1},
	} {
		_, err := New([]Sample{s})
		require.ErrorIs(t, err, apperr.ErrInvalidParameter, name)
		assert.Contains(t, err.Error(), name)
	}

	_, err := FromColumns([]float64{0, nan}, []float64{1, 1}, []float64{1, 1}, nil, []int{1, 1}, []float64{0, 0})
	require.ErrorIs(t, err, apperr.ErrInvalidParameter)

	c, err := New([]Sample{{Dataset: 1, Uncertainty: nan}})
	require.NoError(t, err)
	assert.False(t, c.At(0).HasUncertainty())
}

func TestColumns_GatherInIndexOrder(t *testing.T) {
	c := scenario(t)
	idx := []int{3, 0}
	assert.Equal(t, []float64{3, 0}, c.Times(idx))
	assert.Equal(t, []float64{40, 10}, c.Observed(idx))
	assert.Equal(t, []float64{39, 11}, c.Synthetic(idx))
	assert.Equal(t, []float64{0.2, 0.1}, c.Uncertainties(idx))
	assert.Equal(t, []float64{3, 0.5}, c.Residuals(idx))
}

func TestUncertainties_AbsentIsZero(t *testing.T) {
	c, err := FromColumns([]float64{1}, []float64{2}, []float64{3}, nil, []int{3}, []float64{0})
	require.NoError(t, err)
	assert.False(t, c.At(0).HasUncertainty())
	assert.Equal(t, []float64{0}, c.Uncertainties([]int{0}))
}
