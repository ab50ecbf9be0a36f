package ebplot

import (
	"bytes"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idlab-discover/EBPlot-cli/internal/apperr"
	"github.com/idlab-discover/EBPlot-cli/internal/chi2"
)

func scenario(t *testing.T) Collection {
	t.Helper()
	c, err := NewCollection([]Sample{
		{Time: 0, Observed: 1.00, Synthetic: 1.10, Uncertainty: 0.1, Dataset: 1, Residual: 0.5},
		{Time: 1, Observed: 1.20, Synthetic: 1.10, Uncertainty: 0.1, Dataset: 1, Residual: 0.25},
		{Time: 2, Observed: 0.90, Synthetic: 1.00, Uncertainty: 0.1, Dataset: 2, Residual: 1.2345678901},
		{Time: 3, Observed: 1.10, Synthetic: 1.00, Uncertainty: 0.1, Dataset: 2, Residual: 1e-10},
		{Time: 4, Observed: 50, Synthetic: 40, Uncertainty: math.NaN(), Dataset: 3, Residual: 4},
		{Time: 5, Observed: -50, Synthetic: -40, Uncertainty: math.NaN(), Dataset: 4, Residual: 4},
	})
	require.NoError(t, err)
	return c
}

func smallStyle() Style {
	st := DefaultStyle()
	st.FigureWidth, st.FigureHeight = 5, 5
	st.Ephemeris.Period, st.Ephemeris.Epoch = 2, 0
	st.RVLimits.Fixed = false
	return st
}

func TestRender_ComparisonPhaseEndToEnd(t *testing.T) {
	st := smallStyle()
	mode, err := ParseMode("compare", "phase")
	require.NoError(t, err)

	var lines bytes.Buffer
	out := filepath.Join(t.TempDir(), mode.DefaultOutput())
	res, err := Render(scenario(t), mode, Options{
		Style:  &st,
		Output: out,
		DPI:    60,
		Sink:   chi2.WriterSink{W: &lines},
	})
	require.NoError(t, err)

	assert.Equal(t, out, res.Output)
	require.Len(t, res.Summaries, 4)
	assert.Contains(t, lines.String(), "chi2 from dataset 2 = 1.2345678902\n")

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 300, img.Bounds().Dx())
	assert.Equal(t, 300, img.Bounds().Dy())
}

func TestRender_ForwardTimeDefaultsOutputName(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	st := smallStyle()
	mode, err := ParseMode("forward", "")
	require.NoError(t, err)

	res, err := Render(scenario(t), mode, Options{Style: &st, DPI: 60})
	require.NoError(t, err)
	assert.Equal(t, "forward_time.png", res.Output)
	assert.Empty(t, res.Summaries)
	assert.FileExists(t, filepath.Join(dir, "forward_time.png"))
}

func TestRender_NegativeDPI(t *testing.T) {
	mode, err := ParseMode("forward", "phase")
	require.NoError(t, err)
	_, err = Render(scenario(t), mode, Options{DPI: -1, Output: filepath.Join(t.TempDir(), "x.png")})
	assert.ErrorIs(t, err, apperr.ErrInvalidParameter)
}

func TestSummarize(t *testing.T) {
	var col chi2.Collector
	sums, err := Summarize(scenario(t), &col)
	require.NoError(t, err)
	require.Len(t, sums, 4)
	assert.Equal(t, sums, col.Summaries)
	assert.Equal(t, "chi2 from dataset 2 = 1.2345678902", sums[1].Line())
	assert.InDelta(t, 9.9845678902, chi2.Total(sums), 1e-8)

	sums, err = Summarize(scenario(t), nil)
	require.NoError(t, err)
	assert.Len(t, sums, 4)
}

type failingSink struct{}

func (failingSink) Report(Summary) error { return os.ErrClosed }

func TestSummarize_SinkError(t *testing.T) {
	_, err := Summarize(scenario(t), failingSink{})
	assert.ErrorIs(t, err, apperr.ErrBackendFailure)
	assert.ErrorIs(t, err, os.ErrClosed)
}

func TestWriteReport(t *testing.T) {
	mode, err := ParseMode("comparison", "time")
	require.NoError(t, err)
	sums, err := Summarize(scenario(t), nil)
	require.NoError(t, err)

	p := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, WriteReport(p, NewReport(mode, "model.dat", "comparison_time.png", sums)))
	data, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Contains(t, string(data), "mode: comparison/time")
}
