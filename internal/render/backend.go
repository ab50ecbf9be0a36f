// Package render is the go-chart implementation of figure.Backend.
//
// Every panel becomes one chart.Chart. Scatter points and polylines are
// chart.ContinuousSeries; error bars, residual connectors, cross markers and
// the legend are drawn by a chart.Renderable overlay projected through the
// panel limits. Save renders the panels to PNG, stacks them vertically and
// moves the result into place atomically.
package render

import (
	"math"
	"strconv"

	"github.com/idlab-discover/EBPlot-cli/internal/apperr"
	"github.com/idlab-discover/EBPlot-cli/internal/figure"
)

// Backend creates go-chart figures.
type Backend struct{}

var _ figure.Backend = Backend{}

func NewBackend() Backend { return Backend{} }

func (Backend) NewFigure(spec figure.Spec) (figure.Figure, error) {
	if spec.Rows <= 0 {
		return nil, apperr.Wrap(apperr.ErrInvalidParameter, "figure needs at least one panel, got %d", spec.Rows)
	}
	if !(spec.Width > 0) || !(spec.Height > 0) || math.IsInf(spec.Width, 0) || math.IsInf(spec.Height, 0) {
		return nil, apperr.Wrap(apperr.ErrInvalidParameter, "figure size must be positive, got %vx%v in", spec.Width, spec.Height)
	}
	f := &Figure{spec: spec}
	for i := 0; i < spec.Rows; i++ {
		f.panels = append(f.panels, &Panel{index: i})
	}
	logf("", "new figure %q: %d panels, %gx%g in", spec.Title, spec.Rows, spec.Width, spec.Height)
	return f, nil
}

// Figure is a stack of panels sharing one output image.
type Figure struct {
	spec   figure.Spec
	panels []*Panel
	closed bool
}

var _ figure.Figure = (*Figure)(nil)

// Panel returns panel i; i must be in [0, Rows).
func (f *Figure) Panel(i int) figure.Panel { return f.panels[i] }

// Close releases the layers. Saving a closed figure fails.
func (f *Figure) Close() error {
	f.closed = true
	f.panels = nil
	return nil
}

func panelName(i int) string { return strconv.Itoa(i) }
