// Package figure is the contract between the panel composer and a rendering
// backend: a multi-panel figure that accepts scatter points, error bars,
// line segments and polylines, and is persisted to an image file.
package figure

import "github.com/idlab-discover/EBPlot-cli/internal/axis"

// Spec describes the figure to create.
type Spec struct {
	Title  string
	Rows   int
	Width  float64 // inches
	Height float64 // inches

	TitleSize  float64 // points
	LegendSize float64
	TextSize   float64
}

// MarkerStyle styles scatter points. Marker is one of "o", ".", "+", "x".
type MarkerStyle struct {
	Color  string
	Size   float64
	Width  float64
	Marker string
}

// LineStyle styles polylines and segments.
type LineStyle struct {
	Color string
	Width float64
}

// ErrorBarStyle styles vertical error bars. CapSize is the half-width of the
// caps in points. Marker is drawn at every data point; a zero Marker.Size
// draws bars only.
type ErrorBarStyle struct {
	Color    string
	Width    float64
	CapSize  float64
	CapWidth float64
	Marker   MarkerStyle
}

// Segment is a straight line between two data points.
type Segment struct {
	X0, Y0 float64
	X1, Y1 float64
}

// Panel is one sub-plot. Draw calls fail on malformed input (mismatched
// lengths, unknown colors) so that a render aborts instead of drawing a
// misleading figure.
type Panel interface {
	Scatter(xs, ys []float64, style MarkerStyle, label string) error
	ErrorBars(xs, ys, errs []float64, style ErrorBarStyle, label string) error
	Segments(segs []Segment, style LineStyle) error
	Line(xs, ys []float64, style LineStyle, label string) error

	SetLabels(x, y string)
	SetXLim(r axis.Range)
	SetYLim(r axis.Range)
	Legend()
}

// Figure owns the output surface for one render.
type Figure interface {
	Panel(i int) Panel
	// Save writes the figure to path at dpi. Nothing is left at path when
	// Save fails.
	Save(path string, dpi float64) error
	Close() error
}

// Backend creates figures.
type Backend interface {
	NewFigure(spec Spec) (Figure, error)
}
