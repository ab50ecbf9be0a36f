package render

import (
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/idlab-discover/EBPlot-cli/internal/apperr"
	"github.com/idlab-discover/EBPlot-cli/internal/axis"
	"github.com/idlab-discover/EBPlot-cli/internal/figure"
)

type layerKind int

const (
	layerScatter layerKind = iota
	layerLine
	layerErrorBars
	layerSegments
)

type marker struct {
	color drawing.Color
	size  float64 // points
	width float64 // points
	shape string
}

// layer is one resolved draw call. Coordinates are data units; styles are in
// points and scaled to pixels at Save time.
type layer struct {
	kind  layerKind
	label string

	xs, ys, errs []float64
	segs         []figure.Segment

	color    drawing.Color
	width    float64
	capSize  float64
	capWidth float64
	marker   marker
}

// Panel collects the layers of one sub-plot until the figure is saved.
type Panel struct {
	index  int
	layers []layer

	xlim, ylim     axis.Range
	hasX, hasY     bool
	xlabel, ylabel string
	legend         bool
}

var _ figure.Panel = (*Panel)(nil)

func (p *Panel) Scatter(xs, ys []float64, st figure.MarkerStyle, label string) error {
	if err := sameLength("scatter", xs, ys); err != nil {
		return err
	}
	m, err := resolveMarker(st)
	if err != nil {
		return err
	}
	p.layers = append(p.layers, layer{kind: layerScatter, label: label, xs: xs, ys: ys, marker: m})
	return nil
}

func (p *Panel) ErrorBars(xs, ys, errs []float64, st figure.ErrorBarStyle, label string) error {
	if err := sameLength("error bars", xs, ys, errs); err != nil {
		return err
	}
	for i, e := range errs {
		if e < 0 {
			return apperr.Wrap(apperr.ErrInvalidParameter, "error bar %d: negative uncertainty %v", i, e)
		}
	}
	c, err := ParseColor(st.Color)
	if err != nil {
		return err
	}
	l := layer{
		kind: layerErrorBars, label: label, xs: xs, ys: ys, errs: errs,
		color: c, width: st.Width, capSize: st.CapSize, capWidth: st.CapWidth,
	}
	if st.Marker.Size > 0 {
		if l.marker, err = resolveMarker(st.Marker); err != nil {
			return err
		}
	}
	p.layers = append(p.layers, l)
	return nil
}

func (p *Panel) Segments(segs []figure.Segment, st figure.LineStyle) error {
	c, err := ParseColor(st.Color)
	if err != nil {
		return err
	}
	p.layers = append(p.layers, layer{kind: layerSegments, segs: segs, color: c, width: st.Width})
	return nil
}

func (p *Panel) Line(xs, ys []float64, st figure.LineStyle, label string) error {
	if err := sameLength("line", xs, ys); err != nil {
		return err
	}
	c, err := ParseColor(st.Color)
	if err != nil {
		return err
	}
	p.layers = append(p.layers, layer{kind: layerLine, label: label, xs: xs, ys: ys, color: c, width: st.Width})
	return nil
}

func (p *Panel) SetLabels(x, y string) { p.xlabel, p.ylabel = x, y }
func (p *Panel) SetXLim(r axis.Range)  { p.xlim, p.hasX = r, true }
func (p *Panel) SetYLim(r axis.Range)  { p.ylim, p.hasY = r, true }
func (p *Panel) Legend()               { p.legend = true }

func resolveMarker(st figure.MarkerStyle) (marker, error) {
	switch st.Marker {
	case "o", ".", "+", "x":
	case "":
		st.Marker = "o"
	default:
		return marker{}, apperr.Wrap(apperr.ErrInvalidParameter, "unsupported marker %q", st.Marker)
	}
	c, err := ParseColor(st.Color)
	if err != nil {
		return marker{}, err
	}
	return marker{color: c, size: st.Size, width: st.Width, shape: st.Marker}, nil
}

func sameLength(what string, cols ...[]float64) error {
	for _, c := range cols[1:] {
		if len(c) != len(cols[0]) {
			return apperr.Wrap(apperr.ErrLengthMismatch, "%s: columns of %d and %d values", what, len(cols[0]), len(c))
		}
	}
	return nil
}

// limits returns the panel ranges, falling back to the unpadded data extent
// when the composer did not set them.
func (p *Panel) limits() (axis.Range, axis.Range, error) {
	xr, yr := p.xlim, p.ylim
	var err error
	if !p.hasX {
		var groups [][]float64
		for _, l := range p.layers {
			groups = append(groups, l.xs)
		}
		if xr, err = axis.Reconcile(groups, axis.Padding{}); err != nil {
			return xr, yr, err
		}
	}
	if !p.hasY {
		var groups [][]float64
		for _, l := range p.layers {
			groups = append(groups, l.ys)
		}
		if yr, err = axis.Reconcile(groups, axis.Padding{}); err != nil {
			return xr, yr, err
		}
	}
	return xr, yr, nil
}

// series turns scatter, line and error-bar points into go-chart series.
// Points outside the panel ranges are dropped; lines are split where they
// leave the range so nothing is drawn over the axes.
func (p *Panel) series(xr, yr axis.Range, scale float64) []chart.Series {
	var out []chart.Series
	for _, l := range p.layers {
		switch l.kind {
		case layerScatter, layerErrorBars:
			if l.marker.size <= 0 || (l.marker.shape != "o" && l.marker.shape != ".") {
				continue
			}
			xs, ys := visible(l.xs, l.ys, xr, yr)
			if len(xs) == 0 {
				continue
			}
			out = append(out, chart.ContinuousSeries{
				Style:   dotStyle(l.marker, scale),
				XValues: xs,
				YValues: ys,
			})
		case layerLine:
			for _, run := range runs(l.xs, l.ys, xr, yr) {
				out = append(out, chart.ContinuousSeries{
					Style: chart.Style{
						StrokeColor: l.color,
						StrokeWidth: math.Max(l.width*scale, 1),
						DotWidth:    chart.Disabled,
					},
					XValues: run[0],
					YValues: run[1],
				})
			}
		}
	}
	if len(out) == 0 {
		// go-chart refuses to render without a visible series
		out = append(out, chart.ContinuousSeries{
			Style:   chart.Style{StrokeWidth: chart.Disabled, DotWidth: chart.Disabled},
			XValues: []float64{xr.Min},
			YValues: []float64{yr.Min},
		})
	}
	return out
}

func dotStyle(m marker, scale float64) chart.Style {
	radius := m.size * scale / 2
	if m.shape == "." {
		radius /= 2
	}
	return chart.Style{
		StrokeWidth: chart.Disabled,
		DotColor:    m.color,
		DotWidth:    math.Max(radius, 1),
	}
}

func inside(x, y float64, xr, yr axis.Range) bool {
	return xr.Contains(x) && yr.Contains(y)
}

func visible(xs, ys []float64, xr, yr axis.Range) ([]float64, []float64) {
	var ox, oy []float64
	for i := range xs {
		if inside(xs[i], ys[i], xr, yr) {
			ox = append(ox, xs[i])
			oy = append(oy, ys[i])
		}
	}
	return ox, oy
}

// runs splits a polyline into maximal stretches of in-range points.
func runs(xs, ys []float64, xr, yr axis.Range) [][2][]float64 {
	var out [][2][]float64
	var cur [2][]float64
	flush := func() {
		if len(cur[0]) > 0 {
			out = append(out, cur)
		}
		cur = [2][]float64{}
	}
	for i := range xs {
		if !inside(xs[i], ys[i], xr, yr) {
			flush()
			continue
		}
		cur[0] = append(cur[0], xs[i])
		cur[1] = append(cur[1], ys[i])
	}
	flush()
	return out
}
