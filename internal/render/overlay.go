package render

import (
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/idlab-discover/EBPlot-cli/internal/axis"
)

// projection maps data coordinates into the canvas box the same way
// chart.ContinuousRange.Translate does, so overlay strokes line up with the
// series go-chart draws itself.
type projection struct {
	box    chart.Box
	xr, yr axis.Range
}

func (pr projection) x(v float64) int {
	return pr.box.Left + int((v-pr.xr.Min)/pr.xr.Span()*float64(pr.box.Width()))
}

func (pr projection) y(v float64) int {
	return pr.box.Bottom - int((v-pr.yr.Min)/pr.yr.Span()*float64(pr.box.Height()))
}

func clamp(v float64, r axis.Range) float64 {
	return math.Min(math.Max(v, r.Min), r.Max)
}

func stroke(r chart.Renderer, c drawing.Color, width float64, x0, y0, x1, y1 int) {
	r.SetStrokeColor(c)
	r.SetStrokeWidth(math.Max(width, 1))
	r.MoveTo(x0, y0)
	r.LineTo(x1, y1)
	r.Stroke()
}

// overlay draws what go-chart has no series type for: error bars, residual
// connectors, cross markers and the legend.
func (p *Panel) overlay(xr, yr axis.Range, scale, legendSize float64) chart.Renderable {
	return func(r chart.Renderer, box chart.Box, defaults chart.Style) {
		pr := projection{box: box, xr: xr, yr: yr}
		for _, l := range p.layers {
			switch l.kind {
			case layerErrorBars:
				drawErrorBars(r, pr, l, scale)
				drawCrosses(r, pr, l.xs, l.ys, l.marker, scale)
			case layerSegments:
				drawSegments(r, pr, l, scale)
			case layerScatter:
				drawCrosses(r, pr, l.xs, l.ys, l.marker, scale)
			}
		}
		if p.legend {
			drawLegend(r, box, defaults, p.entries(), scale, legendSize)
		}
	}
}

func drawErrorBars(r chart.Renderer, pr projection, l layer, scale float64) {
	capHalf := int(l.capSize * scale)
	for i, x := range l.xs {
		if !pr.xr.Contains(x) || l.errs[i] == 0 || math.IsNaN(l.errs[i]) {
			continue
		}
		lo, hi := l.ys[i]-l.errs[i], l.ys[i]+l.errs[i]
		if hi < pr.yr.Min || lo > pr.yr.Max {
			continue
		}
		px := pr.x(x)
		y0, y1 := pr.y(clamp(lo, pr.yr)), pr.y(clamp(hi, pr.yr))
		stroke(r, l.color, l.width*scale, px, y0, px, y1)
		if capHalf == 0 {
			continue
		}
		if pr.yr.Contains(lo) {
			stroke(r, l.color, l.capWidth*scale, px-capHalf, y0, px+capHalf, y0)
		}
		if pr.yr.Contains(hi) {
			stroke(r, l.color, l.capWidth*scale, px-capHalf, y1, px+capHalf, y1)
		}
	}
}

func drawSegments(r chart.Renderer, pr projection, l layer, scale float64) {
	for _, s := range l.segs {
		if s.X0 == s.X1 {
			// vertical connectors are clipped, not dropped
			if !pr.xr.Contains(s.X0) {
				continue
			}
			lo, hi := math.Min(s.Y0, s.Y1), math.Max(s.Y0, s.Y1)
			if hi < pr.yr.Min || lo > pr.yr.Max {
				continue
			}
			px := pr.x(s.X0)
			stroke(r, l.color, l.width*scale, px, pr.y(clamp(lo, pr.yr)), px, pr.y(clamp(hi, pr.yr)))
			continue
		}
		if !inside(s.X0, s.Y0, pr.xr, pr.yr) || !inside(s.X1, s.Y1, pr.xr, pr.yr) {
			continue
		}
		stroke(r, l.color, l.width*scale, pr.x(s.X0), pr.y(s.Y0), pr.x(s.X1), pr.y(s.Y1))
	}
}

func drawCrosses(r chart.Renderer, pr projection, xs, ys []float64, m marker, scale float64) {
	if (m.shape != "+" && m.shape != "x") || m.size <= 0 {
		return
	}
	h := int(m.size * scale / 2)
	for i := range xs {
		if !inside(xs[i], ys[i], pr.xr, pr.yr) {
			continue
		}
		drawMarker(r, pr.x(xs[i]), pr.y(ys[i]), h, m, scale)
	}
}

func drawMarker(r chart.Renderer, px, py, h int, m marker, scale float64) {
	switch m.shape {
	case "+":
		stroke(r, m.color, m.width*scale, px-h, py, px+h, py)
		stroke(r, m.color, m.width*scale, px, py-h, px, py+h)
	case "x":
		stroke(r, m.color, m.width*scale, px-h, py-h, px+h, py+h)
		stroke(r, m.color, m.width*scale, px-h, py+h, px+h, py-h)
	default:
		radius := float64(h)
		if m.shape == "." {
			radius /= 2
		}
		r.SetFillColor(m.color)
		r.SetStrokeColor(m.color)
		r.SetStrokeWidth(1)
		r.Circle(math.Max(radius, 1), px, py)
		r.FillStroke()
	}
}

type entry struct {
	label  string
	color  drawing.Color
	width  float64
	marker marker
	line   bool
}

// entries lists labelled layers in draw order.
func (p *Panel) entries() []entry {
	var out []entry
	for _, l := range p.layers {
		if l.label == "" {
			continue
		}
		switch l.kind {
		case layerLine:
			out = append(out, entry{label: l.label, color: l.color, width: l.width, line: true})
		case layerErrorBars:
			m := l.marker
			if m.size <= 0 {
				m = marker{color: l.color, size: 4, width: l.width, shape: "o"}
			}
			out = append(out, entry{label: l.label, color: l.color, width: l.width, marker: m, line: true})
		default:
			out = append(out, entry{label: l.label, marker: l.marker})
		}
	}
	return out
}

// drawLegend stacks the entries in a framed box at the top-right corner of
// the canvas.
func drawLegend(r chart.Renderer, box chart.Box, defaults chart.Style, entries []entry, scale, size float64) {
	if len(entries) == 0 {
		return
	}
	r.SetFont(defaults.GetFont())
	r.SetFontSize(size)
	r.SetFontColor(drawing.ColorBlack)

	pad := int(4 * scale)
	glyph := int(18 * scale)
	lineH := 0
	textW := 0
	for _, e := range entries {
		tb := r.MeasureText(e.label)
		textW = max(textW, tb.Width())
		lineH = max(lineH, tb.Height())
	}
	lineH += pad

	w := pad*3 + glyph + textW
	h := pad + len(entries)*lineH
	right := box.Right - pad
	left := right - w
	top := box.Top + pad

	r.SetFillColor(drawing.ColorWhite.WithAlpha(220))
	r.SetStrokeColor(drawing.ColorFromHex("cccccc"))
	r.SetStrokeWidth(1)
	r.MoveTo(left, top)
	r.LineTo(right, top)
	r.LineTo(right, top+h)
	r.LineTo(left, top+h)
	r.LineTo(left, top)
	r.Close()
	r.FillStroke()

	for i, e := range entries {
		cy := top + pad + i*lineH + lineH/2 - pad/2
		gx0 := left + pad
		gx1 := gx0 + glyph
		if e.line {
			stroke(r, e.color, e.width*scale, gx0, cy, gx1, cy)
		}
		if e.marker.size > 0 {
			drawMarker(r, (gx0+gx1)/2, cy, int(e.marker.size*scale/2), e.marker, scale)
		}
		r.SetFontColor(drawing.ColorBlack)
		tb := r.MeasureText(e.label)
		r.Text(e.label, gx1+pad, cy+tb.Height()/2)
	}
}
