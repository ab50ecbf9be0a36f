package compose

import (
	"github.com/idlab-discover/EBPlot-cli/internal/axis"
	"github.com/idlab-discover/EBPlot-cli/internal/figure"
)

// recorded is one draw call seen by the fake backend.
type recorded struct {
	op    string
	xs    []float64
	ys    []float64
	errs  []float64
	segs  []figure.Segment
	color string
	width float64
	label string
}

type fakePanel struct {
	fig    *fakeFigure
	calls  []recorded
	xlim   axis.Range
	ylim   axis.Range
	xlabel string
	ylabel string
	legend bool
}

func (p *fakePanel) record(r recorded) error {
	if err := p.fig.backend.failOn[r.op]; err != nil {
		return err
	}
	p.calls = append(p.calls, r)
	return nil
}

func (p *fakePanel) Scatter(xs, ys []float64, st figure.MarkerStyle, label string) error {
	return p.record(recorded{op: "scatter", xs: xs, ys: ys, color: st.Color, width: st.Width, label: label})
}

func (p *fakePanel) ErrorBars(xs, ys, errs []float64, st figure.ErrorBarStyle, label string) error {
	return p.record(recorded{op: "errorbars", xs: xs, ys: ys, errs: errs, color: st.Color, width: st.Width, label: label})
}

func (p *fakePanel) Segments(segs []figure.Segment, st figure.LineStyle) error {
	return p.record(recorded{op: "segments", segs: segs, color: st.Color, width: st.Width})
}

func (p *fakePanel) Line(xs, ys []float64, st figure.LineStyle, label string) error {
	return p.record(recorded{op: "line", xs: xs, ys: ys, color: st.Color, width: st.Width, label: label})
}

func (p *fakePanel) SetLabels(x, y string) { p.xlabel, p.ylabel = x, y }
func (p *fakePanel) SetXLim(r axis.Range)  { p.xlim = r }
func (p *fakePanel) SetYLim(r axis.Range)  { p.ylim = r }
func (p *fakePanel) Legend()               { p.legend = true }

func (p *fakePanel) ops(op string) []recorded {
	var out []recorded
	for _, c := range p.calls {
		if c.op == op {
			out = append(out, c)
		}
	}
	return out
}

type fakeFigure struct {
	backend *fakeBackend
	spec    figure.Spec
	panels  []*fakePanel
	saved   string
	dpi     float64
	closed  int
}

func (f *fakeFigure) Panel(i int) figure.Panel { return f.panels[i] }

func (f *fakeFigure) Save(path string, dpi float64) error {
	if err := f.backend.failOn["save"]; err != nil {
		return err
	}
	f.saved, f.dpi = path, dpi
	return nil
}

func (f *fakeFigure) Close() error {
	f.closed++
	return nil
}

type fakeBackend struct {
	fig    *fakeFigure
	failOn map[string]error
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{failOn: map[string]error{}}
}

func (b *fakeBackend) NewFigure(spec figure.Spec) (figure.Figure, error) {
	if err := b.failOn["new"]; err != nil {
		return nil, err
	}
	f := &fakeFigure{backend: b, spec: spec}
	for i := 0; i < spec.Rows; i++ {
		f.panels = append(f.panels, &fakePanel{fig: f})
	}
	b.fig = f
	return f, nil
}
