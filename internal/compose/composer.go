// Package compose builds the two-panel eclipsing-binary figure from a sample
// collection. One Composer serves all four variants (forward/comparison in
// time or phase) and talks to the drawing surface through figure.Backend.
package compose

import (
	"github.com/idlab-discover/EBPlot-cli/internal/apperr"
	"github.com/idlab-discover/EBPlot-cli/internal/axis"
	"github.com/idlab-discover/EBPlot-cli/internal/chi2"
	"github.com/idlab-discover/EBPlot-cli/internal/config"
	"github.com/idlab-discover/EBPlot-cli/internal/figure"
	"github.com/idlab-discover/EBPlot-cli/internal/phase"
	"github.com/idlab-discover/EBPlot-cli/internal/sample"
)

// Output is where a render is saved.
type Output struct {
	Path string
	DPI  float64
}

// DatasetEvent is passed to the dataset hook after a role's layers are drawn.
// X and the value columns are in draw order (phase order in phase layout).
type DatasetEvent struct {
	Mode    Mode
	Panel   int
	Role    Role
	Indices []int
	X       []float64
	Values  []float64

	// Summary is set in comparison mode only.
	Summary *chi2.Summary
}

// DatasetHook observes every dataset role. A returned error aborts the render.
type DatasetHook func(DatasetEvent) error

// PanelResult records the limits applied to one panel.
type PanelResult struct {
	Kind PanelKind
	X    axis.Range
	Y    axis.Range
}

// Result describes a completed render.
type Result struct {
	Mode      Mode
	Output    string
	Panels    []PanelResult
	Summaries []chi2.Summary
}

type Option func(*Composer)

// WithSummarySink forwards every chi-square summary to s as it is computed.
func WithSummarySink(s chi2.Sink) Option {
	return func(c *Composer) { c.sink = s }
}

// WithDatasetHook registers h; hooks run in registration order.
func WithDatasetHook(h DatasetHook) Option {
	return func(c *Composer) {
		if h != nil {
			c.hooks = append(c.hooks, h)
		}
	}
}

// WithLayout replaces DefaultLayout.
func WithLayout(panels []PanelSpec) Option {
	return func(c *Composer) { c.layout = panels }
}

type Composer struct {
	backend figure.Backend
	style   config.Style
	sink    chi2.Sink
	hooks   []DatasetHook
	layout  []PanelSpec
}

func New(backend figure.Backend, style config.Style, opts ...Option) *Composer {
	c := &Composer{backend: backend, style: style}
	for _, o := range opts {
		o(c)
	}
	if c.layout == nil {
		c.layout = DefaultLayout(style)
	}
	return c
}

// Render draws coll in the given mode and saves the figure to out. Nothing is
// written when any step fails.
func (c *Composer) Render(coll sample.Collection, mode Mode, out Output) (res Result, err error) {
	if c.backend == nil {
		return Result{}, apperr.Wrap(apperr.ErrConfigurationMissing, "no rendering backend")
	}
	if out.Path == "" {
		return Result{}, apperr.Wrap(apperr.ErrInvalidParameter, "output path is empty")
	}
	if out.DPI <= 0 {
		return Result{}, apperr.Wrap(apperr.ErrInvalidParameter, "dpi must be positive, got %v", out.DPI)
	}
	if len(c.layout) == 0 {
		return Result{}, apperr.Wrap(apperr.ErrInvalidParameter, "layout has no panels")
	}
	if err := c.style.Validate(); err != nil {
		return Result{}, err
	}

	fig, err := c.backend.NewFigure(figure.Spec{
		Title:      mode.Title(),
		Rows:       len(c.layout),
		Width:      c.style.FigureWidth,
		Height:     c.style.FigureHeight,
		TitleSize:  c.style.Fonts.Title,
		LegendSize: c.style.Fonts.Legend,
		TextSize:   c.style.Fonts.Rest,
	})
	if err != nil {
		return Result{}, err
	}
	defer func() {
		if cerr := fig.Close(); cerr != nil && err == nil {
			res, err = Result{}, apperr.Backend("close figure", cerr)
		}
	}()

	logf("", "render %s: %d samples into %d panels", mode, coll.Len(), len(c.layout))

	res = Result{Mode: mode, Output: out.Path}
	for i, spec := range c.layout {
		pr, err := c.drawPanel(fig.Panel(i), i, spec, coll, mode, &res)
		if err != nil {
			return Result{}, err
		}
		res.Panels = append(res.Panels, pr)
	}

	if err := fig.Save(out.Path, out.DPI); err != nil {
		return Result{}, err
	}
	logf("", "saved %s at %g dpi", out.Path, out.DPI)
	return res, nil
}

func (c *Composer) drawPanel(p figure.Panel, i int, spec PanelSpec, coll sample.Collection, mode Mode, res *Result) (PanelResult, error) {
	var xs, ys axis.Accumulator
	st := c.style

	for j, role := range spec.Roles {
		idx := sample.Select(coll, role.Dataset)
		cols, err := c.columns(coll, idx, mode.Layout)
		if err != nil {
			return PanelResult{}, err
		}
		logf(role.Dataset.String(), "panel=%d role=%q points=%d", i, role.Name, len(idx))

		switch mode.Kind {
		case Comparison:
			if err := drawComparison(p, st, j, role, cols); err != nil {
				return PanelResult{}, err
			}
			ys.Add(cols.observed, cols.synthetic)
		default:
			if err := drawForward(p, st, role, cols); err != nil {
				return PanelResult{}, err
			}
			ys.Add(cols.synthetic)
		}
		xs.Add(cols.x)

		ev := DatasetEvent{Mode: mode, Panel: i, Role: role, Indices: idx, X: cols.x, Values: cols.synthetic}
		if mode.Kind == Comparison {
			ev.Values = cols.observed
			sum, err := chi2.Aggregate(coll, idx)
			if err != nil {
				return PanelResult{}, err
			}
			s := chi2.Summary{Dataset: role.Dataset, Chi2: sum, Points: len(idx)}
			res.Summaries = append(res.Summaries, s)
			if c.sink != nil {
				if err := c.sink.Report(s); err != nil {
					return PanelResult{}, apperr.Backend("report summary", err)
				}
			}
			ev.Summary = &s
		}
		for _, h := range c.hooks {
			if err := h(ev); err != nil {
				return PanelResult{}, err
			}
		}
	}

	xr, yr, err := c.limits(spec.Kind, mode.Layout, &xs, &ys)
	if err != nil {
		return PanelResult{}, err
	}

	if spec.Kind == RadialVelocity {
		zero := figure.LineStyle{Color: st.Colors.RV0, Width: 2 * st.Markers.SynLW}
		if err := p.Line([]float64{xr.Min, xr.Max}, []float64{0, 0}, zero, ""); err != nil {
			return PanelResult{}, err
		}
	}
	p.SetXLim(xr)
	p.SetYLim(yr)
	p.SetLabels(xLabel(mode.Layout, st.TimeOffset), spec.ValueLabel)
	p.Legend()

	logf("", "panel=%d x=%s y=%s", i, xr, yr)
	return PanelResult{Kind: spec.Kind, X: xr, Y: yr}, nil
}

func (c *Composer) limits(kind PanelKind, layout Layout, xs, ys *axis.Accumulator) (axis.Range, axis.Range, error) {
	st := c.style
	pinned := kind == RadialVelocity && st.RVLimits.Fixed

	var xr axis.Range
	var err error
	switch {
	case layout == PhaseFolded:
		xr, err = axis.Fixed(st.Margins.Phase.Min, st.Margins.Phase.Max)
	case pinned:
		xr, err = axis.Fixed(st.RVLimits.Time.Min, st.RVLimits.Time.Max)
	default:
		xr, err = xs.Reconcile(st.Margins.Time)
	}
	if err != nil {
		return axis.Range{}, axis.Range{}, err
	}

	var yr axis.Range
	if pinned {
		yr, err = axis.Fixed(st.RVLimits.Value.Min, st.RVLimits.Value.Max)
	} else {
		yr, err = ys.Reconcile(st.Margins.Value)
	}
	if err != nil {
		return axis.Range{}, axis.Range{}, err
	}
	return xr, yr, nil
}

type columns struct {
	x           []float64
	observed    []float64
	synthetic   []float64
	uncertainty []float64
}

// columns gathers the plotted columns of idx. In phase layout every column is
// put into ascending phase order so lines connect neighbouring phases.
func (c *Composer) columns(coll sample.Collection, idx []int, layout Layout) (columns, error) {
	cols := columns{
		observed:    coll.Observed(idx),
		synthetic:   coll.Synthetic(idx),
		uncertainty: coll.Uncertainties(idx),
	}
	times := coll.Times(idx)

	if layout != PhaseFolded {
		cols.x = make([]float64, len(times))
		for k, t := range times {
			cols.x[k] = t - c.style.TimeOffset
		}
		return cols, nil
	}

	e := c.style.Ephemeris
	phases, err := phase.FoldAll(times, e.Period, e.Epoch)
	if err != nil {
		return columns{}, err
	}
	perm := phase.Order(phases)
	for _, col := range []*[]float64{&phases, &cols.observed, &cols.synthetic, &cols.uncertainty} {
		if *col, err = phase.Apply(perm, *col); err != nil {
			return columns{}, err
		}
	}
	cols.x = phases
	return cols, nil
}

func drawComparison(p figure.Panel, st config.Style, j int, role Role, cols columns) error {
	if len(cols.x) == 0 {
		return nil
	}
	m := st.Markers
	bars := figure.ErrorBarStyle{
		Color:    role.ObservedColor,
		Width:    m.ErrorThick,
		CapSize:  m.Capsize,
		CapWidth: m.ErrorThick,
		Marker: figure.MarkerStyle{
			Color:  role.ObservedColor,
			Size:   m.Size,
			Width:  m.ErrorThick,
			Marker: m.Type,
		},
	}
	if err := p.ErrorBars(cols.x, cols.observed, cols.uncertainty, bars, role.Name+" - observed"); err != nil {
		return err
	}

	label := ""
	if j == 0 {
		label = "synthetic"
	}
	if err := p.Scatter(cols.x, cols.synthetic, markerStyle(st), label); err != nil {
		return err
	}

	segs := make([]figure.Segment, len(cols.x))
	for k, x := range cols.x {
		segs[k] = figure.Segment{X0: x, Y0: cols.observed[k], X1: x, Y1: cols.synthetic[k]}
	}
	return p.Segments(segs, figure.LineStyle{Color: role.ResidualColor, Width: m.ResLW})
}

func drawForward(p figure.Panel, st config.Style, role Role, cols columns) error {
	if len(cols.x) == 0 {
		return nil
	}
	if err := p.Scatter(cols.x, cols.synthetic, markerStyle(st), ""); err != nil {
		return err
	}
	line := figure.LineStyle{Color: role.ObservedColor, Width: st.Markers.SynLW}
	return p.Line(cols.x, cols.synthetic, line, role.Name)
}

func markerStyle(st config.Style) figure.MarkerStyle {
	return figure.MarkerStyle{
		Color:  st.Colors.Syn,
		Size:   st.Markers.Size,
		Width:  st.Markers.SynLW,
		Marker: st.Markers.Type,
	}
}
