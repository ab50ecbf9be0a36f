package render

import (
	"bytes"
	"image"
	"image/png"
	"math"
	"os"
	"path/filepath"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	xdraw "golang.org/x/image/draw"

	"github.com/idlab-discover/EBPlot-cli/internal/apperr"
)

// pointsPerInch converts style sizes in points to pixels at a given dpi.
const pointsPerInch = 72.0

// Save renders every panel at dpi and writes one PNG to path. The image is
// written to a temporary file next to path and renamed into place, so a
// failed Save never leaves a partial file behind.
func (f *Figure) Save(path string, dpi float64) error {
	if f.closed {
		return apperr.Backend("save", os.ErrClosed)
	}
	if !(dpi > 0) || math.IsInf(dpi, 0) {
		return apperr.Wrap(apperr.ErrInvalidParameter, "dpi must be positive, got %v", dpi)
	}
	if path == "" {
		return apperr.Wrap(apperr.ErrInvalidParameter, "output path is empty")
	}

	width := int(math.Round(f.spec.Width * dpi))
	rowH := int(math.Round(f.spec.Height * dpi / float64(len(f.panels))))
	if width < 1 || rowH < 1 {
		return apperr.Wrap(apperr.ErrInvalidParameter, "figure of %gx%g in at %g dpi has no pixels", f.spec.Width, f.spec.Height, dpi)
	}

	canvas := image.NewRGBA(image.Rect(0, 0, width, rowH*len(f.panels)))
	for i, p := range f.panels {
		img, err := f.renderPanel(i, p, width, rowH, dpi)
		if err != nil {
			return err
		}
		at := image.Rect(0, i*rowH, width, (i+1)*rowH)
		xdraw.Draw(canvas, at, img, img.Bounds().Min, xdraw.Src)
	}

	if err := writeAtomic(path, canvas); err != nil {
		return err
	}
	logf("", "wrote %s (%dx%d px)", path, canvas.Bounds().Dx(), canvas.Bounds().Dy())
	return nil
}

func (f *Figure) renderPanel(i int, p *Panel, width, height int, dpi float64) (image.Image, error) {
	xr, yr, err := p.limits()
	if err != nil {
		return nil, err
	}
	scale := dpi / pointsPerInch
	pad := int(0.2 * dpi)

	ch := chart.Chart{
		Width:      width,
		Height:     height,
		DPI:        dpi,
		Background: chart.Style{Padding: chart.Box{Top: pad, Left: pad, Right: pad, Bottom: pad}},
		XAxis: chart.XAxis{
			Name:      p.xlabel,
			NameStyle: chart.Style{FontSize: f.spec.TextSize},
			Style:     chart.Style{FontSize: f.spec.TextSize},
			Range:     &chart.ContinuousRange{Min: xr.Min, Max: xr.Max},
		},
		YAxis: chart.YAxis{
			Name:      p.ylabel,
			NameStyle: chart.Style{FontSize: f.spec.TextSize},
			Style:     chart.Style{FontSize: f.spec.TextSize},
			Range:     &chart.ContinuousRange{Min: yr.Min, Max: yr.Max},
		},
		Series:   p.series(xr, yr, scale),
		Elements: []chart.Renderable{p.overlay(xr, yr, scale, f.spec.LegendSize)},
	}
	if i == 0 && f.spec.Title != "" {
		ch.Title = f.spec.Title
		ch.TitleStyle = chart.Style{FontSize: f.spec.TitleSize, FontColor: drawing.ColorBlack}
		ch.Background.Padding.Top = pad + int(2*f.spec.TitleSize*scale)
	}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, apperr.Backend("render panel "+panelName(i), err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, apperr.Backend("decode panel "+panelName(i), err)
	}
	logf(panelName(i), "rendered %d layers, x=%s y=%s", len(p.layers), xr, yr)
	return img, nil
}

func writeAtomic(path string, img image.Image) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".ebplot-*.png")
	if err != nil {
		return apperr.Backend("create temp file", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err := png.Encode(tmp, img); err != nil {
		return apperr.Backend("encode png", err)
	}
	// CreateTemp opens with 0600; figures are ordinary output files.
	if err := tmp.Chmod(0o644); err != nil {
		return apperr.Backend("chmod temp file", err)
	}
	if err := tmp.Close(); err != nil {
		return apperr.Backend("close temp file", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return apperr.Backend("rename into place", err)
	}
	return nil
}
