// Package config turns the viper-backed style store into an explicit Style
// value handed to the panel composer at call time.
//
// Every recognised key is listed in keys.go with its default. Load requires
// each key to be present in the store: a missing key is reported as
// apperr.ErrConfigurationMissing and an unparsable value as
// apperr.ErrInvalidParameter.
package config

import (
	"github.com/spf13/cast"
	"github.com/spf13/viper"

	"github.com/idlab-discover/EBPlot-cli/internal/apperr"
	"github.com/idlab-discover/EBPlot-cli/internal/axis"
	"github.com/idlab-discover/EBPlot-cli/internal/phase"
)

// Fonts holds font sizes in points.
type Fonts struct {
	Title  float64
	Legend float64
	Rest   float64
}

// Markers holds marker and line widths.
type Markers struct {
	Size       float64
	SynLW      float64
	ResLW      float64
	Capsize    float64
	Type       string
	ErrorThick float64
}

// Colors holds color names as understood by the rendering backend.
type Colors struct {
	Syn     string
	ObsBlue string
	ObsRed  string
	ObsRV1  string
	ObsRV2  string
	BRV1    string
	RRV2    string
	RV0     string
}

// Labels holds the display names of the four datasets.
type Labels struct {
	LCBlue      string
	LCRed       string
	RVPrimary   string
	RVSecondary string
}

// Margins holds axis padding.
type Margins struct {
	Time  axis.Padding
	Value axis.Padding
	Phase axis.Range
}

// RVLimits pins the radial-velocity panel bounds when Fixed is set.
type RVLimits struct {
	Fixed bool
	Time  axis.Range
	Value axis.Range
}

// Style is the complete styling and layout configuration for one render.
type Style struct {
	Fonts        Fonts
	FigureWidth  float64 // inches
	FigureHeight float64 // inches
	Markers      Markers
	Colors       Colors
	Labels       Labels
	Margins      Margins
	Ephemeris    phase.Ephemeris
	TimeOffset   float64
	RVLimits     RVLimits
}

// SetDefaults registers the documented default of every key on v.
func SetDefaults(v *viper.Viper) {
	for _, d := range defaults {
		v.SetDefault(d.key.String(), d.value)
	}
}

// Default returns the Style built from the documented defaults only.
func Default() Style {
	v := viper.New()
	SetDefaults(v)
	s, err := Load(v)
	if err != nil {
		// defaults are static and covered by tests
		panic(err)
	}
	return s
}

type loader struct {
	v   *viper.Viper
	err error
}

func (l *loader) raw(k Key) (any, bool) {
	if l.err != nil {
		return nil, false
	}
	if !l.v.IsSet(k.String()) {
		l.err = apperr.Wrap(apperr.ErrConfigurationMissing, "key %q (%s)", k, Doc(k))
		return nil, false
	}
	return l.v.Get(k.String()), true
}

func (l *loader) float(k Key) float64 {
	raw, ok := l.raw(k)
	if !ok {
		return 0
	}
	f, err := cast.ToFloat64E(raw)
	if err != nil {
		l.err = apperr.Wrap(apperr.ErrInvalidParameter, "key %q: %v", k, err)
	}
	return f
}

func (l *loader) str(k Key) string {
	raw, ok := l.raw(k)
	if !ok {
		return ""
	}
	s, err := cast.ToStringE(raw)
	if err != nil {
		l.err = apperr.Wrap(apperr.ErrInvalidParameter, "key %q: %v", k, err)
	}
	return s
}

func (l *loader) boolean(k Key) bool {
	raw, ok := l.raw(k)
	if !ok {
		return false
	}
	b, err := cast.ToBoolE(raw)
	if err != nil {
		l.err = apperr.Wrap(apperr.ErrInvalidParameter, "key %q: %v", k, err)
	}
	return b
}

// Load reads every recognised key from v.
func Load(v *viper.Viper) (Style, error) {
	l := &loader{v: v}
	s := Style{
		Fonts: Fonts{
			Title:  l.float(GeneralTextTitle),
			Legend: l.float(GeneralTextLegend),
			Rest:   l.float(GeneralTextRest),
		},
		FigureWidth:  l.float(GeneralFigureWidth),
		FigureHeight: l.float(GeneralFigureHeight),
		Markers: Markers{
			Size:       l.float(StylesMarkerSize),
			SynLW:      l.float(StylesSynLW),
			ResLW:      l.float(StylesResLW),
			Capsize:    l.float(StylesCapsize),
			Type:       l.str(StylesMarkerType),
			ErrorThick: l.float(StylesErrThick),
		},
		Colors: Colors{
			Syn:     l.str(ColorsSyn),
			ObsBlue: l.str(ColorsObsBlue),
			ObsRed:  l.str(ColorsObsRed),
			ObsRV1:  l.str(ColorsObsRV1),
			ObsRV2:  l.str(ColorsObsRV2),
			BRV1:    l.str(ColorsBRV1),
			RRV2:    l.str(ColorsRRV2),
			RV0:     l.str(ColorsRV0),
		},
		Labels: Labels{
			LCBlue:      l.str(LabelsLCBlue),
			LCRed:       l.str(LabelsLCRed),
			RVPrimary:   l.str(LabelsRVPrimary),
			RVSecondary: l.str(LabelsRVSecondary),
		},
		Margins: Margins{
			Time:  axis.Padding{Low: l.float(MarginsTimeLow), High: l.float(MarginsTimeHigh)},
			Value: axis.Padding{Low: l.float(MarginsValueLow), High: l.float(MarginsValueHigh)},
			Phase: axis.Range{Min: l.float(MarginsPhaseMin), Max: l.float(MarginsPhaseMax)},
		},
		Ephemeris: phase.Ephemeris{
			Period: l.float(EphemerisPeriod),
			Epoch:  l.float(EphemerisEpoch),
		},
		TimeOffset: l.float(TimeOffset),
		RVLimits: RVLimits{
			Fixed: l.boolean(LimitsRVFixed),
			Time:  axis.Range{Min: l.float(LimitsRVTimeMin), Max: l.float(LimitsRVTimeMax)},
			Value: axis.Range{Min: l.float(LimitsRVValueMin), Max: l.float(LimitsRVValueMax)},
		},
	}
	if l.err != nil {
		return Style{}, l.err
	}
	return s, s.Validate()
}

// Validate checks the cross-key constraints that a single cast cannot.
func (s Style) Validate() error {
	if s.FigureWidth <= 0 || s.FigureHeight <= 0 {
		return apperr.Wrap(apperr.ErrInvalidParameter, "figure size must be positive, got %vx%v in", s.FigureWidth, s.FigureHeight)
	}
	if err := s.Ephemeris.Validate(); err != nil {
		return err
	}
	if _, err := axis.Fixed(s.Margins.Phase.Min, s.Margins.Phase.Max); err != nil {
		return err
	}
	for _, p := range []axis.Padding{s.Margins.Time, s.Margins.Value} {
		if p.Low < 0 || p.High < 0 {
			return apperr.Wrap(apperr.ErrInvalidParameter, "margins must be non-negative, got %+v", p)
		}
	}
	if s.RVLimits.Fixed {
		if _, err := axis.Fixed(s.RVLimits.Time.Min, s.RVLimits.Time.Max); err != nil {
			return err
		}
		if _, err := axis.Fixed(s.RVLimits.Value.Min, s.RVLimits.Value.Max); err != nil {
			return err
		}
	}
	switch s.Markers.Type {
	case "o", ".", "+", "x":
	default:
		return apperr.Wrap(apperr.ErrInvalidParameter, "unsupported marker type %q (expected o|.|+|x)", s.Markers.Type)
	}
	return nil
}
