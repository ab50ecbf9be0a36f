package config

// Key identifies one entry of the style/config store, as "<namespace>.<name>".
type Key string

func (k Key) String() string { return string(k) }

const (
	// general.* (figure geometry and font sizes, points)
	GeneralTextTitle    Key = "general.text_title"
	GeneralTextLegend   Key = "general.text_legend"
	GeneralTextRest     Key = "general.text_rest"
	GeneralFigureWidth  Key = "general.figure_width"
	GeneralFigureHeight Key = "general.figure_height"

	// styles.*
	StylesMarkerSize Key = "styles.marker_size"
	StylesSynLW      Key = "styles.syn_lw"
	StylesResLW      Key = "styles.res_lw"
	StylesCapsize    Key = "styles.capsize"
	StylesMarkerType Key = "styles.marker_type"
	StylesErrThick   Key = "styles.err_thick"

	// colors.*
	ColorsSyn     Key = "colors.syn"
	ColorsObsBlue Key = "colors.obs_blue"
	ColorsObsRed  Key = "colors.obs_red"
	ColorsObsRV1  Key = "colors.obs_rv1"
	ColorsObsRV2  Key = "colors.obs_rv2"
	ColorsBRV1    Key = "colors.b_rv1"
	ColorsRRV2    Key = "colors.r_rv2"
	ColorsRV0     Key = "colors.rv0"

	// labels.* (dataset display names)
	LabelsLCBlue      Key = "labels.lc_blue"
	LabelsLCRed       Key = "labels.lc_red"
	LabelsRVPrimary   Key = "labels.rv_primary"
	LabelsRVSecondary Key = "labels.rv_secondary"

	// margins.* (padding fractions of the data span)
	MarginsTimeLow   Key = "margins.time_low"
	MarginsTimeHigh  Key = "margins.time_high"
	MarginsValueLow  Key = "margins.value_low"
	MarginsValueHigh Key = "margins.value_high"
	MarginsPhaseMin  Key = "margins.phase_min"
	MarginsPhaseMax  Key = "margins.phase_max"

	// ephemeris.*
	EphemerisPeriod Key = "ephemeris.period"
	EphemerisEpoch  Key = "ephemeris.epoch"

	// time.*
	TimeOffset Key = "time.offset"

	// limits.* (fixed radial-velocity panel bounds)
	LimitsRVFixed    Key = "limits.rv_fixed"
	LimitsRVTimeMin  Key = "limits.rv_time_min"
	LimitsRVTimeMax  Key = "limits.rv_time_max"
	LimitsRVValueMin Key = "limits.rv_value_min"
	LimitsRVValueMax Key = "limits.rv_value_max"
)

// Keys lists every recognised key, in documentation order.
func Keys() []Key {
	keys := make([]Key, len(defaults))
	for i, d := range defaults {
		keys[i] = d.key
	}
	return keys
}

type entry struct {
	key   Key
	value any
	doc   string
}

// defaults is the single source of truth for recognised keys.
var defaults = []entry{
	{GeneralTextTitle, 16.0, "figure title font size"},
	{GeneralTextLegend, 9.0, "legend font size"},
	{GeneralTextRest, 11.0, "axis label and tick font size"},
	{GeneralFigureWidth, 10.0, "figure width in inches"},
	{GeneralFigureHeight, 10.0, "figure height in inches"},

	{StylesMarkerSize, 3.0, "synthetic marker size"},
	{StylesSynLW, 1.0, "synthetic line width"},
	{StylesResLW, 1.0, "residual connector width"},
	{StylesCapsize, 2.0, "error-bar cap size"},
	{StylesMarkerType, "o", "synthetic marker: o, ., + or x"},
	{StylesErrThick, 1.0, "error-bar line width"},

	{ColorsSyn, "black", "synthetic points"},
	{ColorsObsBlue, "#1f77b4", "observed blue-band photometry"},
	{ColorsObsRed, "#d62728", "observed red-band photometry"},
	{ColorsObsRV1, "#2ca02c", "observed primary radial velocity"},
	{ColorsObsRV2, "#ff7f0e", "observed secondary radial velocity"},
	{ColorsBRV1, "blue", "residual connectors, first dataset of a panel"},
	{ColorsRRV2, "red", "residual connectors, second dataset of a panel"},
	{ColorsRV0, "gray", "zero-velocity reference line"},

	{LabelsLCBlue, "BRITE blue", "dataset 1 name"},
	{LabelsLCRed, "BRITE red", "dataset 2 name"},
	{LabelsRVPrimary, "RV primary", "dataset 3 name"},
	{LabelsRVSecondary, "RV secondary", "dataset 4 name"},

	{MarginsTimeLow, 0.04, "time axis padding below the data"},
	{MarginsTimeHigh, 0.04, "time axis padding above the data"},
	{MarginsValueLow, 0.15, "value axis padding below the data (legend room)"},
	{MarginsValueHigh, 0.04, "value axis padding above the data"},
	{MarginsPhaseMin, -0.02, "phase axis lower bound"},
	{MarginsPhaseMax, 1.02, "phase axis upper bound"},

	{EphemerisPeriod, 5.732436, "orbital period in days"},
	{EphemerisEpoch, 2457733.8493, "reference epoch (HJD)"},

	{TimeOffset, 2400000.0, "subtracted from HJD on time axes"},

	{LimitsRVFixed, true, "pin radial-velocity panel limits"},
	{LimitsRVTimeMin, 53800.0, "radial-velocity panel time minimum"},
	{LimitsRVTimeMax, 59000.0, "radial-velocity panel time maximum"},
	{LimitsRVValueMin, -400.0, "radial-velocity panel minimum (km/s)"},
	{LimitsRVValueMax, 400.0, "radial-velocity panel maximum (km/s)"},
}

// Doc returns the one-line description of k, or "" when k is unknown.
func Doc(k Key) string {
	for _, d := range defaults {
		if d.key == k {
			return d.doc
		}
	}
	return ""
}
