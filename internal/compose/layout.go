package compose

import (
	"strconv"

	"github.com/idlab-discover/EBPlot-cli/internal/config"
	"github.com/idlab-discover/EBPlot-cli/internal/sample"
)

// PanelKind distinguishes the photometric panel from the radial-velocity one.
type PanelKind int

const (
	Photometric PanelKind = iota
	RadialVelocity
)

func (k PanelKind) String() string {
	if k == RadialVelocity {
		return "radial-velocity"
	}
	return "photometric"
}

// Role is one dataset's place in a panel.
type Role struct {
	Dataset       sample.DatasetID
	Name          string
	ObservedColor string
	ResidualColor string
}

// PanelSpec lists the dataset roles drawn into one panel, in draw order.
type PanelSpec struct {
	Kind       PanelKind
	Roles      []Role
	ValueLabel string
}

// DefaultLayout is the fixed two-panel layout: both photometric bands on
// top, both radial-velocity components below.
func DefaultLayout(st config.Style) []PanelSpec {
	return []PanelSpec{
		{
			Kind: Photometric,
			Roles: []Role{
				{Dataset: sample.PhotometricBlue, Name: st.Labels.LCBlue, ObservedColor: st.Colors.ObsBlue, ResidualColor: st.Colors.BRV1},
				{Dataset: sample.PhotometricRed, Name: st.Labels.LCRed, ObservedColor: st.Colors.ObsRed, ResidualColor: st.Colors.RRV2},
			},
			ValueLabel: "F [1]",
		},
		{
			Kind: RadialVelocity,
			Roles: []Role{
				{Dataset: sample.RVPrimary, Name: st.Labels.RVPrimary, ObservedColor: st.Colors.ObsRV1, ResidualColor: st.Colors.BRV1},
				{Dataset: sample.RVSecondary, Name: st.Labels.RVSecondary, ObservedColor: st.Colors.ObsRV2, ResidualColor: st.Colors.RRV2},
			},
			ValueLabel: "RV [km/s]",
		},
	}
}

func xLabel(l Layout, offset float64) string {
	if l == PhaseFolded {
		return "φ"
	}
	if offset == 0 {
		return "t [HJD]"
	}
	return "t [HJD-" + strconv.FormatFloat(offset, 'f', -1, 64) + "]"
}
