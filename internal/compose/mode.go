package compose

import (
	"strings"

	"github.com/idlab-discover/EBPlot-cli/internal/apperr"
)

// Kind selects what is drawn per dataset.
type Kind int

const (
	// Forward draws the synthetic curve only.
	Forward Kind = iota
	// Comparison draws observations, synthetic points and residual connectors,
	// and reports the chi-square of every dataset.
	Comparison
)

func (k Kind) String() string {
	switch k {
	case Forward:
		return "forward"
	case Comparison:
		return "comparison"
	default:
		return "unknown"
	}
}

// Layout selects the x axis.
type Layout int

const (
	// AbsoluteTime plots against epoch-shifted time.
	AbsoluteTime Layout = iota
	// PhaseFolded plots against orbital phase.
	PhaseFolded
)

func (l Layout) String() string {
	switch l {
	case AbsoluteTime:
		return "time"
	case PhaseFolded:
		return "phase"
	default:
		return "unknown"
	}
}

// Mode is one of the four render variants.
type Mode struct {
	Kind   Kind
	Layout Layout
}

func (m Mode) String() string { return m.Kind.String() + "/" + m.Layout.String() }

// ParseMode accepts "forward"|"comparison" (also "compare") and
// "time"|"phase".
func ParseMode(kind, layout string) (Mode, error) {
	var m Mode
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "forward", "forw":
		m.Kind = Forward
	case "comparison", "compare", "comp":
		m.Kind = Comparison
	default:
		return Mode{}, apperr.Wrap(apperr.ErrInvalidParameter, "unknown render kind %q (expected forward|comparison)", kind)
	}
	switch strings.ToLower(strings.TrimSpace(layout)) {
	case "time", "t", "":
		m.Layout = AbsoluteTime
	case "phase":
		m.Layout = PhaseFolded
	default:
		return Mode{}, apperr.Wrap(apperr.ErrInvalidParameter, "unknown layout %q (expected time|phase)", layout)
	}
	return m, nil
}

// DefaultOutput is the file name used when no output path is given.
func (m Mode) DefaultOutput() string {
	return m.Kind.String() + "_" + m.Layout.String() + ".png"
}

// Title is the figure title of the variant.
func (m Mode) Title() string {
	if m.Kind == Comparison {
		return "χ²"
	}
	if m.Layout == PhaseFolded {
		return "Forward model - folded phase"
	}
	return "Forward model"
}
