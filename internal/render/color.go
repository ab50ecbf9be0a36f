package render

import (
	"strings"

	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/idlab-discover/EBPlot-cli/internal/apperr"
)

// named covers the matplotlib base colors, the CSS names go-chart knows and
// the default "tab:" palette, which is what existing style files use.
var named = map[string]string{
	"b": "#0000ff", "g": "#008000", "r": "#ff0000", "c": "#00bfbf",
	"m": "#bf00bf", "y": "#bfbf00", "k": "#000000", "w": "#ffffff",

	"black":   "#000000",
	"white":   "#ffffff",
	"red":     "#ff0000",
	"green":   "#008000",
	"blue":    "#0000ff",
	"gray":    "#808080",
	"grey":    "#808080",
	"orange":  "#ffa500",
	"purple":  "#800080",
	"cyan":    "#00ffff",
	"magenta": "#ff00ff",
	"yellow":  "#ffff00",
	"brown":   "#a52a2a",
	"pink":    "#ffc0cb",
	"olive":   "#808000",
	"navy":    "#000080",
	"teal":    "#008080",
	"silver":  "#c0c0c0",
	"maroon":  "#800000",
	"lime":    "#00ff00",
	"aqua":    "#00ffff",
	"fuchsia": "#ff00ff",

	"tab:blue":   "#1f77b4",
	"tab:orange": "#ff7f0e",
	"tab:green":  "#2ca02c",
	"tab:red":    "#d62728",
	"tab:purple": "#9467bd",
	"tab:brown":  "#8c564b",
	"tab:pink":   "#e377c2",
	"tab:gray":   "#7f7f7f",
	"tab:olive":  "#bcbd22",
	"tab:cyan":   "#17becf",
}

// ParseColor resolves a color name or a #rgb / #rrggbb hex code.
func ParseColor(name string) (drawing.Color, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	if hex, ok := named[s]; ok {
		s = hex
	}
	if !isHex(s) {
		return drawing.Color{}, apperr.Wrap(apperr.ErrInvalidParameter, "unknown color %q", name)
	}
	return drawing.ColorFromHex(s), nil
}

func isHex(s string) bool {
	if !strings.HasPrefix(s, "#") {
		return false
	}
	digits := s[1:]
	if len(digits) != 3 && len(digits) != 6 {
		return false
	}
	for _, r := range digits {
		if !strings.ContainsRune("0123456789abcdef", r) {
			return false
		}
	}
	return true
}
