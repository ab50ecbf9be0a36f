package render

import (
	"io"

	"github.com/idlab-discover/EBPlot-cli/internal/logging"
	"github.com/idlab-discover/EBPlot-cli/internal/ui"
)

var logger = &logging.Logger{PrefixText: "Render:", PrefixColor: ui.FgMagenta, Field: "panel"}

// SetLogger sets an optional destination for backend logs.
func SetLogger(w io.Writer) { logger.SetWriter(w) }

func logf(panel string, format string, args ...any) {
	logger.Logf(panel, format, args...)
}
