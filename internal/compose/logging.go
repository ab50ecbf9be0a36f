package compose

import (
	"io"

	"github.com/idlab-discover/EBPlot-cli/internal/logging"
	"github.com/idlab-discover/EBPlot-cli/internal/ui"
)

var logger = &logging.Logger{PrefixText: "Compose:", PrefixColor: ui.FgCyan}

// SetLogger sets an optional destination for composer logs.
func SetLogger(w io.Writer) { logger.SetWriter(w) }

func logf(dataset string, format string, args ...any) {
	logger.Logf(dataset, format, args...)
}
