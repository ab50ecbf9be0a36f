package sampleio

import (
	"io"

	"github.com/idlab-discover/EBPlot-cli/internal/logging"
	"github.com/idlab-discover/EBPlot-cli/internal/ui"
)

var logger = &logging.Logger{PrefixText: "Samples:", PrefixColor: ui.FgGreen, Field: "file"}

// SetLogger sets an optional destination for reader logs.
func SetLogger(w io.Writer) { logger.SetWriter(w) }

func logf(file string, format string, args ...any) {
	logger.Logf(file, format, args...)
}
