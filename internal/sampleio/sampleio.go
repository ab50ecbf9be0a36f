// Package sampleio reads sample collections from disk and writes the
// chi-square summary report.
package sampleio

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/idlab-discover/EBPlot-cli/internal/apperr"
	"github.com/idlab-discover/EBPlot-cli/internal/sample"
)

// Format names an on-disk sample layout.
type Format string

const (
	FormatAuto Format = "auto"
	FormatText Format = "text"
	FormatCSV  Format = "csv"
	FormatYAML Format = "yaml"
)

// Columns is the column order of the text format and the default CSV header.
var Columns = []string{"time", "observed", "synthetic", "uncertainty", "dataset", "residual"}

// ParseFormat normalises a user-supplied format name. An empty name is auto.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatAuto, nil
	case FormatAuto, FormatText, FormatCSV, FormatYAML:
		return f, nil
	case "txt", "dat":
		return FormatText, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", apperr.Wrap(apperr.ErrInvalidParameter, "unsupported sample format %q (expected auto|text|csv|yaml)", s)
	}
}

// Detect resolves FormatAuto from the file extension; anything that is not
// .csv, .yaml or .yml is read as text.
func Detect(path string, f Format) Format {
	if f != FormatAuto && f != "" {
		return f
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatText
	}
}

// ReadCollection reads the sample file at path.
func ReadCollection(path string, format string) (sample.Collection, error) {
	f, err := ParseFormat(format)
	if err != nil {
		return sample.Collection{}, err
	}
	fh, err := os.Open(path)
	if err != nil {
		return sample.Collection{}, err
	}
	defer fh.Close()

	actual := Detect(path, f)
	c, err := Decode(fh, actual)
	if err != nil {
		return sample.Collection{}, fmt.Errorf("%s: %w", path, err)
	}
	logf(path, "read %d samples (%s), datasets %v", c.Len(), actual, c.IDs())
	return c, nil
}

// Decode reads a collection from r in an explicit format.
func Decode(r io.Reader, f Format) (sample.Collection, error) {
	switch f {
	case FormatText:
		return decodeText(r)
	case FormatCSV:
		return decodeCSV(r)
	case FormatYAML:
		return decodeYAML(r)
	default:
		return sample.Collection{}, apperr.Wrap(apperr.ErrInvalidParameter, "cannot decode format %q", f)
	}
}
