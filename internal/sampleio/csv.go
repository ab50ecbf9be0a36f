package sampleio

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"

	"github.com/idlab-discover/EBPlot-cli/internal/apperr"
	"github.com/idlab-discover/EBPlot-cli/internal/sample"
)

// headerAliases maps accepted header spellings to Columns.
var headerAliases = map[string]string{
	"hjd":        "time",
	"obs":        "observed",
	"syn":        "synthetic",
	"sigma":      "uncertainty",
	"err":        "uncertainty",
	"dataset_id": "dataset",
	"id":         "dataset",
	"chi2":       "residual",
}

// decodeCSV reads a CSV file whose first row names the columns. Column order
// is free; the uncertainty column may be missing or left empty.
func decodeCSV(r io.Reader) (sample.Collection, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return sample.Collection{}, nil
	}
	if err != nil {
		return sample.Collection{}, apperr.Wrap(apperr.ErrInvalidParameter, "csv header: %v", err)
	}
	pos, err := columnPositions(header)
	if err != nil {
		return sample.Collection{}, err
	}

	var rows []sample.Sample
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return sample.Collection{}, apperr.Wrap(apperr.ErrInvalidParameter, "csv: %v", err)
		}
		fields := make([]string, len(Columns))
		for i, col := range Columns {
			if p, ok := pos[col]; ok {
				fields[i] = rec[p]
			}
		}
		s, err := parseRow(fields)
		if err != nil {
			line, _ := cr.FieldPos(0)
			return sample.Collection{}, apperr.Wrap(apperr.ErrInvalidParameter, "csv line %d: %v", line, err)
		}
		rows = append(rows, s)
	}
	return sample.New(rows)
}

func columnPositions(header []string) (map[string]int, error) {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(h))
		if alias, ok := headerAliases[name]; ok {
			name = alias
		}
		if _, dup := pos[name]; dup {
			return nil, apperr.Wrap(apperr.ErrInvalidParameter, "csv header: duplicate column %q", h)
		}
		pos[name] = i
	}
	for _, col := range Columns {
		if col == "uncertainty" {
			continue
		}
		if _, ok := pos[col]; !ok {
			return nil, apperr.Wrap(apperr.ErrInvalidParameter, "csv header: missing column %q", col)
		}
	}
	return pos, nil
}
