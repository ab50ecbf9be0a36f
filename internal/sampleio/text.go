package sampleio

import (
	"bufio"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/idlab-discover/EBPlot-cli/internal/apperr"
	"github.com/idlab-discover/EBPlot-cli/internal/sample"
)

// decodeText reads whitespace-separated rows of
//
//	time observed synthetic uncertainty dataset residual
//
// Blank lines and lines starting with '#' are skipped. The uncertainty
// column may be "nan" or "-" for synthetic-only records.
func decodeText(r io.Reader) (sample.Collection, error) {
	var rows []sample.Sample
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != len(Columns) {
			return sample.Collection{}, apperr.Wrap(apperr.ErrInvalidParameter, "line %d: expected %d columns, got %d", line, len(Columns), len(fields))
		}
		s, err := parseRow(fields)
		if err != nil {
			return sample.Collection{}, apperr.Wrap(apperr.ErrInvalidParameter, "line %d: %v", line, err)
		}
		rows = append(rows, s)
	}
	if err := sc.Err(); err != nil {
		return sample.Collection{}, err
	}
	return sample.New(rows)
}

// parseRow parses one record in Columns order.
func parseRow(fields []string) (sample.Sample, error) {
	var s sample.Sample
	var err error
	if s.Time, err = parseFloat("time", fields[0]); err != nil {
		return s, err
	}
	if s.Observed, err = parseFloat("observed", fields[1]); err != nil {
		return s, err
	}
	if s.Synthetic, err = parseFloat("synthetic", fields[2]); err != nil {
		return s, err
	}
	if s.Uncertainty, err = parseUncertainty(fields[3]); err != nil {
		return s, err
	}
	id, err := strconv.Atoi(strings.TrimSpace(fields[4]))
	if err != nil {
		return s, &columnError{column: "dataset", value: fields[4]}
	}
	s.Dataset = sample.DatasetID(id)
	if s.Residual, err = parseFloat("residual", fields[5]); err != nil {
		return s, err
	}
	return s, nil
}

type columnError struct {
	column string
	value  string
}

func (e *columnError) Error() string {
	return "column " + e.column + ": cannot parse " + strconv.Quote(e.value)
}

func parseFloat(column, v string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, &columnError{column: column, value: v}
	}
	return f, nil
}

func parseUncertainty(v string) (float64, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "-", "nan":
		return math.NaN(), nil
	}
	return parseFloat("uncertainty", v)
}
