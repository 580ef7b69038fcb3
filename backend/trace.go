package backend

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"git.sr.ht/~whereswaldon/linegraph/chart"
	"github.com/spf13/cast"
)

// ErrMalformedTrace indicates that a CSV trace could not be interpreted.
var ErrMalformedTrace = errors.New("malformed trace")

// ParseTrace reads a CSV trace. The first row is the header: an x column
// followed by one label per series. Every later row holds an x value and one
// y value per series; blank cells are skipped.
func ParseTrace(r io.Reader) ([]chart.Series, error) {
	csvReader := csv.NewReader(r)
	csvReader.TrimLeadingSpace = true
	csvReader.FieldsPerRecord = -1
	csvReader.Comment = '#'

	headings, err := csvReader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("missing header: %w", ErrMalformedTrace)
		}
		return nil, fmt.Errorf("failed reading header: %w", err)
	}
	if len(headings) < 1 {
		return nil, fmt.Errorf("empty header: %w", ErrMalformedTrace)
	}
	var ds Dataset
	labels := make([]string, 0, len(headings)-1)
	for _, h := range headings[1:] {
		labels = append(labels, strings.TrimSpace(h))
	}
	ds.SetHeadings(labels)

	for {
		rec, err := csvReader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				return nil, fmt.Errorf("line %d: %w: %w", parseErr.Line, ErrMalformedTrace, err)
			}
			return nil, fmt.Errorf("failed reading trace: %w", err)
		}
		line, _ := csvReader.FieldPos(0)
		if err := insertRecord(&ds, rec); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
	}
	return ds.Series(), nil
}

func insertRecord(ds *Dataset, rec []string) error {
	xCell := strings.TrimSpace(rec[0])
	if xCell == "" {
		if len(rec) == 1 {
			// Blank line.
			return nil
		}
		return fmt.Errorf("missing x value: %w", ErrMalformedTrace)
	}
	x, err := cast.ToFloat64E(xCell)
	if err != nil {
		return fmt.Errorf("x value %q: %w", xCell, ErrMalformedTrace)
	}
	ys := make([]*float64, len(rec)-1)
	for i, cell := range rec[1:] {
		cell = strings.TrimSpace(cell)
		if len(cell) < 1 {
			// Skip null cells.
			continue
		}
		y, err := cast.ToFloat64E(cell)
		if err != nil {
			return fmt.Errorf("column %d value %q: %w", i+2, cell, ErrMalformedTrace)
		}
		ys[i] = &y
	}
	return ds.Insert(x, ys)
}
