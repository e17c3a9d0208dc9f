// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package admin

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
)

// Record is a row type that can be exported.
type Record interface {
	CSVHeader() []string
	CSVValues() []string
}

// WriteCSV writes a header line followed by one line per item. The header is
// written even when items is empty. Cells are JSON-encoded by the record and
// quoted again by encoding/csv where they contain commas or quotes.
func WriteCSV[T Record](w io.Writer, items []T) error {
	var zero T
	cw := csv.NewWriter(w)
	if err := cw.Write(zero.CSVHeader()); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, item := range items {
		if err := cw.Write(item.CSVValues()); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV parses an export back into rows of plain field values: the header
// row as written, then every data cell JSON-decoded to its string form.
func ReadCSV(r io.Reader) ([][]string, error) {
	rows, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv: %w", err)
	}
	for i := 1; i < len(rows); i++ {
		for j, cell := range rows[i] {
			value, err := decodeCell(cell)
			if err != nil {
				return nil, fmt.Errorf("row %d column %d: %w", i, j, err)
			}
			rows[i][j] = value
		}
	}
	return rows, nil
}

func decodeCell(cell string) (string, error) {
	if cell == "" {
		return "", nil
	}
	dec := json.NewDecoder(bytes.NewReader([]byte(cell)))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return "", fmt.Errorf("invalid cell %q: %w", cell, err)
	}
	switch v := v.(type) {
	case string:
		return v, nil
	case nil:
		return "", nil
	default:
		return fmt.Sprint(v), nil
	}
}

// ExportFilename returns the download name for a collection.
func ExportFilename(collection string) string {
	return collection + ".csv"
}
