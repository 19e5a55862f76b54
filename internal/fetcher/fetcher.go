// Package fetcher reads and writes the tabular files consumed by batch runs.
package fetcher

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
)

// Table is a header row plus data rows. Rows may be shorter than Header.
type Table struct {
	Header []string
	Rows   [][]string
}

// Column returns the index of the first header matching any of names,
// compared case-insensitively after trimming, or -1.
func (t *Table) Column(names ...string) int {
	for _, name := range names {
		want := strings.ToLower(strings.TrimSpace(name))
		for i, h := range t.Header {
			if strings.ToLower(strings.TrimSpace(h)) == want {
				return i
			}
		}
	}
	return -1
}

// Cell returns row[col] trimmed, or "" when col is out of range.
func Cell(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}

// IsXLSX reports whether path names an Excel workbook.
func IsXLSX(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".xlsx")
}

// ReadFile reads a CSV or XLSX file, chosen by extension. The first row
// becomes the header.
func ReadFile(ctx context.Context, path string) (*Table, error) {
	if IsXLSX(path) {
		return ReadXLSX(path, XLSXOptions{})
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrap(err, "fetcher: open file")
	}
	defer f.Close() //nolint:errcheck

	return ReadCSV(ctx, f, CSVOptions{LazyQuotes: true, TrimSpace: true})
}

// WriteFile writes header and rows as XLSX or CSV, chosen by extension.
func WriteFile(path string, header []string, rows [][]string) error {
	if IsXLSX(path) {
		return WriteXLSX(path, header, rows)
	}

	f, err := os.Create(path)
	if err != nil {
		return eris.Wrap(err, "fetcher: create file")
	}
	if err := WriteCSV(f, header, rows); err != nil {
		_ = f.Close()
		return err
	}
	return eris.Wrap(f.Close(), "fetcher: close file")
}
