// Package sheet imports SGPA values from Excel workbooks.
//
// Only one column is read. Cells are returned as the raw text excelize
// renders for them, so the usual parsing and range rules of the semester
// package apply unchanged: a header cell or a blank simply ends up excluded.
package sheet

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// DefaultColumn is read when Options.Column is empty.
const DefaultColumn = "A"

// Options selects what to read from a workbook
type Options struct {
	Sheet      string // Sheet name; empty means the first sheet
	Column     string // Column letters, e.g. "A" or "AB"
	SkipHeader bool   // Drop the first row
}

// ReadColumnFile opens the workbook at path and reads one column.
func ReadColumnFile(path string, opts Options) ([]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	defer f.Close()

	return readColumn(f, opts)
}

// ReadColumn reads one column from a workbook supplied as a stream.
func ReadColumn(r io.Reader, opts Options) ([]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	return readColumn(f, opts)
}

func readColumn(f *excelize.File, opts Options) ([]string, error) {
	sheetName := opts.Sheet
	if sheetName == "" {
		sheetName = f.GetSheetName(0)
		if sheetName == "" {
			return nil, fmt.Errorf("workbook has no sheets")
		}
	} else if idx, err := f.GetSheetIndex(sheetName); err != nil || idx < 0 {
		return nil, fmt.Errorf("sheet %q not found", sheetName)
	}

	column := strings.ToUpper(strings.TrimSpace(opts.Column))
	if column == "" {
		column = DefaultColumn
	}
	colNum, err := excelize.ColumnNameToNumber(column)
	if err != nil {
		return nil, fmt.Errorf("invalid column %q: %w", opts.Column, err)
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheetName, err)
	}
	if opts.SkipHeader && len(rows) > 0 {
		rows = rows[1:]
	}

	values := make([]string, 0, len(rows))
	for _, row := range rows {
		if colNum > len(row) {
			values = append(values, "")
			continue
		}
		values = append(values, strings.TrimSpace(row[colNum-1]))
	}

	return values, nil
}
