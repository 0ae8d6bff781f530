/*
Package ingest decodes uploaded timesheet files into the raw cell grid
the engine consumes.

PURPOSE:
  The engine works on already-tokenized rows; this package is the
  collaborator that tokenizes them. CSV goes through encoding/csv in
  permissive mode (ragged rows and loose quoting are the norm in
  hand-edited exports). Workbooks go through excelize, preferring the
  sheet whose name mentions "timesheet" or "raw" since vendors ship
  cover sheets first.
*/
package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/warp/attendance-engine/timesheet"
)

// ErrUnsupportedFile is returned for extensions other than .csv, .xlsx
// and .xls.
var ErrUnsupportedFile = errors.New("unsupported file type")

// Read dispatches on the file extension and decodes into a RawGrid.
func Read(r io.Reader, filename string) (timesheet.RawGrid, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return ReadCSV(r)
	case ".xlsx", ".xls":
		return ReadWorkbook(r)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFile, filename)
	}
}

// ReadCSV decodes CSV text into a RawGrid. Rows may have differing
// lengths; quoting errors are tolerated.
func ReadCSV(r io.Reader) (timesheet.RawGrid, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("decode csv: %w", err)
	}
	return timesheet.RawGrid(records), nil
}

// ReadWorkbook decodes a spreadsheet workbook into a RawGrid, choosing
// the most timesheet-looking sheet.
func ReadWorkbook(r io.Reader) (timesheet.RawGrid, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}

	sheet := sheets[0]
	for _, name := range sheets {
		lower := strings.ToLower(name)
		if strings.Contains(lower, "timesheet") || strings.Contains(lower, "raw") {
			sheet = name
			break
		}
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	return timesheet.RawGrid(rows), nil
}
