// Package tabular reads uploaded spreadsheets into domain tables and writes
// augmented tables back out as XLSX workbooks. Every cell is handled as a
// string; empty cells become "".
package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ohana-solucoes/padroniza-backend/internal/domain"
)

// Format is a supported tabular container format.
type Format int

const (
	FormatUnknown Format = iota
	FormatCSV
	FormatXLSX
)

// Detect guesses the format from the filename extension.
func Detect(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return FormatCSV
	case ".xlsx", ".xls", ".xlsm":
		return FormatXLSX
	default:
		return FormatUnknown
	}
}

// Read parses r according to the filename's format. sheet selects the
// worksheet for multi-sheet workbooks; it is ignored for CSV and optional
// for single-sheet workbooks.
func Read(r io.Reader, filename, sheet string) (domain.Table, error) {
	switch Detect(filename) {
	case FormatCSV:
		return ReadCSV(r)
	case FormatXLSX:
		return ReadXLSX(r, sheet)
	default:
		return domain.Table{}, fmt.Errorf("unsupported file type %q: %w",
			filepath.Ext(filename), domain.ErrEncoding)
	}
}

// ReadCSV parses delimited text. The first record is the header; shorter
// rows are padded to the header width, longer rows are an error (cells
// beyond the header would be silently orphaned otherwise).
func ReadCSV(r io.Reader) (domain.Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // allow variable column count

	header, err := reader.Read()
	if err == io.EOF {
		return domain.Table{}, nil
	}
	if err != nil {
		return domain.Table{}, fmt.Errorf("read header: %v: %w", err, domain.ErrEncoding)
	}

	table := domain.Table{Columns: header}
	rowNum := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return domain.Table{}, fmt.Errorf("read row %d: %v: %w", rowNum+1, err, domain.ErrEncoding)
		}
		rowNum++

		if len(record) > len(header) {
			return domain.Table{}, fmt.Errorf("row %d has %d fields, header has %d: %w",
				rowNum, len(record), len(header), domain.ErrEncoding)
		}
		for len(record) < len(header) {
			record = append(record, "")
		}
		table.Rows = append(table.Rows, record)
	}

	return table, nil
}

// SheetNames lists the worksheets of an XLSX workbook.
func SheetNames(r io.Reader) ([]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %v: %w", err, domain.ErrEncoding)
	}
	defer f.Close()

	return f.GetSheetList(), nil
}

// ReadXLSX parses one worksheet of an XLSX workbook. A workbook with a
// single sheet needs no explicit selection; with several, sheet is required.
// Ragged rows are padded to the header width; cells beyond it are dropped,
// matching how spreadsheet tools treat data without a column name.
func ReadXLSX(r io.Reader, sheet string) (domain.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return domain.Table{}, fmt.Errorf("open workbook: %v: %w", err, domain.ErrEncoding)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if sheet == "" {
		if len(sheets) != 1 {
			return domain.Table{}, domain.NewValidationError("sheet",
				fmt.Sprintf("workbook has %d sheets, one must be selected", len(sheets)))
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return domain.Table{}, fmt.Errorf("read sheet %q: %v: %w", sheet, err, domain.ErrEncoding)
	}
	if len(rows) == 0 {
		return domain.Table{}, nil
	}

	header := rows[0]
	table := domain.Table{Columns: header}
	for _, row := range rows[1:] {
		if len(row) > len(header) {
			row = row[:len(header)]
		}
		for len(row) < len(header) {
			row = append(row, "")
		}
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}
