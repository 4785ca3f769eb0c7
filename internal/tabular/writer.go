package tabular

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/ohana-solucoes/padroniza-backend/internal/domain"
)

const exportSheet = "Sheet1"

// WriteXLSX serializes the table as a single-sheet XLSX workbook, preserving
// column and row order.
func WriteXLSX(w io.Writer, table *domain.Table) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := setRow(f, 1, table.Columns); err != nil {
		return err
	}
	for i := range table.Rows {
		row := table.Rows[i]
		for len(row) < len(table.Columns) {
			row = append(row, "")
		}
		if err := setRow(f, i+2, row); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, rowNum int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return fmt.Errorf("row %d: %w", rowNum, err)
	}
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	if err := f.SetSheetRow(exportSheet, cell, &cells); err != nil {
		return fmt.Errorf("set row %d: %w", rowNum, err)
	}
	return nil
}
