package report

import (
	"fmt"
	"io"

	"github.com/akyairhashvil/sitediary/internal/config"
	"github.com/akyairhashvil/sitediary/internal/models"
	"github.com/xuri/excelize/v2"
)

// SpreadsheetRows returns the header followed by one row per entry, with
// dates in DD.MM.YYYY and empty strings for missing values.
func SpreadsheetRows(doc models.Report) [][]string {
	rows := make([][]string, 0, len(doc.Rows())+1)
	header := make([]string, len(models.EntryColumns))
	copy(header, models.EntryColumns)
	rows = append(rows, header)
	for _, e := range doc.Rows() {
		rows = append(rows, e.Values())
	}
	return rows
}

// WriteSpreadsheet writes a single-sheet workbook to w.
func WriteSpreadsheet(w io.Writer, doc models.Report) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := config.SheetName
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	for i, row := range SpreadsheetRows(doc) {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		row := row
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := f.SetRowStyle(sheet, 1, 1, bold); err != nil {
		return err
	}
	last, err := excelize.ColumnNumberToName(len(models.EntryColumns))
	if err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "A", last, 18); err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "D", "D", 48); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
