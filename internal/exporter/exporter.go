// Package exporter writes the projected table and its summary to an .xlsx
// workbook: a styled data sheet plus an optional statistics sheet.
package exporter

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/avaloro/clienti-export/internal/models"
)

const (
	headerFontColor = "FFFFFF"
	headerFillColor = "366092"
	dateLayout      = "2006-01-02"
)

// Options controls sheet naming and layout.
type Options struct {
	DataSheet          string
	SummarySheet       string
	IncludeSummary     bool
	MaxDataColWidth    float64
	MaxSummaryColWidth float64
}

// Metadata identifies the input behind a workbook; both fields are shown in
// the summary sheet's header block when present.
type Metadata struct {
	SourcePath     string
	SourceChecksum string
}

// Write renders the table to the data sheet and, when enabled, the summary to
// a second sheet, then saves the workbook at path.
func Write(t *models.Table, sum *models.Summary, meta Metadata, opts Options, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", opts.DataSheet); err != nil {
		return fmt.Errorf("failed to name data sheet: %w", err)
	}

	if err := writeDataSheet(f, opts.DataSheet, t, opts.MaxDataColWidth); err != nil {
		return err
	}

	if opts.IncludeSummary {
		if err := writeSummarySheet(f, opts.SummarySheet, sum, meta, opts.MaxSummaryColWidth); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", path, err)
	}

	return nil
}

func writeDataSheet(f *excelize.File, sheet string, t *models.Table, maxWidth float64) error {
	widths := make([]int, len(t.Columns))

	for i, column := range t.Columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("failed to address header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, column); err != nil {
			return fmt.Errorf("failed to write header cell %s: %w", cell, err)
		}
		widths[i] = len(column)
	}

	if err := styleHeader(f, sheet, len(t.Columns)); err != nil {
		return err
	}

	for rowIdx, row := range t.Rows {
		for colIdx, value := range row {
			if value == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return fmt.Errorf("failed to address data cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, cellValue(value)); err != nil {
				return fmt.Errorf("failed to write data cell %s: %w", cell, err)
			}
			if n := len(displayString(value)); n > widths[colIdx] {
				widths[colIdx] = n
			}
		}
	}

	return setColumnWidths(f, sheet, widths, maxWidth)
}

func styleHeader(f *excelize.File, sheet string, columns int) error {
	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: headerFontColor},
		Fill: excelize.Fill{Type: "pattern", Color: []string{headerFillColor}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	first, err := excelize.CoordinatesToCellName(1, 1)
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(columns, 1)
	if err != nil {
		return err
	}

	if err := f.SetCellStyle(sheet, first, last, style); err != nil {
		return fmt.Errorf("failed to style header row: %w", err)
	}
	return nil
}

func writeSummarySheet(f *excelize.File, sheet string, sum *models.Summary, meta Metadata, maxWidth float64) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create summary sheet: %w", err)
	}

	rows := [][]any{
		{"Total Records", sum.TotalRecords},
		{"Total Fields", sum.TotalFields},
		{"Record Length", fmt.Sprintf("%d characters", sum.RecordLength)},
	}
	if meta.SourcePath != "" {
		rows = append(rows, []any{"Source File", meta.SourcePath})
	}
	if meta.SourceChecksum != "" {
		rows = append(rows, []any{"Source Checksum", meta.SourceChecksum})
	}
	rows = append(rows,
		[]any{},
		[]any{"Field Usage Analysis"},
		[]any{"Field Name", "Data Type", "Length", "Non-Empty Count", "Usage %"},
	)
	for _, field := range sum.Fields {
		rows = append(rows, []any{
			field.Name,
			string(field.Type),
			field.Length,
			field.NonEmpty,
			fmt.Sprintf("%.1f%%", field.UsagePercent),
		})
	}

	widths := make([]int, 0)
	for rowIdx, row := range rows {
		for colIdx, value := range row {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				return fmt.Errorf("failed to address summary cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("failed to write summary cell %s: %w", cell, err)
			}
			for len(widths) <= colIdx {
				widths = append(widths, 0)
			}
			if n := len(displayString(value)); n > widths[colIdx] {
				widths[colIdx] = n
			}
		}
	}

	return setColumnWidths(f, sheet, widths, maxWidth)
}

func setColumnWidths(f *excelize.File, sheet string, widths []int, maxWidth float64) error {
	for i, width := range widths {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("failed to name column %d: %w", i+1, err)
		}
		adjusted := float64(width) + 2
		if adjusted > maxWidth {
			adjusted = maxWidth
		}
		if err := f.SetColWidth(sheet, name, name, adjusted); err != nil {
			return fmt.Errorf("failed to set width for column %s: %w", name, err)
		}
	}
	return nil
}

// cellValue converts a decoded value to what gets written into the cell.
// Dates become YYYY-MM-DD strings so the sheet shows calendar dates rather
// than spreadsheet serials.
func cellValue(value any) any {
	if t, ok := value.(time.Time); ok {
		return t.Format(dateLayout)
	}
	return value
}

func displayString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case time.Time:
		return v.Format(dateLayout)
	default:
		return fmt.Sprint(v)
	}
}
