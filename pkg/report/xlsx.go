package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/sw33tLie/epicurve/pkg/cases"
	"github.com/sw33tLie/epicurve/pkg/curve"
)

const (
	CasesSheet = "Cases"
	CurveSheet = "Curve"
)

// WriteXLSX writes a workbook with the line list in export column order on
// the Cases sheet and, when c is non-nil, the binned counts on a Curve sheet.
// The Cases sheet reads back through ingest.ParseXLSX.
func WriteXLSX(w io.Writer, records []cases.Record, c *curve.Curve) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), CasesSheet); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}
	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	rows := make([][]interface{}, 0, len(records))
	for _, r := range records {
		row := make([]interface{}, len(cases.Fields))
		for i, field := range cases.Fields {
			if field == cases.FieldAge && r.Age != nil {
				row[i] = *r.Age
				continue
			}
			row[i] = r.Value(field)
		}
		rows = append(rows, row)
	}
	if err := writeSheet(f, CasesSheet, cases.ExportHeader, rows, header); err != nil {
		return err
	}

	if c != nil {
		if _, err := f.NewSheet(CurveSheet); err != nil {
			return fmt.Errorf("failed to create sheet: %w", err)
		}
		if err := writeSheet(f, CurveSheet, curveHeader(*c), curveRows(*c), header); err != nil {
			return err
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func curveHeader(c curve.Curve) []string {
	h := []string{"start", "end", "label", "total"}
	for _, l := range c.Legend {
		h = append(h, l.Category)
	}
	return h
}

func curveRows(c curve.Curve) [][]interface{} {
	rows := make([][]interface{}, len(c.Bins))
	for i, b := range c.Bins {
		row := []interface{}{wall(b.Start), wall(b.End), c.Labels[i], b.Total}
		counts := make(map[string]int, len(b.Stacks))
		for _, s := range b.Stacks {
			counts[s.Category] = s.Count
		}
		for _, l := range c.Legend {
			row = append(row, counts[l.Category])
		}
		rows[i] = row
	}
	return rows
}

func writeSheet(f *excelize.File, sheet string, header []string, rows [][]interface{}, style int) error {
	for col, h := range header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("failed to set header cell %s: %w", cell, err)
		}
		if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
			return fmt.Errorf("failed to set header style: %w", err)
		}
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}
	return f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}
