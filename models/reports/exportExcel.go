package reports

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const (
	headerFillColor = "2B6CB0"
	headerFontColor = "FFFFFF"
	dataBorderColor = "D3D3D3"
	maxColumnWidth  = 50.0
	maxSheetNameLen = 31
)

func thinBorder(color string) []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: color, Style: 1},
		{Type: "right", Color: color, Style: 1},
		{Type: "top", Color: color, Style: 1},
		{Type: "bottom", Color: color, Style: 1},
	}
}

// BuildExcelFile renders a report as a single styled worksheet: bold white
// headings on a solid accent fill, thin light-gray borders on every data
// cell, columns sized to content.
func BuildExcelFile(report *Report) (*excelize.File, error) {

	f := excelize.NewFile()
	sheetName := sheetNameFor(report.Title)
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: headerFontColor},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{headerFillColor}},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorder("000000"),
	})
	if err != nil {
		return nil, err
	}
	dataStyle, err := f.NewStyle(&excelize.Style{
		Border: thinBorder(dataBorderColor),
	})
	if err != nil {
		return nil, err
	}

	header := make([]interface{}, len(report.Headings))
	for i, h := range report.Headings {
		header[i] = h
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return nil, err
	}

	for i, row := range report.Rows {
		values := make([]interface{}, len(row))
		for j, v := range row {
			values[j] = v
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return nil, err
		}
	}

	if len(report.Headings) > 0 {
		lastCol, err := excelize.ColumnNumberToName(len(report.Headings))
		if err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(sheetName, "A1", lastCol+"1", headerStyle); err != nil {
			return nil, err
		}
		if len(report.Rows) > 0 {
			lastCell := fmt.Sprintf("%s%d", lastCol, len(report.Rows)+1)
			if err := f.SetCellStyle(sheetName, "A2", lastCell, dataStyle); err != nil {
				return nil, err
			}
		}
		if err := sizeColumns(f, sheetName, report); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// WriteExcel streams the rendered workbook to w.
func WriteExcel(w io.Writer, report *Report) error {
	f, err := BuildExcelFile(report)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Write(w)
}

func sizeColumns(f *excelize.File, sheetName string, report *Report) error {
	for i, heading := range report.Headings {
		width := len(heading)
		for _, row := range report.Rows {
			if i < len(row) && len(row[i]) > width {
				width = len(row[i])
			}
		}
		colWidth := float64(width) + 2
		if colWidth > maxColumnWidth {
			colWidth = maxColumnWidth
		}
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheetName, col, col, colWidth); err != nil {
			return err
		}
	}
	return nil
}

func sheetNameFor(title string) string {
	if title == "" {
		return "Report"
	}
	if len(title) > maxSheetNameLen {
		return title[:maxSheetNameLen]
	}
	return title
}
