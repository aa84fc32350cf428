package reports

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"
)

func sampleReport() *Report {
	return &Report{
		Type:     ReportTypeRevenueByTest,
		Title:    "Revenue by Test",
		Headings: []string{"Test", "Section", "Orders", "Revenue"},
		Rows: [][]string{
			{"CBC", "Hematology", "42", "12,600.00"},
			{"Lipid Panel", "Chemistry", "17", "10,200.00"},
		},
	}
}

func TestBuildExcelFile_SheetAndCells(t *testing.T) {
	f, err := BuildExcelFile(sampleReport())
	if err != nil {
		t.Fatalf("BuildExcelFile error: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 1 || sheets[0] != "Revenue by Test" {
		t.Fatalf("expected single sheet %q, got %v", "Revenue by Test", sheets)
	}

	header, err := f.GetCellValue("Revenue by Test", "A1")
	if err != nil {
		t.Fatalf("GetCellValue A1 error: %v", err)
	}
	if header != "Test" {
		t.Fatalf("A1 expected %q, got %q", "Test", header)
	}

	cell, err := f.GetCellValue("Revenue by Test", "D3")
	if err != nil {
		t.Fatalf("GetCellValue D3 error: %v", err)
	}
	if cell != "10,200.00" {
		t.Fatalf("D3 expected %q, got %q", "10,200.00", cell)
	}
}

func TestWriteExcel_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteExcel(&buf, sampleReport()); err != nil {
		t.Fatalf("WriteExcel error: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("OpenReader error: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Revenue by Test")
	if err != nil {
		t.Fatalf("GetRows error: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows (header + 2 data), got %d", len(rows))
	}
	if rows[1][0] != "CBC" {
		t.Fatalf("first data row expected CBC, got %q", rows[1][0])
	}
}

func TestBuildExcelFile_EmptyReport(t *testing.T) {
	report := &Report{
		Type:     ReportTypeActivityLog,
		Title:    "Activity Log",
		Headings: []string{"Date & Time", "Employee", "Description"},
		Rows:     [][]string{},
	}
	f, err := BuildExcelFile(report)
	if err != nil {
		t.Fatalf("BuildExcelFile error: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Activity Log")
	if err != nil {
		t.Fatalf("GetRows error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected header row only, got %d rows", len(rows))
	}
}

func TestSheetNameFor_Truncation(t *testing.T) {
	long := "A Very Long Report Title That Exceeds The Sheet Limit"
	got := sheetNameFor(long)
	if len(got) != 31 {
		t.Fatalf("expected 31-char sheet name, got %d chars", len(got))
	}
	if got != long[:31] {
		t.Fatalf("expected prefix truncation, got %q", got)
	}
	if sheetNameFor("") != "Report" {
		t.Fatalf("empty title expected fallback name Report")
	}
}
