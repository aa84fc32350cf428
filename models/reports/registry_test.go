package reports

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

var allReportTypes = []ReportType{
	ReportTypeEquipmentInventory,
	ReportTypeCalibrationSchedule,
	ReportTypeInventoryMovement,
	ReportTypeLowStockAlert,
	ReportTypeExpiringInventory,
	ReportTypeLabResults,
	ReportTypeTransactions,
	ReportTypeRevenueByTest,
	ReportTypeTestVolume,
	ReportTypeCertificatesIssued,
	ReportTypeActivityLog,
}

func TestParseReportType_AcceptsEveryKnownKey(t *testing.T) {
	for _, rt := range allReportTypes {
		parsed, err := ParseReportType(string(rt))
		if err != nil {
			t.Fatalf("ParseReportType(%q) error: %v", rt, err)
		}
		if parsed != rt {
			t.Fatalf("ParseReportType(%q) returned %q", rt, parsed)
		}
	}
}

func TestParseReportType_RejectsUnknownKey(t *testing.T) {
	cases := []string{"", "equipment", "Equipment_Inventory", "revenue", "monthly_summary"}
	for _, in := range cases {
		if _, err := ParseReportType(in); !errors.Is(err, ErrUnknownReportType) {
			t.Fatalf("ParseReportType(%q) expected ErrUnknownReportType, got %v", in, err)
		}
	}
}

func TestDefinitionFor_EveryTypeHasTitleAndHeadings(t *testing.T) {
	for _, rt := range allReportTypes {
		def, err := definitionFor(rt)
		if err != nil {
			t.Fatalf("definitionFor(%q) error: %v", rt, err)
		}
		if def.title == "" {
			t.Fatalf("definitionFor(%q) has empty title", rt)
		}
		if len(def.headings) == 0 {
			t.Fatalf("definitionFor(%q) has no headings", rt)
		}
		if def.run == nil {
			t.Fatalf("definitionFor(%q) has no run func", rt)
		}
	}
}

func TestTransformEquipmentInventory_RowShape(t *testing.T) {
	section := "Chemistry"
	purchased := time.Date(2022, time.January, 15, 0, 0, 0, 0, time.UTC)
	records := []*EquipmentInventoryResponse{
		{
			Name:         "Centrifuge X1",
			Model:        "CX-100",
			SerialNumber: "SN-001",
			SectionName:  &section,
			Status:       "operational",
			PurchaseDate: &purchased,
		},
		{
			Name:         "Old Analyzer",
			SerialNumber: "SN-002",
			Status:       "decommissioned",
		},
	}

	rows := transformEquipmentInventory(records)
	headings, _ := Headings(ReportTypeEquipmentInventory)
	for i, row := range rows {
		if len(row) != len(headings) {
			t.Fatalf("row %d width %d, expected %d", i, len(row), len(headings))
		}
	}
	if rows[0][3] != "Chemistry" || rows[0][4] != "Operational" || rows[0][5] != "Jan 15, 2022" {
		t.Fatalf("unexpected first row: %v", rows[0])
	}
	if rows[1][1] != "N/A" || rows[1][3] != "N/A" || rows[1][5] != "N/A" {
		t.Fatalf("missing fields not coalesced: %v", rows[1])
	}
}

func TestTransformExpiringInventory_UrgencyAndShape(t *testing.T) {
	item := "Glucose reagent"
	unit := "box"
	records := []*ExpiringInventoryResponse{
		{
			ItemName:      &item,
			Unit:          &unit,
			Quantity:      decimal.NewFromInt(12),
			ExpiryDate:    time.Date(2026, time.September, 10, 0, 0, 0, 0, time.UTC),
			DaysRemaining: 10,
		},
		{
			Quantity:      decimal.RequireFromString("3.5"),
			ExpiryDate:    time.Date(2026, time.November, 25, 0, 0, 0, 0, time.UTC),
			DaysRemaining: 86,
		},
	}

	rows := transformExpiringInventory(records)
	headings, _ := Headings(ReportTypeExpiringInventory)
	for i, row := range rows {
		if len(row) != len(headings) {
			t.Fatalf("row %d width %d, expected %d", i, len(row), len(headings))
		}
	}
	if rows[0][6] != "Critical" {
		t.Fatalf("10 days remaining expected Critical, got %q", rows[0][6])
	}
	if rows[1][6] != "OK" {
		t.Fatalf("86 days remaining expected OK, got %q", rows[1][6])
	}
	if rows[1][0] != "N/A" || rows[1][2] != "N/A" {
		t.Fatalf("missing item/supplier not coalesced: %v", rows[1])
	}
	if rows[1][3] != "3.5" {
		t.Fatalf("quantity expected 3.5, got %q", rows[1][3])
	}
}

func TestTransformTransactions_MoneyAndStatus(t *testing.T) {
	patient := "Cruz, Maria"
	records := []*TransactionsResponse{
		{
			TransactionDateTime: time.Date(2025, time.July, 4, 9, 15, 0, 0, time.UTC),
			ORNumber:            "OR-2025-0042",
			PatientName:         &patient,
			ClientType:          "walk-in",
			TotalAmount:         decimal.RequireFromString("1250.5"),
			Status:              "paid",
		},
	}

	rows := transformTransactions(records)
	headings, _ := Headings(ReportTypeTransactions)
	if len(rows[0]) != len(headings) {
		t.Fatalf("row width %d, expected %d", len(rows[0]), len(headings))
	}
	if rows[0][0] != "Jul 04, 2025 9:15 AM" {
		t.Fatalf("unexpected datetime: %q", rows[0][0])
	}
	if rows[0][4] != "1,250.50" {
		t.Fatalf("unexpected amount: %q", rows[0][4])
	}
	if rows[0][5] != "Paid" {
		t.Fatalf("unexpected status: %q", rows[0][5])
	}
}

func TestTransformInventoryMovement_RemarksStayBlank(t *testing.T) {
	item := "EDTA tubes"
	unit := "rack"
	ref := "SI-0007"
	entries := []*LedgerEntry{
		{
			MovedAt:   time.Date(2025, time.May, 2, 14, 0, 0, 0, time.UTC),
			TypeLabel: "Stock In",
			ItemName:  &item,
			Unit:      &unit,
			Quantity:  decimal.NewFromInt(4),
			Reference: &ref,
		},
	}

	rows := transformInventoryMovement(entries)
	headings, _ := Headings(ReportTypeInventoryMovement)
	if len(rows[0]) != len(headings) {
		t.Fatalf("row width %d, expected %d", len(rows[0]), len(headings))
	}
	if rows[0][6] != "" {
		t.Fatalf("nil remarks should render empty, got %q", rows[0][6])
	}
	if rows[0][1] != "Stock In" {
		t.Fatalf("type label expected Stock In, got %q", rows[0][1])
	}
}
