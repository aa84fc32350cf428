package reports

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestFormatMoney_ThousandsSeparators(t *testing.T) {
	cases := []struct {
		in       string
		expected string
	}{
		{"0", "0.00"},
		{"5", "5.00"},
		{"999", "999.00"},
		{"1000", "1,000.00"},
		{"1234.5", "1,234.50"},
		{"1234567.891", "1,234,567.89"},
		{"-1234.5", "-1,234.50"},
		{"-999999", "-999,999.00"},
	}
	for _, tc := range cases {
		d, err := decimal.NewFromString(tc.in)
		if err != nil {
			t.Fatalf("decimal.NewFromString(%q) error: %v", tc.in, err)
		}
		if got := formatMoney(d); got != tc.expected {
			t.Fatalf("formatMoney(%s) expected %q, got %q", tc.in, tc.expected, got)
		}
	}
}

func TestFormatDate_DisplayLayout(t *testing.T) {
	d := time.Date(2024, time.March, 5, 14, 30, 0, 0, time.UTC)
	if got := formatDate(d); got != "Mar 05, 2024" {
		t.Fatalf("formatDate expected %q, got %q", "Mar 05, 2024", got)
	}
	if got := formatDateTime(d); got != "Mar 05, 2024 2:30 PM" {
		t.Fatalf("formatDateTime expected %q, got %q", "Mar 05, 2024 2:30 PM", got)
	}
}

func TestFormatDatePtr_NilBecomesNA(t *testing.T) {
	if got := formatDatePtr(nil); got != "N/A" {
		t.Fatalf("formatDatePtr(nil) expected N/A, got %q", got)
	}
	zero := time.Time{}
	if got := formatDatePtr(&zero); got != "N/A" {
		t.Fatalf("formatDatePtr(zero) expected N/A, got %q", got)
	}
	d := time.Date(2023, time.December, 25, 0, 0, 0, 0, time.UTC)
	if got := formatDatePtr(&d); got != "Dec 25, 2023" {
		t.Fatalf("formatDatePtr expected %q, got %q", "Dec 25, 2023", got)
	}
}

func TestNa_CoalescesMissingAndBlank(t *testing.T) {
	if got := na(nil); got != "N/A" {
		t.Fatalf("na(nil) expected N/A, got %q", got)
	}
	blankStr := "   "
	if got := na(&blankStr); got != "N/A" {
		t.Fatalf("na(blank) expected N/A, got %q", got)
	}
	val := "Hematology"
	if got := na(&val); got != "Hematology" {
		t.Fatalf("na expected Hematology, got %q", got)
	}
	if got := naIfBlank(""); got != "N/A" {
		t.Fatalf("naIfBlank(\"\") expected N/A, got %q", got)
	}
}

func TestBlank_RemarksStayEmpty(t *testing.T) {
	if got := blank(nil); got != "" {
		t.Fatalf("blank(nil) expected empty, got %q", got)
	}
	remarks := "broken seal"
	if got := blank(&remarks); got != "broken seal" {
		t.Fatalf("blank expected %q, got %q", remarks, got)
	}
}

func TestCapitalizeFirst(t *testing.T) {
	cases := []struct {
		in       string
		expected string
	}{
		{"operational", "Operational"},
		{"under_maintenance", "Under_maintenance"},
		{"paid", "Paid"},
		{"", "N/A"},
	}
	for _, tc := range cases {
		if got := capitalizeFirst(tc.in); got != tc.expected {
			t.Fatalf("capitalizeFirst(%q) expected %q, got %q", tc.in, tc.expected, got)
		}
	}
}

func TestUrgencyLabel_Buckets(t *testing.T) {
	cases := []struct {
		days     int
		expected string
	}{
		{0, "Critical"},
		{30, "Critical"},
		{31, "Warning"},
		{60, "Warning"},
		{61, "OK"},
		{90, "OK"},
	}
	for _, tc := range cases {
		if got := urgencyLabel(tc.days); got != tc.expected {
			t.Fatalf("urgencyLabel(%d) expected %q, got %q", tc.days, tc.expected, got)
		}
	}
}
