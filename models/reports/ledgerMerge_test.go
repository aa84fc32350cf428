package reports

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func ledgerEntryAt(t time.Time, item string) *LedgerEntry {
	return &LedgerEntry{
		MovedAt:  t,
		ItemName: &item,
		Quantity: decimal.NewFromInt(1),
	}
}

func TestMergeLedgers_DescendingByMovedAt(t *testing.T) {
	base := time.Date(2024, time.June, 1, 10, 0, 0, 0, time.UTC)

	ins := tagLedger("Stock In", []*LedgerEntry{
		ledgerEntryAt(base.Add(2*time.Hour), "reagent A"),
		ledgerEntryAt(base, "reagent B"),
	})
	outs := tagLedger("Stock Out", []*LedgerEntry{
		ledgerEntryAt(base.Add(3*time.Hour), "reagent C"),
		ledgerEntryAt(base.Add(1*time.Hour), "reagent D"),
	})

	merged := mergeLedgers(ins, outs)
	if len(merged) != 4 {
		t.Fatalf("expected 4 merged entries, got %d", len(merged))
	}
	for i := 1; i < len(merged); i++ {
		if merged[i].MovedAt.After(merged[i-1].MovedAt) {
			t.Fatalf("merged entries not descending at index %d", i)
		}
	}
	if *merged[0].ItemName != "reagent C" || merged[0].TypeLabel != "Stock Out" {
		t.Fatalf("expected newest entry reagent C (Stock Out) first, got %s (%s)",
			*merged[0].ItemName, merged[0].TypeLabel)
	}
	if *merged[3].ItemName != "reagent B" {
		t.Fatalf("expected oldest entry reagent B last, got %s", *merged[3].ItemName)
	}
}

func TestMergeLedgers_StableOnEqualTimestamps(t *testing.T) {
	at := time.Date(2024, time.June, 1, 8, 0, 0, 0, time.UTC)

	ins := tagLedger("Stock In", []*LedgerEntry{ledgerEntryAt(at, "first")})
	outs := tagLedger("Stock Out", []*LedgerEntry{ledgerEntryAt(at, "second")})

	merged := mergeLedgers(ins, outs)
	if *merged[0].ItemName != "first" || *merged[1].ItemName != "second" {
		t.Fatalf("equal-timestamp entries reordered: got %s then %s",
			*merged[0].ItemName, *merged[1].ItemName)
	}
}

func TestTagLedger_StampsEveryEntry(t *testing.T) {
	entries := []*LedgerEntry{
		ledgerEntryAt(time.Now(), "a"),
		ledgerEntryAt(time.Now(), "b"),
	}
	tagged := tagLedger("Stock In", entries)
	for i, e := range tagged {
		if e.TypeLabel != "Stock In" {
			t.Fatalf("entry %d missing tag, got %q", i, e.TypeLabel)
		}
	}
}

func TestMergeLedgers_EmptyInputs(t *testing.T) {
	merged := mergeLedgers(nil, []*LedgerEntry{})
	if len(merged) != 0 {
		t.Fatalf("expected empty merge, got %d entries", len(merged))
	}
}
