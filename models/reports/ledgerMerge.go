package reports

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry is one movement row from any stock ledger, stamped with the
// label of the ledger it came from.
type LedgerEntry struct {
	MovedAt   time.Time       `json:"moved_at"`
	TypeLabel string          `json:"type_label"`
	ItemName  *string         `json:"item_name"`
	Unit      *string         `json:"unit"`
	Quantity  decimal.Decimal `json:"quantity"`
	Reference *string         `json:"reference"`
	Remarks   *string         `json:"remarks"`
}

// tagLedger stamps every entry with its source label.
func tagLedger(label string, entries []*LedgerEntry) []*LedgerEntry {
	for _, entry := range entries {
		entry.TypeLabel = label
	}
	return entries
}

// mergeLedgers concatenates any number of tagged ledgers and re-sorts the
// combined sequence descending by movement date. Adding another ledger type
// means another tagLedger argument, nothing else.
func mergeLedgers(ledgers ...[]*LedgerEntry) []*LedgerEntry {
	var merged []*LedgerEntry
	for _, ledger := range ledgers {
		merged = append(merged, ledger...)
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].MovedAt.After(merged[j].MovedAt)
	})
	return merged
}
