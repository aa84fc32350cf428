package reports

import (
	"context"

	"github.com/mmlabtech/lims_backend/config"
	"github.com/mmlabtech/lims_backend/models"
	"github.com/mmlabtech/lims_backend/utils"
)

// GetInventoryMovementReport is the only builder that reads two ledgers:
// stock-in and stock-out rows over the same date window, tagged with their
// source label, then merged descending by date.
func GetInventoryMovementReport(ctx context.Context, fromDate models.DateString, toDate models.DateString, sectionId *int) ([]*LedgerEntry, error) {

	fromDate.StartOfDay()
	toDate.EndOfDay()

	ins, err := queryStockLedger(ctx, stockInLedgerSQL, fromDate, toDate, sectionId)
	if err != nil {
		return nil, err
	}
	outs, err := queryStockLedger(ctx, stockOutLedgerSQL, fromDate, toDate, sectionId)
	if err != nil {
		return nil, err
	}

	return mergeLedgers(
		tagLedger("Stock In", ins),
		tagLedger("Stock Out", outs),
	), nil
}

const stockInLedgerSQL = `
SELECT
    si.moved_at,
    items.name AS item_name,
    items.unit,
    si.quantity,
    si.reference_number AS reference,
    si.remarks
FROM
    stock_ins AS si
        LEFT JOIN
    items ON items.id = si.item_id
WHERE
    si.moved_at BETWEEN @fromDate AND @toDate
    {{- if .sectionId }} AND items.section_id = @sectionId {{- end }};
`

const stockOutLedgerSQL = `
SELECT
    so.moved_at,
    items.name AS item_name,
    items.unit,
    so.quantity,
    so.reference_number AS reference,
    so.remarks
FROM
    stock_outs AS so
        LEFT JOIN
    items ON items.id = so.item_id
WHERE
    so.moved_at BETWEEN @fromDate AND @toDate
    {{- if .sectionId }} AND items.section_id = @sectionId {{- end }};
`

func queryStockLedger(ctx context.Context, sqlT string, fromDate models.DateString, toDate models.DateString, sectionId *int) ([]*LedgerEntry, error) {
	sql, err := utils.ExecTemplate(sqlT, map[string]interface{}{
		"sectionId": utils.DereferencePtr(sectionId),
	})
	if err != nil {
		return nil, err
	}

	var entries []*LedgerEntry
	db := config.GetDB()
	if err := db.WithContext(ctx).Raw(sql, map[string]interface{}{
		"fromDate":  fromDate,
		"toDate":    toDate,
		"sectionId": sectionId,
	}).Scan(&entries).Error; err != nil {
		return nil, err
	}

	return entries, nil
}

func transformInventoryMovement(entries []*LedgerEntry) [][]string {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			formatDateTime(e.MovedAt),
			e.TypeLabel,
			na(e.ItemName),
			na(e.Unit),
			formatQuantity(e.Quantity),
			na(e.Reference),
			blank(e.Remarks),
		})
	}
	return rows
}
