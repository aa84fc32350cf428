package reports

import (
	"context"
	"strconv"
	"time"

	"github.com/mmlabtech/lims_backend/config"
	"github.com/mmlabtech/lims_backend/utils"
	"github.com/shopspring/decimal"
)

type ExpiringInventoryResponse struct {
	ItemName      *string         `json:"itemName,omitempty"`
	Unit          *string         `json:"unit,omitempty"`
	Supplier      *string         `json:"supplier,omitempty"`
	Quantity      decimal.Decimal `json:"quantity"`
	ExpiryDate    time.Time       `json:"expiryDate"`
	DaysRemaining int             `json:"daysRemaining"`
}

// GetExpiringInventoryReport lists stock-in lots whose expiry date falls in
// [today, today+90 days], soonest first. Days remaining is a signed calendar
// day difference; the window keeps it non-negative in practice.
func GetExpiringInventoryReport(ctx context.Context, sectionId *int) ([]*ExpiringInventoryResponse, error) {
	sqlT := `
SELECT
    items.name AS item_name,
    items.unit,
    si.supplier,
    si.quantity,
    si.expiry_date,
    DATEDIFF(si.expiry_date, CURDATE()) AS days_remaining
FROM
    stock_ins AS si
        LEFT JOIN
    items ON items.id = si.item_id
WHERE
    si.expiry_date IS NOT NULL
        AND si.expiry_date BETWEEN CURDATE() AND DATE_ADD(CURDATE(), INTERVAL 90 DAY)
    {{- if .sectionId }} AND items.section_id = @sectionId {{- end }}
ORDER BY si.expiry_date ASC;
`
	sql, err := utils.ExecTemplate(sqlT, map[string]interface{}{
		"sectionId": utils.DereferencePtr(sectionId),
	})
	if err != nil {
		return nil, err
	}

	var records []*ExpiringInventoryResponse
	db := config.GetDB()
	if err := db.WithContext(ctx).Raw(sql, map[string]interface{}{
		"sectionId": sectionId,
	}).Scan(&records).Error; err != nil {
		return nil, err
	}

	return records, nil
}

func transformExpiringInventory(records []*ExpiringInventoryResponse) [][]string {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			na(r.ItemName),
			na(r.Unit),
			na(r.Supplier),
			formatQuantity(r.Quantity),
			formatDate(r.ExpiryDate),
			strconv.Itoa(r.DaysRemaining),
			urgencyLabel(r.DaysRemaining),
		})
	}
	return rows
}
