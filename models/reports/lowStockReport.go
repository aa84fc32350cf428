package reports

import (
	"context"

	"github.com/mmlabtech/lims_backend/config"
	"github.com/mmlabtech/lims_backend/utils"
	"github.com/shopspring/decimal"
)

type LowStockResponse struct {
	ItemName     string          `json:"itemName"`
	Unit         *string         `json:"unit,omitempty"`
	SectionName  *string         `json:"sectionName,omitempty"`
	TotalIn      decimal.Decimal `json:"totalIn"`
	TotalOut     decimal.Decimal `json:"totalOut"`
	NetStock     decimal.Decimal `json:"netStock"`
	ReorderLevel decimal.Decimal `json:"reorderLevel"`
}

// GetLowStockReport is a point-in-time report: net stock per item from the
// two ledgers, keeping items at or below their reorder level, most urgent
// (lowest net stock) first. The boundary net == reorder level is included.
func GetLowStockReport(ctx context.Context, sectionId *int) ([]*LowStockResponse, error) {
	sqlT := `
SELECT
    items.name AS item_name,
    items.unit,
    sections.name AS section_name,
    COALESCE(ins.total_qty, 0) AS total_in,
    COALESCE(outs.total_qty, 0) AS total_out,
    COALESCE(ins.total_qty, 0) - COALESCE(outs.total_qty, 0) AS net_stock,
    items.reorder_level
FROM
    items
        LEFT JOIN
    (SELECT item_id, SUM(quantity) AS total_qty FROM stock_ins GROUP BY item_id) AS ins
        ON ins.item_id = items.id
        LEFT JOIN
    (SELECT item_id, SUM(quantity) AS total_qty FROM stock_outs GROUP BY item_id) AS outs
        ON outs.item_id = items.id
        LEFT JOIN
    sections ON sections.id = items.section_id
WHERE
    1 = 1
    {{- if .sectionId }} AND items.section_id = @sectionId {{- end }}
HAVING net_stock <= reorder_level
ORDER BY net_stock ASC;
`
	sql, err := utils.ExecTemplate(sqlT, map[string]interface{}{
		"sectionId": utils.DereferencePtr(sectionId),
	})
	if err != nil {
		return nil, err
	}

	var records []*LowStockResponse
	db := config.GetDB()
	if err := db.WithContext(ctx).Raw(sql, map[string]interface{}{
		"sectionId": sectionId,
	}).Scan(&records).Error; err != nil {
		return nil, err
	}

	return records, nil
}

func transformLowStock(records []*LowStockResponse) [][]string {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.ItemName,
			na(r.Unit),
			na(r.SectionName),
			formatQuantity(r.TotalIn),
			formatQuantity(r.TotalOut),
			formatQuantity(r.NetStock),
			formatQuantity(r.ReorderLevel),
		})
	}
	return rows
}
