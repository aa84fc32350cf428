package reports

import (
	"context"
	"time"

	"github.com/mmlabtech/lims_backend/config"
	"github.com/mmlabtech/lims_backend/models"
	"github.com/mmlabtech/lims_backend/utils"
)

type EquipmentInventoryResponse struct {
	Name         string     `json:"name"`
	Model        string     `json:"model"`
	SerialNumber string     `json:"serialNumber"`
	SectionName  *string    `json:"sectionName,omitempty"`
	Status       string     `json:"status"`
	PurchaseDate *time.Time `json:"purchaseDate,omitempty"`
}

func GetEquipmentInventoryReport(ctx context.Context, fromDate models.DateString, toDate models.DateString, sectionId *int) ([]*EquipmentInventoryResponse, error) {
	sqlT := `
SELECT
    equipment.name,
    equipment.model,
    equipment.serial_number,
    sections.name AS section_name,
    equipment.status,
    equipment.purchase_date
FROM
    equipment
        LEFT JOIN
    sections ON sections.id = equipment.section_id
WHERE
    equipment.purchase_date BETWEEN @fromDate AND @toDate
    {{- if .sectionId }} AND equipment.section_id = @sectionId {{- end }}
ORDER BY equipment.purchase_date DESC;
`
	fromDate.StartOfDay()
	toDate.EndOfDay()

	sql, err := utils.ExecTemplate(sqlT, map[string]interface{}{
		"sectionId": utils.DereferencePtr(sectionId),
	})
	if err != nil {
		return nil, err
	}

	var records []*EquipmentInventoryResponse
	db := config.GetDB()
	if err := db.WithContext(ctx).Raw(sql, map[string]interface{}{
		"fromDate":  fromDate,
		"toDate":    toDate,
		"sectionId": sectionId,
	}).Scan(&records).Error; err != nil {
		return nil, err
	}

	return records, nil
}

func transformEquipmentInventory(records []*EquipmentInventoryResponse) [][]string {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.Name,
			naIfBlank(r.Model),
			r.SerialNumber,
			na(r.SectionName),
			capitalizeFirst(r.Status),
			formatDatePtr(r.PurchaseDate),
		})
	}
	return rows
}
