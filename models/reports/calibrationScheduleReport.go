package reports

import (
	"context"
	"time"

	"github.com/mmlabtech/lims_backend/config"
	"github.com/mmlabtech/lims_backend/models"
	"github.com/mmlabtech/lims_backend/utils"
)

type CalibrationScheduleResponse struct {
	EquipmentName     *string    `json:"equipmentName,omitempty"`
	SerialNumber      *string    `json:"serialNumber,omitempty"`
	SectionName       *string    `json:"sectionName,omitempty"`
	CalibrationDate   time.Time  `json:"calibrationDate"`
	NextDueDate       *time.Time `json:"nextDueDate,omitempty"`
	Status            string     `json:"status"`
	PerformedBy       string     `json:"performedBy"`
	CertificateNumber *string    `json:"certificateNumber,omitempty"`
}

// Calibration records have no section column of their own; the section
// filter goes through the owning equipment.
func GetCalibrationScheduleReport(ctx context.Context, fromDate models.DateString, toDate models.DateString, sectionId *int) ([]*CalibrationScheduleResponse, error) {
	sqlT := `
SELECT
    equipment.name AS equipment_name,
    equipment.serial_number,
    sections.name AS section_name,
    cr.calibration_date,
    cr.next_due_date,
    cr.status,
    cr.performed_by,
    cr.certificate_number
FROM
    calibration_records AS cr
        LEFT JOIN
    equipment ON equipment.id = cr.equipment_id
        LEFT JOIN
    sections ON sections.id = equipment.section_id
WHERE
    cr.calibration_date BETWEEN @fromDate AND @toDate
    {{- if .sectionId }} AND equipment.section_id = @sectionId {{- end }}
ORDER BY cr.calibration_date DESC;
`
	fromDate.StartOfDay()
	toDate.EndOfDay()

	sql, err := utils.ExecTemplate(sqlT, map[string]interface{}{
		"sectionId": utils.DereferencePtr(sectionId),
	})
	if err != nil {
		return nil, err
	}

	var records []*CalibrationScheduleResponse
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

func transformCalibrationSchedule(records []*CalibrationScheduleResponse) [][]string {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			na(r.EquipmentName),
			na(r.SerialNumber),
			na(r.SectionName),
			formatDate(r.CalibrationDate),
			formatDatePtr(r.NextDueDate),
			capitalizeFirst(r.Status),
			naIfBlank(r.PerformedBy),
			na(r.CertificateNumber),
		})
	}
	return rows
}
