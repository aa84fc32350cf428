package reports

import (
	"context"
	"time"

	"github.com/mmlabtech/lims_backend/config"
	"github.com/mmlabtech/lims_backend/models"
	"github.com/mmlabtech/lims_backend/utils"
)

type LabResultsResponse struct {
	ResultDate  time.Time `json:"resultDate"`
	PatientName *string   `json:"patientName,omitempty"`
	TestName    *string   `json:"testName,omitempty"`
	SectionName *string   `json:"sectionName,omitempty"`
	Value       string    `json:"value"`
	NormalRange *string   `json:"normalRange,omitempty"`
	Status      string    `json:"status"`
	PerformedBy string    `json:"performedBy"`
}

// Lab results reach the section filter through their test's section.
func GetLabResultsReport(ctx context.Context, fromDate models.DateString, toDate models.DateString, sectionId *int) ([]*LabResultsResponse, error) {
	sqlT := `
SELECT
    lr.result_date,
    CONCAT(patients.last_name, ', ', patients.first_name) AS patient_name,
    lab_tests.name AS test_name,
    sections.name AS section_name,
    lr.value,
    lr.normal_range,
    lr.status,
    lr.performed_by
FROM
    lab_results AS lr
        LEFT JOIN
    patients ON patients.id = lr.patient_id
        LEFT JOIN
    lab_tests ON lab_tests.id = lr.test_id
        LEFT JOIN
    sections ON sections.id = lab_tests.section_id
WHERE
    lr.result_date BETWEEN @fromDate AND @toDate
    {{- if .sectionId }} AND lab_tests.section_id = @sectionId {{- end }}
ORDER BY lr.result_date DESC;
`
	fromDate.StartOfDay()
	toDate.EndOfDay()

	sql, err := utils.ExecTemplate(sqlT, map[string]interface{}{
		"sectionId": utils.DereferencePtr(sectionId),
	})
	if err != nil {
		return nil, err
	}

	var records []*LabResultsResponse
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

func transformLabResults(records []*LabResultsResponse) [][]string {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			formatDate(r.ResultDate),
			na(r.PatientName),
			na(r.TestName),
			na(r.SectionName),
			naIfBlank(r.Value),
			na(r.NormalRange),
			capitalizeFirst(r.Status),
			naIfBlank(r.PerformedBy),
		})
	}
	return rows
}
