package reports

import (
	"context"
	"time"

	"github.com/mmlabtech/lims_backend/config"
	"github.com/mmlabtech/lims_backend/models"
)

type CertificatesIssuedResponse struct {
	IssueDate    *time.Time `json:"issueDate,omitempty"`
	Number       *string    `json:"number,omitempty"`
	Type         string     `json:"type"`
	PatientName  *string    `json:"patientName,omitempty"`
	IssuedByName *string    `json:"issuedByName,omitempty"`
	Status       string     `json:"status"`
}

// Certificates have no section relation at all, so the cross-cutting section
// filter does not apply here.
func GetCertificatesIssuedReport(ctx context.Context, fromDate models.DateString, toDate models.DateString) ([]*CertificatesIssuedResponse, error) {
	sql := `
SELECT
    c.issue_date,
    c.number,
    c.type,
    CONCAT(patients.last_name, ', ', patients.first_name) AS patient_name,
    users.name AS issued_by_name,
    c.status
FROM
    certificates AS c
        LEFT JOIN
    patients ON patients.id = c.patient_id
        LEFT JOIN
    users ON users.id = c.issued_by_id
WHERE
    c.issue_date BETWEEN @fromDate AND @toDate
ORDER BY c.issue_date DESC;
`
	fromDate.StartOfDay()
	toDate.EndOfDay()

	var records []*CertificatesIssuedResponse
	db := config.GetDB()
	if err := db.WithContext(ctx).Raw(sql, map[string]interface{}{
		"fromDate": fromDate,
		"toDate":   toDate,
	}).Scan(&records).Error; err != nil {
		return nil, err
	}

	return records, nil
}

func transformCertificatesIssued(records []*CertificatesIssuedResponse) [][]string {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			formatDatePtr(r.IssueDate),
			na(r.Number),
			naIfBlank(r.Type),
			na(r.PatientName),
			na(r.IssuedByName),
			capitalizeFirst(r.Status),
		})
	}
	return rows
}
