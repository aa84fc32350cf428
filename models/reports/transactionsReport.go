package reports

import (
	"context"
	"time"

	"github.com/mmlabtech/lims_backend/config"
	"github.com/mmlabtech/lims_backend/models"
	"github.com/mmlabtech/lims_backend/utils"
	"github.com/shopspring/decimal"
)

type TransactionsResponse struct {
	TransactionDateTime time.Time       `json:"transactionDateTime"`
	ORNumber            string          `json:"orNumber"`
	PatientName         *string         `json:"patientName,omitempty"`
	ClientType          string          `json:"clientType"`
	TotalAmount         decimal.Decimal `json:"totalAmount"`
	Status              string          `json:"status"`
}

// Transactions carry no section of their own; the optional section filter
// matches through any billed test belonging to the section.
func GetTransactionsReport(ctx context.Context, fromDate models.DateString, toDate models.DateString, sectionId *int) ([]*TransactionsResponse, error) {
	sqlT := `
SELECT
    tr.transaction_date_time,
    tr.or_number,
    CONCAT(patients.last_name, ', ', patients.first_name) AS patient_name,
    tr.client_type,
    COALESCE(SUM(td.unit_price), 0) AS total_amount,
    tr.status
FROM
    transactions AS tr
        LEFT JOIN
    patients ON patients.id = tr.patient_id
        LEFT JOIN
    transaction_details AS td ON td.transaction_id = tr.id
WHERE
    tr.transaction_date_time BETWEEN @fromDate AND @toDate
    {{- if .sectionId }}
        AND EXISTS (SELECT 1 FROM transaction_details AS td2
            JOIN lab_tests ON lab_tests.id = td2.test_id
            WHERE td2.transaction_id = tr.id AND lab_tests.section_id = @sectionId)
    {{- end }}
GROUP BY tr.id, tr.transaction_date_time, tr.or_number, patient_name, tr.client_type, tr.status
ORDER BY tr.transaction_date_time DESC;
`
	fromDate.StartOfDay()
	toDate.EndOfDay()

	sql, err := utils.ExecTemplate(sqlT, map[string]interface{}{
		"sectionId": utils.DereferencePtr(sectionId),
	})
	if err != nil {
		return nil, err
	}

	var records []*TransactionsResponse
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

func transformTransactions(records []*TransactionsResponse) [][]string {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			formatDateTime(r.TransactionDateTime),
			r.ORNumber,
			na(r.PatientName),
			naIfBlank(r.ClientType),
			formatMoney(r.TotalAmount),
			capitalizeFirst(r.Status),
		})
	}
	return rows
}
