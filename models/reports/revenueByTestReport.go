package reports

import (
	"context"
	"strconv"

	"github.com/mmlabtech/lims_backend/config"
	"github.com/mmlabtech/lims_backend/models"
	"github.com/mmlabtech/lims_backend/utils"
	"github.com/shopspring/decimal"
)

type RevenueByTestResponse struct {
	TestName    *string         `json:"testName,omitempty"`
	SectionName *string         `json:"sectionName,omitempty"`
	OrderCount  int             `json:"orderCount"`
	Revenue     decimal.Decimal `json:"revenue"`
}

// Revenue sums the unit price snapshotted on each transaction line at
// transaction time, so later catalog price changes never restate history.
// Cancelled transactions are excluded.
func GetRevenueByTestReport(ctx context.Context, fromDate models.DateString, toDate models.DateString, sectionId *int) ([]*RevenueByTestResponse, error) {
	sqlT := `
SELECT
    lab_tests.name AS test_name,
    sections.name AS section_name,
    COUNT(td.id) AS order_count,
    COALESCE(SUM(td.unit_price), 0) AS revenue
FROM
    transaction_details AS td
        JOIN
    transactions AS tr ON tr.id = td.transaction_id
        LEFT JOIN
    lab_tests ON lab_tests.id = td.test_id
        LEFT JOIN
    sections ON sections.id = lab_tests.section_id
WHERE
    tr.transaction_date_time BETWEEN @fromDate AND @toDate
        AND tr.status <> 'cancelled'
    {{- if .sectionId }} AND lab_tests.section_id = @sectionId {{- end }}
GROUP BY td.test_id, test_name, section_name
ORDER BY revenue DESC;
`
	fromDate.StartOfDay()
	toDate.EndOfDay()

	sql, err := utils.ExecTemplate(sqlT, map[string]interface{}{
		"sectionId": utils.DereferencePtr(sectionId),
	})
	if err != nil {
		return nil, err
	}

	var records []*RevenueByTestResponse
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

func transformRevenueByTest(records []*RevenueByTestResponse) [][]string {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			na(r.TestName),
			na(r.SectionName),
			strconv.Itoa(r.OrderCount),
			formatMoney(r.Revenue),
		})
	}
	return rows
}
