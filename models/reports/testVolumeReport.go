package reports

import (
	"context"
	"strconv"

	"github.com/mmlabtech/lims_backend/config"
	"github.com/mmlabtech/lims_backend/models"
	"github.com/mmlabtech/lims_backend/utils"
)

type TestVolumeResponse struct {
	TestName    *string `json:"testName,omitempty"`
	SectionName *string `json:"sectionName,omitempty"`
	ResultCount int     `json:"resultCount"`
}

func GetTestVolumeReport(ctx context.Context, fromDate models.DateString, toDate models.DateString, sectionId *int) ([]*TestVolumeResponse, error) {
	sqlT := `
SELECT
    lab_tests.name AS test_name,
    sections.name AS section_name,
    COUNT(lr.id) AS result_count
FROM
    lab_results AS lr
        LEFT JOIN
    lab_tests ON lab_tests.id = lr.test_id
        LEFT JOIN
    sections ON sections.id = lab_tests.section_id
WHERE
    lr.result_date BETWEEN @fromDate AND @toDate
    {{- if .sectionId }} AND lab_tests.section_id = @sectionId {{- end }}
GROUP BY lr.test_id, test_name, section_name
ORDER BY result_count DESC;
`
	fromDate.StartOfDay()
	toDate.EndOfDay()

	sql, err := utils.ExecTemplate(sqlT, map[string]interface{}{
		"sectionId": utils.DereferencePtr(sectionId),
	})
	if err != nil {
		return nil, err
	}

	var records []*TestVolumeResponse
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

func transformTestVolume(records []*TestVolumeResponse) [][]string {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			na(r.TestName),
			na(r.SectionName),
			strconv.Itoa(r.ResultCount),
		})
	}
	return rows
}
