package reports

import (
	"context"
	"time"

	"github.com/mmlabtech/lims_backend/config"
	"github.com/mmlabtech/lims_backend/models"
)

type ActivityLogResponse struct {
	LoggedAt    time.Time `json:"loggedAt"`
	UserName    *string   `json:"userName,omitempty"`
	Description string    `json:"description"`
}

func GetActivityLogReport(ctx context.Context, fromDate models.DateString, toDate models.DateString) ([]*ActivityLogResponse, error) {
	sql := `
SELECT
    al.logged_at,
    users.name AS user_name,
    al.description
FROM
    activity_logs AS al
        LEFT JOIN
    users ON users.id = al.user_id
WHERE
    al.logged_at BETWEEN @fromDate AND @toDate
ORDER BY al.logged_at DESC;
`
	fromDate.StartOfDay()
	toDate.EndOfDay()

	var records []*ActivityLogResponse
	db := config.GetDB()
	if err := db.WithContext(ctx).Raw(sql, map[string]interface{}{
		"fromDate": fromDate,
		"toDate":   toDate,
	}).Scan(&records).Error; err != nil {
		return nil, err
	}

	return records, nil
}

func transformActivityLog(records []*ActivityLogResponse) [][]string {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			formatDateTime(r.LoggedAt),
			na(r.UserName),
			r.Description,
		})
	}
	return rows
}
