package models

import (
	"context"
	"time"

	"github.com/mmlabtech/lims_backend/config"
	"github.com/mmlabtech/lims_backend/utils"
)

type ActivityLog struct {
	ID          int       `gorm:"primary_key" json:"id"`
	UserId      *int      `gorm:"index" json:"user_id"`
	User        *User     `json:"user,omitempty"`
	LoggedAt    time.Time `gorm:"index;not null" json:"logged_at"`
	Description string    `gorm:"type:text;not null" json:"description"`
}

// RecordActivity appends an audit row for the acting user. Best effort:
// callers log the error and carry on, a lost audit row never fails a request.
func RecordActivity(ctx context.Context, description string) error {
	entry := ActivityLog{
		LoggedAt:    time.Now(),
		Description: description,
	}
	if userId, ok := utils.GetUserIdFromContext(ctx); ok {
		entry.UserId = &userId
	}

	db := config.GetDB()
	return db.WithContext(ctx).Create(&entry).Error
}

func ListActivityLogs(ctx context.Context, userId *int) ([]*ActivityLog, error) {
	var entries []*ActivityLog
	db := config.GetDB()
	dbCtx := db.WithContext(ctx).Preload("User")
	if userId != nil && *userId != 0 {
		dbCtx = dbCtx.Where("user_id = ?", *userId)
	}
	if err := dbCtx.Order("logged_at DESC").Limit(500).Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
