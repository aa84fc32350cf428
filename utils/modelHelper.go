package utils

import (
	"context"
	"errors"

	"github.com/mmlabtech/lims_backend/config"
	"gorm.io/gorm"
)

// fetch a record by id with optional preloaded associations
func FetchModel[T any](ctx context.Context, id int, associations ...string) (*T, error) {
	var record T

	db := config.GetDB()
	dbCtx := db.WithContext(ctx)
	for _, association := range associations {
		dbCtx = dbCtx.Preload(association)
	}
	if err := dbCtx.First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrorRecordNotFound
		}
		return nil, err
	}
	return &record, nil
}
