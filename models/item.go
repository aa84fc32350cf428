package models

import (
	"context"
	"errors"
	"time"

	"github.com/mmlabtech/lims_backend/config"
	"github.com/mmlabtech/lims_backend/utils"
	"github.com/shopspring/decimal"
)

type Item struct {
	ID           int             `gorm:"primary_key" json:"id"`
	Name         string          `gorm:"index;size:150;not null" json:"name" binding:"required"`
	Unit         string          `gorm:"size:30" json:"unit"`
	ReorderLevel decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"reorder_level"`
	SectionId    *int            `gorm:"index" json:"section_id"`
	Section      *Section        `json:"section,omitempty"`
	CreatedAt    time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewItem struct {
	Name         string          `json:"name" binding:"required"`
	Unit         string          `json:"unit"`
	ReorderLevel decimal.Decimal `json:"reorder_level"`
	SectionId    *int            `json:"section_id"`
}

func (input *NewItem) validate(ctx context.Context, id int) error {
	if id > 0 {
		if err := utils.ValidateResourceId[Item](ctx, id); err != nil {
			return err
		}
	}
	if err := utils.ValidateUnique[Item](ctx, "name", input.Name, id); err != nil {
		return err
	}
	if input.ReorderLevel.IsNegative() {
		return errors.New("reorder level must not be negative")
	}
	if input.SectionId != nil && *input.SectionId != 0 {
		if err := utils.ValidateResourceId[Section](ctx, *input.SectionId); err != nil {
			return errors.New("section not found")
		}
	}
	return nil
}

func CreateItem(ctx context.Context, input *NewItem) (*Item, error) {

	if err := input.validate(ctx, 0); err != nil {
		return nil, err
	}

	item := Item{
		Name:         input.Name,
		Unit:         input.Unit,
		ReorderLevel: input.ReorderLevel,
		SectionId:    input.SectionId,
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Create(&item).Error; err != nil {
		return nil, err
	}

	return &item, nil
}

func UpdateItem(ctx context.Context, id int, input *NewItem) (*Item, error) {

	if err := input.validate(ctx, id); err != nil {
		return nil, err
	}

	item, err := utils.FetchModel[Item](ctx, id)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	err = db.WithContext(ctx).Model(&item).Updates(map[string]interface{}{
		"Name":         input.Name,
		"Unit":         input.Unit,
		"ReorderLevel": input.ReorderLevel,
		"SectionId":    input.SectionId,
	}).Error
	if err != nil {
		return nil, err
	}

	return item, nil
}

func DeleteItem(ctx context.Context, id int) (*Item, error) {

	item, err := utils.FetchModel[Item](ctx, id)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	var count int64
	if err := db.WithContext(ctx).Model(&StockIn{}).
		Where("item_id = ?", id).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.New("item has stock movements")
	}

	if err := db.WithContext(ctx).Delete(&item).Error; err != nil {
		return nil, err
	}

	return item, nil
}

func GetItem(ctx context.Context, id int) (*Item, error) {
	return utils.FetchModel[Item](ctx, id, "Section")
}

func ListItems(ctx context.Context, sectionId *int) ([]*Item, error) {
	var items []*Item
	db := config.GetDB()
	dbCtx := db.WithContext(ctx).Preload("Section")
	if sectionId != nil && *sectionId != 0 {
		dbCtx = dbCtx.Where("section_id = ?", *sectionId)
	}
	if err := dbCtx.Order("name ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// GetNetStock computes on-hand stock for an item as the difference of the
// two append-only ledgers. Nothing is stored; the ledgers are the truth.
func GetNetStock(ctx context.Context, itemId int) (decimal.Decimal, error) {
	if err := utils.ValidateResourceId[Item](ctx, itemId); err != nil {
		return decimal.Zero, err
	}

	sql := `
SELECT
    COALESCE((SELECT SUM(quantity) FROM stock_ins WHERE item_id = @itemId), 0)
  - COALESCE((SELECT SUM(quantity) FROM stock_outs WHERE item_id = @itemId), 0) AS net_stock;
`
	var netStock decimal.Decimal
	db := config.GetDB()
	if err := db.WithContext(ctx).Raw(sql, map[string]interface{}{
		"itemId": itemId,
	}).Scan(&netStock).Error; err != nil {
		return decimal.Zero, err
	}

	return netStock, nil
}
