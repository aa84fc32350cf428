package models

import (
	"context"
	"errors"
	"time"

	"github.com/mmlabtech/lims_backend/config"
	"github.com/mmlabtech/lims_backend/utils"
	"github.com/shopspring/decimal"
)

// StockIn and StockOut are append-only ledgers. Entries are never updated
// or deleted; corrections are recorded as compensating entries.

type StockIn struct {
	ID              int             `gorm:"primary_key" json:"id"`
	ItemId          int             `gorm:"index;not null" json:"item_id" binding:"required"`
	Item            *Item           `json:"item,omitempty"`
	Quantity        decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"quantity"`
	Supplier        *string         `gorm:"size:150" json:"supplier"`
	ReferenceNumber *string         `gorm:"size:100" json:"reference_number"`
	Remarks         *string         `gorm:"type:text" json:"remarks"`
	ExpiryDate      *DateString     `gorm:"type:date;index" json:"expiry_date"`
	MovedAt         time.Time       `gorm:"index;not null" json:"moved_at"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

type StockOut struct {
	ID              int             `gorm:"primary_key" json:"id"`
	ItemId          int             `gorm:"index;not null" json:"item_id" binding:"required"`
	Item            *Item           `json:"item,omitempty"`
	Quantity        decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"quantity"`
	ReferenceNumber *string         `gorm:"size:100" json:"reference_number"`
	Remarks         *string         `gorm:"type:text" json:"remarks"`
	MovedAt         time.Time       `gorm:"index;not null" json:"moved_at"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

type NewStockIn struct {
	ItemId          int             `json:"item_id" binding:"required"`
	Quantity        decimal.Decimal `json:"quantity" binding:"required"`
	Supplier        *string         `json:"supplier"`
	ReferenceNumber *string         `json:"reference_number"`
	Remarks         *string         `json:"remarks"`
	ExpiryDate      *DateString     `json:"expiry_date"`
	MovedAt         *time.Time      `json:"moved_at"`
}

type NewStockOut struct {
	ItemId          int             `json:"item_id" binding:"required"`
	Quantity        decimal.Decimal `json:"quantity" binding:"required"`
	ReferenceNumber *string         `json:"reference_number"`
	Remarks         *string         `json:"remarks"`
	MovedAt         *time.Time      `json:"moved_at"`
}

func CreateStockIn(ctx context.Context, input *NewStockIn) (*StockIn, error) {

	if err := utils.ValidateResourceId[Item](ctx, input.ItemId); err != nil {
		return nil, errors.New("item not found")
	}
	if !input.Quantity.IsPositive() {
		return nil, errors.New("quantity must be positive")
	}

	movedAt := time.Now()
	if input.MovedAt != nil {
		movedAt = *input.MovedAt
	}

	entry := StockIn{
		ItemId:          input.ItemId,
		Quantity:        input.Quantity,
		Supplier:        input.Supplier,
		ReferenceNumber: input.ReferenceNumber,
		Remarks:         input.Remarks,
		ExpiryDate:      input.ExpiryDate,
		MovedAt:         movedAt,
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Create(&entry).Error; err != nil {
		return nil, err
	}

	return &entry, nil
}

func CreateStockOut(ctx context.Context, input *NewStockOut) (*StockOut, error) {

	if err := utils.ValidateResourceId[Item](ctx, input.ItemId); err != nil {
		return nil, errors.New("item not found")
	}
	if !input.Quantity.IsPositive() {
		return nil, errors.New("quantity must be positive")
	}

	net, err := GetNetStock(ctx, input.ItemId)
	if err != nil {
		return nil, err
	}
	if net.LessThan(input.Quantity) {
		return nil, errors.New("insufficient stock")
	}

	movedAt := time.Now()
	if input.MovedAt != nil {
		movedAt = *input.MovedAt
	}

	entry := StockOut{
		ItemId:          input.ItemId,
		Quantity:        input.Quantity,
		ReferenceNumber: input.ReferenceNumber,
		Remarks:         input.Remarks,
		MovedAt:         movedAt,
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Create(&entry).Error; err != nil {
		return nil, err
	}

	return &entry, nil
}

func ListStockIns(ctx context.Context, itemId *int) ([]*StockIn, error) {
	var entries []*StockIn
	db := config.GetDB()
	dbCtx := db.WithContext(ctx).Preload("Item")
	if itemId != nil && *itemId != 0 {
		dbCtx = dbCtx.Where("item_id = ?", *itemId)
	}
	if err := dbCtx.Order("moved_at DESC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func ListStockOuts(ctx context.Context, itemId *int) ([]*StockOut, error) {
	var entries []*StockOut
	db := config.GetDB()
	dbCtx := db.WithContext(ctx).Preload("Item")
	if itemId != nil && *itemId != 0 {
		dbCtx = dbCtx.Where("item_id = ?", *itemId)
	}
	if err := dbCtx.Order("moved_at DESC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
