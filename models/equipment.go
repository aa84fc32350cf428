package models

import (
	"context"
	"errors"
	"time"

	"github.com/mmlabtech/lims_backend/config"
	"github.com/mmlabtech/lims_backend/utils"
)

type Equipment struct {
	ID           int             `gorm:"primary_key" json:"id"`
	Name         string          `gorm:"index;size:150;not null" json:"name" binding:"required"`
	Model        string          `gorm:"size:100" json:"model"`
	SerialNumber string          `gorm:"uniqueIndex;size:100;not null" json:"serial_number" binding:"required"`
	SectionId    *int            `gorm:"index" json:"section_id"`
	Section      *Section        `json:"section,omitempty"`
	Status       EquipmentStatus `gorm:"size:30;not null;default:operational" json:"status"`
	PurchaseDate *DateString     `gorm:"type:date" json:"purchase_date"`
	CreatedAt    time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewEquipment struct {
	Name         string          `json:"name" binding:"required"`
	Model        string          `json:"model"`
	SerialNumber string          `json:"serial_number" binding:"required"`
	SectionId    *int            `json:"section_id"`
	Status       EquipmentStatus `json:"status"`
	PurchaseDate *DateString     `json:"purchase_date"`
}

func (input *NewEquipment) validate(ctx context.Context, id int) error {
	if id > 0 {
		if err := utils.ValidateResourceId[Equipment](ctx, id); err != nil {
			return err
		}
	}
	if err := utils.ValidateUnique[Equipment](ctx, "serial_number", input.SerialNumber, id); err != nil {
		return err
	}
	if input.SectionId != nil && *input.SectionId != 0 {
		if err := utils.ValidateResourceId[Section](ctx, *input.SectionId); err != nil {
			return errors.New("section not found")
		}
	}
	return nil
}

func CreateEquipment(ctx context.Context, input *NewEquipment) (*Equipment, error) {

	if err := input.validate(ctx, 0); err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = EquipmentStatusOperational
	}

	equipment := Equipment{
		Name:         input.Name,
		Model:        input.Model,
		SerialNumber: input.SerialNumber,
		SectionId:    input.SectionId,
		Status:       status,
		PurchaseDate: input.PurchaseDate,
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Create(&equipment).Error; err != nil {
		return nil, err
	}

	return &equipment, nil
}

func UpdateEquipment(ctx context.Context, id int, input *NewEquipment) (*Equipment, error) {

	if err := input.validate(ctx, id); err != nil {
		return nil, err
	}

	equipment, err := utils.FetchModel[Equipment](ctx, id)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	err = db.WithContext(ctx).Model(&equipment).Updates(map[string]interface{}{
		"Name":         input.Name,
		"Model":        input.Model,
		"SerialNumber": input.SerialNumber,
		"SectionId":    input.SectionId,
		"Status":       input.Status,
		"PurchaseDate": input.PurchaseDate,
	}).Error
	if err != nil {
		return nil, err
	}

	return equipment, nil
}

func DeleteEquipment(ctx context.Context, id int) (*Equipment, error) {

	equipment, err := utils.FetchModel[Equipment](ctx, id)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	var count int64
	if err := db.WithContext(ctx).Model(&CalibrationRecord{}).
		Where("equipment_id = ?", id).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.New("equipment has calibration records")
	}

	if err := db.WithContext(ctx).Delete(&equipment).Error; err != nil {
		return nil, err
	}

	return equipment, nil
}

func GetEquipment(ctx context.Context, id int) (*Equipment, error) {
	return utils.FetchModel[Equipment](ctx, id, "Section")
}

func ListEquipment(ctx context.Context, sectionId *int, status *EquipmentStatus) ([]*Equipment, error) {
	var equipment []*Equipment
	db := config.GetDB()
	dbCtx := db.WithContext(ctx).Preload("Section")
	if sectionId != nil && *sectionId != 0 {
		dbCtx = dbCtx.Where("section_id = ?", *sectionId)
	}
	if status != nil && *status != "" {
		dbCtx = dbCtx.Where("status = ?", *status)
	}
	if err := dbCtx.Order("name ASC").Find(&equipment).Error; err != nil {
		return nil, err
	}
	return equipment, nil
}
