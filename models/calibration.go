package models

import (
	"context"
	"errors"
	"time"

	"github.com/mmlabtech/lims_backend/config"
	"github.com/mmlabtech/lims_backend/utils"
)

type CalibrationRecord struct {
	ID                int               `gorm:"primary_key" json:"id"`
	EquipmentId       int               `gorm:"index;not null" json:"equipment_id" binding:"required"`
	Equipment         *Equipment        `json:"equipment,omitempty"`
	CalibrationDate   DateString        `gorm:"type:date;not null" json:"calibration_date"`
	NextDueDate       *DateString       `gorm:"type:date" json:"next_due_date"`
	Status            CalibrationStatus `gorm:"size:20;not null" json:"status"`
	PerformedBy       string            `gorm:"size:100" json:"performed_by"`
	CertificateNumber *string           `gorm:"size:100" json:"certificate_number"`
	CreatedAt         time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time         `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewCalibrationRecord struct {
	EquipmentId       int               `json:"equipment_id" binding:"required"`
	CalibrationDate   DateString        `json:"calibration_date" binding:"required"`
	NextDueDate       *DateString       `json:"next_due_date"`
	Status            CalibrationStatus `json:"status" binding:"required"`
	PerformedBy       string            `json:"performed_by"`
	CertificateNumber *string           `json:"certificate_number"`
}

func (input *NewCalibrationRecord) validate(ctx context.Context, id int) error {
	if id > 0 {
		if err := utils.ValidateResourceId[CalibrationRecord](ctx, id); err != nil {
			return err
		}
	}
	if err := utils.ValidateResourceId[Equipment](ctx, input.EquipmentId); err != nil {
		return errors.New("equipment not found")
	}
	return nil
}

func CreateCalibrationRecord(ctx context.Context, input *NewCalibrationRecord) (*CalibrationRecord, error) {

	if err := input.validate(ctx, 0); err != nil {
		return nil, err
	}

	record := CalibrationRecord{
		EquipmentId:       input.EquipmentId,
		CalibrationDate:   input.CalibrationDate,
		NextDueDate:       input.NextDueDate,
		Status:            input.Status,
		PerformedBy:       input.PerformedBy,
		CertificateNumber: input.CertificateNumber,
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func UpdateCalibrationRecord(ctx context.Context, id int, input *NewCalibrationRecord) (*CalibrationRecord, error) {

	if err := input.validate(ctx, id); err != nil {
		return nil, err
	}

	record, err := utils.FetchModel[CalibrationRecord](ctx, id)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	err = db.WithContext(ctx).Model(&record).Updates(map[string]interface{}{
		"EquipmentId":       input.EquipmentId,
		"CalibrationDate":   input.CalibrationDate,
		"NextDueDate":       input.NextDueDate,
		"Status":            input.Status,
		"PerformedBy":       input.PerformedBy,
		"CertificateNumber": input.CertificateNumber,
	}).Error
	if err != nil {
		return nil, err
	}

	return record, nil
}

func DeleteCalibrationRecord(ctx context.Context, id int) (*CalibrationRecord, error) {

	record, err := utils.FetchModel[CalibrationRecord](ctx, id)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Delete(&record).Error; err != nil {
		return nil, err
	}

	return record, nil
}

func ListCalibrationRecords(ctx context.Context, equipmentId *int) ([]*CalibrationRecord, error) {
	var records []*CalibrationRecord
	db := config.GetDB()
	dbCtx := db.WithContext(ctx).Preload("Equipment").Preload("Equipment.Section")
	if equipmentId != nil && *equipmentId != 0 {
		dbCtx = dbCtx.Where("equipment_id = ?", *equipmentId)
	}
	if err := dbCtx.Order("calibration_date DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
