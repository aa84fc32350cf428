package models

import (
	"context"
	"errors"
	"time"

	"github.com/mmlabtech/lims_backend/config"
	"github.com/mmlabtech/lims_backend/utils"
)

type LabResult struct {
	ID          int             `gorm:"primary_key" json:"id"`
	PatientId   int             `gorm:"index;not null" json:"patient_id" binding:"required"`
	Patient     *Patient        `json:"patient,omitempty"`
	TestId      int             `gorm:"index;not null" json:"test_id" binding:"required"`
	Test        *LabTest        `gorm:"foreignKey:TestId" json:"test,omitempty"`
	ResultDate  DateString      `gorm:"index;not null" json:"result_date"`
	Value       string          `gorm:"size:255" json:"value"`
	NormalRange *string         `gorm:"size:100" json:"normal_range"`
	Status      LabResultStatus `gorm:"size:20;not null;default:draft" json:"status"`
	PerformedBy string          `gorm:"size:100" json:"performed_by"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewLabResult struct {
	PatientId   int             `json:"patient_id" binding:"required"`
	TestId      int             `json:"test_id" binding:"required"`
	ResultDate  DateString      `json:"result_date" binding:"required"`
	Value       string          `json:"value"`
	NormalRange *string         `json:"normal_range"`
	Status      LabResultStatus `json:"status"`
	PerformedBy string          `json:"performed_by"`
}

func (input *NewLabResult) validate(ctx context.Context, id int) error {
	if id > 0 {
		if err := utils.ValidateResourceId[LabResult](ctx, id); err != nil {
			return err
		}
	}
	if err := utils.ValidateResourceId[Patient](ctx, input.PatientId); err != nil {
		return errors.New("patient not found")
	}
	if err := utils.ValidateResourceId[LabTest](ctx, input.TestId); err != nil {
		return errors.New("test not found")
	}
	return nil
}

func CreateLabResult(ctx context.Context, input *NewLabResult) (*LabResult, error) {

	if err := input.validate(ctx, 0); err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = LabResultStatusDraft
	}

	result := LabResult{
		PatientId:   input.PatientId,
		TestId:      input.TestId,
		ResultDate:  input.ResultDate,
		Value:       input.Value,
		NormalRange: input.NormalRange,
		Status:      status,
		PerformedBy: input.PerformedBy,
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Create(&result).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

// UpdateLabResult applies the edit; a final result moves to revised instead
// of being silently overwritten.
func UpdateLabResult(ctx context.Context, id int, input *NewLabResult) (*LabResult, error) {

	if err := input.validate(ctx, id); err != nil {
		return nil, err
	}

	result, err := utils.FetchModel[LabResult](ctx, id)
	if err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = result.Status
	}
	if result.Status == LabResultStatusFinal && status == LabResultStatusFinal {
		status = LabResultStatusRevised
	}

	db := config.GetDB()
	err = db.WithContext(ctx).Model(&result).Updates(map[string]interface{}{
		"PatientId":   input.PatientId,
		"TestId":      input.TestId,
		"ResultDate":  input.ResultDate,
		"Value":       input.Value,
		"NormalRange": input.NormalRange,
		"Status":      status,
		"PerformedBy": input.PerformedBy,
	}).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func DeleteLabResult(ctx context.Context, id int) (*LabResult, error) {

	result, err := utils.FetchModel[LabResult](ctx, id)
	if err != nil {
		return nil, err
	}
	if result.Status != LabResultStatusDraft {
		return nil, errors.New("only draft results can be deleted")
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Delete(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func ListLabResults(ctx context.Context, patientId *int, testId *int) ([]*LabResult, error) {
	var results []*LabResult
	db := config.GetDB()
	dbCtx := db.WithContext(ctx).Preload("Patient").Preload("Test").Preload("Test.Section")
	if patientId != nil && *patientId != 0 {
		dbCtx = dbCtx.Where("patient_id = ?", *patientId)
	}
	if testId != nil && *testId != 0 {
		dbCtx = dbCtx.Where("test_id = ?", *testId)
	}
	if err := dbCtx.Order("result_date DESC").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
