package models

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/mmlabtech/lims_backend/config"
	"github.com/mmlabtech/lims_backend/utils"
)

type Patient struct {
	ID            int         `gorm:"primary_key" json:"id"`
	FirstName     string      `gorm:"size:100;not null" json:"first_name" binding:"required"`
	LastName      string      `gorm:"index;size:100;not null" json:"last_name" binding:"required"`
	DateOfBirth   *DateString `gorm:"type:date" json:"date_of_birth"`
	Sex           string      `gorm:"size:10" json:"sex"`
	ContactNumber string      `gorm:"size:20" json:"contact_number"`
	Email         string      `gorm:"size:100" json:"email"`
	Address       string      `gorm:"type:text" json:"address"`
	CreatedAt     time.Time   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time   `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewPatient struct {
	FirstName     string      `json:"first_name" binding:"required"`
	LastName      string      `json:"last_name" binding:"required"`
	DateOfBirth   *DateString `json:"date_of_birth"`
	Sex           string      `json:"sex"`
	ContactNumber string      `json:"contact_number"`
	Email         string      `json:"email"`
	Address       string      `json:"address"`
}

func (input *NewPatient) validate(ctx context.Context, id int) error {
	if id > 0 {
		if err := utils.ValidateResourceId[Patient](ctx, id); err != nil {
			return err
		}
	}
	if len(strings.TrimSpace(input.Email)) > 0 && !utils.IsValidEmail(input.Email) {
		return errors.New("invalid email")
	}
	return nil
}

func CreatePatient(ctx context.Context, input *NewPatient) (*Patient, error) {

	if err := input.validate(ctx, 0); err != nil {
		return nil, err
	}

	patient := Patient{
		FirstName:     input.FirstName,
		LastName:      input.LastName,
		DateOfBirth:   input.DateOfBirth,
		Sex:           input.Sex,
		ContactNumber: input.ContactNumber,
		Email:         input.Email,
		Address:       input.Address,
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Create(&patient).Error; err != nil {
		return nil, err
	}

	return &patient, nil
}

func UpdatePatient(ctx context.Context, id int, input *NewPatient) (*Patient, error) {

	if err := input.validate(ctx, id); err != nil {
		return nil, err
	}

	patient, err := utils.FetchModel[Patient](ctx, id)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	err = db.WithContext(ctx).Model(&patient).Updates(map[string]interface{}{
		"FirstName":     input.FirstName,
		"LastName":      input.LastName,
		"DateOfBirth":   input.DateOfBirth,
		"Sex":           input.Sex,
		"ContactNumber": input.ContactNumber,
		"Email":         input.Email,
		"Address":       input.Address,
	}).Error
	if err != nil {
		return nil, err
	}

	return patient, nil
}

func DeletePatient(ctx context.Context, id int) (*Patient, error) {

	patient, err := utils.FetchModel[Patient](ctx, id)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	var count int64
	if err := db.WithContext(ctx).Model(&LabResult{}).
		Where("patient_id = ?", id).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.New("patient has lab results")
	}

	if err := db.WithContext(ctx).Delete(&patient).Error; err != nil {
		return nil, err
	}

	return patient, nil
}

func GetPatient(ctx context.Context, id int) (*Patient, error) {
	return utils.FetchModel[Patient](ctx, id)
}

func ListPatients(ctx context.Context, name *string) ([]*Patient, error) {
	var patients []*Patient
	db := config.GetDB()
	dbCtx := db.WithContext(ctx)
	if name != nil && *name != "" {
		like := "%" + *name + "%"
		dbCtx = dbCtx.Where("first_name LIKE ? OR last_name LIKE ?", like, like)
	}
	if err := dbCtx.Order("last_name ASC, first_name ASC").Find(&patients).Error; err != nil {
		return nil, err
	}
	return patients, nil
}
