package models

import (
	"context"
	"time"

	"github.com/mmlabtech/lims_backend/config"
	"github.com/mmlabtech/lims_backend/utils"
)

type Section struct {
	ID        int       `gorm:"primary_key" json:"id"`
	Name      string    `gorm:"index;size:100;not null" json:"name" binding:"required"`
	Code      string    `gorm:"size:20" json:"code"`
	IsActive  *bool     `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewSection struct {
	Name string `json:"name" binding:"required"`
	Code string `json:"code"`
}

// validate input for both create & update. (id = 0 for create)
func (input *NewSection) validate(ctx context.Context, id int) error {
	if id > 0 {
		if err := utils.ValidateResourceId[Section](ctx, id); err != nil {
			return err
		}
	}
	if err := utils.ValidateUnique[Section](ctx, "name", input.Name, id); err != nil {
		return err
	}
	return nil
}

func CreateSection(ctx context.Context, input *NewSection) (*Section, error) {

	if err := input.validate(ctx, 0); err != nil {
		return nil, err
	}

	section := Section{
		Name:     input.Name,
		Code:     input.Code,
		IsActive: utils.NewTrue(),
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Create(&section).Error; err != nil {
		return nil, err
	}

	return &section, nil
}

func UpdateSection(ctx context.Context, id int, input *NewSection) (*Section, error) {

	if err := input.validate(ctx, id); err != nil {
		return nil, err
	}

	section, err := utils.FetchModel[Section](ctx, id)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	err = db.WithContext(ctx).Model(&section).Updates(map[string]interface{}{
		"Name": input.Name,
		"Code": input.Code,
	}).Error
	if err != nil {
		return nil, err
	}

	return section, nil
}

func DeleteSection(ctx context.Context, id int) (*Section, error) {

	section, err := utils.FetchModel[Section](ctx, id)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Delete(&section).Error; err != nil {
		return nil, err
	}

	return section, nil
}

func GetSection(ctx context.Context, id int) (*Section, error) {
	return utils.FetchModel[Section](ctx, id)
}

func ListSections(ctx context.Context) ([]*Section, error) {
	var sections []*Section
	db := config.GetDB()
	if err := db.WithContext(ctx).Order("name ASC").Find(&sections).Error; err != nil {
		return nil, err
	}
	return sections, nil
}
