package models

import (
	"context"
	"errors"
	"time"

	"github.com/mmlabtech/lims_backend/config"
	"github.com/mmlabtech/lims_backend/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type LabTest struct {
	ID        int             `gorm:"primary_key" json:"id"`
	Name      string          `gorm:"index;size:150;not null" json:"name" binding:"required"`
	SectionId *int            `gorm:"index" json:"section_id"`
	Section   *Section        `json:"section,omitempty"`
	Price     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	IsActive  *bool           `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

// TestPriceHistory keeps every price change so past billing stays auditable.
type TestPriceHistory struct {
	ID        int             `gorm:"primary_key" json:"id"`
	TestId    int             `gorm:"index;not null" json:"test_id"`
	OldPrice  decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"old_price"`
	NewPrice  decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"new_price"`
	ChangedBy int             `gorm:"index" json:"changed_by"`
	ChangedAt time.Time       `gorm:"autoCreateTime" json:"changed_at"`
}

type NewLabTest struct {
	Name      string          `json:"name" binding:"required"`
	SectionId *int            `json:"section_id"`
	Price     decimal.Decimal `json:"price"`
}

func (input *NewLabTest) validate(ctx context.Context, id int) error {
	if id > 0 {
		if err := utils.ValidateResourceId[LabTest](ctx, id); err != nil {
			return err
		}
	}
	if err := utils.ValidateUnique[LabTest](ctx, "name", input.Name, id); err != nil {
		return err
	}
	if input.Price.IsNegative() {
		return errors.New("price must not be negative")
	}
	if input.SectionId != nil && *input.SectionId != 0 {
		if err := utils.ValidateResourceId[Section](ctx, *input.SectionId); err != nil {
			return errors.New("section not found")
		}
	}
	return nil
}

func CreateLabTest(ctx context.Context, input *NewLabTest) (*LabTest, error) {

	if err := input.validate(ctx, 0); err != nil {
		return nil, err
	}

	test := LabTest{
		Name:      input.Name,
		SectionId: input.SectionId,
		Price:     input.Price,
		IsActive:  utils.NewTrue(),
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Create(&test).Error; err != nil {
		return nil, err
	}

	return &test, nil
}

// UpdateLabTest updates the catalog entry; a price change also appends a
// TestPriceHistory row inside the same transaction.
func UpdateLabTest(ctx context.Context, id int, input *NewLabTest) (*LabTest, error) {

	if err := input.validate(ctx, id); err != nil {
		return nil, err
	}

	test, err := utils.FetchModel[LabTest](ctx, id)
	if err != nil {
		return nil, err
	}

	userId, _ := utils.GetUserIdFromContext(ctx)

	db := config.GetDB()
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if !test.Price.Equal(input.Price) {
			history := TestPriceHistory{
				TestId:    id,
				OldPrice:  test.Price,
				NewPrice:  input.Price,
				ChangedBy: userId,
			}
			if err := tx.Create(&history).Error; err != nil {
				return err
			}
		}
		return tx.Model(&test).Updates(map[string]interface{}{
			"Name":      input.Name,
			"SectionId": input.SectionId,
			"Price":     input.Price,
		}).Error
	})
	if err != nil {
		return nil, err
	}

	return test, nil
}

func DeleteLabTest(ctx context.Context, id int) (*LabTest, error) {

	test, err := utils.FetchModel[LabTest](ctx, id)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	var count int64
	if err := db.WithContext(ctx).Model(&LabResult{}).
		Where("test_id = ?", id).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.New("test has recorded results")
	}

	if err := db.WithContext(ctx).Delete(&test).Error; err != nil {
		return nil, err
	}

	return test, nil
}

func GetLabTest(ctx context.Context, id int) (*LabTest, error) {
	return utils.FetchModel[LabTest](ctx, id, "Section")
}

func ListLabTests(ctx context.Context, sectionId *int) ([]*LabTest, error) {
	var tests []*LabTest
	db := config.GetDB()
	dbCtx := db.WithContext(ctx).Preload("Section")
	if sectionId != nil && *sectionId != 0 {
		dbCtx = dbCtx.Where("section_id = ?", *sectionId)
	}
	if err := dbCtx.Order("name ASC").Find(&tests).Error; err != nil {
		return nil, err
	}
	return tests, nil
}

func ListTestPriceHistory(ctx context.Context, testId int) ([]*TestPriceHistory, error) {
	if err := utils.ValidateResourceId[LabTest](ctx, testId); err != nil {
		return nil, err
	}
	var history []*TestPriceHistory
	db := config.GetDB()
	if err := db.WithContext(ctx).Where("test_id = ?", testId).
		Order("changed_at DESC").Find(&history).Error; err != nil {
		return nil, err
	}
	return history, nil
}
