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

type Transaction struct {
	ID                  int                 `gorm:"primary_key" json:"id"`
	PatientId           int                 `gorm:"index;not null" json:"patient_id" binding:"required"`
	Patient             *Patient            `json:"patient,omitempty"`
	ORNumber            string              `gorm:"uniqueIndex;size:50;not null" json:"or_number"`
	TransactionDateTime time.Time           `gorm:"index;not null" json:"transaction_date_time"`
	ClientType          string              `gorm:"size:50" json:"client_type"`
	Status              TransactionStatus   `gorm:"size:20;not null;default:pending" json:"status"`
	Details             []TransactionDetail `json:"details,omitempty"`
	CreatedAt           time.Time           `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time           `gorm:"autoUpdateTime" json:"updated_at"`
}

// TransactionDetail snapshots the test price at transaction time so later
// catalog price changes never restate past revenue.
type TransactionDetail struct {
	ID            int             `gorm:"primary_key" json:"id"`
	TransactionId int             `gorm:"index;not null" json:"transaction_id"`
	TestId        int             `gorm:"index;not null" json:"test_id"`
	Test          *LabTest        `gorm:"foreignKey:TestId" json:"test,omitempty"`
	UnitPrice     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"unit_price"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

type NewTransaction struct {
	PatientId           int        `json:"patient_id" binding:"required"`
	ORNumber            string     `json:"or_number" binding:"required"`
	TransactionDateTime *time.Time `json:"transaction_date_time"`
	ClientType          string     `json:"client_type"`
	TestIds             []int      `json:"test_ids" binding:"required,min=1"`
}

func (input *NewTransaction) validate(ctx context.Context) error {
	if err := utils.ValidateResourceId[Patient](ctx, input.PatientId); err != nil {
		return errors.New("patient not found")
	}
	if err := utils.ValidateUnique[Transaction](ctx, "or_number", input.ORNumber, 0); err != nil {
		return err
	}
	return nil
}

func CreateTransaction(ctx context.Context, input *NewTransaction) (*Transaction, error) {

	if err := input.validate(ctx); err != nil {
		return nil, err
	}

	transactionDateTime := time.Now()
	if input.TransactionDateTime != nil {
		transactionDateTime = *input.TransactionDateTime
	}

	transaction := Transaction{
		PatientId:           input.PatientId,
		ORNumber:            input.ORNumber,
		TransactionDateTime: transactionDateTime,
		ClientType:          input.ClientType,
		Status:              TransactionStatusPending,
	}

	db := config.GetDB()
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&transaction).Error; err != nil {
			return err
		}
		for _, testId := range input.TestIds {
			var test LabTest
			if err := tx.First(&test, testId).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return errors.New("test not found")
				}
				return err
			}
			detail := TransactionDetail{
				TransactionId: transaction.ID,
				TestId:        test.ID,
				UnitPrice:     test.Price,
			}
			if err := tx.Create(&detail).Error; err != nil {
				return err
			}
			transaction.Details = append(transaction.Details, detail)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &transaction, nil
}

func (t *Transaction) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, d := range t.Details {
		total = total.Add(d.UnitPrice)
	}
	return total
}

func SetTransactionStatus(ctx context.Context, id int, status TransactionStatus) (*Transaction, error) {

	transaction, err := utils.FetchModel[Transaction](ctx, id, "Details")
	if err != nil {
		return nil, err
	}

	if transaction.Status == TransactionStatusCancelled {
		return nil, errors.New("transaction is cancelled")
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Model(&transaction).Update("Status", status).Error; err != nil {
		return nil, err
	}

	return transaction, nil
}

func GetTransaction(ctx context.Context, id int) (*Transaction, error) {
	return utils.FetchModel[Transaction](ctx, id, "Patient", "Details", "Details.Test")
}

func ListTransactions(ctx context.Context, patientId *int) ([]*Transaction, error) {
	var transactions []*Transaction
	db := config.GetDB()
	dbCtx := db.WithContext(ctx).Preload("Patient").Preload("Details").Preload("Details.Test")
	if patientId != nil && *patientId != 0 {
		dbCtx = dbCtx.Where("patient_id = ?", *patientId)
	}
	if err := dbCtx.Order("transaction_date_time DESC").Find(&transactions).Error; err != nil {
		return nil, err
	}
	return transactions, nil
}
