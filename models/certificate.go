package models

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mmlabtech/lims_backend/config"
	"github.com/mmlabtech/lims_backend/utils"
	"gorm.io/gorm"
)

type Certificate struct {
	ID               int               `gorm:"primary_key" json:"id"`
	Number           *string           `gorm:"uniqueIndex;size:50" json:"number"`
	Type             string            `gorm:"size:100;not null" json:"type" binding:"required"`
	PatientId        int               `gorm:"index;not null" json:"patient_id" binding:"required"`
	Patient          *Patient          `json:"patient,omitempty"`
	IssuedById       *int              `gorm:"index" json:"issued_by_id"`
	IssuedBy         *User             `gorm:"foreignKey:IssuedById" json:"issued_by,omitempty"`
	IssueDate        *DateString       `gorm:"type:date;index" json:"issue_date"`
	Status           CertificateStatus `gorm:"size:20;not null;default:draft" json:"status"`
	VerificationCode *string           `gorm:"uniqueIndex;size:40" json:"verification_code"`
	CreatedAt        time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time         `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewCertificate struct {
	Type      string `json:"type" binding:"required"`
	PatientId int    `json:"patient_id" binding:"required"`
}

func CreateCertificate(ctx context.Context, input *NewCertificate) (*Certificate, error) {

	if err := utils.ValidateResourceId[Patient](ctx, input.PatientId); err != nil {
		return nil, errors.New("patient not found")
	}

	certificate := Certificate{
		Type:      input.Type,
		PatientId: input.PatientId,
		Status:    CertificateStatusDraft,
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Create(&certificate).Error; err != nil {
		return nil, err
	}

	return &certificate, nil
}

// IssueCertificate moves a draft to issued: assigns the CERT-YYYY-NNNN
// number, the issue date, the issuer and a verification code.
func IssueCertificate(ctx context.Context, id int) (*Certificate, error) {

	certificate, err := utils.FetchModel[Certificate](ctx, id)
	if err != nil {
		return nil, err
	}
	if certificate.Status != CertificateStatusDraft {
		return nil, errors.New("only draft certificates can be issued")
	}

	userId, ok := utils.GetUserIdFromContext(ctx)
	if !ok {
		return nil, errors.New("user id is required")
	}

	now := time.Now()
	issueDate := DateString(now)
	code := uuid.NewString()

	db := config.GetDB()
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		number, err := nextCertificateNumber(tx, now.Year())
		if err != nil {
			return err
		}
		return tx.Model(&certificate).Updates(map[string]interface{}{
			"Number":           number,
			"IssuedById":       userId,
			"IssueDate":        &issueDate,
			"Status":           CertificateStatusIssued,
			"VerificationCode": code,
		}).Error
	})
	if err != nil {
		return nil, err
	}

	return certificate, nil
}

// nextCertificateNumber yields CERT-YYYY-NNNN with a per-year sequence.
func nextCertificateNumber(tx *gorm.DB, year int) (string, error) {
	prefix := fmt.Sprintf("CERT-%d-", year)
	var count int64
	if err := tx.Model(&Certificate{}).
		Where("number LIKE ?", prefix+"%").Count(&count).Error; err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%04d", prefix, count+1), nil
}

func RevokeCertificate(ctx context.Context, id int) (*Certificate, error) {

	certificate, err := utils.FetchModel[Certificate](ctx, id)
	if err != nil {
		return nil, err
	}
	if certificate.Status != CertificateStatusIssued {
		return nil, errors.New("only issued certificates can be revoked")
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Model(&certificate).
		Update("Status", CertificateStatusRevoked).Error; err != nil {
		return nil, err
	}

	return certificate, nil
}

// GetCertificateByVerificationCode is the public verification lookup.
func GetCertificateByVerificationCode(ctx context.Context, code string) (*Certificate, error) {
	var certificate Certificate
	db := config.GetDB()
	err := db.WithContext(ctx).Preload("Patient").Preload("IssuedBy").
		Where("verification_code = ?", code).First(&certificate).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrorRecordNotFound
		}
		return nil, err
	}
	return &certificate, nil
}

func ListCertificates(ctx context.Context, patientId *int) ([]*Certificate, error) {
	var certificates []*Certificate
	db := config.GetDB()
	dbCtx := db.WithContext(ctx).Preload("Patient").Preload("IssuedBy")
	if patientId != nil && *patientId != 0 {
		dbCtx = dbCtx.Where("patient_id = ?", *patientId)
	}
	if err := dbCtx.Order("created_at DESC").Find(&certificates).Error; err != nil {
		return nil, err
	}
	return certificates, nil
}
