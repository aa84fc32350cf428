package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"
)

type EquipmentStatus string

const (
	EquipmentStatusOperational      EquipmentStatus = "operational"
	EquipmentStatusUnderMaintenance EquipmentStatus = "under_maintenance"
	EquipmentStatusDecommissioned   EquipmentStatus = "decommissioned"
)

func (t *EquipmentStatus) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return errors.New("equipment status must be string")
	}
	switch str {
	case "operational":
		*t = EquipmentStatusOperational
	case "under_maintenance":
		*t = EquipmentStatusUnderMaintenance
	case "decommissioned":
		*t = EquipmentStatusDecommissioned
	default:
		return errors.New("invalid equipment status")
	}
	return nil
}

type CalibrationStatus string

const (
	CalibrationStatusPassed    CalibrationStatus = "passed"
	CalibrationStatusFailed    CalibrationStatus = "failed"
	CalibrationStatusScheduled CalibrationStatus = "scheduled"
)

func (t *CalibrationStatus) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return errors.New("calibration status must be string")
	}
	switch str {
	case "passed":
		*t = CalibrationStatusPassed
	case "failed":
		*t = CalibrationStatusFailed
	case "scheduled":
		*t = CalibrationStatusScheduled
	default:
		return errors.New("invalid calibration status")
	}
	return nil
}

type LabResultStatus string

const (
	LabResultStatusDraft   LabResultStatus = "draft"
	LabResultStatusFinal   LabResultStatus = "final"
	LabResultStatusRevised LabResultStatus = "revised"
)

func (t *LabResultStatus) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return errors.New("lab result status must be string")
	}
	switch str {
	case "draft":
		*t = LabResultStatusDraft
	case "final":
		*t = LabResultStatusFinal
	case "revised":
		*t = LabResultStatusRevised
	default:
		return errors.New("invalid lab result status")
	}
	return nil
}

type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusPaid      TransactionStatus = "paid"
	TransactionStatusCancelled TransactionStatus = "cancelled"
)

func (t *TransactionStatus) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return errors.New("transaction status must be string")
	}
	switch str {
	case "pending":
		*t = TransactionStatusPending
	case "paid":
		*t = TransactionStatusPaid
	case "cancelled":
		*t = TransactionStatusCancelled
	default:
		return errors.New("invalid transaction status")
	}
	return nil
}

type CertificateStatus string

const (
	CertificateStatusDraft   CertificateStatus = "draft"
	CertificateStatusIssued  CertificateStatus = "issued"
	CertificateStatusRevoked CertificateStatus = "revoked"
)

type UserRole string

const (
	UserRoleAdmin      UserRole = "admin"
	UserRoleTechnician UserRole = "technician"
	UserRoleCashier    UserRole = "cashier"
)

func (t *UserRole) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return errors.New("user role must be string")
	}
	switch str {
	case "admin":
		*t = UserRoleAdmin
	case "technician":
		*t = UserRoleTechnician
	case "cashier":
		*t = UserRoleCashier
	default:
		return errors.New("invalid user role")
	}
	return nil
}

// DateString is a calendar date scalar stored as a timestamp.
type DateString time.Time

func (t DateString) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(time.Time(t).Format("2006-01-02"))), nil
}

func (t *DateString) UnmarshalJSON(b []byte) error {
	str, err := strconv.Unquote(string(b))
	if err != nil {
		return errors.New("date must be string")
	}
	return t.ParseDate(str)
}

// ParseDate accepts "2006-01-02" or "2006-01-02T15:04:05".
func (t *DateString) ParseDate(str string) error {
	parsed, err := time.Parse("2006-01-02", str)
	if err != nil {
		parsed, err = time.Parse("2006-01-02T15:04:05", str)
		if err != nil {
			return errors.New("error parsing date")
		}
	}
	*t = DateString(parsed)
	return nil
}

// StartOfDay truncates to 00:00:00 of the same calendar date.
func (t *DateString) StartOfDay() {
	if t == nil {
		return
	}
	d := time.Time(*t)
	*t = DateString(time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location()))
}

// EndOfDay extends to 23:59:59 of the same calendar date so that
// inclusive range filters cover timestamps recorded during the day.
func (t *DateString) EndOfDay() {
	if t == nil {
		return
	}
	d := time.Time(*t)
	*t = DateString(time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 59, 0, d.Location()))
}

// Value implements the driver.Valuer interface
func (t DateString) Value() (driver.Value, error) {
	return time.Time(t), nil
}

// Scan implements the sql.Scanner interface
func (t *DateString) Scan(value interface{}) error {
	if value == nil {
		*t = DateString(time.Time{})
		return nil
	}
	switch v := value.(type) {
	case time.Time:
		*t = DateString(v)
	default:
		return fmt.Errorf("cannot convert %T to DateString", value)
	}
	return nil
}

func (t *DateString) SetDefaultNowIfNil() *DateString {
	if t == nil {
		now := DateString(time.Now())
		return &now
	}
	return t
}
