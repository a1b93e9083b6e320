package model

import (
	"time"
)

// OTPCode represents the database model for one-time passcodes
type OTPCode struct {
	ID            uint64    `gorm:"primaryKey;autoIncrement"`
	TransactionID uint64    `gorm:"not null;index:idx_otp_codes_transaction_created,priority:1"`
	Code          string    `gorm:"column:otp_code;not null;size:6"`
	Email         string    `gorm:"not null;size:255"`
	ExpiresAt     time.Time `gorm:"not null"`
	Attempts      int       `gorm:"not null;default:0"`
	IsUsed        bool      `gorm:"not null;default:false"`
	CreatedAt     time.Time `gorm:"not null;index:idx_otp_codes_transaction_created,priority:2"`
}

// TableName specifies the table name for OTPCode
func (OTPCode) TableName() string {
	return "otp_codes"
}
