package model

import (
	"time"
)

// Transaction represents the database model for payment transactions
type Transaction struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement"`
	Code        string    `gorm:"uniqueIndex;not null;size:64"`
	PayerID     uint64    `gorm:"not null;index"`
	StudentID   string    `gorm:"not null;size:32;index"`
	Amount      int64     `gorm:"not null"`
	Status      string    `gorm:"not null;size:20"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
	CompletedAt *time.Time
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
