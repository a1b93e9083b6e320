package model

import (
	"time"
)

// TransactionHistory represents an append-only ledger row
type TransactionHistory struct {
	ID              uint64    `gorm:"primaryKey;autoIncrement"`
	UserID          uint64    `gorm:"not null;index"`
	TransactionID   uint64    `gorm:"not null;uniqueIndex"`
	TransactionType string    `gorm:"not null;size:20"`
	Amount          int64     `gorm:"not null"`
	BalanceBefore   int64     `gorm:"not null"`
	BalanceAfter    int64     `gorm:"not null"`
	Description     string    `gorm:"type:text"`
	Status          string    `gorm:"not null;size:20"`
	CreatedAt       time.Time `gorm:"not null"`
}

// TableName specifies the table name for TransactionHistory
func (TransactionHistory) TableName() string {
	return "transaction_history"
}
