package model

import (
	"time"
)

// TransactionLock reserves one resource for one transaction until ExpiresAt.
// The unique index on (resource_type, resource_id) is what makes acquisition atomic.
type TransactionLock struct {
	ID            uint64    `gorm:"primaryKey;autoIncrement"`
	ResourceType  string    `gorm:"not null;size:32;uniqueIndex:idx_transaction_locks_resource"`
	ResourceID    string    `gorm:"not null;size:64;uniqueIndex:idx_transaction_locks_resource"`
	TransactionID uint64    `gorm:"not null;index"`
	LockedAt      time.Time `gorm:"not null"`
	ExpiresAt     time.Time `gorm:"not null;index"`
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

// TableName specifies the table name for TransactionLock
func (TransactionLock) TableName() string {
	return "transaction_locks"
}
