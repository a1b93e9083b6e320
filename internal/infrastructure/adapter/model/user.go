package model

import (
	"time"
)

// User represents the database model for payer accounts
type User struct {
	ID        uint64    `gorm:"primaryKey"`
	Username  string    `gorm:"size:100;uniqueIndex"`
	FullName  string    `gorm:"size:255;not null"`
	Phone     string    `gorm:"size:32"`
	Email     string    `gorm:"size:255;not null"`
	Balance   int64     `gorm:"not null"` // Balance in minor units
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
