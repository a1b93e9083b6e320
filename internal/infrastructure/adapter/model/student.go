package model

import (
	"time"
)

// Student represents the database model for students and their tuition
type Student struct {
	StudentID     string `gorm:"primaryKey;size:32"`
	FullName      string `gorm:"size:255;not null"`
	TuitionAmount int64  `gorm:"not null"` // Minor units
	IsPaid        bool   `gorm:"not null;default:false"`
	AcademicYear  string `gorm:"size:16"`
	Semester      string `gorm:"size:16"`
	DueDate       *time.Time
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

// TableName specifies the table name for Student
func (Student) TableName() string {
	return "students"
}
