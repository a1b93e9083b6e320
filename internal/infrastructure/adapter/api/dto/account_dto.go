package dto

import "time"

// ProfileResponse is the caller's account summary
type ProfileResponse struct {
	UserID   uint64 `json:"userId"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Phone    string `json:"phone,omitempty"`
	Email    string `json:"email"`
	Balance  string `json:"balance"`
}

// StudentResponse describes a student's tuition
type StudentResponse struct {
	StudentID     string     `json:"studentId"`
	StudentName   string     `json:"studentName"`
	TuitionAmount string     `json:"tuitionAmount"`
	IsPaid        bool       `json:"isPaid"`
	AcademicYear  string     `json:"academicYear,omitempty"`
	Semester      string     `json:"semester,omitempty"`
	DueDate       *time.Time `json:"dueDate,omitempty"`
}
