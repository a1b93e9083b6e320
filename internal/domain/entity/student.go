package entity

import (
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/tuition-payment/internal/domain/error"
)

// Student represents a student whose tuition can be paid by any payer
type Student struct {
	StudentID     string
	FullName      string
	tuitionAmount int64 // Minor units
	IsPaid        bool  // Flips exactly once, when a payment completes
	AcademicYear  string
	Semester      string
	DueDate       *time.Time
}

// NewStudent creates a student with the given tuition amount
func NewStudent(studentID, fullName, tuition string) (*Student, error) {
	studentID = strings.TrimSpace(studentID)
	if studentID == "" {
		return nil, errs.ErrInvalidStudentID
	}

	amount, err := ValidateAndConvertAmount(tuition)
	if err != nil {
		return nil, err
	}

	return &Student{
		StudentID:     studentID,
		FullName:      fullName,
		tuitionAmount: amount,
	}, nil
}

// RestoreStudent rebuilds a student from persisted state
func RestoreStudent(studentID, fullName string, tuitionInCents int64, isPaid bool) *Student {
	return &Student{
		StudentID:     studentID,
		FullName:      fullName,
		tuitionAmount: tuitionInCents,
		IsPaid:        isPaid,
	}
}

// TuitionAmount returns the tuition in minor units
func (s *Student) TuitionAmount() int64 {
	return s.tuitionAmount
}

// GetTuitionAmount returns the tuition as a string with 2 decimal places
func (s *Student) GetTuitionAmount() string {
	return AmountInCentsToString(s.tuitionAmount)
}

// MarkPaid records that the tuition has been settled
func (s *Student) MarkPaid() error {
	if s.IsPaid {
		return errs.ErrAlreadyPaid
	}
	s.IsPaid = true
	return nil
}
