package payment

import (
	"strings"

	"github.com/amirhossein-jamali/tuition-payment/internal/domain/entity"
	errs "github.com/amirhossein-jamali/tuition-payment/internal/domain/error"
)

// maxStudentIDLength matches the students primary key column
const maxStudentIDLength = 32

// ValidateStudentID rejects empty or oversized student ids
func ValidateStudentID(studentID string) error {
	studentID = strings.TrimSpace(studentID)
	if studentID == "" {
		return errs.ErrInvalidStudentID
	}
	if len(studentID) > maxStudentIDLength {
		return errs.NewValidationError("studentId", "too long")
	}
	return nil
}

// ValidateTransactionID rejects the zero id
func ValidateTransactionID(transactionID uint64) error {
	if transactionID == 0 {
		return errs.ErrInvalidTransactionID
	}
	return nil
}

// ValidateOTPCode accepts exactly six ASCII digits
func ValidateOTPCode(code string) error {
	if len(code) != entity.OTPLength {
		return errs.ErrInvalidOTPFormat
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return errs.ErrInvalidOTPFormat
		}
	}
	return nil
}
