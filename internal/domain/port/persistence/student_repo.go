package persistence

import (
	"context"

	"github.com/amirhossein-jamali/tuition-payment/internal/domain/entity"
)

// StudentRepository defines methods to read and settle student tuition
type StudentRepository interface {
	// GetByID retrieves a student by student ID
	//
	// Possible errors:
	// - ErrStudentNotFound: If the student doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, studentID string) (*entity.Student, error)

	// GetByIDForUpdate retrieves a student and holds a row lock until the unit ends
	GetByIDForUpdate(ctx context.Context, studentID string) (*entity.Student, error)

	// Create stores a new student
	//
	// Possible errors:
	// - ErrDuplicateRecord: If the student already exists
	Create(ctx context.Context, student *entity.Student) error

	// MarkPaid flips is_paid from false to true
	//
	// Possible errors:
	// - ErrAlreadyPaid: If the tuition was already settled
	// - ErrStudentNotFound: If the student doesn't exist
	MarkPaid(ctx context.Context, studentID string) error
}
