package persistence

import (
	"context"

	"github.com/amirhossein-jamali/tuition-payment/internal/domain/entity"
)

// UserRepository defines essential methods to interact with payer accounts
type UserRepository interface {
	// GetByID retrieves a user by ID
	//
	// Possible errors:
	// - ErrUserNotFound: If user with specified ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.User, error)

	// GetByIDForUpdate retrieves a user and holds a row lock until the unit ends
	//
	// Possible errors:
	// - ErrUserNotFound: If user with specified ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByIDForUpdate(ctx context.Context, id uint64) (*entity.User, error)

	// Create creates a new user
	//
	// Possible errors:
	// - ErrDuplicateRecord: If user with same ID already exists
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, user *entity.User) error

	// UpdateBalance persists the user's current balance
	//
	// Possible errors:
	// - ErrUserNotFound: If user doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	UpdateBalance(ctx context.Context, user *entity.User) error
}
