package persistence

import (
	"context"

	"github.com/amirhossein-jamali/tuition-payment/internal/domain/entity"
)

// TransactionRepository defines essential methods to interact with payment transactions
type TransactionRepository interface {
	// Create saves a new transaction and assigns its ID
	//
	// Possible errors:
	// - ErrDuplicateRecord: If the transaction code already exists
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, transaction *entity.Transaction) error

	// GetByID retrieves a transaction by ID
	//
	// Possible errors:
	// - ErrTransactionNotFound: If transaction with the given ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.Transaction, error)

	// GetByIDForUpdate retrieves a transaction and holds a row lock until the unit ends
	GetByIDForUpdate(ctx context.Context, id uint64) (*entity.Transaction, error)

	// UpdateStatus persists status, updated_at and completed_at
	//
	// Possible errors:
	// - ErrTransactionNotFound: If transaction with the given ID doesn't exist
	UpdateStatus(ctx context.Context, transaction *entity.Transaction) error
}
