package persistence

import (
	"context"
)

// UnitOfWork defines an interface for coordinating transaction operations
// across multiple repositories to maintain data consistency
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// WithinTransaction runs fn inside one transaction. The transaction is committed
	// when fn returns nil and rolled back on error or panic.
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// GetUserRepository returns a user repository bound to the current transaction
	GetUserRepository(ctx context.Context) UserRepository

	// GetStudentRepository returns a student repository bound to the current transaction
	GetStudentRepository(ctx context.Context) StudentRepository

	// GetTransactionRepository returns a transaction repository bound to the current transaction
	GetTransactionRepository(ctx context.Context) TransactionRepository

	// GetLockRepository returns a lock repository bound to the current transaction
	GetLockRepository(ctx context.Context) LockRepository

	// GetOTPRepository returns an OTP repository bound to the current transaction
	GetOTPRepository(ctx context.Context) OTPRepository

	// GetHistoryRepository returns a history repository bound to the current transaction
	GetHistoryRepository(ctx context.Context) HistoryRepository
}
