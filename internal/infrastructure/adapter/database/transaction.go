package database

import (
	"context"
	"fmt"
	"strings"

	coreport "github.com/amirhossein-jamali/tuition-payment/internal/domain/port/core"
	"github.com/amirhossein-jamali/tuition-payment/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/tuition-payment/internal/infrastructure/adapter/repository"
	"gorm.io/gorm"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

// Context keys
const txKey contextKey = "tx"

// UnitOfWork implements the unit of work pattern for database transactions
type UnitOfWork struct {
	db             *gorm.DB
	logger         coreport.Logger
	timeProvider   coreport.TimeProvider
	isolationLevel string
	retryConfig    RetryConfig
	errorMapper    *ErrorMapper
}

// UnitOfWorkOption customizes a UnitOfWork
type UnitOfWorkOption func(*UnitOfWork)

// WithIsolationLevel sets the isolation applied at Begin, e.g. "READ COMMITTED".
// An empty level leaves the driver default in place.
func WithIsolationLevel(level string) UnitOfWorkOption {
	return func(u *UnitOfWork) {
		u.isolationLevel = strings.TrimSpace(level)
	}
}

// WithRetryConfig overrides the retry policy used by WithinTransaction
func WithRetryConfig(config RetryConfig) UnitOfWorkOption {
	return func(u *UnitOfWork) {
		u.retryConfig = config
	}
}

// NewUnitOfWork creates a new UnitOfWork instance
func NewUnitOfWork(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider, opts ...UnitOfWorkOption) persistence.UnitOfWork {
	u := &UnitOfWork{
		db:           db,
		logger:       logger,
		timeProvider: timeProvider,
		retryConfig:  DefaultRetryConfig(),
		errorMapper:  NewErrorMapper(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Begin starts a new database transaction
func (u *UnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	u.logger.Debug("Beginning database transaction", map[string]any{
		"isolation": u.isolationLevel,
	})

	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		u.logger.Error("Failed to begin transaction", map[string]any{"error": tx.Error.Error()})
		return ctx, fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	if u.isolationLevel != "" {
		if err := tx.Exec("SET TRANSACTION ISOLATION LEVEL " + u.isolationLevel).Error; err != nil {
			tx.Rollback()
			u.logger.Error("Failed to set transaction isolation level", map[string]any{"error": err.Error()})
			return ctx, fmt.Errorf("failed to set transaction isolation level: %w", err)
		}
	}

	return context.WithValue(ctx, txKey, tx), nil
}

// Commit commits the current transaction
func (u *UnitOfWork) Commit(ctx context.Context) error {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if !ok || tx == nil {
		return fmt.Errorf("no transaction found in context")
	}

	u.logger.Debug("Committing database transaction", nil)
	if err := tx.Commit().Error; err != nil {
		u.logger.Error("Failed to commit transaction", map[string]any{"error": err.Error()})
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// Rollback rolls back the current transaction
func (u *UnitOfWork) Rollback(ctx context.Context) error {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if !ok || tx == nil {
		return fmt.Errorf("no transaction found in context")
	}

	u.logger.Debug("Rolling back database transaction", nil)

	err := tx.Rollback().Error

	// Already finished is not a failure from the caller's point of view
	if err != nil && strings.Contains(err.Error(), "already been committed or rolled back") {
		u.logger.Warn("Transaction has already been committed or rolled back", map[string]any{
			"error": err.Error(),
		})
		return nil
	}

	if err != nil {
		u.logger.Error("Failed to rollback transaction", map[string]any{
			"error": err.Error(),
		})
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}

	return nil
}

// WithinTransaction runs fn inside one database transaction, retrying the whole
// attempt on transient failures. A ctx that already carries a transaction is reused.
func (u *UnitOfWork) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok && tx != nil {
		return fn(ctx)
	}

	err := RetryOnTransientError(ctx, u.retryConfig, func() error {
		return u.runOnce(ctx, fn)
	}, u.errorMapper, u.logger)

	return u.errorMapper.MapError(err, "unit of work")
}

// runOnce is a single begin/fn/commit attempt. Panics roll back and propagate.
func (u *UnitOfWork) runOnce(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	txCtx, err := u.Begin(ctx)
	if err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			_ = u.Rollback(txCtx)
			panic(r)
		}
	}()

	if err := fn(txCtx); err != nil {
		if rbErr := u.Rollback(txCtx); rbErr != nil {
			u.logger.Error("Rollback after failure did not complete", map[string]any{
				"error":          err.Error(),
				"rollback_error": rbErr.Error(),
			})
		}
		return err
	}

	return u.Commit(txCtx)
}

// GetUserRepository returns a user repository in the current transaction
func (u *UnitOfWork) GetUserRepository(ctx context.Context) persistence.UserRepository {
	return repository.NewUserRepository(u.getDbFromContext(ctx), u.timeProvider, u.logger)
}

// GetStudentRepository returns a student repository in the current transaction
func (u *UnitOfWork) GetStudentRepository(ctx context.Context) persistence.StudentRepository {
	return repository.NewStudentRepository(u.getDbFromContext(ctx), u.timeProvider, u.logger)
}

// GetTransactionRepository returns a transaction repository in the current transaction
func (u *UnitOfWork) GetTransactionRepository(ctx context.Context) persistence.TransactionRepository {
	return repository.NewTransactionRepository(u.getDbFromContext(ctx), u.logger)
}

// GetLockRepository returns a lock repository in the current transaction
func (u *UnitOfWork) GetLockRepository(ctx context.Context) persistence.LockRepository {
	return repository.NewLockRepository(u.getDbFromContext(ctx), u.logger)
}

// GetOTPRepository returns an OTP repository in the current transaction
func (u *UnitOfWork) GetOTPRepository(ctx context.Context) persistence.OTPRepository {
	return repository.NewOTPRepository(u.getDbFromContext(ctx), u.logger)
}

// GetHistoryRepository returns a history repository in the current transaction
func (u *UnitOfWork) GetHistoryRepository(ctx context.Context) persistence.HistoryRepository {
	return repository.NewHistoryRepository(u.getDbFromContext(ctx), u.logger)
}

// getDbFromContext retrieves the database instance from context
func (u *UnitOfWork) getDbFromContext(ctx context.Context) *gorm.DB {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if ok && tx != nil {
		return tx
	}
	return u.db.WithContext(ctx)
}
