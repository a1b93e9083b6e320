package repository

import (
	"context"
	"errors"
	"time"

	"github.com/amirhossein-jamali/tuition-payment/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/tuition-payment/internal/domain/port/core"
	"github.com/amirhossein-jamali/tuition-payment/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// acquireLockSQL inserts a lock or takes over a row that has already expired.
// An unexpired row makes the WHERE false, so nothing is written and RowsAffected is 0.
const acquireLockSQL = `
INSERT INTO transaction_locks (resource_type, resource_id, transaction_id, locked_at, expires_at, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (resource_type, resource_id) DO UPDATE
SET transaction_id = EXCLUDED.transaction_id,
    locked_at = EXCLUDED.locked_at,
    expires_at = EXCLUDED.expires_at,
    updated_at = EXCLUDED.updated_at
WHERE transaction_locks.expires_at <= ?`

// LockRepository stores transaction locks using GORM
type LockRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewLockRepository creates a new LockRepository instance
func NewLockRepository(db *gorm.DB, logger coreport.Logger) *LockRepository {
	return &LockRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *LockRepository) modelToEntity(m *model.TransactionLock) *entity.TransactionLock {
	return &entity.TransactionLock{
		ResourceType:  entity.ResourceType(m.ResourceType),
		ResourceID:    m.ResourceID,
		TransactionID: m.TransactionID,
		LockedAt:      m.LockedAt,
		ExpiresAt:     m.ExpiresAt,
	}
}

func (r *LockRepository) handleDatabaseError(operation string, err error, fields map[string]any) error {
	return handleDatabaseError(r.logger, r.errorClassifier, operation, err, nil, fields)
}

// TryAcquire writes the lock unless an unexpired one exists for the same resource
func (r *LockRepository) TryAcquire(ctx context.Context, lock *entity.TransactionLock, now time.Time) (bool, error) {
	fields := map[string]any{
		"resource_type":  string(lock.ResourceType),
		"resource_id":    lock.ResourceID,
		"transaction_id": lock.TransactionID,
	}
	r.logger.Debug("Attempting to acquire lock", fields)

	result := r.db.WithContext(ctx).Exec(acquireLockSQL,
		string(lock.ResourceType), lock.ResourceID, lock.TransactionID,
		lock.LockedAt, lock.ExpiresAt, now, now, // INSERT values
		now, // takeover condition
	)

	if result.Error != nil {
		// A racing insert that slipped past ON CONFLICT still means someone else owns it
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			r.logger.Warn("Resource already locked", fields)
			return false, nil
		}
		return false, r.handleDatabaseError("acquiring lock", result.Error, fields)
	}

	if result.RowsAffected == 0 {
		r.logger.Debug("Resource held by an unexpired lock", fields)
		return false, nil
	}

	r.logger.Debug("Lock acquired", fields)
	return true, nil
}

// ReleaseByTransaction deletes every lock owned by the transaction
func (r *LockRepository) ReleaseByTransaction(ctx context.Context, transactionID uint64) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("transaction_id = ?", transactionID).
		Delete(&model.TransactionLock{})

	if result.Error != nil {
		return 0, r.handleDatabaseError("releasing locks", result.Error, map[string]any{
			"transaction_id": transactionID,
		})
	}

	if result.RowsAffected > 0 {
		r.logger.Debug("Locks released", map[string]any{
			"transaction_id": transactionID,
			"released":       result.RowsAffected,
		})
	}
	return result.RowsAffected, nil
}

// FindActive returns the unexpired lock on the resource, or nil
func (r *LockRepository) FindActive(ctx context.Context, resourceType entity.ResourceType, resourceID string, now time.Time) (*entity.TransactionLock, error) {
	var lockModel model.TransactionLock
	err := r.db.WithContext(ctx).
		Where("resource_type = ? AND resource_id = ? AND expires_at > ?", string(resourceType), resourceID, now).
		First(&lockModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, r.handleDatabaseError("finding active lock", err, map[string]any{
			"resource_type": string(resourceType),
			"resource_id":   resourceID,
		})
	}
	return r.modelToEntity(&lockModel), nil
}

// ListActive returns all unexpired locks ordered by expiry
func (r *LockRepository) ListActive(ctx context.Context, now time.Time) ([]*entity.TransactionLock, error) {
	var lockModels []model.TransactionLock
	if err := r.db.WithContext(ctx).
		Where("expires_at > ?", now).
		Order("expires_at ASC").
		Find(&lockModels).Error; err != nil {
		return nil, r.handleDatabaseError("listing active locks", err, nil)
	}

	locks := make([]*entity.TransactionLock, 0, len(lockModels))
	for i := range lockModels {
		locks = append(locks, r.modelToEntity(&lockModels[i]))
	}
	return locks, nil
}

// DeleteExpired removes all rows whose expiry is at or before now
func (r *LockRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Where("expires_at <= ?", now).Delete(&model.TransactionLock{})
	if result.Error != nil {
		return 0, r.handleDatabaseError("cleaning up expired locks", result.Error, map[string]any{
			"current_time": now,
		})
	}
	return result.RowsAffected, nil
}
