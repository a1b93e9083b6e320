package lock

import (
	"context"
	"fmt"
	"time"

	"github.com/amirhossein-jamali/tuition-payment/internal/domain/entity"
	errs "github.com/amirhossein-jamali/tuition-payment/internal/domain/error"
	coreport "github.com/amirhossein-jamali/tuition-payment/internal/domain/port/core"
	"github.com/amirhossein-jamali/tuition-payment/internal/domain/port/persistence"
)

// DefaultTTL is how long an initiate reservation stays in force
const DefaultTTL = 10 * time.Minute

// Manager grants and checks time-bounded reservations on students and payers.
// Every call uses the repositories bound to ctx, so a caller that opened a unit
// of work gets its reads and writes inside that unit.
type Manager struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewManager creates a new lock manager
func NewManager(uow persistence.UnitOfWork, timeProvider coreport.TimeProvider, logger coreport.Logger) *Manager {
	return &Manager{
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Acquire reserves the resource for transactionID until now+ttl.
// It fails with a LockConflictError while someone else holds an unexpired lock.
func (m *Manager) Acquire(
	ctx context.Context,
	resourceType entity.ResourceType,
	resourceID string,
	transactionID uint64,
	ttl time.Duration,
) error {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	now := m.timeProvider.Now()
	lock := &entity.TransactionLock{
		ResourceType:  resourceType,
		ResourceID:    resourceID,
		TransactionID: transactionID,
		LockedAt:      now,
		ExpiresAt:     now.Add(ttl),
	}

	repo := m.uow.GetLockRepository(ctx)
	acquired, err := repo.TryAcquire(ctx, lock, now)
	if err != nil {
		return fmt.Errorf("failed to acquire lock on %s:%s: %w", resourceType, resourceID, err)
	}

	if !acquired {
		holder, findErr := repo.FindActive(ctx, resourceType, resourceID, now)
		if findErr != nil {
			m.logger.Warn("Failed to look up lock holder", map[string]any{
				"resource_type": string(resourceType),
				"resource_id":   resourceID,
				"error":         findErr.Error(),
			})
		}

		var holderID uint64
		if holder != nil {
			holderID = holder.TransactionID
		}

		m.logger.Info("Lock conflict", map[string]any{
			"resource_type":  string(resourceType),
			"resource_id":    resourceID,
			"transaction_id": transactionID,
			"holder_id":      holderID,
		})
		return errs.NewLockConflictError(string(resourceType), resourceID, holderID)
	}

	m.logger.Debug("Lock acquired", map[string]any{
		"resource_type":  string(resourceType),
		"resource_id":    resourceID,
		"transaction_id": transactionID,
		"expires_at":     lock.ExpiresAt,
	})
	return nil
}

// AcquirePair reserves the student's tuition and then the payer's account.
// The fixed order keeps two initiates from waiting on each other.
func (m *Manager) AcquirePair(ctx context.Context, studentID string, userID, transactionID uint64, ttl time.Duration) error {
	if err := m.Acquire(ctx, entity.ResourceStudentTuition, studentID, transactionID, ttl); err != nil {
		return err
	}
	return m.Acquire(ctx, entity.ResourceUserAccount, entity.UserResourceID(userID), transactionID, ttl)
}

// Release deletes every lock owned by the transaction. Releasing twice is fine.
func (m *Manager) Release(ctx context.Context, transactionID uint64) (int64, error) {
	released, err := m.uow.GetLockRepository(ctx).ReleaseByTransaction(ctx, transactionID)
	if err != nil {
		return 0, fmt.Errorf("failed to release locks for transaction %d: %w", transactionID, err)
	}

	m.logger.Debug("Locks released", map[string]any{
		"transaction_id": transactionID,
		"released":       released,
	})
	return released, nil
}

// IsHeld reports whether transactionID owns an unexpired lock on the resource
func (m *Manager) IsHeld(
	ctx context.Context,
	resourceType entity.ResourceType,
	resourceID string,
	transactionID uint64,
) (bool, error) {
	lock, err := m.ActiveForResource(ctx, resourceType, resourceID)
	if err != nil {
		return false, err
	}
	return lock != nil && lock.OwnedBy(transactionID), nil
}

// HoldsPair reports whether the transaction still owns both of its initiate locks
func (m *Manager) HoldsPair(ctx context.Context, studentID string, userID, transactionID uint64) (bool, error) {
	held, err := m.IsHeld(ctx, entity.ResourceStudentTuition, studentID, transactionID)
	if err != nil || !held {
		return false, err
	}
	return m.IsHeld(ctx, entity.ResourceUserAccount, entity.UserResourceID(userID), transactionID)
}

// ActiveForResource returns the unexpired lock on the resource, or nil
func (m *Manager) ActiveForResource(ctx context.Context, resourceType entity.ResourceType, resourceID string) (*entity.TransactionLock, error) {
	lock, err := m.uow.GetLockRepository(ctx).FindActive(ctx, resourceType, resourceID, m.timeProvider.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to read lock on %s:%s: %w", resourceType, resourceID, err)
	}
	return lock, nil
}

// ListActive returns every unexpired lock
func (m *Manager) ListActive(ctx context.Context) ([]*entity.TransactionLock, error) {
	locks, err := m.uow.GetLockRepository(ctx).ListActive(ctx, m.timeProvider.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to list active locks: %w", err)
	}
	return locks, nil
}

// Sweep purges rows whose expiry has passed and returns how many were removed.
// Expired rows never block anyone, so this only bounds table growth.
func (m *Manager) Sweep(ctx context.Context) (int64, error) {
	removed, err := m.uow.GetLockRepository(ctx).DeleteExpired(ctx, m.timeProvider.Now())
	if err != nil {
		return 0, fmt.Errorf("failed to sweep expired locks: %w", err)
	}

	if removed > 0 {
		m.logger.Info("Expired locks swept", map[string]any{"removed": removed})
	}
	return removed, nil
}
