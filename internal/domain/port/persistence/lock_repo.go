package persistence

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/tuition-payment/internal/domain/entity"
)

// LockRepository stores transaction locks keyed by (resource_type, resource_id)
type LockRepository interface {
	// TryAcquire inserts the lock, or takes over a row that expired at or before now.
	// Returns false when an unexpired lock is held by someone else.
	TryAcquire(ctx context.Context, lock *entity.TransactionLock, now time.Time) (bool, error)

	// ReleaseByTransaction deletes every lock owned by the transaction
	ReleaseByTransaction(ctx context.Context, transactionID uint64) (int64, error)

	// FindActive returns the unexpired lock on the resource, or nil when there is none
	FindActive(ctx context.Context, resourceType entity.ResourceType, resourceID string, now time.Time) (*entity.TransactionLock, error)

	// ListActive returns all unexpired locks ordered by expiry
	ListActive(ctx context.Context, now time.Time) ([]*entity.TransactionLock, error)

	// DeleteExpired removes rows whose expiry is at or before now
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
