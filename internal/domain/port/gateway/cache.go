package gateway

import (
	"context"
	"time"
)

// OTPCache is a best-effort mirror of the active OTP per transaction.
// It is never the source of truth.
type OTPCache interface {
	Set(ctx context.Context, transactionID uint64, code string, ttl time.Duration) error
	// Get returns the cached code and whether an entry existed
	Get(ctx context.Context, transactionID uint64) (string, bool, error)
	Delete(ctx context.Context, transactionID uint64) error
}
