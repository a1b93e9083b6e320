package persistence

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/tuition-payment/internal/domain/entity"
)

// OTPRepository is the durable, authoritative store for OTP codes
type OTPRepository interface {
	// Create stores a newly issued code
	Create(ctx context.Context, otp *entity.OTPCode) error

	// FindActiveForUpdate returns the newest unused, unexpired code for the transaction
	// with a row lock held, or nil when there is none
	FindActiveForUpdate(ctx context.Context, transactionID uint64, now time.Time) (*entity.OTPCode, error)

	// FindLatest returns the newest code for the transaction regardless of state, or nil
	FindLatest(ctx context.Context, transactionID uint64) (*entity.OTPCode, error)

	// IncrementAttempts adds one to the attempts counter
	IncrementAttempts(ctx context.Context, id uint64) error

	// MarkUsed consumes the code
	MarkUsed(ctx context.Context, id uint64) error
}
