package database

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/tuition-payment/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/tuition-payment/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func fastRetry() RetryConfig {
	return RetryConfig{MaxRetries: 3, RetryInterval: time.Millisecond, MaxInterval: 5 * time.Millisecond}
}

func TestRetryOnTransientError(t *testing.T) {
	mapper := NewErrorMapper()

	t.Run("Gives up after max retries", func(t *testing.T) {
		log := coremocks.NewMockLogger(t)
		log.EXPECT().Warn("Transient database error, retrying operation", mock.Anything).Times(2)
		log.EXPECT().Error("All retry attempts failed", mock.Anything).Once()

		calls := 0
		err := RetryOnTransientError(context.Background(), fastRetry(), func() error {
			calls++
			return errors.New("deadlock detected")
		}, mapper, log)

		assert.EqualError(t, err, "deadlock detected")
		assert.Equal(t, 3, calls)
	})

	t.Run("Domain errors are not retried", func(t *testing.T) {
		log := coremocks.NewMockLogger(t)

		calls := 0
		err := RetryOnTransientError(context.Background(), fastRetry(), func() error {
			calls++
			return fmt.Errorf("confirm: %w", errs.ErrInsufficientBalance)
		}, mapper, log)

		assert.ErrorIs(t, err, errs.ErrInsufficientBalance)
		assert.Equal(t, 1, calls)
	})

	t.Run("Permanent errors are not retried", func(t *testing.T) {
		log := coremocks.NewMockLogger(t)

		calls := 0
		err := RetryOnTransientError(context.Background(), fastRetry(), func() error {
			calls++
			return errors.New("syntax error at or near SELECT")
		}, mapper, log)

		assert.Error(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("Cancelled context stops retrying", func(t *testing.T) {
		log := coremocks.NewMockLogger(t)
		log.EXPECT().Warn(mock.Anything, mock.Anything).Times(2)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := RetryOnTransientError(ctx, RetryConfig{MaxRetries: 5, RetryInterval: time.Second, MaxInterval: time.Second}, func() error {
			return errors.New("could not serialize access due to concurrent update")
		}, mapper, log)

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestCalculateBackoffWithJitter(t *testing.T) {
	config := RetryConfig{RetryInterval: 10 * time.Millisecond, MaxInterval: 50 * time.Millisecond}

	assert.Equal(t, 10*time.Millisecond, calculateBackoffWithJitter(0, config))
	assert.Equal(t, 40*time.Millisecond, calculateBackoffWithJitter(2, config))
	assert.Equal(t, 50*time.Millisecond, calculateBackoffWithJitter(3, config))
	assert.Equal(t, 50*time.Millisecond, calculateBackoffWithJitter(70, config))

	config.JitterFactor = 0.5
	for i := 0; i < 20; i++ {
		backoff := calculateBackoffWithJitter(1, config)
		assert.GreaterOrEqual(t, backoff, 20*time.Millisecond)
		assert.LessOrEqual(t, backoff, 30*time.Millisecond)
	}
}

func TestIsTransientError(t *testing.T) {
	assert.False(t, isTransientError(nil))
	assert.True(t, isTransientError(errors.New("ERROR: deadlock detected (SQLSTATE 40P01)")))
	assert.True(t, isTransientError(errors.New("database is locked")))
	assert.True(t, isTransientError(errors.New("dial tcp: connection refused")))
	assert.False(t, isTransientError(errors.New("duplicate key value violates unique constraint")))
}

func TestErrorMapper(t *testing.T) {
	mapper := NewErrorMapper()

	testCases := []struct {
		name     string
		err      error
		expected error
	}{
		{"Domain", errs.ErrLockConflict, errs.ErrLockConflict},
		{"NotFound", gorm.ErrRecordNotFound, errs.ErrNotFound},
		{"Deadlock", errors.New("deadlock detected"), errs.ErrDatabaseConnection},
		{"Duplicate", errors.New("UNIQUE constraint failed: users.id"), errs.ErrDuplicateRecord},
		{"ForeignKey", errors.New("violates foreign key constraint"), errs.ErrConstraintViolation},
		{"Refused", errors.New("connection refused"), errs.ErrDatabaseConnection},
		{"Timeout", errors.New("context deadline exceeded"), errs.ErrDatabaseConnection},
		{"Other", errors.New("something odd"), errs.ErrInternalServer},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, mapper.MapError(tc.err, "test"), tc.expected)
		})
	}

	assert.NoError(t, mapper.MapError(nil, "test"))
}
