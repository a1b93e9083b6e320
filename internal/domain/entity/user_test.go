package entity

import (
	"errors"
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/tuition-payment/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/tuition-payment/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Valid user creation", func(t *testing.T) {
		user, err := NewUser(1, "payer@example.com", "Sara Payer", "10000000.00", mockTime)

		require.NoError(t, err)
		assert.Equal(t, uint64(1), user.ID)
		assert.Equal(t, "payer@example.com", user.Email)
		assert.Equal(t, int64(1000000000), user.Balance())
		assert.Equal(t, "10000000.00", user.GetBalance())
		assert.True(t, user.IsActive)
		assert.Equal(t, fixedTime, user.CreatedAt)
		assert.Equal(t, fixedTime, user.UpdatedAt)
	})

	t.Run("Zero ID should return error", func(t *testing.T) {
		user, err := NewUser(0, "a@example.com", "A", "1.00", mockTime)

		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})

	t.Run("Invalid balance should return error", func(t *testing.T) {
		user, err := NewUser(1, "a@example.com", "A", "1.001", mockTime)

		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("Negative balance should return error", func(t *testing.T) {
		user, err := NewUser(1, "a@example.com", "A", "-5", mockTime)

		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrNegativeAmount)
	})
}

func TestUserDebit(t *testing.T) {
	start := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	later := start.Add(time.Minute)
	mockTime := coremocks.NewMockTimeProvider(t)

	t.Run("Exact balance", func(t *testing.T) {
		mockTime.EXPECT().Now().Return(later).Once()
		user := RestoreUser(1, 500000000)

		require.True(t, user.CanAfford(500000000))
		require.NoError(t, user.Debit(500000000, mockTime))
		assert.Equal(t, int64(0), user.Balance())
		assert.Equal(t, later, user.UpdatedAt)
	})

	t.Run("Insufficient balance leaves state untouched", func(t *testing.T) {
		user := RestoreUser(2, 100)

		err := user.Debit(101, mockTime)

		assert.True(t, errors.Is(err, errs.ErrInsufficientBalance))
		var insufficient *errs.InsufficientBalanceError
		require.True(t, errors.As(err, &insufficient))
		assert.Equal(t, int64(100), user.Balance())
		assert.True(t, user.UpdatedAt.IsZero())
	})

	t.Run("Negative amount", func(t *testing.T) {
		user := RestoreUser(3, 100)

		assert.ErrorIs(t, user.Debit(-1, mockTime), errs.ErrNegativeAmount)
		assert.Equal(t, int64(100), user.Balance())
	})
}

func TestUserSetBalance(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Once()

	user := RestoreUser(1, 0)
	user.SetBalance(1015, mockTime)

	assert.Equal(t, "10.15", user.GetBalance())
	assert.Equal(t, fixedTime, user.UpdatedAt)
	assert.False(t, user.CanAfford(1016))
}

func TestCallerValidate(t *testing.T) {
	assert.NoError(t, Caller{UserID: 1, Email: "a@example.com"}.Validate())
	assert.ErrorIs(t, Caller{}.Validate(), errs.ErrAuthRequired)
}
