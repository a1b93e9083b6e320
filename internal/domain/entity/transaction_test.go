package entity

import (
	"errors"
	"regexp"
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/tuition-payment/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/tuition-payment/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var transactionCodePattern = regexp.MustCompile(`^TXN\d+[0-9A-F]{8}$`)

func TestNewTransaction(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Valid transaction creation", func(t *testing.T) {
		tx, err := NewTransaction(1, "S1001", 500000000, mockTime)

		require.NoError(t, err)
		assert.Equal(t, uint64(1), tx.PayerID)
		assert.Equal(t, "S1001", tx.StudentID)
		assert.Equal(t, int64(500000000), tx.Amount)
		assert.Equal(t, "5000000.00", tx.GetAmount())
		assert.Equal(t, StatusPending, tx.Status)
		assert.Equal(t, fixedTime, tx.CreatedAt)
		assert.Equal(t, fixedTime, tx.UpdatedAt)
		assert.Nil(t, tx.CompletedAt)
		assert.Regexp(t, transactionCodePattern, tx.Code)
	})

	t.Run("Zero payer should return error", func(t *testing.T) {
		tx, err := NewTransaction(0, "S1001", 100, mockTime)

		assert.Nil(t, tx)
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})

	t.Run("Blank student should return error", func(t *testing.T) {
		tx, err := NewTransaction(1, "   ", 100, mockTime)

		assert.Nil(t, tx)
		assert.ErrorIs(t, err, errs.ErrInvalidStudentID)
	})

	t.Run("Negative amount should return error", func(t *testing.T) {
		tx, err := NewTransaction(1, "S1001", -1, mockTime)

		assert.Nil(t, tx)
		assert.ErrorIs(t, err, errs.ErrNegativeAmount)
	})
}

func TestNewTransactionCode(t *testing.T) {
	now := time.UnixMilli(1718000000000)

	first := NewTransactionCode(now)
	second := NewTransactionCode(now)

	assert.Regexp(t, transactionCodePattern, first)
	assert.Contains(t, first, "TXN1718000000000")
	assert.NotEqual(t, first, second)
}

func TestTransactionStatus(t *testing.T) {
	testCases := []struct {
		from     TransactionStatus
		to       TransactionStatus
		expected bool
	}{
		{StatusPending, StatusOTPSent, true},
		{StatusPending, StatusOTPVerified, false},
		{StatusPending, StatusCompleted, false},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusFailed, true},
		{StatusOTPSent, StatusOTPSent, true},
		{StatusOTPSent, StatusOTPVerified, true},
		{StatusOTPSent, StatusPending, false},
		{StatusOTPSent, StatusCompleted, false},
		{StatusOTPVerified, StatusCompleted, true},
		{StatusOTPVerified, StatusOTPSent, false},
		{StatusOTPVerified, StatusOTPVerified, false},
		{StatusOTPVerified, StatusFailed, true},
		{StatusCompleted, StatusFailed, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusFailed, StatusPending, false},
		{StatusCancelled, StatusOTPSent, false},
		{StatusPending, TransactionStatus("refunded"), false},
	}

	for _, tc := range testCases {
		t.Run(string(tc.from)+"->"+string(tc.to), func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.from.CanTransitionTo(tc.to))
		})
	}

	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusFailed.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.False(t, StatusOTPSent.IsTerminal())
	assert.True(t, StatusOTPVerified.IsValid())
	assert.False(t, TransactionStatus("").IsValid())
}

func TestTransactionLifecycle(t *testing.T) {
	start := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	later := start.Add(90 * time.Second)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(start).Once()
	mockTime.EXPECT().Now().Return(later).Maybe()

	tx, err := NewTransaction(7, "S1002", 250000000, mockTime)
	require.NoError(t, err)

	require.NoError(t, tx.MarkOTPSent(mockTime))
	require.NoError(t, tx.MarkOTPSent(mockTime), "resend keeps otp_sent")
	require.NoError(t, tx.MarkOTPVerified(mockTime))
	assert.Nil(t, tx.CompletedAt)

	require.NoError(t, tx.MarkAsCompleted(mockTime))
	assert.Equal(t, StatusCompleted, tx.Status)
	assert.Equal(t, later, tx.UpdatedAt)
	require.NotNil(t, tx.CompletedAt)
	assert.Equal(t, later, *tx.CompletedAt)

	err = tx.MarkAsCancelled(mockTime)
	assert.True(t, errors.Is(err, errs.ErrInvalidState))
	assert.Contains(t, err.Error(), "cannot move from completed to cancelled")
	assert.Equal(t, StatusCompleted, tx.Status)
}

func TestTransactionInvalidTransitions(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Confirm before verification", func(t *testing.T) {
		tx, err := NewTransaction(1, "S1001", 100, mockTime)
		require.NoError(t, err)
		require.NoError(t, tx.MarkOTPSent(mockTime))

		assert.ErrorIs(t, tx.MarkAsCompleted(mockTime), errs.ErrInvalidState)
		assert.Equal(t, StatusOTPSent, tx.Status)
	})

	t.Run("Verify without OTP", func(t *testing.T) {
		tx, err := NewTransaction(1, "S1001", 100, mockTime)
		require.NoError(t, err)

		assert.ErrorIs(t, tx.MarkOTPVerified(mockTime), errs.ErrInvalidState)
	})

	t.Run("Failed is terminal", func(t *testing.T) {
		tx, err := NewTransaction(1, "S1001", 100, mockTime)
		require.NoError(t, err)
		require.NoError(t, tx.MarkAsFailed(mockTime))

		assert.ErrorIs(t, tx.MarkOTPSent(mockTime), errs.ErrInvalidState)
		assert.ErrorIs(t, tx.MarkAsCancelled(mockTime), errs.ErrInvalidState)
		assert.Equal(t, StatusFailed, tx.Status)
	})
}

func TestTransactionOwnership(t *testing.T) {
	tx := &Transaction{PayerID: 3}

	assert.True(t, tx.BelongsTo(3))
	assert.False(t, tx.BelongsTo(4))
}

func TestNewPaymentHistory(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 9, 5, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Once()

	tx := &Transaction{ID: 11, Code: "TXN1ABCDEF01", PayerID: 2, StudentID: "S1003", Amount: 1500}
	history := NewPaymentHistory(tx, 5000, 3500, mockTime)

	assert.Equal(t, uint64(2), history.UserID)
	assert.Equal(t, uint64(11), history.TransactionID)
	assert.Equal(t, "TXN1ABCDEF01", history.TransactionCode)
	assert.Equal(t, int64(1500), history.Amount)
	assert.Equal(t, int64(5000), history.BalanceBefore)
	assert.Equal(t, int64(3500), history.BalanceAfter)
	assert.Equal(t, HistoryTypePayment, history.TransactionType)
	assert.Equal(t, HistoryStatusSuccess, history.Status)
	assert.Equal(t, "Tuition payment for student S1003", history.Description)
	assert.Equal(t, fixedTime, history.CreatedAt)
}
