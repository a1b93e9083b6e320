package entity

import (
	"fmt"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/tuition-payment/internal/domain/error"
	tport "github.com/amirhossein-jamali/tuition-payment/internal/domain/port/core"
	"github.com/google/uuid"
)

// TransactionStatus defines possible status values for a payment transaction
type TransactionStatus string

// TransactionStatus constants
const (
	StatusPending     TransactionStatus = "pending"
	StatusOTPSent     TransactionStatus = "otp_sent"
	StatusOTPVerified TransactionStatus = "otp_verified"
	StatusCompleted   TransactionStatus = "completed"
	StatusFailed      TransactionStatus = "failed"
	StatusCancelled   TransactionStatus = "cancelled"
)

// statusRank orders the forward path; terminal sinks sit outside it.
var statusRank = map[TransactionStatus]int{
	StatusPending:     0,
	StatusOTPSent:     1,
	StatusOTPVerified: 2,
	StatusCompleted:   3,
}

// IsTerminal reports whether no further transition is permitted
func (s TransactionStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusFailed || s == StatusCancelled
}

// IsValid reports whether s is a known status
func (s TransactionStatus) IsValid() bool {
	_, onPath := statusRank[s]
	return onPath || s == StatusFailed || s == StatusCancelled
}

// CanTransitionTo reports whether moving from s to next respects the state graph.
// Resending an OTP keeps a transaction in otp_sent, which is the only self-transition.
func (s TransactionStatus) CanTransitionTo(next TransactionStatus) bool {
	if s.IsTerminal() || !next.IsValid() {
		return false
	}
	if next == StatusFailed || next == StatusCancelled {
		return true
	}
	if s == StatusOTPSent && next == StatusOTPSent {
		return true
	}
	return statusRank[next] == statusRank[s]+1
}

// Transaction is one payer's attempt to settle one student's tuition
type Transaction struct {
	ID          uint64            // Database identifier, exposed as transactionId
	Code        string            // Unique human-readable code
	PayerID     uint64            // User paying the tuition
	StudentID   string            // Student whose tuition is being paid
	Amount      int64             // Tuition amount in minor units, taken from the student record
	Status      TransactionStatus // State machine value
	CreatedAt   time.Time
	UpdatedAt   time.Time
	CompletedAt *time.Time
}

// NewTransaction creates a pending transaction for the given payer and student
func NewTransaction(payerID uint64, studentID string, amount int64, timeProvider tport.TimeProvider) (*Transaction, error) {
	if payerID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if strings.TrimSpace(studentID) == "" {
		return nil, errs.ErrInvalidStudentID
	}
	if amount < 0 {
		return nil, errs.ErrNegativeAmount
	}

	now := timeProvider.Now()
	return &Transaction{
		Code:      NewTransactionCode(now),
		PayerID:   payerID,
		StudentID: studentID,
		Amount:    amount,
		Status:    StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// NewTransactionCode builds a code such as TXN1718000000000AB12CD34
func NewTransactionCode(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("TXN%d%s", now.UnixMilli(), suffix)
}

// GetAmount returns the amount as a string with 2 decimal places
func (t *Transaction) GetAmount() string {
	return AmountInCentsToString(t.Amount)
}

// BelongsTo reports whether the transaction was initiated by the user
func (t *Transaction) BelongsTo(userID uint64) bool {
	return t.PayerID == userID
}

// TransitionTo moves the transaction to next, rejecting backward or terminal moves
func (t *Transaction) TransitionTo(next TransactionStatus, timeProvider tport.TimeProvider) error {
	if !t.Status.CanTransitionTo(next) {
		return fmt.Errorf("%w: cannot move from %s to %s", errs.ErrInvalidState, t.Status, next)
	}

	now := timeProvider.Now()
	t.Status = next
	t.UpdatedAt = now
	if next == StatusCompleted {
		t.CompletedAt = &now
	}
	return nil
}

// MarkOTPSent records that an OTP has been issued
func (t *Transaction) MarkOTPSent(timeProvider tport.TimeProvider) error {
	return t.TransitionTo(StatusOTPSent, timeProvider)
}

// MarkOTPVerified records a successful OTP check
func (t *Transaction) MarkOTPVerified(timeProvider tport.TimeProvider) error {
	return t.TransitionTo(StatusOTPVerified, timeProvider)
}

// MarkAsCompleted marks the transfer as done and stamps CompletedAt
func (t *Transaction) MarkAsCompleted(timeProvider tport.TimeProvider) error {
	return t.TransitionTo(StatusCompleted, timeProvider)
}

// MarkAsFailed marks the transaction as failed
func (t *Transaction) MarkAsFailed(timeProvider tport.TimeProvider) error {
	return t.TransitionTo(StatusFailed, timeProvider)
}

// MarkAsCancelled marks the transaction as cancelled by the payer
func (t *Transaction) MarkAsCancelled(timeProvider tport.TimeProvider) error {
	return t.TransitionTo(StatusCancelled, timeProvider)
}
