package entity

import (
	"fmt"
	"time"

	tport "github.com/amirhossein-jamali/tuition-payment/internal/domain/port/core"
)

// History constants
const (
	HistoryTypePayment   = "payment"
	HistoryStatusSuccess = "success"
)

// TransactionHistory is an immutable ledger row written once per completed transfer
type TransactionHistory struct {
	ID              uint64
	UserID          uint64
	TransactionID   uint64
	TransactionCode string
	StudentID       string
	StudentName     string
	TransactionType string
	Amount          int64
	BalanceBefore   int64
	BalanceAfter    int64
	Description     string
	Status          string
	CreatedAt       time.Time
}

// NewPaymentHistory snapshots a completed payment for the audit trail
func NewPaymentHistory(tx *Transaction, balanceBefore, balanceAfter int64, timeProvider tport.TimeProvider) *TransactionHistory {
	return &TransactionHistory{
		UserID:          tx.PayerID,
		TransactionID:   tx.ID,
		TransactionCode: tx.Code,
		StudentID:       tx.StudentID,
		TransactionType: HistoryTypePayment,
		Amount:          tx.Amount,
		BalanceBefore:   balanceBefore,
		BalanceAfter:    balanceAfter,
		Description:     fmt.Sprintf("Tuition payment for student %s", tx.StudentID),
		Status:          HistoryStatusSuccess,
		CreatedAt:       timeProvider.Now(),
	}
}
