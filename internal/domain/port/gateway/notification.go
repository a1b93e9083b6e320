package gateway

import (
	"context"
	"time"
)

// ConfirmationDetails is the receipt content sent after a completed payment
type ConfirmationDetails struct {
	PayerName       string
	TransactionCode string
	StudentID       string
	StudentName     string
	Amount          string
	NewBalance      string
	CompletedAt     time.Time
}

// NotificationGateway delivers payment emails. Both methods report delivery success.
type NotificationGateway interface {
	SendOTPEmail(ctx context.Context, email, code, transactionCode string) bool
	SendConfirmationEmail(ctx context.Context, email string, details ConfirmationDetails) bool
}
