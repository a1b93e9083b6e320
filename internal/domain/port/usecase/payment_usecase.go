package usecase

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/tuition-payment/internal/domain/entity"
)

// InitiateRequest starts a payment for a student's tuition
type InitiateRequest struct {
	StudentID string
}

// InitiateResult describes the newly created pending transaction
type InitiateResult struct {
	TransactionID   uint64
	TransactionCode string
	StudentID       string
	StudentName     string
	Amount          string
	Status          entity.TransactionStatus
}

// SendOTPResult reports an issued OTP
type SendOTPResult struct {
	OTPSent   bool
	ExpiresIn int64 // seconds
}

// VerifyOTPRequest submits a code for a transaction
type VerifyOTPRequest struct {
	TransactionID uint64
	OTPCode       string
}

// VerifyOTPResult reports a successful verification
type VerifyOTPResult struct {
	Verified          bool
	TransactionStatus entity.TransactionStatus
}

// Receipt summarizes a completed payment
type Receipt struct {
	TransactionCode string
	StudentID       string
	Amount          string
	CompletedAt     time.Time
}

// ConfirmResult is returned once the transfer is committed
type ConfirmResult struct {
	Success    bool
	NewBalance string
	Receipt    Receipt
}

// ActiveTransaction is the caller's in-flight transaction
type ActiveTransaction struct {
	ID          uint64
	Code        string
	Status      entity.TransactionStatus
	StudentID   string
	StudentName string
	Amount      string
	LockedAt    time.Time
	ExpiresAt   time.Time
}

// ActiveTransactionResult wraps the optional active transaction
type ActiveTransactionResult struct {
	HasActiveTransaction bool
	Transaction          *ActiveTransaction
}

// CancelResult reports the outcome of cancel-active
type CancelResult struct {
	Success       bool
	Message       string
	TransactionID uint64
}

// OTPStatusResult describes the newest OTP for a transaction
type OTPStatusResult struct {
	HasOTP           bool
	RemainingSeconds int64
	ExpiresAt        *time.Time
	IsExpired        bool
}

// PaymentUseCase coordinates the tuition payment flow
type PaymentUseCase interface {
	// Initiate creates a pending transaction and reserves the student and the payer
	Initiate(ctx context.Context, caller entity.Caller, req InitiateRequest) (*InitiateResult, error)

	// SendOTP issues (or re-issues) a code and emails it to the payer
	SendOTP(ctx context.Context, caller entity.Caller, transactionID uint64) (*SendOTPResult, error)

	// VerifyOTP checks a submitted code against the active OTP
	VerifyOTP(ctx context.Context, caller entity.Caller, req VerifyOTPRequest) (*VerifyOTPResult, error)

	// Confirm transfers the funds and settles the tuition
	Confirm(ctx context.Context, caller entity.Caller, transactionID uint64) (*ConfirmResult, error)

	// CheckActive returns the caller's in-flight transaction, if any
	CheckActive(ctx context.Context, caller entity.Caller) (*ActiveTransactionResult, error)

	// CancelActive releases the caller's in-flight transaction, if any
	CancelActive(ctx context.Context, caller entity.Caller) (*CancelResult, error)

	// OTPStatus reports the remaining lifetime of the newest code
	OTPStatus(ctx context.Context, caller entity.Caller, transactionID uint64) (*OTPStatusResult, error)
}
