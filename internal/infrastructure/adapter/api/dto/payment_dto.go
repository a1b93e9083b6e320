package dto

import "time"

// InitiatePaymentRequest starts a tuition payment
type InitiatePaymentRequest struct {
	StudentID string `json:"studentId" binding:"required"`
}

// TransactionIDRequest addresses an existing transaction
type TransactionIDRequest struct {
	TransactionID uint64 `json:"transactionId" binding:"required"`
}

// VerifyOTPRequest submits a one-time code
type VerifyOTPRequest struct {
	TransactionID uint64 `json:"transactionId" binding:"required"`
	OTPCode       string `json:"otpCode" binding:"required,len=6,numeric"`
}

// InitiatePaymentResponse describes the new pending transaction
type InitiatePaymentResponse struct {
	TransactionID   uint64 `json:"transactionId"`
	TransactionCode string `json:"transactionCode"`
	StudentID       string `json:"studentId"`
	StudentName     string `json:"studentName"`
	Amount          string `json:"amount"`
	Status          string `json:"status"`
}

// SendOTPResponse reports the issued code's lifetime
type SendOTPResponse struct {
	OTPSent   bool  `json:"otpSent"`
	ExpiresIn int64 `json:"expiresIn"`
}

// VerifyOTPResponse reports a successful verification
type VerifyOTPResponse struct {
	Verified          bool   `json:"verified"`
	TransactionStatus string `json:"transactionStatus"`
}

// ReceiptResponse summarizes a completed payment
type ReceiptResponse struct {
	TransactionCode string    `json:"transactionCode"`
	StudentID       string    `json:"studentId"`
	Amount          string    `json:"amount"`
	CompletedAt     time.Time `json:"completedAt"`
}

// ConfirmPaymentResponse is returned after the transfer commits
type ConfirmPaymentResponse struct {
	Success    bool            `json:"success"`
	NewBalance string          `json:"newBalance"`
	Receipt    ReceiptResponse `json:"receipt"`
}

// ActiveTransactionResponse describes the caller's in-flight transaction
type ActiveTransactionResponse struct {
	ID          uint64    `json:"id"`
	Code        string    `json:"code"`
	Status      string    `json:"status"`
	StudentID   string    `json:"studentId"`
	StudentName string    `json:"studentName"`
	Amount      string    `json:"amount"`
	LockedAt    time.Time `json:"lockedAt"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// CheckActiveResponse wraps the optional active transaction
type CheckActiveResponse struct {
	HasActiveTransaction bool                       `json:"hasActiveTransaction"`
	Transaction          *ActiveTransactionResponse `json:"transaction,omitempty"`
}

// CancelActiveResponse reports the outcome of a cancellation
type CancelActiveResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	TransactionID uint64 `json:"transactionId,omitempty"`
}

// OTPStatusResponse describes the newest code for a transaction
type OTPStatusResponse struct {
	HasOTP           bool       `json:"hasOtp"`
	RemainingSeconds int64      `json:"remainingSeconds"`
	ExpiresAt        *time.Time `json:"expiresAt"`
	IsExpired        bool       `json:"isExpired"`
}
