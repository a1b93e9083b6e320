package error

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeValidation          = 4000
	CodeInsufficientBalance = 4001
	CodeAlreadyPaid         = 4002
	CodeInvalidOTP          = 4003
	CodeTooManyAttempts     = 4004
	CodeInvalidAmount       = 4005
	CodeAuthRequired        = 4010
	CodeNotFound            = 4040
	CodeStudentNotFound     = 4041
	CodeTransactionNotFound = 4042
	CodeUserNotFound        = 4043
	CodeLockConflict        = 4090
	CodeInvalidState        = 4091
	CodeLockExpired         = 4092

	// 5xxx - Server errors
	CodeInternalServer     = 5000
	CodeNotificationFailed = 5001
)

// Base error types
var (
	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInvalidAmount is returned when an amount cannot be parsed as money
	ErrInvalidAmount = errors.New("invalid amount format")

	// ErrNegativeAmount is returned when an amount is negative
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrInvalidUserID is returned when the user ID is not a positive integer
	ErrInvalidUserID = errors.New("user ID must be positive")

	// ErrInvalidStudentID is returned when the student ID is empty
	ErrInvalidStudentID = errors.New("student ID cannot be empty")

	// ErrInvalidTransactionID is returned when the transaction ID is not a positive integer
	ErrInvalidTransactionID = errors.New("transaction ID must be positive")

	// ErrInvalidOTPFormat is returned when the submitted code is not six digits
	ErrInvalidOTPFormat = errors.New("OTP code must be 6 digits")

	// ErrAuthRequired is returned when the caller identity is missing
	ErrAuthRequired = errors.New("authentication required")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrStudentNotFound is returned when the requested student doesn't exist
	ErrStudentNotFound = errors.New("student not found")

	// ErrTransactionNotFound is returned when the requested transaction doesn't exist
	// or does not belong to the caller
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrAlreadyPaid is returned when the student's tuition has already been settled
	ErrAlreadyPaid = errors.New("tuition already paid")

	// ErrInsufficientBalance is returned when a payer cannot cover the tuition amount
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrLockConflict is returned when another transaction holds the resource
	ErrLockConflict = errors.New("resource is locked by another transaction")

	// ErrLockExpired is returned when the transaction no longer holds its locks
	ErrLockExpired = errors.New("transaction session expired, please start again")

	// ErrInvalidState is returned when the transaction status does not allow the operation
	ErrInvalidState = errors.New("invalid transaction state")

	// ErrInvalidOrExpiredOTP is returned when no active OTP matches
	ErrInvalidOrExpiredOTP = errors.New("invalid or expired OTP")

	// ErrTooManyAttempts is returned when the OTP attempt limit is reached
	ErrTooManyAttempts = errors.New("too many failed attempts")

	// ErrNotificationFailed is returned when an email could not be dispatched
	ErrNotificationFailed = errors.New("failed to send notification")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrDuplicateRecord is returned when a unique key already exists
	ErrDuplicateRecord = errors.New("record already exists")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInsufficientBalance):
		return CodeInsufficientBalance
	case errors.Is(err, ErrAlreadyPaid):
		return CodeAlreadyPaid
	case errors.Is(err, ErrInvalidOrExpiredOTP):
		return CodeInvalidOTP
	case errors.Is(err, ErrTooManyAttempts):
		return CodeTooManyAttempts
	case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrNegativeAmount):
		return CodeInvalidAmount
	case IsValidationError(err):
		return CodeValidation
	case errors.Is(err, ErrAuthRequired):
		return CodeAuthRequired
	case errors.Is(err, ErrStudentNotFound):
		return CodeStudentNotFound
	case errors.Is(err, ErrTransactionNotFound):
		return CodeTransactionNotFound
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrLockConflict):
		return CodeLockConflict
	case errors.Is(err, ErrInvalidState):
		return CodeInvalidState
	case errors.Is(err, ErrLockExpired):
		return CodeLockExpired
	case errors.Is(err, ErrNotificationFailed):
		return CodeNotificationFailed
	default:
		return CodeInternalServer
	}
}

// HTTPStatus maps an error to the HTTP status returned to API callers
func HTTPStatus(err error) int {
	switch {
	case IsValidationError(err),
		errors.Is(err, ErrInvalidAmount),
		errors.Is(err, ErrNegativeAmount),
		errors.Is(err, ErrAlreadyPaid),
		errors.Is(err, ErrInsufficientBalance),
		errors.Is(err, ErrInvalidOrExpiredOTP),
		errors.Is(err, ErrTooManyAttempts):
		return http.StatusBadRequest
	case errors.Is(err, ErrAuthRequired):
		return http.StatusUnauthorized
	case IsNotFoundError(err):
		return http.StatusNotFound
	case errors.Is(err, ErrLockConflict),
		errors.Is(err, ErrLockExpired),
		errors.Is(err, ErrInvalidState):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// IsDomainError reports whether err is one of the known, caller-facing errors.
// Anything else is collapsed into ErrInternalServer before it leaves the API.
func IsDomainError(err error) bool {
	return HTTPStatus(err) != http.StatusInternalServerError || errors.Is(err, ErrNotificationFailed)
}

// LockConflictError describes which resource blocked a new transaction
type LockConflictError struct {
	ResourceType  string
	ResourceID    string
	TransactionID uint64
}

// Error implements the error interface
func (e *LockConflictError) Error() string {
	return fmt.Sprintf("%s: %s:%s is reserved by another transaction",
		ErrLockConflict.Error(), e.ResourceType, e.ResourceID)
}

// Is checks if the target error is an ErrLockConflict
func (e *LockConflictError) Is(target error) bool {
	return target == ErrLockConflict
}

// LogFields returns a map of fields for structured logging
func (e *LockConflictError) LogFields() map[string]any {
	return map[string]any{
		"error_type":     "lock_conflict",
		"resource_type":  e.ResourceType,
		"resource_id":    e.ResourceID,
		"transaction_id": e.TransactionID,
		"error_code":     CodeLockConflict,
	}
}

// NewLockConflictError creates a new lock conflict error
func NewLockConflictError(resourceType, resourceID string, transactionID uint64) error {
	return &LockConflictError{
		ResourceType:  resourceType,
		ResourceID:    resourceID,
		TransactionID: transactionID,
	}
}

// InsufficientBalanceError provides detailed error information for insufficient balance
type InsufficientBalanceError struct {
	UserID      uint64
	Amount      string
	CurrBalance string
}

// Error implements the error interface
func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance for user %d: required %s, available %s",
		e.UserID, e.Amount, e.CurrBalance)
}

// Is checks if the target error is an ErrInsufficientBalance
func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientBalanceError) LogFields() map[string]any {
	return map[string]any{
		"error_type":      "insufficient_balance",
		"user_id":         e.UserID,
		"amount":          e.Amount,
		"current_balance": e.CurrBalance,
		"error_code":      CodeInsufficientBalance,
	}
}

// NewInsufficientBalanceError creates a new detailed insufficient balance error
func NewInsufficientBalanceError(userID uint64, amount, currentBalance string) error {
	return &InsufficientBalanceError{
		UserID:      userID,
		Amount:      amount,
		CurrBalance: currentBalance,
	}
}

// TransactionError represents an error raised while advancing a payment transaction
type TransactionError struct {
	TransactionID uint64
	UserID        uint64
	Status        string
	Operation     string
	Err           error
}

// Error implements the error interface for TransactionError
func (e *TransactionError) Error() string {
	return fmt.Sprintf("%s failed for transaction %d (user: %d, status: %s): %v",
		e.Operation, e.TransactionID, e.UserID, e.Status, e.Err)
}

// Unwrap returns the underlying error
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *TransactionError) LogFields() map[string]any {
	return map[string]any{
		"error_type":     "transaction_error",
		"transaction_id": e.TransactionID,
		"user_id":        e.UserID,
		"status":         e.Status,
		"operation":      e.Operation,
		"error":          e.Err.Error(),
		"error_code":     ErrorCode(e.Err),
	}
}

// NewTransactionError creates a detailed transaction error
func NewTransactionError(transactionID, userID uint64, status, operation string, err error) error {
	return &TransactionError{
		TransactionID: transactionID,
		UserID:        userID,
		Status:        status,
		Operation:     operation,
		Err:           err,
	}
}

// ValidationError wraps a field-level validation failure
type ValidationError struct {
	Field  string
	Reason string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Is checks if the target error is an ErrInvalidRequest
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidRequest
}

// NewValidationError creates a validation error for the given field
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidationError checks if the error was caused by malformed input
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidRequest) ||
		errors.Is(err, ErrInvalidUserID) ||
		errors.Is(err, ErrInvalidStudentID) ||
		errors.Is(err, ErrInvalidTransactionID) ||
		errors.Is(err, ErrInvalidOTPFormat)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrStudentNotFound) ||
		errors.Is(err, ErrTransactionNotFound)
}

// publicSentinels are matched in order when rendering an error for API callers
var publicSentinels = []error{
	ErrInvalidUserID,
	ErrInvalidStudentID,
	ErrInvalidTransactionID,
	ErrInvalidOTPFormat,
	ErrInvalidAmount,
	ErrNegativeAmount,
	ErrAuthRequired,
	ErrUserNotFound,
	ErrStudentNotFound,
	ErrTransactionNotFound,
	ErrAlreadyPaid,
	ErrInsufficientBalance,
	ErrLockExpired,
	ErrInvalidState,
	ErrInvalidOrExpiredOTP,
	ErrTooManyAttempts,
	ErrNotificationFailed,
	ErrInvalidRequest,
	ErrNotFound,
}

// PublicMessage returns the message safe to show API callers. Internal
// details such as ids in wrapped errors and driver messages are dropped.
func PublicMessage(err error) string {
	var validation *ValidationError
	if errors.As(err, &validation) {
		return validation.Error()
	}
	var conflict *LockConflictError
	if errors.As(err, &conflict) {
		return conflict.Error()
	}
	for _, sentinel := range publicSentinels {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	if errors.Is(err, ErrLockConflict) {
		return ErrLockConflict.Error()
	}
	return ErrInternalServer.Error()
}
