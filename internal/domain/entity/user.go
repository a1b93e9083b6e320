package entity

import (
	"time"

	errs "github.com/amirhossein-jamali/tuition-payment/internal/domain/error"
	coreport "github.com/amirhossein-jamali/tuition-payment/internal/domain/port/core"
)

// User represents a payer account holding a balance
type User struct {
	ID        uint64 // Unique identifier for the user
	Username  string
	FullName  string
	Phone     string
	Email     string    // Destination for OTP and receipt emails
	balance   int64     // Balance stored in minor units to avoid floating point precision issues (private)
	IsActive  bool      // Inactive users cannot start payments
	CreatedAt time.Time // When the user was created
	UpdatedAt time.Time // When the user was last updated
}

// NewUser creates a new user with the given ID and initial balance
func NewUser(id uint64, email, fullName, initialBalance string, timeProvider coreport.TimeProvider) (*User, error) {
	if id == 0 {
		return nil, errs.ErrInvalidUserID
	}

	balanceInCents, err := ValidateAndConvertAmount(initialBalance)
	if err != nil {
		return nil, err
	}

	now := timeProvider.Now()
	return &User{
		ID:        id,
		Email:     email,
		FullName:  fullName,
		balance:   balanceInCents,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// RestoreUser rebuilds a user from persisted state without re-validating it
func RestoreUser(id uint64, balanceInCents int64) *User {
	return &User{ID: id, balance: balanceInCents, IsActive: true}
}

// Balance returns the current balance in minor units (for internal use)
func (u *User) Balance() int64 {
	return u.balance
}

// GetBalance returns the balance as a string with 2 decimal places
func (u *User) GetBalance() string {
	return AmountInCentsToString(u.balance)
}

// SetBalance updates the balance directly (for internal use, like repositories)
func (u *User) SetBalance(balanceInCents int64, timeProvider coreport.TimeProvider) {
	u.balance = balanceInCents
	u.UpdatedAt = timeProvider.Now()
}

// CanAfford checks if the user has enough balance to pay the amount
func (u *User) CanAfford(amountInCents int64) bool {
	return u.balance >= amountInCents
}

// Debit subtracts the amount from balance if sufficient balance exists
func (u *User) Debit(amountInCents int64, timeProvider coreport.TimeProvider) error {
	if amountInCents < 0 {
		return errs.ErrNegativeAmount
	}
	if !u.CanAfford(amountInCents) {
		return errs.NewInsufficientBalanceError(u.ID, AmountInCentsToString(amountInCents), u.GetBalance())
	}

	u.balance -= amountInCents
	u.UpdatedAt = timeProvider.Now()
	return nil
}
