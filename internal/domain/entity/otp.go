package entity

import (
	"crypto/subtle"
	"math"
	"time"
)

// OTP policy
const (
	OTPLength      = 6
	MaxOTPAttempts = 3
)

// OTPCode is a one-time passcode issued for a transaction.
// The newest unused, unexpired row is the active code.
type OTPCode struct {
	ID            uint64
	TransactionID uint64
	Code          string
	Email         string
	ExpiresAt     time.Time
	Attempts      int
	IsUsed        bool
	CreatedAt     time.Time
}

// Matches compares the submitted code in constant time
func (o *OTPCode) Matches(code string) bool {
	return subtle.ConstantTimeCompare([]byte(o.Code), []byte(code)) == 1
}

// AttemptsExhausted reports whether maxAttempts verifications have been counted
func (o *OTPCode) AttemptsExhausted(maxAttempts int) bool {
	return o.Attempts >= maxAttempts
}

// RemainingSeconds returns whole seconds until expiry, never negative
func (o *OTPCode) RemainingSeconds(now time.Time) int64 {
	remaining := o.ExpiresAt.Sub(now).Seconds()
	if remaining <= 0 {
		return 0
	}
	return int64(math.Floor(remaining))
}
