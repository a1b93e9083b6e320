package entity

import errs "github.com/amirhossein-jamali/tuition-payment/internal/domain/error"

// Caller is the authenticated identity attached to every payment operation
type Caller struct {
	UserID uint64
	Email  string
}

// Validate rejects callers without an identity
func (c Caller) Validate() error {
	if c.UserID == 0 {
		return errs.ErrAuthRequired
	}
	return nil
}
