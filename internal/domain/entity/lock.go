package entity

import (
	"strconv"
	"time"
)

// ResourceType names the kind of resource a lock reserves
type ResourceType string

// Lockable resources
const (
	ResourceStudentTuition ResourceType = "student_tuition"
	ResourceUserAccount    ResourceType = "user_account"
)

// TransactionLock is a time-bounded reservation of a resource by one transaction
type TransactionLock struct {
	ResourceType  ResourceType
	ResourceID    string
	TransactionID uint64
	LockedAt      time.Time
	ExpiresAt     time.Time
}

// OwnedBy reports whether the lock belongs to the transaction
func (l *TransactionLock) OwnedBy(transactionID uint64) bool {
	return l.TransactionID == transactionID
}

// UserResourceID formats a user id as a lock resource id
func UserResourceID(userID uint64) string {
	return strconv.FormatUint(userID, 10)
}
