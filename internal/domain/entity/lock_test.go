package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTransactionLock(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	lock := &TransactionLock{
		ResourceType:  ResourceStudentTuition,
		ResourceID:    "S1001",
		TransactionID: 9,
		LockedAt:      now,
		ExpiresAt:     now.Add(10 * time.Minute),
	}

	assert.True(t, lock.OwnedBy(9))
	assert.False(t, lock.OwnedBy(10))
}

func TestUserResourceID(t *testing.T) {
	assert.Equal(t, "42", UserResourceID(42))
	assert.Equal(t, string(ResourceUserAccount), "user_account")
}
