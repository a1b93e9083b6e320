package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"

	errs "github.com/amirhossein-jamali/tuition-payment/internal/domain/error"
	"github.com/amirhossein-jamali/tuition-payment/internal/infrastructure/adapter/logger"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestErrorClassifier(t *testing.T) {
	c := NewErrorClassifier()

	testCases := []struct {
		name     string
		err      error
		expected ErrorType
	}{
		{"Nil", nil, ""},
		{"PostgresDuplicate", errors.New(`ERROR: duplicate key value violates unique constraint "users_pkey"`), DuplicateKeyError},
		{"SqliteDuplicate", errors.New("UNIQUE constraint failed: transaction_locks.resource_type"), DuplicateKeyError},
		{"GormDuplicate", gorm.ErrDuplicatedKey, DuplicateKeyError},
		{"Deadlock", errors.New("ERROR: deadlock detected"), LockError},
		{"SqliteBusy", errors.New("database is locked"), LockError},
		{"Reset", errors.New("read: connection reset by peer"), TransientError},
		{"Dial", errors.New("dial tcp: no route"), ConnectionError},
		{"NotNull", errors.New("NOT NULL constraint failed"), ConstraintError},
		{"Other", errors.New("syntax error"), ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, c.Classify(tc.err))
		})
	}
}

func TestHandleDatabaseError(t *testing.T) {
	c := NewErrorClassifier()
	log := logger.NewNoopLogger()

	err := handleDatabaseError(log, c, "getting user", gorm.ErrRecordNotFound, errs.ErrUserNotFound, nil)
	assert.ErrorIs(t, err, errs.ErrUserNotFound)

	err = handleDatabaseError(log, c, "creating user", errors.New("UNIQUE constraint failed: users.id"), nil, nil)
	assert.ErrorIs(t, err, errs.ErrDuplicateRecord)

	err = handleDatabaseError(log, c, "listing", fmt.Errorf("query: %w", context.Canceled), nil, nil)
	assert.ErrorIs(t, err, context.Canceled)

	err = handleDatabaseError(log, c, "updating", errors.New("deadlock detected"), nil, map[string]any{"user_id": 1})
	assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	assert.Contains(t, err.Error(), "deadlock")
}
