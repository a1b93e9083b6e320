package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/tuition-payment/internal/domain/entity"
	errs "github.com/amirhossein-jamali/tuition-payment/internal/domain/error"
	timeprovider "github.com/amirhossein-jamali/tuition-payment/internal/infrastructure/adapter/time"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUnitOfWorkFixture(t *testing.T) (*TestDBManager, *timeprovider.ManualTimeProvider) {
	t.Helper()
	clock := timeprovider.NewManualTimeProvider(time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC))
	return NewTestDBManager(t, clock), clock
}

func createUserIn(ctx context.Context, t *testing.T, tdb *TestDBManager, id uint64) error {
	t.Helper()
	user, err := entity.NewUser(id, "unit@example.com", "Unit User", "10.00", tdb.TimeProvider)
	require.NoError(t, err)
	return tdb.UnitOfWork().GetUserRepository(ctx).Create(ctx, user)
}

func userExists(t *testing.T, tdb *TestDBManager, id uint64) bool {
	t.Helper()
	_, err := tdb.UnitOfWork().GetUserRepository(context.Background()).GetByID(context.Background(), id)
	if errors.Is(err, errs.ErrUserNotFound) {
		return false
	}
	require.NoError(t, err)
	return true
}

func TestWithinTransactionCommits(t *testing.T) {
	tdb, _ := newUnitOfWorkFixture(t)
	uow := tdb.UnitOfWork()

	err := uow.WithinTransaction(context.Background(), func(ctx context.Context) error {
		return createUserIn(ctx, t, tdb, 1)
	})

	require.NoError(t, err)
	assert.True(t, userExists(t, tdb, 1))
}

func TestWithinTransactionRollsBackOnError(t *testing.T) {
	tdb, _ := newUnitOfWorkFixture(t)
	uow := tdb.UnitOfWork()

	t.Run("Domain error passes through", func(t *testing.T) {
		err := uow.WithinTransaction(context.Background(), func(ctx context.Context) error {
			require.NoError(t, createUserIn(ctx, t, tdb, 2))
			return errs.ErrAlreadyPaid
		})

		assert.ErrorIs(t, err, errs.ErrAlreadyPaid)
		assert.False(t, userExists(t, tdb, 2))
	})

	t.Run("Unknown error is mapped", func(t *testing.T) {
		err := uow.WithinTransaction(context.Background(), func(ctx context.Context) error {
			require.NoError(t, createUserIn(ctx, t, tdb, 3))
			return errors.New("boom")
		})

		assert.ErrorIs(t, err, errs.ErrInternalServer)
		assert.Contains(t, err.Error(), "boom")
		assert.False(t, userExists(t, tdb, 3))
	})
}

func TestWithinTransactionRollsBackOnPanic(t *testing.T) {
	tdb, _ := newUnitOfWorkFixture(t)
	uow := tdb.UnitOfWork()

	assert.PanicsWithValue(t, "kaboom", func() {
		_ = uow.WithinTransaction(context.Background(), func(ctx context.Context) error {
			require.NoError(t, createUserIn(ctx, t, tdb, 4))
			panic("kaboom")
		})
	})

	assert.False(t, userExists(t, tdb, 4))
}

func TestWithinTransactionReusesOuterTransaction(t *testing.T) {
	tdb, _ := newUnitOfWorkFixture(t)
	uow := tdb.UnitOfWork()

	err := uow.WithinTransaction(context.Background(), func(ctx context.Context) error {
		innerErr := uow.WithinTransaction(ctx, func(inner context.Context) error {
			assert.Equal(t, ctx, inner)
			return createUserIn(inner, t, tdb, 5)
		})
		require.NoError(t, innerErr)
		return errs.ErrLockExpired
	})

	assert.ErrorIs(t, err, errs.ErrLockExpired)
	assert.False(t, userExists(t, tdb, 5), "inner work belongs to the outer transaction")
}

func TestWithinTransactionRetriesTransientFailures(t *testing.T) {
	tdb, _ := newUnitOfWorkFixture(t)
	uow := tdb.UnitOfWork()

	attempts := 0
	err := uow.WithinTransaction(context.Background(), func(ctx context.Context) error {
		attempts++
		if attempts == 1 {
			return errors.New("database is locked")
		}
		return createUserIn(ctx, t, tdb, 6)
	})

	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
	assert.True(t, userExists(t, tdb, 6))
}

func TestUnitOfWorkWithoutTransaction(t *testing.T) {
	tdb, _ := newUnitOfWorkFixture(t)
	uow := tdb.UnitOfWork()

	assert.Error(t, uow.Commit(context.Background()))
	assert.Error(t, uow.Rollback(context.Background()))
}

func TestUnitOfWorkManualBeginCommit(t *testing.T) {
	tdb, _ := newUnitOfWorkFixture(t)
	uow := tdb.UnitOfWork()

	txCtx, err := uow.Begin(context.Background())
	require.NoError(t, err)
	require.NoError(t, createUserIn(txCtx, t, tdb, 7))
	require.NoError(t, uow.Commit(txCtx))

	// A second rollback on a finished transaction is tolerated
	assert.NoError(t, uow.Rollback(txCtx))
	assert.True(t, userExists(t, tdb, 7))
}
