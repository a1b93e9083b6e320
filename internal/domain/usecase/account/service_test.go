package account

import (
	"context"
	"testing"
	"time"

	"github.com/amirhossein-jamali/tuition-payment/internal/domain/entity"
	errs "github.com/amirhossein-jamali/tuition-payment/internal/domain/error"
	"github.com/amirhossein-jamali/tuition-payment/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/tuition-payment/internal/infrastructure/adapter/logger"
	timeprovider "github.com/amirhossein-jamali/tuition-payment/internal/infrastructure/adapter/time"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*Service, *database.TestDBManager, *timeprovider.ManualTimeProvider) {
	t.Helper()
	clock := timeprovider.NewManualTimeProvider(time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC))
	tdb := database.NewTestDBManager(t, clock)
	return NewService(tdb.UnitOfWork(), logger.NewNoopLogger()), tdb, clock
}

func TestGetProfile(t *testing.T) {
	s, tdb, _ := newTestService(t)
	ctx := context.Background()
	tdb.CreateTestUser(t, 1, "payer@example.com", 123456)

	profile, err := s.GetProfile(ctx, entity.Caller{UserID: 1})
	require.NoError(t, err)
	assert.Equal(t, "1234.56", profile.Balance)
	assert.Equal(t, "payer@example.com", profile.Email)

	_, err = s.GetProfile(ctx, entity.Caller{})
	assert.ErrorIs(t, err, errs.ErrAuthRequired)

	_, err = s.GetProfile(ctx, entity.Caller{UserID: 5})
	assert.ErrorIs(t, err, errs.ErrUserNotFound)
}

func TestGetStudent(t *testing.T) {
	s, tdb, _ := newTestService(t)
	ctx := context.Background()
	tdb.CreateTestStudent(t, "S1", "Student One", 500000000)

	student, err := s.GetStudent(ctx, " S1 ")
	require.NoError(t, err)
	assert.Equal(t, "5000000.00", student.TuitionAmount)
	assert.False(t, student.IsPaid)
	assert.Equal(t, "2024-2025", student.AcademicYear)

	_, err = s.GetStudent(ctx, "S404")
	assert.ErrorIs(t, err, errs.ErrStudentNotFound)

	_, err = s.GetStudent(ctx, "")
	assert.ErrorIs(t, err, errs.ErrInvalidStudentID)
}

func TestListHistory(t *testing.T) {
	s, tdb, clock := newTestService(t)
	ctx := context.Background()
	uow := tdb.UnitOfWork()

	tdb.CreateTestStudent(t, "S1", "Student One", 1000)
	for i := 0; i < 3; i++ {
		tx, err := entity.NewTransaction(1, "S1", 1000, clock)
		require.NoError(t, err)
		require.NoError(t, uow.GetTransactionRepository(ctx).Create(ctx, tx))
		require.NoError(t, uow.GetHistoryRepository(ctx).Create(ctx, entity.NewPaymentHistory(tx, 5000, 4000, clock)))
		clock.Advance(time.Second)
	}

	page, err := s.ListHistory(ctx, entity.Caller{UserID: 1}, 2, -5)
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.Total)
	assert.Equal(t, 2, page.Limit)
	assert.Zero(t, page.Offset)
	require.Len(t, page.Entries, 2)
	assert.Equal(t, "10.00", page.Entries[0].Amount)
	assert.Equal(t, "40.00", page.Entries[0].BalanceAfter)
	assert.Equal(t, "Student One", page.Entries[0].StudentName)
	assert.True(t, page.Entries[0].CreatedAt.After(page.Entries[1].CreatedAt))
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, DefaultHistoryLimit, ClampLimit(0))
	assert.Equal(t, 1, ClampLimit(-3))
	assert.Equal(t, 50, ClampLimit(50))
	assert.Equal(t, MaxHistoryLimit, ClampLimit(1000))
}
