package otp

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/amirhossein-jamali/tuition-payment/internal/domain/entity"
	"github.com/amirhossein-jamali/tuition-payment/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/tuition-payment/internal/infrastructure/adapter/logger"
	timeprovider "github.com/amirhossein-jamali/tuition-payment/internal/infrastructure/adapter/time"
	mockgateway "github.com/amirhossein-jamali/tuition-payment/mocks/port/gateway"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	service *Service
	db      *database.TestDBManager
	clock   *timeprovider.ManualTimeProvider
	cache   *mockgateway.MockOTPCache
}

func newFixture(t *testing.T, code string) *fixture {
	t.Helper()
	clock := timeprovider.NewManualTimeProvider(time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC))
	tdb := database.NewTestDBManager(t, clock)
	cache := mockgateway.NewMockOTPCache(t)

	service := NewService(tdb.UnitOfWork(), cache, FixedGenerator{Code: code}, clock, logger.NewNoopLogger(), Config{})
	return &fixture{service: service, db: tdb, clock: clock, cache: cache}
}

func (f *fixture) verify(t *testing.T, transactionID uint64, code string) Outcome {
	t.Helper()
	var outcome Outcome
	err := f.db.UnitOfWork().WithinTransaction(context.Background(), func(ctx context.Context) error {
		var verifyErr error
		outcome, verifyErr = f.service.Verify(ctx, transactionID, code)
		return verifyErr
	})
	require.NoError(t, err)
	return outcome
}

func TestRandomGenerator(t *testing.T) {
	pattern := regexp.MustCompile(`^\d{6}$`)
	seen := make(map[string]struct{})

	for i := 0; i < 200; i++ {
		code, err := RandomGenerator{}.Generate()
		require.NoError(t, err)
		assert.Regexp(t, pattern, code)
		seen[code] = struct{}{}
	}

	assert.Greater(t, len(seen), 150, "codes should not repeat often")
}

func TestIssueAndVerify(t *testing.T) {
	f := newFixture(t, "123456")
	ctx := context.Background()

	otp, err := f.service.Issue(ctx, 1, "payer@example.com")
	require.NoError(t, err)
	assert.Equal(t, "123456", otp.Code)
	assert.True(t, otp.ExpiresAt.Equal(f.clock.Now().Add(DefaultTTL)))

	f.cache.EXPECT().Set(mock.Anything, uint64(1), "123456", DefaultTTL).Return(nil).Once()
	f.service.Mirror(ctx, otp)

	f.cache.EXPECT().Get(mock.Anything, uint64(1)).Return("123456", true, nil).Once()
	assert.Equal(t, OutcomeVerified, f.verify(t, 1, "123456"))

	// The code has been consumed
	assert.Equal(t, OutcomeNoActiveCode, f.verify(t, 1, "123456"))
}

func TestVerifyIgnoresCacheFailures(t *testing.T) {
	f := newFixture(t, "654321")
	ctx := context.Background()

	_, err := f.service.Issue(ctx, 1, "payer@example.com")
	require.NoError(t, err)

	f.cache.EXPECT().Get(mock.Anything, uint64(1)).Return("", false, errors.New("connection refused")).Once()
	assert.Equal(t, OutcomeVerified, f.verify(t, 1, "654321"))
}

func TestVerifyStaleCacheStillUsesDatabase(t *testing.T) {
	f := newFixture(t, "111111")
	ctx := context.Background()

	_, err := f.service.Issue(ctx, 1, "payer@example.com")
	require.NoError(t, err)

	f.cache.EXPECT().Get(mock.Anything, uint64(1)).Return("999999", true, nil).Once()
	assert.Equal(t, OutcomeRejected, f.verify(t, 1, "999999"))
}

func TestAttemptLimit(t *testing.T) {
	f := newFixture(t, "222222")
	ctx := context.Background()

	_, err := f.service.Issue(ctx, 1, "payer@example.com")
	require.NoError(t, err)

	f.cache.EXPECT().Get(mock.Anything, uint64(1)).Return("", false, nil)

	assert.Equal(t, OutcomeRejected, f.verify(t, 1, "000000"))
	assert.Equal(t, OutcomeRejected, f.verify(t, 1, "000001"))
	assert.Equal(t, OutcomeExhausted, f.verify(t, 1, "222222"))

	latest, err := f.service.Latest(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, entity.MaxOTPAttempts, latest.Attempts)
	assert.False(t, latest.IsUsed)
}

func TestAttemptLimitFollowsConfig(t *testing.T) {
	f := newFixture(t, "444444")
	ctx := context.Background()
	f.service = NewService(f.db.UnitOfWork(), f.cache, FixedGenerator{Code: "444444"}, f.clock, logger.NewNoopLogger(), Config{MaxAttempts: 5})

	_, err := f.service.Issue(ctx, 1, "payer@example.com")
	require.NoError(t, err)

	f.cache.EXPECT().Get(mock.Anything, uint64(1)).Return("", false, nil)

	for i := 0; i < 4; i++ {
		assert.Equal(t, OutcomeRejected, f.verify(t, 1, "000000"))
	}
	assert.Equal(t, OutcomeExhausted, f.verify(t, 1, "444444"))

	latest, err := f.service.Latest(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 5, latest.Attempts)
}

func TestExpiredCodeIsInactive(t *testing.T) {
	f := newFixture(t, "333333")
	ctx := context.Background()

	_, err := f.service.Issue(ctx, 1, "payer@example.com")
	require.NoError(t, err)

	f.clock.Advance(DefaultTTL)
	assert.Equal(t, OutcomeNoActiveCode, f.verify(t, 1, "333333"))

	latest, err := f.service.Latest(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Zero(t, latest.RemainingSeconds(f.clock.Now()))
}

func TestResendShadowsOlderCode(t *testing.T) {
	f := newFixture(t, "444444")
	ctx := context.Background()

	_, err := f.service.Issue(ctx, 1, "payer@example.com")
	require.NoError(t, err)

	f.clock.Advance(time.Minute)
	f.service.generator = FixedGenerator{Code: "555555"}
	_, err = f.service.Issue(ctx, 1, "payer@example.com")
	require.NoError(t, err)

	f.cache.EXPECT().Get(mock.Anything, uint64(1)).Return("555555", true, nil)
	assert.Equal(t, OutcomeRejected, f.verify(t, 1, "444444"))
	assert.Equal(t, OutcomeVerified, f.verify(t, 1, "555555"))
}

func TestMirrorSkipsExpiredAndForgetLogsErrors(t *testing.T) {
	f := newFixture(t, "666666")
	ctx := context.Background()

	expired := &entity.OTPCode{TransactionID: 3, Code: "666666", ExpiresAt: f.clock.Now()}
	f.service.Mirror(ctx, expired)

	f.cache.EXPECT().Delete(mock.Anything, uint64(3)).Return(errors.New("redis down")).Once()
	f.service.Forget(ctx, 3)
}
