package otp

import (
	"context"
	"fmt"
	"time"

	"github.com/amirhossein-jamali/tuition-payment/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/tuition-payment/internal/domain/port/core"
	"github.com/amirhossein-jamali/tuition-payment/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/tuition-payment/internal/domain/port/persistence"
)

// DefaultTTL is the lifetime of an issued code
const DefaultTTL = 5 * time.Minute

// Outcome is the result of checking a submitted code
type Outcome int

const (
	// OutcomeNoActiveCode means there is no unused, unexpired code for the transaction
	OutcomeNoActiveCode Outcome = iota
	// OutcomeRejected means the code did not match and attempts remain
	OutcomeRejected
	// OutcomeExhausted means the attempt limit has been reached
	OutcomeExhausted
	// OutcomeVerified means the code matched and has been consumed
	OutcomeVerified
)

// String implements fmt.Stringer
func (o Outcome) String() string {
	switch o {
	case OutcomeRejected:
		return "rejected"
	case OutcomeExhausted:
		return "exhausted"
	case OutcomeVerified:
		return "verified"
	default:
		return "no_active_code"
	}
}

// Config holds the OTP policy
type Config struct {
	TTL         time.Duration
	MaxAttempts int
}

// Service issues and verifies one-time codes. The database is authoritative;
// the cache is a best-effort mirror.
type Service struct {
	uow          persistence.UnitOfWork
	cache        gateway.OTPCache
	generator    Generator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	ttl          time.Duration
	maxAttempts  int
}

// NewService creates a new OTP service
func NewService(
	uow persistence.UnitOfWork,
	cache gateway.OTPCache,
	generator Generator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	config Config,
) *Service {
	if config.TTL <= 0 {
		config.TTL = DefaultTTL
	}
	if config.MaxAttempts <= 0 {
		config.MaxAttempts = entity.MaxOTPAttempts
	}
	if generator == nil {
		generator = RandomGenerator{}
	}

	return &Service{
		uow:          uow,
		cache:        cache,
		generator:    generator,
		timeProvider: timeProvider,
		logger:       logger,
		ttl:          config.TTL,
		maxAttempts:  config.MaxAttempts,
	}
}

// TTL returns the configured code lifetime
func (s *Service) TTL() time.Duration {
	return s.ttl
}

// Issue persists a fresh code for the transaction. Older codes stay in the
// table but are shadowed by the newest one.
func (s *Service) Issue(ctx context.Context, transactionID uint64, email string) (*entity.OTPCode, error) {
	code, err := s.generator.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate OTP: %w", err)
	}

	now := s.timeProvider.Now()
	otp := &entity.OTPCode{
		TransactionID: transactionID,
		Code:          code,
		Email:         email,
		ExpiresAt:     now.Add(s.ttl),
		CreatedAt:     now,
	}

	if err := s.uow.GetOTPRepository(ctx).Create(ctx, otp); err != nil {
		return nil, fmt.Errorf("failed to store OTP: %w", err)
	}

	s.logger.Info("OTP issued", map[string]any{
		"transaction_id": transactionID,
		"expires_at":     otp.ExpiresAt,
	})
	return otp, nil
}

// Mirror writes the code to the cache with its remaining lifetime
func (s *Service) Mirror(ctx context.Context, otp *entity.OTPCode) {
	ttl := otp.ExpiresAt.Sub(s.timeProvider.Now())
	if ttl <= 0 {
		return
	}
	if err := s.cache.Set(ctx, otp.TransactionID, otp.Code, ttl); err != nil {
		s.logger.Warn("Failed to mirror OTP to cache", map[string]any{
			"transaction_id": otp.TransactionID,
			"error":          err.Error(),
		})
	}
}

// Forget drops the cached code for the transaction
func (s *Service) Forget(ctx context.Context, transactionID uint64) {
	if err := s.cache.Delete(ctx, transactionID); err != nil {
		s.logger.Warn("Failed to drop cached OTP", map[string]any{
			"transaction_id": transactionID,
			"error":          err.Error(),
		})
	}
}

// Verify checks code against the active OTP. The attempt is counted before the
// comparison, on a row held FOR UPDATE, so concurrent calls cannot exceed the limit.
// Must run inside a unit of work.
func (s *Service) Verify(ctx context.Context, transactionID uint64, code string) (Outcome, error) {
	repo := s.uow.GetOTPRepository(ctx)

	active, err := repo.FindActiveForUpdate(ctx, transactionID, s.timeProvider.Now())
	if err != nil {
		return OutcomeNoActiveCode, fmt.Errorf("failed to load OTP: %w", err)
	}
	if active == nil {
		return OutcomeNoActiveCode, nil
	}

	s.compareMirror(ctx, active)

	if err := repo.IncrementAttempts(ctx, active.ID); err != nil {
		return OutcomeNoActiveCode, fmt.Errorf("failed to count OTP attempt: %w", err)
	}
	active.Attempts++

	if active.AttemptsExhausted(s.maxAttempts) {
		s.logger.Warn("OTP attempt limit reached", map[string]any{
			"transaction_id": transactionID,
			"attempts":       active.Attempts,
		})
		return OutcomeExhausted, nil
	}

	if !active.Matches(code) {
		return OutcomeRejected, nil
	}

	if err := repo.MarkUsed(ctx, active.ID); err != nil {
		return OutcomeNoActiveCode, fmt.Errorf("failed to consume OTP: %w", err)
	}
	active.IsUsed = true

	return OutcomeVerified, nil
}

// Latest returns the newest code for the transaction, or nil
func (s *Service) Latest(ctx context.Context, transactionID uint64) (*entity.OTPCode, error) {
	otp, err := s.uow.GetOTPRepository(ctx).FindLatest(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load OTP: %w", err)
	}
	return otp, nil
}

// compareMirror logs when the cache disagrees with the database. It never
// affects the outcome.
func (s *Service) compareMirror(ctx context.Context, active *entity.OTPCode) {
	cached, found, err := s.cache.Get(ctx, active.TransactionID)
	switch {
	case err != nil:
		s.logger.Debug("OTP cache unavailable", map[string]any{
			"transaction_id": active.TransactionID,
			"error":          err.Error(),
		})
	case !found:
		s.logger.Debug("OTP cache miss", map[string]any{"transaction_id": active.TransactionID})
	case cached != active.Code:
		s.logger.Warn("Stale OTP in cache", map[string]any{"transaction_id": active.TransactionID})
	}
}
