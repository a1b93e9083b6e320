package payment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/amirhossein-jamali/tuition-payment/internal/domain/entity"
	errs "github.com/amirhossein-jamali/tuition-payment/internal/domain/error"
	coreport "github.com/amirhossein-jamali/tuition-payment/internal/domain/port/core"
	"github.com/amirhossein-jamali/tuition-payment/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/tuition-payment/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/tuition-payment/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/tuition-payment/internal/domain/usecase/lock"
	"github.com/amirhossein-jamali/tuition-payment/internal/domain/usecase/otp"
)

// Config holds the reservation policy
type Config struct {
	LockTTL time.Duration
}

// Coordinator drives a payment from initiate to confirm. Each operation is one
// unit of work; row locks on the student and payer serialize competing callers
// before the reservation rows are checked.
type Coordinator struct {
	uow          persistence.UnitOfWork
	locks        *lock.Manager
	otps         *otp.Service
	notifier     gateway.NotificationGateway
	publisher    gateway.EventPublisher
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	lockTTL      time.Duration
}

// NewCoordinator creates a new payment coordinator
func NewCoordinator(
	uow persistence.UnitOfWork,
	locks *lock.Manager,
	otps *otp.Service,
	notifier gateway.NotificationGateway,
	publisher gateway.EventPublisher,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	config Config,
) *Coordinator {
	if config.LockTTL <= 0 {
		config.LockTTL = lock.DefaultTTL
	}

	logger.Info("Payment coordinator initialized", map[string]any{
		"lock_ttl": config.LockTTL.String(),
		"otp_ttl":  otps.TTL().String(),
	})

	return &Coordinator{
		uow:          uow,
		locks:        locks,
		otps:         otps,
		notifier:     notifier,
		publisher:    publisher,
		timeProvider: timeProvider,
		logger:       logger,
		lockTTL:      config.LockTTL,
	}
}

var _ usecase.PaymentUseCase = (*Coordinator)(nil)

// Initiate creates a pending transaction for the student's tuition and reserves
// both the student and the payer
func (c *Coordinator) Initiate(ctx context.Context, caller entity.Caller, req usecase.InitiateRequest) (*usecase.InitiateResult, error) {
	if err := caller.Validate(); err != nil {
		return nil, err
	}
	studentID := strings.TrimSpace(req.StudentID)
	if err := ValidateStudentID(studentID); err != nil {
		return nil, err
	}

	var result *usecase.InitiateResult
	err := c.uow.WithinTransaction(ctx, func(txCtx context.Context) error {
		student, err := c.uow.GetStudentRepository(txCtx).GetByIDForUpdate(txCtx, studentID)
		if err != nil {
			return err
		}
		if student.IsPaid {
			return errs.ErrAlreadyPaid
		}

		user, err := c.uow.GetUserRepository(txCtx).GetByIDForUpdate(txCtx, caller.UserID)
		if err != nil {
			return err
		}
		if !user.IsActive {
			return errs.ErrUserNotFound
		}
		if !user.CanAfford(student.TuitionAmount()) {
			return errs.NewInsufficientBalanceError(user.ID, student.GetTuitionAmount(), user.GetBalance())
		}

		tx, err := entity.NewTransaction(user.ID, student.StudentID, student.TuitionAmount(), c.timeProvider)
		if err != nil {
			return err
		}
		if err := c.uow.GetTransactionRepository(txCtx).Create(txCtx, tx); err != nil {
			return err
		}

		if err := c.locks.AcquirePair(txCtx, student.StudentID, user.ID, tx.ID, c.lockTTL); err != nil {
			return err
		}

		result = &usecase.InitiateResult{
			TransactionID:   tx.ID,
			TransactionCode: tx.Code,
			StudentID:       student.StudentID,
			StudentName:     student.FullName,
			Amount:          tx.GetAmount(),
			Status:          tx.Status,
		}
		return nil
	})
	if err != nil {
		c.logFailure(ctx, "initiate", caller, 0, err)
		return nil, err
	}

	c.logger.Info("Payment initiated", map[string]any{
		"transaction_id":   result.TransactionID,
		"transaction_code": result.TransactionCode,
		"user_id":          caller.UserID,
		"student_id":       result.StudentID,
		"request_id":       coreport.RequestIDFromContext(ctx),
	})
	return result, nil
}

// SendOTP issues a fresh code and emails it. The email goes out after commit;
// a failed send is reported but the issued code and status stay.
func (c *Coordinator) SendOTP(ctx context.Context, caller entity.Caller, transactionID uint64) (*usecase.SendOTPResult, error) {
	if err := c.validateTarget(caller, transactionID); err != nil {
		return nil, err
	}

	var (
		issued *entity.OTPCode
		tx     *entity.Transaction
	)
	err := c.uow.WithinTransaction(ctx, func(txCtx context.Context) error {
		var err error
		tx, err = c.loadOwned(txCtx, caller, transactionID)
		if err != nil {
			return err
		}
		if tx.Status != entity.StatusPending && tx.Status != entity.StatusOTPSent {
			return errs.NewTransactionError(tx.ID, caller.UserID, string(tx.Status), "send-otp", errs.ErrInvalidState)
		}
		if err := c.requireLocks(txCtx, tx); err != nil {
			return err
		}

		issued, err = c.otps.Issue(txCtx, tx.ID, caller.Email)
		if err != nil {
			return err
		}

		if err := tx.MarkOTPSent(c.timeProvider); err != nil {
			return err
		}
		return c.uow.GetTransactionRepository(txCtx).UpdateStatus(txCtx, tx)
	})
	if err != nil {
		c.logFailure(ctx, "send-otp", caller, transactionID, err)
		return nil, err
	}

	c.otps.Mirror(ctx, issued)

	if !c.notifier.SendOTPEmail(ctx, caller.Email, issued.Code, tx.Code) {
		c.logger.Error("Failed to deliver OTP email", map[string]any{
			"transaction_id": tx.ID,
			"user_id":        caller.UserID,
		})
		return nil, errs.ErrNotificationFailed
	}

	return &usecase.SendOTPResult{
		OTPSent:   true,
		ExpiresIn: int64(c.otps.TTL() / time.Second),
	}, nil
}

// VerifyOTP checks the submitted code. A rejection that moved the attempt
// counter or the status is committed before the error is returned.
func (c *Coordinator) VerifyOTP(ctx context.Context, caller entity.Caller, req usecase.VerifyOTPRequest) (*usecase.VerifyOTPResult, error) {
	if err := c.validateTarget(caller, req.TransactionID); err != nil {
		return nil, err
	}
	if err := ValidateOTPCode(req.OTPCode); err != nil {
		return nil, err
	}

	var (
		outcome otp.Outcome
		tx      *entity.Transaction
	)
	err := c.uow.WithinTransaction(ctx, func(txCtx context.Context) error {
		var err error
		tx, err = c.loadOwned(txCtx, caller, req.TransactionID)
		if err != nil {
			return err
		}

		switch tx.Status {
		case entity.StatusFailed:
			return errs.ErrTooManyAttempts
		case entity.StatusOTPSent:
		default:
			return errs.NewTransactionError(tx.ID, caller.UserID, string(tx.Status), "verify-otp", errs.ErrInvalidState)
		}

		if err := c.requireLocks(txCtx, tx); err != nil {
			return err
		}

		outcome, err = c.otps.Verify(txCtx, tx.ID, req.OTPCode)
		if err != nil {
			return err
		}

		switch outcome {
		case otp.OutcomeVerified:
			if err := tx.MarkOTPVerified(c.timeProvider); err != nil {
				return err
			}
		case otp.OutcomeExhausted:
			if err := tx.MarkAsFailed(c.timeProvider); err != nil {
				return err
			}
		default:
			return nil
		}
		return c.uow.GetTransactionRepository(txCtx).UpdateStatus(txCtx, tx)
	})
	if err != nil {
		c.logFailure(ctx, "verify-otp", caller, req.TransactionID, err)
		return nil, err
	}

	switch outcome {
	case otp.OutcomeVerified:
		c.otps.Forget(ctx, tx.ID)
		c.logger.Info("OTP verified", map[string]any{
			"transaction_id": tx.ID,
			"user_id":        caller.UserID,
		})
		return &usecase.VerifyOTPResult{Verified: true, TransactionStatus: tx.Status}, nil
	case otp.OutcomeExhausted:
		c.otps.Forget(ctx, tx.ID)
		c.logger.Warn("Transaction failed after too many OTP attempts", map[string]any{
			"transaction_id": tx.ID,
			"user_id":        caller.UserID,
		})
		return nil, errs.ErrTooManyAttempts
	default:
		return nil, errs.ErrInvalidOrExpiredOTP
	}
}

// Confirm moves the funds. The debit, the paid flag, the completed status, the
// history row and the lock release commit together or not at all.
func (c *Coordinator) Confirm(ctx context.Context, caller entity.Caller, transactionID uint64) (*usecase.ConfirmResult, error) {
	if err := c.validateTarget(caller, transactionID); err != nil {
		return nil, err
	}

	var (
		tx      *entity.Transaction
		user    *entity.User
		student *entity.Student
	)
	err := c.uow.WithinTransaction(ctx, func(txCtx context.Context) error {
		var err error
		tx, err = c.loadOwned(txCtx, caller, transactionID)
		if err != nil {
			return err
		}
		if tx.Status != entity.StatusOTPVerified {
			return errs.NewTransactionError(tx.ID, caller.UserID, string(tx.Status), "confirm", errs.ErrInvalidState)
		}
		if err := c.requireLocks(txCtx, tx); err != nil {
			return err
		}

		// Student row before payer row, the same order Initiate takes them in
		studentRepo := c.uow.GetStudentRepository(txCtx)
		student, err = studentRepo.GetByIDForUpdate(txCtx, tx.StudentID)
		if err != nil {
			return err
		}
		if student.IsPaid {
			return errs.ErrAlreadyPaid
		}

		userRepo := c.uow.GetUserRepository(txCtx)
		user, err = userRepo.GetByIDForUpdate(txCtx, tx.PayerID)
		if err != nil {
			return err
		}
		if !user.CanAfford(tx.Amount) {
			return errs.NewInsufficientBalanceError(user.ID, tx.GetAmount(), user.GetBalance())
		}

		balanceBefore := user.Balance()
		if err := user.Debit(tx.Amount, c.timeProvider); err != nil {
			return err
		}
		if err := userRepo.UpdateBalance(txCtx, user); err != nil {
			return err
		}

		if err := student.MarkPaid(); err != nil {
			return err
		}
		if err := studentRepo.MarkPaid(txCtx, student.StudentID); err != nil {
			return err
		}

		if err := tx.MarkAsCompleted(c.timeProvider); err != nil {
			return err
		}
		if err := c.uow.GetTransactionRepository(txCtx).UpdateStatus(txCtx, tx); err != nil {
			return err
		}

		history := entity.NewPaymentHistory(tx, balanceBefore, user.Balance(), c.timeProvider)
		if err := c.uow.GetHistoryRepository(txCtx).Create(txCtx, history); err != nil {
			return err
		}

		_, err = c.locks.Release(txCtx, tx.ID)
		return err
	})
	if err != nil {
		c.logFailure(ctx, "confirm", caller, transactionID, err)
		return nil, err
	}

	c.logger.Info("Payment completed", map[string]any{
		"transaction_id":   tx.ID,
		"transaction_code": tx.Code,
		"user_id":          caller.UserID,
		"student_id":       tx.StudentID,
		"amount":           tx.GetAmount(),
		"new_balance":      user.GetBalance(),
	})

	c.afterConfirm(ctx, caller, tx, user, student)

	return &usecase.ConfirmResult{
		Success:    true,
		NewBalance: user.GetBalance(),
		Receipt: usecase.Receipt{
			TransactionCode: tx.Code,
			StudentID:       tx.StudentID,
			Amount:          tx.GetAmount(),
			CompletedAt:     *tx.CompletedAt,
		},
	}, nil
}

// afterConfirm runs the best-effort side effects of a committed payment
func (c *Coordinator) afterConfirm(ctx context.Context, caller entity.Caller, tx *entity.Transaction, user *entity.User, student *entity.Student) {
	email := user.Email
	if email == "" {
		email = caller.Email
	}

	delivered := c.notifier.SendConfirmationEmail(ctx, email, gateway.ConfirmationDetails{
		PayerName:       user.FullName,
		TransactionCode: tx.Code,
		StudentID:       student.StudentID,
		StudentName:     student.FullName,
		Amount:          tx.GetAmount(),
		NewBalance:      user.GetBalance(),
		CompletedAt:     *tx.CompletedAt,
	})
	if !delivered {
		c.logger.Warn("Failed to deliver confirmation email", map[string]any{
			"transaction_id": tx.ID,
			"user_id":        user.ID,
		})
	}

	c.publish(ctx, gateway.EventPaymentCompleted, tx)
	c.otps.Forget(ctx, tx.ID)
}

// CheckActive returns the caller's reserved transaction, if any
func (c *Coordinator) CheckActive(ctx context.Context, caller entity.Caller) (*usecase.ActiveTransactionResult, error) {
	if err := caller.Validate(); err != nil {
		return nil, err
	}

	userLock, err := c.locks.ActiveForResource(ctx, entity.ResourceUserAccount, entity.UserResourceID(caller.UserID))
	if err != nil {
		c.logFailure(ctx, "check-active", caller, 0, err)
		return nil, err
	}
	if userLock == nil {
		return &usecase.ActiveTransactionResult{HasActiveTransaction: false}, nil
	}

	tx, err := c.uow.GetTransactionRepository(ctx).GetByID(ctx, userLock.TransactionID)
	if err != nil {
		c.logFailure(ctx, "check-active", caller, userLock.TransactionID, err)
		return nil, err
	}

	var studentName string
	student, err := c.uow.GetStudentRepository(ctx).GetByID(ctx, tx.StudentID)
	switch {
	case err == nil:
		studentName = student.FullName
	case !errors.Is(err, errs.ErrStudentNotFound):
		c.logFailure(ctx, "check-active", caller, tx.ID, err)
		return nil, err
	}

	return &usecase.ActiveTransactionResult{
		HasActiveTransaction: true,
		Transaction: &usecase.ActiveTransaction{
			ID:          tx.ID,
			Code:        tx.Code,
			Status:      tx.Status,
			StudentID:   tx.StudentID,
			StudentName: studentName,
			Amount:      tx.GetAmount(),
			LockedAt:    userLock.LockedAt,
			ExpiresAt:   userLock.ExpiresAt,
		},
	}, nil
}

// CancelActive releases whatever the caller has reserved. Having nothing to
// cancel is not an error.
func (c *Coordinator) CancelActive(ctx context.Context, caller entity.Caller) (*usecase.CancelResult, error) {
	if err := caller.Validate(); err != nil {
		return nil, err
	}

	var (
		tx        *entity.Transaction
		cancelled bool
	)
	err := c.uow.WithinTransaction(ctx, func(txCtx context.Context) error {
		userLock, err := c.locks.ActiveForResource(txCtx, entity.ResourceUserAccount, entity.UserResourceID(caller.UserID))
		if err != nil || userLock == nil {
			return err
		}

		txRepo := c.uow.GetTransactionRepository(txCtx)
		tx, err = txRepo.GetByIDForUpdate(txCtx, userLock.TransactionID)
		if err != nil {
			return err
		}

		if _, err := c.locks.Release(txCtx, tx.ID); err != nil {
			return err
		}

		if tx.Status.IsTerminal() {
			return nil
		}
		if err := tx.MarkAsCancelled(c.timeProvider); err != nil {
			return err
		}
		cancelled = true
		return txRepo.UpdateStatus(txCtx, tx)
	})
	if err != nil {
		c.logFailure(ctx, "cancel-active", caller, 0, err)
		return nil, err
	}

	if tx == nil {
		return &usecase.CancelResult{Success: false, Message: "No active transaction found"}, nil
	}

	c.otps.Forget(ctx, tx.ID)
	if cancelled {
		c.publish(ctx, gateway.EventPaymentCancelled, tx)
	}

	c.logger.Info("Active transaction cancelled", map[string]any{
		"transaction_id": tx.ID,
		"user_id":        caller.UserID,
		"status":         string(tx.Status),
	})

	return &usecase.CancelResult{
		Success:       true,
		Message:       "Transaction cancelled successfully",
		TransactionID: tx.ID,
	}, nil
}

// OTPStatus reports how long the newest code for the transaction has left
func (c *Coordinator) OTPStatus(ctx context.Context, caller entity.Caller, transactionID uint64) (*usecase.OTPStatusResult, error) {
	if err := c.validateTarget(caller, transactionID); err != nil {
		return nil, err
	}

	if _, err := c.loadOwnedReadOnly(ctx, caller, transactionID); err != nil {
		return nil, err
	}

	latest, err := c.otps.Latest(ctx, transactionID)
	if err != nil {
		c.logFailure(ctx, "otp-status", caller, transactionID, err)
		return nil, err
	}
	if latest == nil {
		return &usecase.OTPStatusResult{HasOTP: false}, nil
	}

	now := c.timeProvider.Now()
	remaining := latest.RemainingSeconds(now)
	expiresAt := latest.ExpiresAt

	return &usecase.OTPStatusResult{
		HasOTP:           true,
		RemainingSeconds: remaining,
		ExpiresAt:        &expiresAt,
		IsExpired:        !latest.ExpiresAt.After(now),
	}, nil
}

func (c *Coordinator) validateTarget(caller entity.Caller, transactionID uint64) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	return ValidateTransactionID(transactionID)
}

// loadOwned row-locks the transaction. Someone else's transaction looks missing.
func (c *Coordinator) loadOwned(ctx context.Context, caller entity.Caller, transactionID uint64) (*entity.Transaction, error) {
	tx, err := c.uow.GetTransactionRepository(ctx).GetByIDForUpdate(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if !tx.BelongsTo(caller.UserID) {
		return nil, errs.ErrTransactionNotFound
	}
	return tx, nil
}

func (c *Coordinator) loadOwnedReadOnly(ctx context.Context, caller entity.Caller, transactionID uint64) (*entity.Transaction, error) {
	tx, err := c.uow.GetTransactionRepository(ctx).GetByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if !tx.BelongsTo(caller.UserID) {
		return nil, errs.ErrTransactionNotFound
	}
	return tx, nil
}

// requireLocks fails with ErrLockExpired unless tx still owns both reservations
func (c *Coordinator) requireLocks(ctx context.Context, tx *entity.Transaction) error {
	held, err := c.locks.HoldsPair(ctx, tx.StudentID, tx.PayerID, tx.ID)
	if err != nil {
		return err
	}
	if !held {
		c.logger.Warn("Transaction no longer holds its locks", map[string]any{
			"transaction_id": tx.ID,
			"status":         string(tx.Status),
		})
		return fmt.Errorf("transaction %d: %w", tx.ID, errs.ErrLockExpired)
	}
	return nil
}

// logFailure logs domain rejections at info and anything else at error
func (c *Coordinator) logFailure(ctx context.Context, operation string, caller entity.Caller, transactionID uint64, err error) {
	fields := map[string]any{
		"operation":      operation,
		"user_id":        caller.UserID,
		"transaction_id": transactionID,
		"error":          err.Error(),
		"error_code":     errs.ErrorCode(err),
		"request_id":     coreport.RequestIDFromContext(ctx),
	}

	var logFielder interface{ LogFields() map[string]any }
	if errors.As(err, &logFielder) {
		for k, v := range logFielder.LogFields() {
			fields[k] = v
		}
	}

	if errs.IsDomainError(err) {
		c.logger.Info("Payment operation rejected", fields)
		return
	}
	c.logger.Error("Payment operation failed", fields)
}
