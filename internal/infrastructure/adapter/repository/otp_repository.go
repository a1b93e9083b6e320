package repository

import (
	"context"
	"errors"
	"time"

	"github.com/amirhossein-jamali/tuition-payment/internal/domain/entity"
	errs "github.com/amirhossein-jamali/tuition-payment/internal/domain/error"
	coreport "github.com/amirhossein-jamali/tuition-payment/internal/domain/port/core"
	"github.com/amirhossein-jamali/tuition-payment/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// OTPRepository stores OTP codes using GORM
type OTPRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewOTPRepository creates a new OTPRepository instance
func NewOTPRepository(db *gorm.DB, logger coreport.Logger) *OTPRepository {
	return &OTPRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *OTPRepository) modelToEntity(m *model.OTPCode) *entity.OTPCode {
	return &entity.OTPCode{
		ID:            m.ID,
		TransactionID: m.TransactionID,
		Code:          m.Code,
		Email:         m.Email,
		ExpiresAt:     m.ExpiresAt,
		Attempts:      m.Attempts,
		IsUsed:        m.IsUsed,
		CreatedAt:     m.CreatedAt,
	}
}

func (r *OTPRepository) handleDatabaseError(operation string, err error, transactionID uint64) error {
	return handleDatabaseError(r.logger, r.errorClassifier, operation, err, nil, map[string]any{
		"transaction_id": transactionID,
	})
}

// Create stores a newly issued code and sets its ID
func (r *OTPRepository) Create(ctx context.Context, otp *entity.OTPCode) error {
	otpModel := model.OTPCode{
		TransactionID: otp.TransactionID,
		Code:          otp.Code,
		Email:         otp.Email,
		ExpiresAt:     otp.ExpiresAt,
		Attempts:      otp.Attempts,
		IsUsed:        otp.IsUsed,
		CreatedAt:     otp.CreatedAt,
	}

	if err := r.db.WithContext(ctx).Create(&otpModel).Error; err != nil {
		return r.handleDatabaseError("creating otp", err, otp.TransactionID)
	}
	otp.ID = otpModel.ID

	r.logger.Debug("OTP stored", map[string]any{
		"transaction_id": otp.TransactionID,
		"otp_id":         otp.ID,
		"expires_at":     otp.ExpiresAt,
	})
	return nil
}

// FindActiveForUpdate returns the newest unused, unexpired code with a row lock, or nil
func (r *OTPRepository) FindActiveForUpdate(ctx context.Context, transactionID uint64, now time.Time) (*entity.OTPCode, error) {
	var otpModel model.OTPCode
	err := r.db.WithContext(ctx).
		Clauses(forUpdate()).
		Where("transaction_id = ? AND is_used = ? AND expires_at > ?", transactionID, false, now).
		Order("created_at DESC").Order("id DESC").
		First(&otpModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, r.handleDatabaseError("finding active otp", err, transactionID)
	}
	return r.modelToEntity(&otpModel), nil
}

// FindLatest returns the newest code for the transaction regardless of state, or nil
func (r *OTPRepository) FindLatest(ctx context.Context, transactionID uint64) (*entity.OTPCode, error) {
	var otpModel model.OTPCode
	err := r.db.WithContext(ctx).
		Where("transaction_id = ?", transactionID).
		Order("created_at DESC").Order("id DESC").
		First(&otpModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, r.handleDatabaseError("finding latest otp", err, transactionID)
	}
	return r.modelToEntity(&otpModel), nil
}

// IncrementAttempts adds one to the attempts counter in place
func (r *OTPRepository) IncrementAttempts(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Model(&model.OTPCode{}).
		Where("id = ?", id).
		UpdateColumn("attempts", gorm.Expr("attempts + ?", 1))

	if result.Error != nil {
		return r.handleDatabaseError("incrementing otp attempts", result.Error, 0)
	}
	if result.RowsAffected == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// MarkUsed consumes the code
func (r *OTPRepository) MarkUsed(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Model(&model.OTPCode{}).
		Where("id = ?", id).
		UpdateColumn("is_used", true)

	if result.Error != nil {
		return r.handleDatabaseError("marking otp used", result.Error, 0)
	}
	if result.RowsAffected == 0 {
		return errs.ErrNotFound
	}
	return nil
}
