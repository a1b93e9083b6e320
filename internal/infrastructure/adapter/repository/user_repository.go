package repository

import (
	"context"

	"github.com/amirhossein-jamali/tuition-payment/internal/domain/entity"
	errs "github.com/amirhossein-jamali/tuition-payment/internal/domain/error"
	coreport "github.com/amirhossein-jamali/tuition-payment/internal/domain/port/core"
	"github.com/amirhossein-jamali/tuition-payment/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// UserRepository implements UserRepository interface using GORM
type UserRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts a user model to an entity
func (r *UserRepository) modelToEntity(userModel *model.User) *entity.User {
	user := entity.RestoreUser(userModel.ID, userModel.Balance)
	user.Username = userModel.Username
	user.FullName = userModel.FullName
	user.Phone = userModel.Phone
	user.Email = userModel.Email
	user.IsActive = userModel.IsActive
	user.CreatedAt = userModel.CreatedAt
	user.UpdatedAt = userModel.UpdatedAt
	return user
}

// handleDatabaseError standardizes database error handling
func (r *UserRepository) handleDatabaseError(operation string, err error, userID uint64) error {
	return handleDatabaseError(r.logger, r.errorClassifier, operation, err, errs.ErrUserNotFound, map[string]any{
		"user_id": userID,
	})
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uint64) (*entity.User, error) {
	return r.get(ctx, r.db.WithContext(ctx), id)
}

// GetByIDForUpdate retrieves a user and row-locks it for the rest of the unit
func (r *UserRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*entity.User, error) {
	return r.get(ctx, r.db.WithContext(ctx).Clauses(forUpdate()), id)
}

func (r *UserRepository) get(_ context.Context, db *gorm.DB, id uint64) (*entity.User, error) {
	r.logger.Debug("Getting user by ID", map[string]any{
		"user_id": id,
	})

	var userModel model.User
	if err := db.First(&userModel, id).Error; err != nil {
		return nil, r.handleDatabaseError("getting user", err, id)
	}

	return r.modelToEntity(&userModel), nil
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	r.logger.Debug("Creating new user", map[string]any{
		"user_id": user.ID,
		"balance": user.GetBalance(),
	})

	userModel := model.User{
		ID:        user.ID,
		Username:  user.Username,
		FullName:  user.FullName,
		Phone:     user.Phone,
		Email:     user.Email,
		Balance:   user.Balance(),
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}

	if err := r.db.WithContext(ctx).Create(&userModel).Error; err != nil {
		return r.handleDatabaseError("creating user", err, user.ID)
	}

	r.logger.Info("User created successfully", map[string]any{
		"user_id": user.ID,
		"balance": user.GetBalance(),
	})
	return nil
}

// UpdateBalance persists the user's current balance
func (r *UserRepository) UpdateBalance(ctx context.Context, user *entity.User) error {
	r.logger.Debug("Updating user balance", map[string]any{
		"user_id": user.ID,
		"balance": user.GetBalance(),
	})

	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"balance":    user.Balance(),
			"updated_at": user.UpdatedAt,
		})

	if result.Error != nil {
		return r.handleDatabaseError("updating user balance", result.Error, user.ID)
	}

	if result.RowsAffected == 0 {
		r.logger.Warn("User not found during update", map[string]any{
			"user_id": user.ID,
		})
		return errs.ErrUserNotFound
	}

	r.logger.Info("User balance updated", map[string]any{
		"user_id": user.ID,
		"balance": user.GetBalance(),
	})
	return nil
}
