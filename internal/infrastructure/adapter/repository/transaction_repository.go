package repository

import (
	"context"

	"github.com/amirhossein-jamali/tuition-payment/internal/domain/entity"
	errs "github.com/amirhossein-jamali/tuition-payment/internal/domain/error"
	coreport "github.com/amirhossein-jamali/tuition-payment/internal/domain/port/core"
	"github.com/amirhossein-jamali/tuition-payment/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// TransactionRepository implements TransactionRepository interface using GORM
type TransactionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// entityToModel converts a transaction entity to a database model
func (r *TransactionRepository) entityToModel(transaction *entity.Transaction) model.Transaction {
	return model.Transaction{
		ID:          transaction.ID,
		Code:        transaction.Code,
		PayerID:     transaction.PayerID,
		StudentID:   transaction.StudentID,
		Amount:      transaction.Amount,
		Status:      string(transaction.Status),
		CreatedAt:   transaction.CreatedAt,
		UpdatedAt:   transaction.UpdatedAt,
		CompletedAt: transaction.CompletedAt,
	}
}

// modelToEntity converts a transaction model to an entity
func (r *TransactionRepository) modelToEntity(m *model.Transaction) *entity.Transaction {
	return &entity.Transaction{
		ID:          m.ID,
		Code:        m.Code,
		PayerID:     m.PayerID,
		StudentID:   m.StudentID,
		Amount:      m.Amount,
		Status:      entity.TransactionStatus(m.Status),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		CompletedAt: m.CompletedAt,
	}
}

func (r *TransactionRepository) handleDatabaseError(operation string, err error, transactionID uint64) error {
	return handleDatabaseError(r.logger, r.errorClassifier, operation, err, errs.ErrTransactionNotFound, map[string]any{
		"transaction_id": transactionID,
	})
}

// Create saves a new transaction and copies the generated ID back onto the entity
func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	r.logger.Debug("Creating transaction", map[string]any{
		"transaction_code": transaction.Code,
		"payer_id":         transaction.PayerID,
		"student_id":       transaction.StudentID,
	})

	transactionModel := r.entityToModel(transaction)
	if err := r.db.WithContext(ctx).Create(&transactionModel).Error; err != nil {
		return r.handleDatabaseError("creating transaction", err, 0)
	}
	transaction.ID = transactionModel.ID

	r.logger.Info("Transaction created successfully", map[string]any{
		"transaction_id":   transaction.ID,
		"transaction_code": transaction.Code,
		"payer_id":         transaction.PayerID,
	})
	return nil
}

// GetByID retrieves a transaction by ID
func (r *TransactionRepository) GetByID(ctx context.Context, id uint64) (*entity.Transaction, error) {
	return r.get(r.db.WithContext(ctx), id)
}

// GetByIDForUpdate retrieves a transaction and row-locks it for the rest of the unit
func (r *TransactionRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*entity.Transaction, error) {
	return r.get(r.db.WithContext(ctx).Clauses(forUpdate()), id)
}

func (r *TransactionRepository) get(db *gorm.DB, id uint64) (*entity.Transaction, error) {
	var transactionModel model.Transaction
	if err := db.First(&transactionModel, id).Error; err != nil {
		return nil, r.handleDatabaseError("getting transaction", err, id)
	}
	return r.modelToEntity(&transactionModel), nil
}

// UpdateStatus persists status, updated_at and completed_at
func (r *TransactionRepository) UpdateStatus(ctx context.Context, transaction *entity.Transaction) error {
	r.logger.Debug("Updating transaction status", map[string]any{
		"transaction_id": transaction.ID,
		"status":         transaction.Status,
	})

	result := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("id = ?", transaction.ID).
		Updates(map[string]any{
			"status":       string(transaction.Status),
			"updated_at":   transaction.UpdatedAt,
			"completed_at": transaction.CompletedAt,
		})

	if result.Error != nil {
		return r.handleDatabaseError("updating transaction", result.Error, transaction.ID)
	}

	if result.RowsAffected == 0 {
		r.logger.Warn("Transaction not found during update", map[string]any{
			"transaction_id": transaction.ID,
		})
		return errs.ErrTransactionNotFound
	}

	return nil
}
