package repository

import (
	"context"

	"github.com/amirhossein-jamali/tuition-payment/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/tuition-payment/internal/domain/port/core"
	"github.com/amirhossein-jamali/tuition-payment/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// HistoryRepository is the append-only ledger store. It has no update or delete.
type HistoryRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewHistoryRepository creates a new HistoryRepository instance
func NewHistoryRepository(db *gorm.DB, logger coreport.Logger) *HistoryRepository {
	return &HistoryRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// historyRow is a ledger row joined with its transaction and student
type historyRow struct {
	model.TransactionHistory
	TransactionCode string
	StudentID       string
	StudentName     string
}

func (r *HistoryRepository) handleDatabaseError(operation string, err error, userID uint64) error {
	return handleDatabaseError(r.logger, r.errorClassifier, operation, err, nil, map[string]any{
		"user_id": userID,
	})
}

// Create appends a ledger row
func (r *HistoryRepository) Create(ctx context.Context, history *entity.TransactionHistory) error {
	historyModel := model.TransactionHistory{
		UserID:          history.UserID,
		TransactionID:   history.TransactionID,
		TransactionType: history.TransactionType,
		Amount:          history.Amount,
		BalanceBefore:   history.BalanceBefore,
		BalanceAfter:    history.BalanceAfter,
		Description:     history.Description,
		Status:          history.Status,
		CreatedAt:       history.CreatedAt,
	}

	if err := r.db.WithContext(ctx).Create(&historyModel).Error; err != nil {
		return r.handleDatabaseError("appending history", err, history.UserID)
	}
	history.ID = historyModel.ID

	r.logger.Info("History entry recorded", map[string]any{
		"user_id":        history.UserID,
		"transaction_id": history.TransactionID,
		"balance_before": entity.AmountInCentsToString(history.BalanceBefore),
		"balance_after":  entity.AmountInCentsToString(history.BalanceAfter),
	})
	return nil
}

// ListByUser returns one page of the payer's history, newest first, with the total count
func (r *HistoryRepository) ListByUser(ctx context.Context, userID uint64, limit, offset int) ([]*entity.TransactionHistory, int64, error) {
	db := r.db.WithContext(ctx)

	var total int64
	if err := db.Model(&model.TransactionHistory{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, r.handleDatabaseError("counting history", err, userID)
	}

	var rows []historyRow
	if err := db.Table("transaction_history AS h").
		Select("h.*, t.code AS transaction_code, t.student_id AS student_id, s.full_name AS student_name").
		Joins("JOIN transactions t ON t.id = h.transaction_id").
		Joins("LEFT JOIN students s ON s.student_id = t.student_id").
		Where("h.user_id = ?", userID).
		Order("h.created_at DESC").Order("h.id DESC").
		Limit(limit).Offset(offset).
		Scan(&rows).Error; err != nil {
		return nil, 0, r.handleDatabaseError("listing history", err, userID)
	}

	entries := make([]*entity.TransactionHistory, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, &entity.TransactionHistory{
			ID:              row.ID,
			UserID:          row.UserID,
			TransactionID:   row.TransactionID,
			TransactionCode: row.TransactionCode,
			StudentID:       row.StudentID,
			StudentName:     row.StudentName,
			TransactionType: row.TransactionType,
			Amount:          row.Amount,
			BalanceBefore:   row.BalanceBefore,
			BalanceAfter:    row.BalanceAfter,
			Description:     row.Description,
			Status:          row.Status,
			CreatedAt:       row.CreatedAt,
		})
	}
	return entries, total, nil
}
