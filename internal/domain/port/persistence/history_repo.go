package persistence

import (
	"context"

	"github.com/amirhossein-jamali/tuition-payment/internal/domain/entity"
)

// HistoryRepository is the append-only ledger of completed transfers
type HistoryRepository interface {
	// Create appends a ledger row
	Create(ctx context.Context, history *entity.TransactionHistory) error

	// ListByUser returns one page of a payer's history, newest first, and the total count
	ListByUser(ctx context.Context, userID uint64, limit, offset int) ([]*entity.TransactionHistory, int64, error)
}
