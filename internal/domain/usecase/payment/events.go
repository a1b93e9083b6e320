package payment

import (
	"context"
	"encoding/json"
	"time"

	"github.com/amirhossein-jamali/tuition-payment/internal/domain/entity"
)

// PaymentEvent is the payload published when a transaction completes or is cancelled
type PaymentEvent struct {
	EventType       string    `json:"eventType"`
	TransactionID   uint64    `json:"transactionId"`
	TransactionCode string    `json:"transactionCode"`
	PayerID         uint64    `json:"payerId"`
	StudentID       string    `json:"studentId"`
	Amount          string    `json:"amount"`
	Status          string    `json:"status"`
	OccurredAt      time.Time `json:"occurredAt"`
}

// publish emits a payment event keyed by student id. Failures are logged only.
func (c *Coordinator) publish(ctx context.Context, eventType string, tx *entity.Transaction) {
	event := PaymentEvent{
		EventType:       eventType,
		TransactionID:   tx.ID,
		TransactionCode: tx.Code,
		PayerID:         tx.PayerID,
		StudentID:       tx.StudentID,
		Amount:          tx.GetAmount(),
		Status:          string(tx.Status),
		OccurredAt:      c.timeProvider.Now(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		c.logger.Error("Failed to encode payment event", map[string]any{
			"event_type":     eventType,
			"transaction_id": tx.ID,
			"error":          err.Error(),
		})
		return
	}

	if err := c.publisher.Publish(ctx, eventType, payload, tx.StudentID); err != nil {
		c.logger.Warn("Failed to publish payment event", map[string]any{
			"event_type":     eventType,
			"transaction_id": tx.ID,
			"error":          err.Error(),
		})
	}
}
