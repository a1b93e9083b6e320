package gateway

import "context"

// Payment event types
const (
	EventPaymentCompleted = "tuition.payment.completed"
	EventPaymentCancelled = "tuition.payment.cancelled"
)

// EventPublisher emits domain events to downstream consumers
type EventPublisher interface {
	Publish(ctx context.Context, eventType string, payload []byte, key string) error
	Close() error
}
