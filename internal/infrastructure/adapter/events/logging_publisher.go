package events

import (
	"context"

	coreport "github.com/amirhossein-jamali/tuition-payment/internal/domain/port/core"
)

// LoggingPublisher records events in the log instead of a broker
type LoggingPublisher struct {
	logger coreport.Logger
}

// NewLoggingPublisher creates a publisher that only logs
func NewLoggingPublisher(logger coreport.Logger) *LoggingPublisher {
	return &LoggingPublisher{logger: logger}
}

// Publish logs the event and always succeeds
func (p *LoggingPublisher) Publish(ctx context.Context, eventType string, payload []byte, key string) error {
	p.logger.Info("Event published", map[string]any{
		"event_type":    eventType,
		"partition_key": key,
		"payload_bytes": len(payload),
		"request_id":    coreport.RequestIDFromContext(ctx),
	})
	return nil
}

// Close does nothing
func (p *LoggingPublisher) Close() error {
	return nil
}
