package events

import (
	"context"
	"fmt"
	"time"

	coreport "github.com/amirhossein-jamali/tuition-payment/internal/domain/port/core"
	"github.com/segmentio/kafka-go"
)

// Publish blocks on each single-message write, so the batch window stays short
const (
	publishBatchTimeout = 10 * time.Millisecond
	publishWriteTimeout = 5 * time.Second
)

// messageWriter is the part of *kafka.Writer the publisher uses
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes payment events to Kafka, one topic per event type
type KafkaPublisher struct {
	writer       messageWriter
	topicByEvent map[string]string
	timeProvider coreport.TimeProvider
}

// NewKafkaPublisher creates a publisher for the given brokers. Events without
// a mapped topic are written to a topic named after the event type.
func NewKafkaPublisher(brokers []string, topicByEvent map[string]string, timeProvider coreport.TimeProvider) (*KafkaPublisher, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("kafka publisher requires at least one broker")
	}
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			RequiredAcks:           kafka.RequireAll,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
			BatchTimeout:           publishBatchTimeout,
			WriteTimeout:           publishWriteTimeout,
		},
		topicByEvent: topicByEvent,
		timeProvider: timeProvider,
	}, nil
}

// Publish writes one message keyed by key
func (p *KafkaPublisher) Publish(ctx context.Context, eventType string, payload []byte, key string) error {
	topic := eventType
	if mapped, ok := p.topicByEvent[eventType]; ok && mapped != "" {
		topic = mapped
	}

	err := p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: payload,
		Time:  p.timeProvider.Now().UTC(),
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(eventType)},
		},
	})
	if err != nil {
		return fmt.Errorf("publish %s: %w", eventType, err)
	}
	return nil
}

// Close flushes pending writes
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
