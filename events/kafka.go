package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"
)

// messageWriter is the part of *kafka.Writer the publisher needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

const (
	writeTimeout = 5 * time.Second
	// batchTimeout bounds how long a single event waits for company before it is flushed.
	batchTimeout = 10 * time.Millisecond
)

// KafkaPublisher writes events as JSON to a single topic, keyed by resource id
// so every change to one restaurant lands on the same partition.
type KafkaPublisher struct {
	writer messageWriter
	topic  string
}

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireOne,
			AllowAutoTopicCreation: true,
			BatchSize:              1,
			BatchTimeout:           batchTimeout,
			WriteTimeout:           writeTimeout,
		},
		topic: topic,
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, evt Event) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(evt.ResourceID),
		Value: payload,
		Time:  evt.Timestamp,
		Headers: []kafka.Header{
			{Key: "entity", Value: []byte(evt.Entity)},
			{Key: "action", Value: []byte(evt.Action)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write event to %s: %w", p.topic, err)
	}

	slog.Debug("event published",
		slog.String("topic", p.topic),
		slog.String("entity", evt.Entity),
		slog.String("action", evt.Action),
		slog.String("resourceId", evt.ResourceID))
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
