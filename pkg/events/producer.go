package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"
)

// Producer publishes domain events. A nil Producer is valid and drops
// everything, which is how the services run without brokers configured.
type Producer struct {
	writer *kafka.Writer
}

func NewProducer(brokers []string) *Producer {
	if len(brokers) == 0 {
		return nil
	}
	return &Producer{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
		},
	}
}

func (p *Producer) PublishEvent(ctx context.Context, topic, key string, event interface{}) error {
	if p == nil {
		return nil
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("kafka: json.Marshal failed: %w", err)
	}

	msg := kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: data,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("kafka: write failed: %w", err)
	}
	return nil
}

func (p *Producer) Close() error {
	if p == nil {
		return nil
	}
	return p.writer.Close()
}
