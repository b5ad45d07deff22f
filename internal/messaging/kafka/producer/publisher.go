package producer

import (
	"context"

	"go-timesheet/internal/messaging/kafka"

	kafkago "github.com/segmentio/kafka-go"
)

// publishEvent writes one outbox event to its topic. The aggregate id
// (tenant for overtime alerts) keys the message so a tenant's alerts stay
// ordered within a partition.
func publishEvent(ctx context.Context, writer *kafkago.Writer, event kafka.OutboxEvent) error {
	headers := []kafkago.Header{
		{Key: "event_type", Value: []byte(event.EventType)},
		{Key: "aggregate_type", Value: []byte(event.AggregateType)},
	}
	if event.RequestID != "" {
		headers = append(headers, kafkago.Header{Key: "request_id", Value: []byte(event.RequestID)})
	}

	return writer.WriteMessages(ctx, kafkago.Message{
		Topic:   event.Topic,
		Key:     []byte(event.AggregateID),
		Value:   event.Payload,
		Headers: headers,
	})
}
