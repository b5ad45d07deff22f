package producer

import (
	"context"
	"time"

	"go-timesheet/internal/messaging/kafka"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const drainBatchSize = 50

// ProcessOutboxEvents polls the outbox on pollInterval and publishes due
// events until ctx is cancelled. Alert delivery is advisory: a publish
// failure only schedules a retry, it never surfaces to the API caller.
func ProcessOutboxEvents(
	ctx context.Context,
	repo kafka.OutboxRepository,
	writer *kafkago.Writer,
	logger *zap.Logger,
	pollInterval time.Duration,
) {
	if pollInterval <= 0 {
		pollInterval = 3 * time.Second
	}

	log := logger.Named("kafka.producer.worker")
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	log.Info("outbox worker started", zap.Duration("poll_interval", pollInterval))

	for {
		select {
		case <-ctx.Done():
			log.Info("outbox worker stopped")
			return
		case <-ticker.C:
			if err := drainOnce(ctx, repo, writer, log); err != nil {
				log.Error("outbox drain failed", zap.Error(err))
			}
		}
	}
}

// drainOnce publishes one batch of due events. Events that cannot be
// published are marked failed and picked up again after their backoff.
func drainOnce(
	ctx context.Context,
	repo kafka.OutboxRepository,
	writer *kafkago.Writer,
	logger *zap.Logger,
) error {
	events, err := repo.ListPending(ctx, drainBatchSize)
	if err != nil {
		return err
	}
	if len(events) == 0 {
		return nil
	}

	logger.Info("draining outbox batch", zap.Int("count", len(events)))

	for _, event := range events {
		if err := kafka.ValidateOutboxEvent(event); err != nil {
			// Unpublishable rows would poison the queue forever; park
			// them as failed with the validation reason.
			logger.Warn("skipping malformed outbox event",
				zap.String("outbox_id", event.ID),
				zap.Error(err),
			)
			_ = repo.MarkFailed(ctx, event.ID, err.Error())
			continue
		}

		if err := publishEvent(ctx, writer, event); err != nil {
			logger.Error("publish outbox event failed",
				zap.String("outbox_id", event.ID),
				zap.String("event_type", event.EventType),
				zap.String("topic", event.Topic),
				zap.Error(err),
			)
			_ = repo.MarkFailed(ctx, event.ID, err.Error())
			continue
		}

		if err := repo.MarkSent(ctx, event.ID); err != nil {
			logger.Error("mark outbox sent failed",
				zap.String("outbox_id", event.ID),
				zap.Error(err),
			)
			continue
		}

		logger.Info("outbox event published",
			zap.String("outbox_id", event.ID),
			zap.String("event_type", event.EventType),
			zap.String("topic", event.Topic),
		)
	}

	return nil
}
