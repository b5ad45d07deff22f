package consumer

import (
	"context"
	"encoding/json"

	"go-timesheet/internal/events"
	"go-timesheet/internal/notification"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeOvertimeAlerts turns published alert events into notification
// rows for the insights panel. Decode failures are committed and dropped;
// persistence failures are retried on redelivery.
func ConsumeOvertimeAlerts(
	ctx context.Context,
	reader *kafkago.Reader,
	notificationService notification.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.overtime_alerts")
	log.Info("overtime alert consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("overtime alert consumer stopped")
				return
			}
			log.Error("fetch overtime alert message failed", zap.Error(err))
			continue
		}

		var event events.OvertimeAlertEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode overtime alert event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if err := notificationService.RecordOvertimeAlert(ctx, event); err != nil {
			log.Error("record overtime alert failed",
				zap.String("tenant_id", event.TenantID),
				zap.String("week_anchor", event.WeekAnchor),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit overtime alert message failed", zap.Error(err))
			continue
		}
	}
}
