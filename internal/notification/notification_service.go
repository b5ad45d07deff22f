package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go-timesheet/internal/events"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const KindOvertimeViolation = "OVERTIME_VIOLATION"

//go:generate mockgen -source=notification_service.go -destination=mock/notification_service_mock.go -package=mock
type Service interface {
	RecordOvertimeAlert(ctx context.Context, event events.OvertimeAlertEvent) error
	GetAll(ctx context.Context, tenantID string, limit int) ([]NotificationResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("notification.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.service")
	}
	return &service{repo: repo, logger: l}
}

// RecordOvertimeAlert materializes an alert event as one notification per
// tenant and week; redelivered events are dropped.
func (s *service) RecordOvertimeAlert(ctx context.Context, event events.OvertimeAlertEvent) error {
	tenantUUID, err := uuid.Parse(event.TenantID)
	if err != nil {
		return fmt.Errorf("invalid tenant id in event: %w", err)
	}

	exists, err := s.repo.ExistsForWeek(ctx, event.TenantID, KindOvertimeViolation, event.WeekAnchor)
	if err != nil {
		return err
	}
	if exists {
		s.logger.Debug("overtime alert already recorded, skipping",
			zap.String("tenant_id", event.TenantID),
			zap.String("week_anchor", event.WeekAnchor),
		)
		return nil
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	n := &Notification{
		ID:         uuid.New(),
		TenantID:   tenantUUID,
		Kind:       KindOvertimeViolation,
		Message:    fmt.Sprintf("Daily double-time threshold exceeded in the week of %s (%s)", event.WeekAnchor, event.PolicyKey),
		WeekAnchor: event.WeekAnchor,
		Payload:    payload,
	}

	if err := s.repo.Create(ctx, n); err != nil {
		return err
	}

	s.logger.Info("overtime notification recorded",
		zap.String("tenant_id", event.TenantID),
		zap.String("week_anchor", event.WeekAnchor),
		zap.Int("rows", len(event.Rows)),
	)
	return nil
}

func (s *service) GetAll(ctx context.Context, tenantID string, limit int) ([]NotificationResponse, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}
	rows, err := s.repo.FindAllByTenant(ctx, tenantID, limit)
	if err != nil {
		return nil, err
	}

	res := make([]NotificationResponse, len(rows))
	for i, n := range rows {
		res[i] = NotificationResponse{
			ID:         n.ID.String(),
			Kind:       n.Kind,
			Message:    n.Message,
			WeekAnchor: n.WeekAnchor,
			Payload:    n.Payload,
			CreatedAt:  n.CreatedAt.UTC().Format(time.RFC3339),
		}
	}
	return res, nil
}
