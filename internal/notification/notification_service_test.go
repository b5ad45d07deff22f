package notification_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-timesheet/internal/events"
	"go-timesheet/internal/notification"
	notificationMock "go-timesheet/internal/notification/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func alertEvent(tenantID string) events.OvertimeAlertEvent {
	return events.OvertimeAlertEvent{
		EventType:  "overtime.violation.detected",
		TenantID:   tenantID,
		WeekAnchor: "2026-03-08",
		PolicyKey:  "ca_daily_double_time",
		Rows: []events.OvertimeAlertRow{
			{Date: "2026-03-09", ExcessHours: 1.5, TotalHours: 13.5},
		},
		OccurredAt: time.Now().UTC(),
	}
}

func TestNotificationService_RecordOvertimeAlert(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	tenantID := uuid.New().String()

	t.Run("records one notification per tenant and week", func(t *testing.T) {
		repo := notificationMock.NewMockRepository(ctrl)
		svc := notification.NewService(repo)

		repo.EXPECT().
			ExistsForWeek(ctx, tenantID, notification.KindOvertimeViolation, "2026-03-08").
			Return(false, nil)
		repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, n *notification.Notification) error {
				assert.Equal(t, notification.KindOvertimeViolation, n.Kind)
				assert.Equal(t, "2026-03-08", n.WeekAnchor)
				assert.Contains(t, n.Message, "2026-03-08")
				assert.NotEmpty(t, n.Payload)
				return nil
			})

		assert.NoError(t, svc.RecordOvertimeAlert(ctx, alertEvent(tenantID)))
	})

	t.Run("redelivered events are dropped", func(t *testing.T) {
		repo := notificationMock.NewMockRepository(ctrl)
		svc := notification.NewService(repo)

		repo.EXPECT().
			ExistsForWeek(ctx, tenantID, notification.KindOvertimeViolation, "2026-03-08").
			Return(true, nil)

		assert.NoError(t, svc.RecordOvertimeAlert(ctx, alertEvent(tenantID)))
	})

	t.Run("invalid tenant id in the event is an error", func(t *testing.T) {
		repo := notificationMock.NewMockRepository(ctrl)
		svc := notification.NewService(repo)

		event := alertEvent("not-a-uuid")
		assert.Error(t, svc.RecordOvertimeAlert(ctx, event))
	})

	t.Run("persistence failure propagates for redelivery", func(t *testing.T) {
		repo := notificationMock.NewMockRepository(ctrl)
		svc := notification.NewService(repo)

		repo.EXPECT().ExistsForWeek(ctx, tenantID, notification.KindOvertimeViolation, "2026-03-08").Return(false, nil)
		repo.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("db down"))

		assert.Error(t, svc.RecordOvertimeAlert(ctx, alertEvent(tenantID)))
	})
}

func TestNotificationService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	tenantID := uuid.New().String()

	t.Run("clamps out-of-range limits to the default", func(t *testing.T) {
		repo := notificationMock.NewMockRepository(ctrl)
		svc := notification.NewService(repo)

		repo.EXPECT().FindAllByTenant(ctx, tenantID, 20).Return(nil, nil).Times(3)

		for _, limit := range []int{0, -5, 500} {
			_, err := svc.GetAll(ctx, tenantID, limit)
			assert.NoError(t, err)
		}
	})

	t.Run("maps rows to responses", func(t *testing.T) {
		repo := notificationMock.NewMockRepository(ctrl)
		svc := notification.NewService(repo)

		id := uuid.New()
		created := time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)
		repo.EXPECT().FindAllByTenant(ctx, tenantID, 10).Return([]notification.Notification{
			{ID: id, Kind: notification.KindOvertimeViolation, Message: "m", WeekAnchor: "2026-03-08", CreatedAt: created},
		}, nil)

		res, err := svc.GetAll(ctx, tenantID, 10)

		assert.NoError(t, err)
		assert.Len(t, res, 1)
		assert.Equal(t, id.String(), res[0].ID)
		assert.Equal(t, "2026-03-15T09:00:00Z", res[0].CreatedAt)
	})
}
