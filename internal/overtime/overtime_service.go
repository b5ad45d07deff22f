package overtime

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go-timesheet/internal/authz"
	"go-timesheet/internal/events"
	"go-timesheet/internal/messaging/kafka"
	overtimeerrors "go-timesheet/internal/overtime/errors"
	"go-timesheet/internal/policy"
	"go-timesheet/internal/shared/contextutil"
	"go-timesheet/internal/summary"
	"go-timesheet/internal/tenant"
	"go-timesheet/internal/timesheet"
	"go-timesheet/internal/workweek"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=overtime_service.go -destination=mock/overtime_service_mock.go -package=mock
type Service interface {
	WeekAlert(ctx context.Context, actor authz.Actor, weekAnchor string) (AlertResponse, error)
}

type service struct {
	db        *sql.DB
	records   timesheet.Repository
	tenants   tenant.Repository
	authz     authz.Service
	summaries summary.Client
	outbox    kafka.OutboxRepository
	rdb       *redis.Client
	logger    *zap.Logger
}

func NewService(
	db *sql.DB,
	records timesheet.Repository,
	tenants tenant.Repository,
	authzService authz.Service,
	summaries summary.Client,
	outbox kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("overtime.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("overtime.service")
	}
	return &service{
		db:        db,
		records:   records,
		tenants:   tenants,
		authz:     authzService,
		summaries: summaries,
		outbox:    outbox,
		rdb:       rdb,
		logger:    l,
	}
}

// WeekAlert runs the full advisory pipeline for one displayed week. The
// display filters a user may have active are deliberately not accepted
// here: the alert is computed from the policy-visible set only, so
// toggling a cosmetic filter can never change it.
func (s *service) WeekAlert(ctx context.Context, actor authz.Actor, weekAnchor string) (AlertResponse, error) {
	if _, err := uuid.Parse(actor.TenantID); err != nil {
		return AlertResponse{}, overtimeerrors.ErrInvalidTenantID
	}

	anchor, err := workweek.ParseDay(weekAnchor)
	if err != nil {
		return AlertResponse{}, overtimeerrors.ErrInvalidWeekAnchor
	}

	tenantCtx, weekStart := s.tenantContext(ctx, actor.TenantID)
	window := workweek.Containing(anchor, weekStart)

	rows, err := s.records.FindByTenantAndRange(ctx, actor.TenantID, window.Start, window.End())
	if err != nil {
		return AlertResponse{}, err
	}

	stamped := s.authz.StampViewPermission(ctx, actor, timesheet.ToPipelineRecords(rows))
	visible := policy.FilterVisible(stamped)

	totals := policy.AggregateDaily(visible)
	candidates := policy.EvaluateDaily(totals, window, policy.CaliforniaDailyDoubleTime.DailyThreshold)

	summaryResult := s.fetchSummary(ctx, actor.TenantID, window.AnchorDay())

	alert := policy.ResolveAlert(policy.AlertInput{
		Tenant:     tenantCtx,
		Window:     &window,
		Summary:    summaryResult,
		Candidates: candidates,
		Totals:     totals,
	})

	if alert.Kind == policy.AlertViolation {
		s.publishAlert(ctx, actor.TenantID, tenantCtx.PolicyKey, window, alert)
	}

	return mapToAlertResponse(window, tenantCtx, summaryResult, alert), nil
}

func (s *service) tenantContext(ctx context.Context, tenantID string) (policy.TenantContext, time.Weekday) {
	settings, err := s.tenants.FindByTenant(ctx, tenantID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("load tenant settings failed", zap.Error(err))
		}
		// No settings means no jurisdiction match and the default week
		// start; the resolver will return a none alert.
		return policy.TenantContext{}, workweek.ResolveWeekStart("")
	}
	return policy.TenantContext{
		Region:    settings.Region,
		State:     settings.State,
		PolicyKey: settings.PolicyKey,
	}, workweek.ResolveWeekStart(settings.WeekStart)
}

// fetchSummary maps the payroll fetch outcome onto the three summary
// states the resolver understands. Errors suppress the alert downstream;
// they never fail the request.
func (s *service) fetchSummary(ctx context.Context, tenantID, weekAnchor string) policy.SummaryResult {
	weekly, err := s.summaries.WeekSummary(ctx, tenantID, weekAnchor)
	if err != nil {
		s.logger.Warn("fetch weekly summary failed",
			zap.String("week_anchor", weekAnchor),
			zap.Error(err),
		)
		return policy.SummaryResult{State: policy.SummaryError}
	}
	return policy.SummaryResult{State: policy.SummaryLoaded, Summary: weekly}
}

// publishAlert enqueues the alert event through the outbox, at most once
// per tenant and week. Failures are logged and swallowed: the alert is
// advisory and the API response must not depend on the notification leg.
func (s *service) publishAlert(ctx context.Context, tenantID, policyKey string, window workweek.Window, alert policy.Alert) {
	dedupeKey := fmt.Sprintf("otalert:%s:%s", tenantID, window.AnchorDay())
	isNew, err := s.rdb.SetNX(ctx, dedupeKey, "sent", 24*time.Hour).Result()
	if err != nil {
		s.logger.Warn("alert dedupe check failed", zap.Error(err))
		return
	}
	if !isNew {
		return
	}

	eventRows := make([]events.OvertimeAlertRow, len(alert.Rows))
	for i, r := range alert.Rows {
		eventRows[i] = events.OvertimeAlertRow{
			Date:        r.Date,
			ExcessHours: r.ExcessHours,
			TotalHours:  r.TotalHours,
		}
	}

	payload, err := json.Marshal(events.OvertimeAlertEvent{
		EventType:  "overtime.violation.detected",
		TenantID:   tenantID,
		WeekAnchor: window.AnchorDay(),
		PolicyKey:  policyKey,
		Rows:       eventRows,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		s.logger.Error("marshal overtime alert event failed", zap.Error(err))
		return
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("begin outbox tx failed", zap.Error(err))
		return
	}
	defer tx.Rollback()

	err = s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "overtime_alert",
		AggregateID:   tenantID,
		EventType:     "overtime.violation.detected",
		Topic:         events.OvertimeAlertTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
	if err != nil {
		s.logger.Error("enqueue overtime alert failed", zap.Error(err))
		return
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("commit outbox tx failed", zap.Error(err))
		return
	}

	s.logger.Info("overtime alert enqueued",
		zap.String("tenant_id", tenantID),
		zap.String("week_anchor", window.AnchorDay()),
		zap.Int("rows", len(alert.Rows)),
	)
}

func mapToAlertResponse(window workweek.Window, tenantCtx policy.TenantContext, summaryResult policy.SummaryResult, alert policy.Alert) AlertResponse {
	resp := AlertResponse{
		WeekAnchor:   window.AnchorDay(),
		PolicyKey:    tenantCtx.PolicyKey,
		SummaryState: string(summaryResult.State),
		Kind:         string(alert.Kind),
		Message:      alert.Message,
	}
	if len(alert.Rows) > 0 {
		resp.Rows = make([]AlertRowResponse, len(alert.Rows))
		for i, r := range alert.Rows {
			resp.Rows[i] = AlertRowResponse{
				Date:        r.Date,
				ExcessHours: r.ExcessHours,
				TotalHours:  r.TotalHours,
			}
		}
	}
	return resp
}
