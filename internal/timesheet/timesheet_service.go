package timesheet

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"
	"time"

	"go-timesheet/internal/authz"
	"go-timesheet/internal/policy"
	"go-timesheet/internal/tenant"
	timesheeterrors "go-timesheet/internal/timesheet/errors"
	"go-timesheet/internal/workweek"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=timesheet_service.go -destination=mock/timesheet_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, actor authz.Actor, req CreateTimesheetRequest) (TimesheetResponse, error)
	ListWeek(ctx context.Context, actor authz.Actor, q ListWeekQuery) (ListWeekResult, error)
}

type service struct {
	db      *sql.DB
	repo    Repository
	tenants tenant.Repository
	authz   authz.Service
	logger  *zap.Logger
}

func NewService(db *sql.DB, repo Repository, tenants tenant.Repository, authzService authz.Service, logger ...*zap.Logger) Service {
	l := zap.L().Named("timesheet.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("timesheet.service")
	}
	return &service{db: db, repo: repo, tenants: tenants, authz: authzService, logger: l}
}

func (s *service) Create(ctx context.Context, actor authz.Actor, req CreateTimesheetRequest) (TimesheetResponse, error) {
	tenantUUID, err := uuid.Parse(actor.TenantID)
	if err != nil {
		return TimesheetResponse{}, timesheeterrors.ErrInvalidTenantID
	}

	workDate, err := workweek.ParseDay(req.WorkDate)
	if err != nil {
		return TimesheetResponse{}, timesheeterrors.ErrInvalidDateFormat
	}

	hours, err := strconv.ParseFloat(strings.TrimSpace(req.HoursWorked), 64)
	if err != nil || hours < 0 || hours > 24 {
		return TimesheetResponse{}, timesheeterrors.ErrInvalidHours
	}

	if req.TechnicianID != actor.TechnicianID {
		canWriteAll, err := s.authz.Enforce(authz.EnforceRequest{
			TenantID: actor.TenantID,
			Role:     actor.Role,
			Resource: "timesheet",
			Action:   "write_all",
		})
		if err != nil {
			return TimesheetResponse{}, err
		}
		if !canWriteAll {
			return TimesheetResponse{}, timesheeterrors.ErrLogForOthersForbidden
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return TimesheetResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row := &TimesheetRecord{
		TenantID:     tenantUUID,
		TechnicianID: req.TechnicianID,
		WorkDate:     workDate,
		HoursWorked:  strings.TrimSpace(req.HoursWorked),
		Notes:        req.Notes,
	}

	if err := qtx.Create(ctx, row); err != nil {
		return TimesheetResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return TimesheetResponse{}, err
	}

	s.logger.Info("timesheet record created",
		zap.Int64("record_id", row.ID),
		zap.Int64("technician_id", row.TechnicianID),
		zap.String("work_date", req.WorkDate),
	)
	return mapToResponse(*row), nil
}

// ListWeek builds the display set for one rendered week: fetch the
// tenant's records, stamp view permission, cut down to the policy-visible
// set, then layer the cosmetic scope filters on top. The policy-visible
// set is never handed out; only its size is reported.
func (s *service) ListWeek(ctx context.Context, actor authz.Actor, q ListWeekQuery) (ListWeekResult, error) {
	if _, err := uuid.Parse(actor.TenantID); err != nil {
		return ListWeekResult{}, timesheeterrors.ErrInvalidTenantID
	}

	anchor, err := workweek.ParseDay(q.WeekAnchor)
	if err != nil {
		return ListWeekResult{}, timesheeterrors.ErrInvalidWeekAnchor
	}

	ownership, err := parseOwnership(q.Ownership)
	if err != nil {
		return ListWeekResult{}, err
	}
	validation, err := parseValidation(q.Validation)
	if err != nil {
		return ListWeekResult{}, err
	}

	window := workweek.Containing(anchor, s.weekStartFor(ctx, actor.TenantID))

	rows, err := s.repo.FindByTenantAndRange(ctx, actor.TenantID, window.Start, window.End())
	if err != nil {
		return ListWeekResult{}, err
	}

	stamped := s.authz.StampViewPermission(ctx, actor, ToPipelineRecords(rows))
	visible := policy.FilterVisible(stamped)

	opts := policy.ScopeOptions{
		Ownership:  ownership,
		Validation: validation,
		IsOwnedByUser: func(r policy.Record) bool {
			return actor.TechnicianID != 0 && r.TechnicianID == actor.TechnicianID
		},
	}
	if validation == policy.ValidationOverCap {
		totals := policy.AggregateDaily(visible)
		opts.OverCapIDs = policy.OverCapRecordIDs(totals, policy.DefaultDailyDoubleTimeThreshold)
	}

	display := policy.ApplyScope(visible, opts)

	page, limit := normalizePaging(q.Page, q.Limit)
	total := int64(len(display))
	start := (page - 1) * limit
	if start > len(display) {
		start = len(display)
	}
	end := start + limit
	if end > len(display) {
		end = len(display)
	}
	pageSlice := display[start:end]

	byID := make(map[int64]TimesheetRecord, len(rows))
	for _, row := range rows {
		byID[row.ID] = row
	}

	records := make([]TimesheetResponse, 0, len(pageSlice))
	for _, r := range pageSlice {
		if row, ok := byID[r.ID]; ok {
			records = append(records, mapToResponse(row))
		}
	}

	return ListWeekResult{
		WeekAnchor:   window.AnchorDay(),
		Records:      records,
		VisibleCount: len(visible),
		Total:        total,
		Page:         page,
		Limit:        limit,
	}, nil
}

func normalizePaging(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return page, limit
}

// weekStartFor falls back to the resolver default when a tenant has no
// stored settings yet.
func (s *service) weekStartFor(ctx context.Context, tenantID string) time.Weekday {
	settings, err := s.tenants.FindByTenant(ctx, tenantID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("load tenant settings failed", zap.Error(err))
		}
		return workweek.ResolveWeekStart("")
	}
	return workweek.ResolveWeekStart(settings.WeekStart)
}

func parseOwnership(s string) (policy.OwnershipScope, error) {
	switch policy.OwnershipScope(strings.ToLower(strings.TrimSpace(s))) {
	case "", policy.OwnershipAll:
		return policy.OwnershipAll, nil
	case policy.OwnershipMine:
		return policy.OwnershipMine, nil
	case policy.OwnershipOthers:
		return policy.OwnershipOthers, nil
	default:
		return "", timesheeterrors.ErrInvalidOwnershipScope
	}
}

func parseValidation(s string) (policy.ValidationScope, error) {
	switch policy.ValidationScope(strings.ToLower(strings.TrimSpace(s))) {
	case "", policy.ValidationAll:
		return policy.ValidationAll, nil
	case policy.ValidationAIFlagged:
		return policy.ValidationAIFlagged, nil
	case policy.ValidationOverCap:
		return policy.ValidationOverCap, nil
	default:
		return "", timesheeterrors.ErrInvalidValidationScope
	}
}

// ToPipelineRecords maps stored rows into the pipeline's record shape.
// ViewPermission starts false; only the authz stamp can set it.
func ToPipelineRecords(rows []TimesheetRecord) []policy.Record {
	records := make([]policy.Record, len(rows))
	for i, row := range rows {
		records[i] = policy.Record{
			ID:           row.ID,
			TechnicianID: row.TechnicianID,
			WorkDate:     row.WorkDate.Format(workweek.DayLayout),
			HoursWorked:  row.HoursWorked,
			AIFlagged:    row.AIFlagged,
		}
	}
	return records
}

func mapToResponse(row TimesheetRecord) TimesheetResponse {
	return TimesheetResponse{
		ID:           row.ID,
		TechnicianID: row.TechnicianID,
		WorkDate:     row.WorkDate.Format(workweek.DayLayout),
		HoursWorked:  row.HoursWorked,
		AIFlagged:    row.AIFlagged,
		Notes:        row.Notes,
	}
}
