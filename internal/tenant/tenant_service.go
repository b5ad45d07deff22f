package tenant

import (
	"context"
	"errors"
	"strings"

	"go-timesheet/internal/shared/contextutil"
	tenanterrors "go-timesheet/internal/tenant/errors"
	"go-timesheet/internal/workweek"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=tenant_service.go -destination=mock/tenant_service_mock.go -package=mock
type Service interface {
	GetSettings(ctx context.Context, tenantID string) (SettingsResponse, error)
	UpdateSettings(ctx context.Context, tenantID string, req UpdateSettingsRequest) (SettingsResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("tenant.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("tenant.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) GetSettings(ctx context.Context, tenantID string) (SettingsResponse, error) {
	if _, err := uuid.Parse(tenantID); err != nil {
		return SettingsResponse{}, tenanterrors.ErrInvalidTenantID
	}

	settings, err := s.repo.FindByTenant(ctx, tenantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SettingsResponse{}, tenanterrors.ErrSettingsNotFound
		}
		return SettingsResponse{}, err
	}
	return mapToResponse(*settings), nil
}

func (s *service) UpdateSettings(ctx context.Context, tenantID string, req UpdateSettingsRequest) (SettingsResponse, error) {
	tenantUUID, err := uuid.Parse(tenantID)
	if err != nil {
		return SettingsResponse{}, tenanterrors.ErrInvalidTenantID
	}

	weekStart := strings.ToLower(strings.TrimSpace(req.WeekStart))
	// The resolver tolerates anything, but a stored preference should be
	// one it recognizes rather than silently falling back forever.
	if !workweek.KnownWeekStart(weekStart) {
		return SettingsResponse{}, tenanterrors.ErrInvalidWeekStart
	}

	settings, err := s.repo.FindByTenant(ctx, tenantID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return SettingsResponse{}, err
		}
		settings = &Settings{ID: uuid.New(), TenantID: tenantUUID}
	}

	settings.Region = strings.ToUpper(strings.TrimSpace(req.Region))
	settings.State = strings.ToUpper(strings.TrimSpace(req.State))
	settings.PolicyKey = strings.ToUpper(strings.TrimSpace(req.PolicyKey))
	settings.WeekStart = weekStart

	log := contextutil.GetLogger(ctx, s.logger)

	if err := s.repo.Upsert(ctx, settings); err != nil {
		log.Error("update tenant settings failed", zap.Error(err))
		return SettingsResponse{}, err
	}

	log.Info("tenant settings updated",
		zap.String("tenant_id", tenantID),
		zap.String("policy_key", settings.PolicyKey),
		zap.String("week_start", settings.WeekStart),
	)
	return mapToResponse(*settings), nil
}

func mapToResponse(s Settings) SettingsResponse {
	return SettingsResponse{
		TenantID:  s.TenantID.String(),
		Region:    s.Region,
		State:     s.State,
		PolicyKey: s.PolicyKey,
		WeekStart: s.WeekStart,
	}
}
