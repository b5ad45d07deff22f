package tenant_test

import (
	"context"
	"errors"
	"testing"

	"go-timesheet/internal/tenant"
	tenanterrors "go-timesheet/internal/tenant/errors"
	tenantMock "go-timesheet/internal/tenant/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func TestTenantService_GetSettings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	tenantID := uuid.New()

	t.Run("success", func(t *testing.T) {
		repo := tenantMock.NewMockRepository(ctrl)
		svc := tenant.NewService(repo)

		repo.EXPECT().FindByTenant(ctx, tenantID.String()).Return(&tenant.Settings{
			TenantID:  tenantID,
			Region:    "US",
			State:     "CA",
			PolicyKey: "CA_DAILY_DOUBLE_TIME",
			WeekStart: "sunday",
		}, nil)

		resp, err := svc.GetSettings(ctx, tenantID.String())

		assert.NoError(t, err)
		assert.Equal(t, "CA", resp.State)
		assert.Equal(t, "sunday", resp.WeekStart)
	})

	t.Run("not found", func(t *testing.T) {
		repo := tenantMock.NewMockRepository(ctrl)
		svc := tenant.NewService(repo)

		repo.EXPECT().FindByTenant(ctx, tenantID.String()).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.GetSettings(ctx, tenantID.String())
		assert.ErrorIs(t, err, tenanterrors.ErrSettingsNotFound)
	})

	t.Run("invalid tenant id", func(t *testing.T) {
		repo := tenantMock.NewMockRepository(ctrl)
		svc := tenant.NewService(repo)

		_, err := svc.GetSettings(ctx, "not-a-uuid")
		assert.ErrorIs(t, err, tenanterrors.ErrInvalidTenantID)
	})
}

func TestTenantService_UpdateSettings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	tenantID := uuid.New()

	req := tenant.UpdateSettingsRequest{
		Region:    "us",
		State:     "ca",
		PolicyKey: "ca_daily_double_time",
		WeekStart: "Sunday",
	}

	t.Run("creates settings on first update", func(t *testing.T) {
		repo := tenantMock.NewMockRepository(ctrl)
		svc := tenant.NewService(repo)

		repo.EXPECT().FindByTenant(ctx, tenantID.String()).Return(nil, gorm.ErrRecordNotFound)
		repo.EXPECT().
			Upsert(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, s *tenant.Settings) error {
				assert.Equal(t, tenantID, s.TenantID)
				assert.Equal(t, "US", s.Region)
				assert.Equal(t, "CA", s.State)
				assert.Equal(t, "sunday", s.WeekStart)
				return nil
			})

		resp, err := svc.UpdateSettings(ctx, tenantID.String(), req)

		assert.NoError(t, err)
		assert.Equal(t, "US", resp.Region)
	})

	t.Run("updates existing settings in place", func(t *testing.T) {
		repo := tenantMock.NewMockRepository(ctrl)
		svc := tenant.NewService(repo)

		existing := &tenant.Settings{ID: uuid.New(), TenantID: tenantID, Region: "US", State: "NY", WeekStart: "monday"}

		repo.EXPECT().FindByTenant(ctx, tenantID.String()).Return(existing, nil)
		repo.EXPECT().
			Upsert(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, s *tenant.Settings) error {
				assert.Equal(t, existing.ID, s.ID)
				assert.Equal(t, "CA", s.State)
				return nil
			})

		_, err := svc.UpdateSettings(ctx, tenantID.String(), req)
		assert.NoError(t, err)
	})

	t.Run("rejects unknown week start", func(t *testing.T) {
		repo := tenantMock.NewMockRepository(ctrl)
		svc := tenant.NewService(repo)

		bad := req
		bad.WeekStart = "payday"

		_, err := svc.UpdateSettings(ctx, tenantID.String(), bad)
		assert.ErrorIs(t, err, tenanterrors.ErrInvalidWeekStart)
	})

	t.Run("propagates repository failure", func(t *testing.T) {
		repo := tenantMock.NewMockRepository(ctrl)
		svc := tenant.NewService(repo)

		repo.EXPECT().FindByTenant(ctx, tenantID.String()).Return(nil, gorm.ErrRecordNotFound)
		repo.EXPECT().Upsert(ctx, gomock.Any()).Return(errors.New("db down"))

		_, err := svc.UpdateSettings(ctx, tenantID.String(), req)
		assert.Error(t, err)
	})
}
