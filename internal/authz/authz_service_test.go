package authz_test

import (
	"context"
	"errors"
	"testing"

	"go-timesheet/internal/authz"
	"go-timesheet/internal/authz/infra"
	"go-timesheet/internal/policy"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeGrantRepo struct {
	grants []authz.RoleGrant
	err    error
}

func (f *fakeGrantRepo) GetRoleGrants(string) ([]authz.RoleGrant, error) {
	return f.grants, f.err
}

func newService(t *testing.T, repo authz.Repository) authz.Service {
	t.Helper()
	enforcer, err := infra.NewEnforcer("infra/model.conf")
	assert.NoError(t, err)
	return authz.NewService(repo, enforcer)
}

func TestAuthzService_Enforce(t *testing.T) {
	tenantID := uuid.New().String()

	t.Run("default grants apply when a tenant has none", func(t *testing.T) {
		svc := newService(t, &fakeGrantRepo{})

		for _, tc := range []struct {
			role string
			want bool
		}{
			{"SUPER_ADMIN", true},
			{"ADMIN", true},
			{"MANAGER", true},
			{"TECHNICIAN", false},
			{"", false},
		} {
			got, err := svc.Enforce(authz.EnforceRequest{
				TenantID: tenantID,
				Role:     tc.role,
				Resource: "timesheet",
				Action:   "read_all",
			})
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got, "role %q", tc.role)
		}
	})

	t.Run("tenant grants replace the defaults", func(t *testing.T) {
		svc := newService(t, &fakeGrantRepo{grants: []authz.RoleGrant{
			{Role: "DISPATCHER", Resource: "timesheet", Action: "read_all"},
		}})

		got, err := svc.Enforce(authz.EnforceRequest{
			TenantID: tenantID,
			Role:     "DISPATCHER",
			Resource: "timesheet",
			Action:   "read_all",
		})
		assert.NoError(t, err)
		assert.True(t, got)

		// The default MANAGER grant is gone once the tenant brings its own.
		got, err = svc.Enforce(authz.EnforceRequest{
			TenantID: tenantID,
			Role:     "MANAGER",
			Resource: "timesheet",
			Action:   "read_all",
		})
		assert.NoError(t, err)
		assert.False(t, got)
	})

	t.Run("repository failure propagates", func(t *testing.T) {
		svc := newService(t, &fakeGrantRepo{err: errors.New("db down")})

		_, err := svc.Enforce(authz.EnforceRequest{
			TenantID: tenantID,
			Role:     "ADMIN",
			Resource: "timesheet",
			Action:   "read_all",
		})
		assert.Error(t, err)
	})
}

func TestAuthzService_StampViewPermission(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New().String()

	records := []policy.Record{
		{ID: 1, TechnicianID: 7},
		{ID: 2, TechnicianID: 8},
	}

	t.Run("read_all stamps everything visible", func(t *testing.T) {
		svc := newService(t, &fakeGrantRepo{})

		stamped := svc.StampViewPermission(ctx, authz.Actor{TenantID: tenantID, Role: "MANAGER", TechnicianID: 7}, records)

		assert.True(t, stamped[0].ViewPermission)
		assert.True(t, stamped[1].ViewPermission)
	})

	t.Run("technician sees only own records", func(t *testing.T) {
		svc := newService(t, &fakeGrantRepo{})

		stamped := svc.StampViewPermission(ctx, authz.Actor{TenantID: tenantID, Role: "TECHNICIAN", TechnicianID: 7}, records)

		assert.True(t, stamped[0].ViewPermission)
		assert.False(t, stamped[1].ViewPermission)
	})

	t.Run("actor without technician record sees nothing", func(t *testing.T) {
		svc := newService(t, &fakeGrantRepo{})

		stamped := svc.StampViewPermission(ctx, authz.Actor{TenantID: tenantID, Role: "TECHNICIAN"}, records)

		for _, r := range stamped {
			assert.False(t, r.ViewPermission)
		}
	})

	t.Run("authz outage fails closed to own records", func(t *testing.T) {
		svc := newService(t, &fakeGrantRepo{err: errors.New("db down")})

		stamped := svc.StampViewPermission(ctx, authz.Actor{TenantID: tenantID, Role: "MANAGER", TechnicianID: 7}, records)

		assert.True(t, stamped[0].ViewPermission)
		assert.False(t, stamped[1].ViewPermission)
	})

	t.Run("input is never mutated", func(t *testing.T) {
		svc := newService(t, &fakeGrantRepo{})

		_ = svc.StampViewPermission(ctx, authz.Actor{TenantID: tenantID, Role: "MANAGER"}, records)

		for _, r := range records {
			assert.False(t, r.ViewPermission)
		}
	})
}
