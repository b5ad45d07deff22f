package authz

import (
	"context"
	"sync"

	"go-timesheet/internal/policy"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

// Actor is the authenticated principal as carried in the JWT claims.
type Actor struct {
	UserID       string
	TenantID     string
	TechnicianID int64
	Role         string
}

type EnforceRequest struct {
	TenantID string
	Role     string
	Resource string
	Action   string
}

// defaultGrants apply when a tenant has no grants of its own configured.
var defaultGrants = []RoleGrant{
	{Role: "SUPER_ADMIN", Resource: "timesheet", Action: "read_all"},
	{Role: "SUPER_ADMIN", Resource: "timesheet", Action: "write_all"},
	{Role: "ADMIN", Resource: "timesheet", Action: "read_all"},
	{Role: "ADMIN", Resource: "timesheet", Action: "write_all"},
	{Role: "MANAGER", Resource: "timesheet", Action: "read_all"},
}

//go:generate mockgen -source=authz_service.go -destination=mock/authz_service_mock.go -package=mock
type Service interface {
	Enforce(req EnforceRequest) (bool, error)
	// StampViewPermission returns a copy of records with ViewPermission
	// computed server-side for the actor. Stamping happens exactly once,
	// upstream of the pipeline; nothing downstream re-derives it.
	StampViewPermission(ctx context.Context, actor Actor, records []policy.Record) []policy.Record
}

type service struct {
	repo     Repository
	enforcer *casbin.Enforcer
	logger   *zap.Logger
	mu       sync.Mutex
}

func NewService(repo Repository, enforcer *casbin.Enforcer, logger ...*zap.Logger) Service {
	l := zap.L().Named("authz.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("authz.service")
	}
	return &service{repo: repo, enforcer: enforcer, logger: l}
}

func (s *service) Enforce(req EnforceRequest) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loadTenantPolicyUnlocked(req.TenantID); err != nil {
		return false, err
	}

	return s.enforcer.Enforce(req.Role, req.TenantID, req.Resource, req.Action)
}

func (s *service) loadTenantPolicyUnlocked(tenantID string) error {
	s.enforcer.ClearPolicy()

	grants, err := s.repo.GetRoleGrants(tenantID)
	if err != nil {
		return err
	}
	if len(grants) == 0 {
		grants = defaultGrants
	}

	for _, g := range grants {
		if _, err := s.enforcer.AddPolicy(g.Role, tenantID, g.Resource, g.Action); err != nil {
			return err
		}
	}

	return nil
}

func (s *service) StampViewPermission(ctx context.Context, actor Actor, records []policy.Record) []policy.Record {
	canReadAll, err := s.Enforce(EnforceRequest{
		TenantID: actor.TenantID,
		Role:     actor.Role,
		Resource: "timesheet",
		Action:   "read_all",
	})
	if err != nil {
		// Fail closed: an authz outage must not widen visibility.
		s.logger.Warn("enforce read_all failed, stamping own records only",
			zap.String("tenant_id", actor.TenantID),
			zap.String("role", actor.Role),
			zap.Error(err),
		)
		canReadAll = false
	}

	stamped := make([]policy.Record, len(records))
	copy(stamped, records)
	for i := range stamped {
		stamped[i].ViewPermission = canReadAll ||
			(actor.TechnicianID != 0 && stamped[i].TechnicianID == actor.TechnicianID)
	}
	return stamped
}
