package tenant

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=tenant_repo.go -destination=mock/tenant_repo_mock.go -package=mock
type Repository interface {
	FindByTenant(ctx context.Context, tenantID string) (*Settings, error)
	Upsert(ctx context.Context, s *Settings) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByTenant(ctx context.Context, tenantID string) (*Settings, error) {
	var s Settings
	err := r.db.WithContext(ctx).
		Scopes(Scope(tenantID)).
		First(&s).Error
	return &s, err
}

func (r *repository) Upsert(ctx context.Context, s *Settings) error {
	return r.db.WithContext(ctx).Save(s).Error
}
