package notification

import (
	"context"

	"go-timesheet/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=notification_repo.go -destination=mock/notification_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, n *Notification) error
	FindAllByTenant(ctx context.Context, tenantID string, limit int) ([]Notification, error)
	ExistsForWeek(ctx context.Context, tenantID, kind, weekAnchor string) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, n *Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *repository) FindAllByTenant(ctx context.Context, tenantID string, limit int) ([]Notification, error) {
	var rows []Notification
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(tenantID)).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

func (r *repository) ExistsForWeek(ctx context.Context, tenantID, kind, weekAnchor string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Notification{}).
		Scopes(tenant.Scope(tenantID)).
		Where("kind = ?", kind).
		Where("week_anchor = ?", weekAnchor).
		Count(&count).Error
	return count > 0, err
}
