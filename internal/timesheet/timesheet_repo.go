package timesheet

import (
	"context"
	"database/sql"
	"time"

	"go-timesheet/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=timesheet_repo.go -destination=mock/timesheet_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, r *TimesheetRecord) error
	FindByTenantAndRange(ctx context.Context, tenantID string, from, to time.Time) ([]TimesheetRecord, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, rec *TimesheetRecord) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

// FindByTenantAndRange returns records filed inside [from, to), ordered
// stably so the pipeline's subsequence guarantees are meaningful.
func (r *repository) FindByTenantAndRange(ctx context.Context, tenantID string, from, to time.Time) ([]TimesheetRecord, error) {
	var rows []TimesheetRecord
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(tenantID)).
		Where("work_date >= ?", from.Format("2006-01-02")).
		Where("work_date < ?", to.Format("2006-01-02")).
		Order("work_date ASC, id ASC").
		Find(&rows).Error
	return rows, err
}
