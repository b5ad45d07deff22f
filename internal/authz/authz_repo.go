package authz

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RoleGrant struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	TenantID  uuid.UUID `gorm:"column:tenant_id;type:uuid;not null;index"`
	Role      string    `gorm:"column:role;type:varchar(30);not null"`
	Resource  string    `gorm:"column:resource;type:varchar(50);not null"`
	Action    string    `gorm:"column:action;type:varchar(50);not null"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (RoleGrant) TableName() string {
	return "role_grants"
}

//go:generate mockgen -source=authz_repo.go -destination=mock/authz_repo_mock.go -package=mock
type Repository interface {
	GetRoleGrants(tenantID string) ([]RoleGrant, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetRoleGrants(tenantID string) ([]RoleGrant, error) {
	var grants []RoleGrant
	err := r.db.
		Where("tenant_id = ?", tenantID).
		Find(&grants).Error
	return grants, err
}
