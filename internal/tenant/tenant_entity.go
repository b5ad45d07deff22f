package tenant

import (
	"time"

	"github.com/google/uuid"
)

type Settings struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	TenantID  uuid.UUID `gorm:"column:tenant_id;type:uuid;not null;uniqueIndex"`
	Region    string    `gorm:"column:region;type:varchar(10);not null;default:US"`
	State     string    `gorm:"column:state;type:varchar(10);not null;default:''"`
	PolicyKey string    `gorm:"column:policy_key;type:varchar(20);not null;default:US-FLSA"`
	WeekStart string    `gorm:"column:week_start;type:varchar(10);not null;default:sunday"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (Settings) TableName() string {
	return "tenant_settings"
}
