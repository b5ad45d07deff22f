package notification

import (
	"time"

	"github.com/google/uuid"
)

// Notification is a materialized advisory for the insights panel, written
// by the alert consumer. Payload keeps the original event for clients
// that want the day-level rows.
type Notification struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	TenantID   uuid.UUID `gorm:"column:tenant_id;type:uuid;not null;index"`
	Kind       string    `gorm:"column:kind;type:varchar(50);not null"`
	Message    string    `gorm:"column:message;type:text;not null"`
	WeekAnchor string    `gorm:"column:week_anchor;type:varchar(10);not null"`
	Payload    []byte    `gorm:"column:payload;type:jsonb"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (Notification) TableName() string {
	return "notifications"
}
