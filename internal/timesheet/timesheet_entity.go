package timesheet

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TimesheetRecord is one unit of logged work. HoursWorked keeps the raw
// value delivered by the upstream sync (often a decimal string, sometimes
// junk); coercion happens in the aggregation pipeline, never at rest.
type TimesheetRecord struct {
	ID           int64          `gorm:"column:id;primaryKey;autoIncrement"`
	TenantID     uuid.UUID      `gorm:"column:tenant_id;type:uuid;not null;index"`
	TechnicianID int64          `gorm:"column:technician_id;not null;index"`
	WorkDate     time.Time      `gorm:"column:work_date;type:date;not null;index"`
	HoursWorked  string         `gorm:"column:hours_worked;type:varchar(20);not null;default:0"`
	AIFlagged    bool           `gorm:"column:ai_flagged;not null;default:false"`
	Notes        *string        `gorm:"column:notes;type:text"`
	CreatedAt    time.Time      `gorm:"column:created_at"`
	UpdatedAt    time.Time      `gorm:"column:updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (TimesheetRecord) TableName() string {
	return "timesheet_records"
}
