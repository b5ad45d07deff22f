package events

import "time"

const OvertimeAlertTopic = "payroll.overtime.alert.v1"

type OvertimeAlertRow struct {
	Date        string  `json:"date"`
	ExcessHours float64 `json:"excess_hours"`
	TotalHours  float64 `json:"total_hours"`
}

type OvertimeAlertEvent struct {
	EventType  string             `json:"event_type"`
	TenantID   string             `json:"tenant_id"`
	WeekAnchor string             `json:"week_anchor"`
	PolicyKey  string             `json:"policy_key"`
	Rows       []OvertimeAlertRow `json:"rows"`
	OccurredAt time.Time          `json:"occurred_at"`
}
