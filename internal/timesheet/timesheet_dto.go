package timesheet

type CreateTimesheetRequest struct {
	TechnicianID int64   `json:"technician_id" binding:"required"`
	WorkDate     string  `json:"work_date" binding:"required"`
	HoursWorked  string  `json:"hours_worked" binding:"required"`
	Notes        *string `json:"notes"`
}

type TimesheetResponse struct {
	ID           int64   `json:"id"`
	TechnicianID int64   `json:"technician_id"`
	WorkDate     string  `json:"work_date"`
	HoursWorked  string  `json:"hours_worked"`
	AIFlagged    bool    `json:"ai_flagged"`
	Notes        *string `json:"notes,omitempty"`
}

// ListWeekQuery carries the displayed week plus the cosmetic display
// filters. The filters shape only what is returned for rendering.
type ListWeekQuery struct {
	WeekAnchor string
	Ownership  string
	Validation string
	Page       int
	Limit      int
}

type ListWeekResult struct {
	WeekAnchor string              `json:"week_anchor"`
	Records    []TimesheetResponse `json:"records"`
	// VisibleCount is the size of the policy-visible set before display
	// filters, so the UI can show "n of m".
	VisibleCount int `json:"visible_count"`

	// Pagination bookkeeping for the envelope meta, not part of the body.
	Total int64 `json:"-"`
	Page  int   `json:"-"`
	Limit int   `json:"-"`
}
