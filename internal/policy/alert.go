package policy

import "go-timesheet/internal/workweek"

type SummaryState string

const (
	SummaryLoading SummaryState = "loading"
	SummaryLoaded  SummaryState = "loaded"
	SummaryError   SummaryState = "error"
)

// WeeklySummary is the payroll service's aggregate for one displayed
// week. Only OvertimeHours2x (the alert gate), WorkweekStart and
// PolicyKey are read here; the rest rides along for the API response.
type WeeklySummary struct {
	RegularHours    float64
	OvertimeHours   float64
	OvertimeRate    float64
	OvertimeHours2x float64
	WorkweekStart   string
	PolicyKey       string
}

// SummaryResult wraps the summary with its fetch state. Loading and error
// both suppress the alert; a violation is never fabricated from local
// data alone.
type SummaryResult struct {
	State   SummaryState
	Summary WeeklySummary
}

type AlertKind string

const (
	AlertNone      AlertKind = "none"
	AlertInfo      AlertKind = "info"
	AlertViolation AlertKind = "violation"
)

type AlertRow struct {
	Date        string
	ExcessHours float64
	TotalHours  float64
}

// Alert is a tagged variant: exactly one of the three kinds, with Message
// set only for info and Rows only for violation. It is never mutated
// after construction.
type Alert struct {
	Kind    AlertKind
	Message string
	Rows    []AlertRow
}

type AlertInput struct {
	Tenant TenantContext
	// Window is the single displayed week, nil when the active view is
	// not scoped to one week.
	Window     *workweek.Window
	Summary    SummaryResult
	Candidates []Candidate
	Totals     map[DayKey]DailyTotal
}

// ResolveAlert combines tenant jurisdiction, the payroll service's weekly
// summary and the locally detected candidates into one advisory alert.
//
// The server total is the gate: it alone decides whether a violation
// exists. Local candidates only pinpoint which days the server's
// aggregate refers to, because the weekly summary endpoint exposes no
// day-level breakdown.
func ResolveAlert(in AlertInput) Alert {
	if in.Window == nil || !CaliforniaDailyDoubleTime.AppliesTo(in.Tenant) {
		return Alert{Kind: AlertNone}
	}
	if in.Summary.State != SummaryLoaded {
		return Alert{Kind: AlertNone}
	}
	if in.Summary.Summary.OvertimeHours2x == 0 {
		return Alert{Kind: AlertNone}
	}

	rows := make([]AlertRow, 0, len(in.Candidates))
	for _, c := range in.Candidates {
		if !in.Window.ContainsDay(c.Date) {
			continue
		}
		total, ok := in.Totals[DayKey{TechnicianID: c.TechnicianID, Date: c.Date}]
		if !ok {
			continue
		}
		rows = append(rows, AlertRow{
			Date:        c.Date,
			ExcessHours: c.ExcessHours,
			TotalHours:  total.Hours,
		})
	}

	if len(rows) == 0 {
		return Alert{
			Kind:    AlertInfo,
			Message: "violation detected but day-level detail unavailable",
		}
	}
	return Alert{Kind: AlertViolation, Rows: rows}
}
