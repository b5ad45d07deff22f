package policy

import (
	"sort"

	"go-timesheet/internal/workweek"
)

// DefaultDailyDoubleTimeThreshold is the daily hours cap after which the
// double-time premium applies.
const DefaultDailyDoubleTimeThreshold = 12.0

// Rule names a jurisdiction's daily overtime threshold. The evaluator
// itself is jurisdiction-agnostic; AppliesTo is for callers deciding
// whether a candidate is actionable for the active tenant.
type Rule struct {
	Region         string
	State          string
	DailyThreshold float64
}

// CaliforniaDailyDoubleTime is the supported jurisdiction rule: daily
// double time after 12 hours.
var CaliforniaDailyDoubleTime = Rule{
	Region:         "US",
	State:          "CA",
	DailyThreshold: DefaultDailyDoubleTimeThreshold,
}

func (r Rule) AppliesTo(t TenantContext) bool {
	return t.Region == r.Region && t.State == r.State
}

// Candidate is a day flagged locally as exceeding the daily threshold,
// pending confirmation against the payroll service's weekly total.
type Candidate struct {
	TechnicianID int64
	Date         string
	ExcessHours  float64
}

// EvaluateDaily emits a candidate for every (technician, day) entry inside
// the window whose total is strictly over threshold. A total of exactly
// the threshold is not excess. Output order is fixed (date, then
// technician) so repeated runs over the same inputs are byte identical.
func EvaluateDaily(totals map[DayKey]DailyTotal, window workweek.Window, threshold float64) []Candidate {
	candidates := make([]Candidate, 0)
	for key, t := range totals {
		if !window.ContainsDay(key.Date) {
			continue
		}
		excess := t.Hours - threshold
		if excess > 0 {
			candidates = append(candidates, Candidate{
				TechnicianID: key.TechnicianID,
				Date:         key.Date,
				ExcessHours:  excess,
			})
		}
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Date != candidates[j].Date {
			return candidates[i].Date < candidates[j].Date
		}
		return candidates[i].TechnicianID < candidates[j].TechnicianID
	})
	return candidates
}
