package policy

import (
	"math"
	"strconv"
	"strings"

	"go-timesheet/internal/workweek"
)

// DayKey groups records by technician and the calendar day the work was
// filed under. The filed date is the grouping key on purpose: a record's
// hours belong to the day it was logged against, not to whatever day a
// start-time instant would land on.
type DayKey struct {
	TechnicianID int64
	Date         string
}

type DailyTotal struct {
	Hours float64
	// SourceIDs traces which records pushed a day over a threshold.
	// Malformed and zero-hour records are kept here even though they
	// contribute nothing to Hours.
	SourceIDs []int64
}

// AggregateDaily sums worked hours per (technician, day) over the
// policy-visible set. Hours are coerced from the raw upstream value;
// unparsable or non-finite values contribute zero without dropping the
// record from the group. Records without a parseable date cannot be keyed
// and are skipped entirely.
func AggregateDaily(policyVisible []Record) map[DayKey]DailyTotal {
	totals := make(map[DayKey]DailyTotal)
	for _, r := range policyVisible {
		if _, err := workweek.ParseDay(r.WorkDate); err != nil {
			continue
		}
		key := DayKey{TechnicianID: r.TechnicianID, Date: r.WorkDate}
		t := totals[key]
		t.Hours += CoerceHours(r.HoursWorked)
		t.SourceIDs = append(t.SourceIDs, r.ID)
		totals[key] = t
	}
	return totals
}

// CoerceHours parses a raw hours value. Anything that is not a finite
// non-negative number comes back as zero; bad data must never abort a
// whole batch.
func CoerceHours(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
