package workweek

import "time"

const DayLayout = "2006-01-02"

// weekStartLabels maps the tenant-facing week start preference to a
// weekday. Keys are lowercase.
var weekStartLabels = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sun":       time.Sunday,
	"mon":       time.Monday,
	"sat":       time.Saturday,
}

// ResolveWeekStart normalizes a tenant-configured week start preference
// to a weekday. Unknown or empty input falls back to Sunday so the rest
// of the pipeline never has to handle a missing anchor.
func ResolveWeekStart(pref string) time.Weekday {
	if d, ok := weekStartLabels[normalize(pref)]; ok {
		return d
	}
	return time.Sunday
}

// KnownWeekStart reports whether pref is a label ResolveWeekStart
// recognizes, for callers validating stored preferences.
func KnownWeekStart(pref string) bool {
	_, ok := weekStartLabels[normalize(pref)]
	return ok
}

func normalize(s string) string {
	b := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == ' ' || c == '\t' {
			continue
		}
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		b = append(b, c)
	}
	return string(b)
}

// Window is a half-open 7 day span [Start, Start+7d). Start is always a
// bare calendar day at midnight UTC.
type Window struct {
	Start time.Time
}

// WindowFrom anchors a window at the given calendar date. Time-of-day and
// location are discarded.
func WindowFrom(anchor time.Time) Window {
	return Window{Start: truncateDay(anchor)}
}

// Containing returns the window that contains date for a week starting on
// weekStart.
func Containing(date time.Time, weekStart time.Weekday) Window {
	d := truncateDay(date)
	offset := (int(d.Weekday()) - int(weekStart) + 7) % 7
	return Window{Start: d.AddDate(0, 0, -offset)}
}

func (w Window) End() time.Time {
	return w.Start.AddDate(0, 0, 7)
}

func (w Window) Contains(date time.Time) bool {
	d := truncateDay(date)
	return !d.Before(w.Start) && d.Before(w.End())
}

// ContainsDay reports whether the given "2006-01-02" day falls inside the
// window. Unparsable days are outside every window.
func (w Window) ContainsDay(day string) bool {
	d, err := ParseDay(day)
	if err != nil {
		return false
	}
	return w.Contains(d)
}

func (w Window) AnchorDay() string {
	return w.Start.Format(DayLayout)
}

// ParseDay parses a bare calendar day in the wire format used across the
// timesheet API.
func ParseDay(day string) (time.Time, error) {
	return time.Parse(DayLayout, day)
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
