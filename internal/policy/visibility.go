package policy

// FilterVisible reduces records to the subset the current user is
// permitted to view. This is the single authority boundary of the
// pipeline: every downstream computation (scoping, aggregation, overtime
// evaluation) consumes its output and never the raw collection.
//
// The filter is stable (relative order preserved) and never mutates its
// input. A record whose permission was never stamped stays invisible; the
// zero value of ViewPermission fails closed.
func FilterVisible(records []Record) []Record {
	visible := make([]Record, 0, len(records))
	for _, r := range records {
		if r.ViewPermission {
			visible = append(visible, r)
		}
	}
	return visible
}
