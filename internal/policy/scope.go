package policy

type OwnershipScope string

const (
	OwnershipAll    OwnershipScope = "all"
	OwnershipMine   OwnershipScope = "mine"
	OwnershipOthers OwnershipScope = "others"
)

type ValidationScope string

const (
	ValidationAll       ValidationScope = "all"
	ValidationAIFlagged ValidationScope = "ai_flagged"
	ValidationOverCap   ValidationScope = "over_cap"
)

// ScopeOptions are the user-chosen display filters. They narrow what gets
// rendered and nothing else; overtime evaluation never sees them.
type ScopeOptions struct {
	Ownership  OwnershipScope
	Validation ValidationScope
	// OverCapIDs is computed by the caller from daily totals (see
	// OverCapRecordIDs). Only consulted when Validation is over_cap.
	OverCapIDs map[int64]struct{}
	// IsOwnedByUser decides the mine/others split. Nil means nothing is
	// owned, so "mine" yields an empty display set rather than guessing.
	IsOwnedByUser func(Record) bool
}

// ApplyScope narrows the policy-visible set to the display set. The two
// scopes compose by intersection, ownership first. The input must be the
// output of FilterVisible; handing this function the raw record
// collection would let a cosmetic filter leak rows the permission layer
// rejected.
func ApplyScope(policyVisible []Record, opts ScopeOptions) []Record {
	display := make([]Record, 0, len(policyVisible))
	for _, r := range policyVisible {
		if !matchOwnership(r, opts) {
			continue
		}
		if !matchValidation(r, opts) {
			continue
		}
		display = append(display, r)
	}
	return display
}

func matchOwnership(r Record, opts ScopeOptions) bool {
	switch opts.Ownership {
	case OwnershipMine:
		return opts.IsOwnedByUser != nil && opts.IsOwnedByUser(r)
	case OwnershipOthers:
		return opts.IsOwnedByUser == nil || !opts.IsOwnedByUser(r)
	default:
		return true
	}
}

func matchValidation(r Record, opts ScopeOptions) bool {
	switch opts.Validation {
	case ValidationAIFlagged:
		return r.AIFlagged
	case ValidationOverCap:
		_, ok := opts.OverCapIDs[r.ID]
		return ok
	default:
		return true
	}
}

// OverCapRecordIDs collects the ids of every record that contributed to a
// day whose total exceeds threshold. Callers feed the result into
// ScopeOptions.OverCapIDs.
func OverCapRecordIDs(totals map[DayKey]DailyTotal, threshold float64) map[int64]struct{} {
	ids := make(map[int64]struct{})
	for _, t := range totals {
		if t.Hours > threshold {
			for _, id := range t.SourceIDs {
				ids[id] = struct{}{}
			}
		}
	}
	return ids
}
