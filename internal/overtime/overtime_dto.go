package overtime

type AlertRowResponse struct {
	Date        string  `json:"date"`
	ExcessHours float64 `json:"excess_hours"`
	TotalHours  float64 `json:"total_hours"`
}

// AlertResponse is the advisory alert for the insights panel. Kind is one
// of none, info, violation; message and rows are populated per kind.
type AlertResponse struct {
	WeekAnchor   string             `json:"week_anchor"`
	PolicyKey    string             `json:"policy_key,omitempty"`
	SummaryState string             `json:"summary_state"`
	Kind         string             `json:"kind"`
	Message      string             `json:"message,omitempty"`
	Rows         []AlertRowResponse `json:"rows,omitempty"`
}
