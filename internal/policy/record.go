package policy

// Record is the pipeline view of a single logged unit of work. It mirrors
// what the upstream sync delivers: WorkDate is a bare calendar day and
// HoursWorked is the raw upstream value, which may be any decimal string.
// ViewPermission is stamped by the authorization layer before a record
// enters the pipeline; it is never persisted and never derived here.
type Record struct {
	ID             int64
	TechnicianID   int64
	WorkDate       string
	HoursWorked    string
	AIFlagged      bool
	ViewPermission bool
}

// TenantContext carries the per-tenant settings the pipeline needs to
// interpret records: jurisdiction codes and the policy label selected by
// the payroll service.
type TenantContext struct {
	Region    string
	State     string
	PolicyKey string
}
