package apperror

// Stable machine-readable error codes carried in API envelopes. Clients
// branch on these, so values never change once released.
const (
	// Client errors (4xx)
	CodeInvalidInput = "INVALID_INPUT"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeNotFound     = "NOT_FOUND"
	CodeConflict     = "CONFLICT"

	// Server errors (5xx)
	CodeInternalError = "INTERNAL_ERROR"
)
