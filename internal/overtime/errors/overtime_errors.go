package overtimeerrors

import (
	"net/http"

	"go-timesheet/internal/shared/apperror"
)

var (
	ErrInvalidTenantID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid tenant id",
		http.StatusBadRequest,
	)
	ErrInvalidWeekAnchor = apperror.New(
		apperror.CodeInvalidInput,
		"week must be a YYYY-MM-DD anchor date",
		http.StatusBadRequest,
	)
)
