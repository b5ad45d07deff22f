package timesheeterrors

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
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidHours = apperror.New(
		apperror.CodeInvalidInput,
		"hours_worked must be a number between 0 and 24",
		http.StatusBadRequest,
	)
	ErrInvalidWeekAnchor = apperror.New(
		apperror.CodeInvalidInput,
		"week must be a YYYY-MM-DD anchor date",
		http.StatusBadRequest,
	)
	ErrInvalidOwnershipScope = apperror.New(
		apperror.CodeInvalidInput,
		"ownership must be one of: all, mine, others",
		http.StatusBadRequest,
	)
	ErrInvalidValidationScope = apperror.New(
		apperror.CodeInvalidInput,
		"validation must be one of: all, ai_flagged, over_cap",
		http.StatusBadRequest,
	)
	ErrLogForOthersForbidden = apperror.New(
		apperror.CodeForbidden,
		"you may only log time for your own technician record",
		http.StatusForbidden,
	)
	ErrDuplicateRecord = apperror.New(
		apperror.CodeConflict,
		"a record with this reference already exists",
		http.StatusConflict,
	)
)
