package tenanterrors

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
	ErrSettingsNotFound = apperror.New(
		apperror.CodeNotFound,
		"tenant settings not found",
		http.StatusNotFound,
	)
	ErrInvalidWeekStart = apperror.New(
		apperror.CodeInvalidInput,
		"week_start must be a weekday name",
		http.StatusBadRequest,
	)
)
