package autherrors

import (
	"net/http"

	"go-timesheet/internal/shared/apperror"
)

var (
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid email or password",
		http.StatusUnauthorized,
	)

	ErrInvalidToken = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid token",
		http.StatusUnauthorized,
	)

	ErrTokenExpired = apperror.New(
		apperror.CodeUnauthorized,
		"Token has expired",
		http.StatusUnauthorized,
	)

	ErrInvalidRefreshToken = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid refresh token",
		http.StatusUnauthorized,
	)

	ErrForbidden = apperror.New(
		apperror.CodeForbidden,
		"You do not have permission to perform this action",
		http.StatusForbidden,
	)

	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid user ID",
		http.StatusBadRequest,
	)

	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found",
		http.StatusNotFound,
	)

	ErrUserInactive = apperror.New(
		apperror.CodeForbidden,
		"User is inactive",
		http.StatusForbidden,
	)

	ErrEmailAlreadyRegistered = apperror.New(
		apperror.CodeConflict,
		"Email is already registered",
		http.StatusConflict,
	)

	ErrTokenGenerationFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to generate token",
		http.StatusInternalServerError,
	)
)
