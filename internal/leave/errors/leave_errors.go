package leaveerrors

import (
	"net/http"

	"github.com/PILLP-HO/pillp-lms/internal/shared/apperror"
)

var (
	ErrReasonTooShort = apperror.New(
		apperror.CodeInvalidInput,
		"Leave reason must be at least 10 characters long!",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date format!",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"From date cannot be after To date!",
		http.StatusBadRequest,
	)
	ErrAlreadyPending = apperror.New(
		apperror.CodeAlreadyPending,
		"A leave application is already pending!",
		http.StatusBadRequest,
	)
	ErrLeaveNotFound = apperror.New(
		apperror.CodeNotFound,
		"Leave not found!",
		http.StatusNotFound,
	)
	ErrNotAwaitingStage = apperror.New(
		apperror.CodeInvalidState,
		"Leave application is not awaiting this approval stage!",
		http.StatusBadRequest,
	)
)
