package directoryerrors

import (
	"fmt"
	"net/http"

	"github.com/PILLP-HO/pillp-lms/internal/shared/apperror"
)

// NotFound covers both an unknown identifier and a wrong secret; login never
// reveals which one failed.
func NotFound(role string) *apperror.AppError {
	return apperror.New(
		apperror.CodeNotFound,
		fmt.Sprintf("%s not found!", role),
		http.StatusNotFound,
	)
}

// NoManagerFor signals a roster gap: no manager covers the submitter's
// department/location combination. This is an operator problem, not a user
// input error.
func NoManagerFor(department, workLocation string) *apperror.AppError {
	return apperror.New(
		apperror.CodeRosterGap,
		fmt.Sprintf("No manager found for department %q and location %q", department, workLocation),
		http.StatusInternalServerError,
	)
}

func MissingWhatsApp(role string) *apperror.AppError {
	return apperror.New(
		apperror.CodeRosterGap,
		fmt.Sprintf("%s found but WhatsApp number is missing", role),
		http.StatusInternalServerError,
	)
}

var (
	ErrNoDutyHR = apperror.New(
		apperror.CodeRosterGap,
		"No HR found!",
		http.StatusInternalServerError,
	)
	ErrNoDutyPartner = apperror.New(
		apperror.CodeRosterGap,
		"No Partner found!",
		http.StatusInternalServerError,
	)
)
