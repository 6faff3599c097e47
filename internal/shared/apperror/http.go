package apperror

import "errors"

type HTTPError struct {
	Status  int
	Code    string
	Message string
}

// ToHTTP maps any error to its HTTP representation. Errors that are not an
// AppError fall back to a generic 500 so internals never leak to the caller.
func ToHTTP(err error) HTTPError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return HTTPError{
			Status:  appErr.HTTPStatus,
			Code:    appErr.Code,
			Message: appErr.Message,
		}
	}
	return HTTPError{
		Status:  ErrInternal.HTTPStatus,
		Code:    ErrInternal.Code,
		Message: ErrInternal.Message,
	}
}
