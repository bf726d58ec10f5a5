package apperror

import (
	"errors"
	"net/http"
)

// strictStatus controls the HTTP status taxonomy. The legacy contract reports
// validation, conflict and not-found failures uniformly as 404; strict mode
// splits them into 400/409/404.
var strictStatus bool

func SetStrictStatus(strict bool) {
	strictStatus = strict
}

func StrictStatus() bool {
	return strictStatus
}

// CompatStatus collapses client-error statuses to 404 in legacy mode.
// Auth failures keep their status in both modes.
func CompatStatus(status int) int {
	if strictStatus {
		return status
	}
	switch status {
	case http.StatusBadRequest, http.StatusConflict, http.StatusNotFound:
		return http.StatusNotFound
	default:
		return status
	}
}

type HTTPError struct {
	Status  int
	Code    string
	Message string
	Details any
}

// ToHTTP converts any error into the status/code/message triple written by
// handlers. Unknown errors surface as an opaque storage failure.
func ToHTTP(err error) HTTPError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return HTTPError{
			Status:  CompatStatus(appErr.HTTPStatus),
			Code:    appErr.Code,
			Message: appErr.Message,
		}
	}
	return HTTPError{
		Status:  http.StatusInternalServerError,
		Code:    CodeStorageError,
		Message: "An unexpected error occurred",
	}
}
