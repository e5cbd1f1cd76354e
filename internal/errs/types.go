package errs

import (
	"net/http"
)

const (
	// UnauthorizedMessage is the literal 401 body message. Clients match on it.
	UnauthorizedMessage = "unauthorized access"

	// ForbiddenMessage is the literal 403 body message. Clients match on it.
	ForbiddenMessage = "forbidden access"
)

// NewUnauthorizedError creates the fixed 401 Unauthorized HTTPError.
//
// Body: {"error":true,"message":"unauthorized access"}
func NewUnauthorizedError() *HTTPError {
	return &HTTPError{
		Status:    http.StatusUnauthorized,
		ErrorFlag: true,
		Message:   UnauthorizedMessage,
	}
}

// NewForbiddenError creates the fixed 403 Forbidden HTTPError.
//
// Body: {"message":"forbidden access"} — no "error" key, per the contract.
func NewForbiddenError() *HTTPError {
	return &HTTPError{
		Status:  http.StatusForbidden,
		Message: ForbiddenMessage,
	}
}

// NewBadRequestError creates a 400 Bad Request HTTPError.
//
// fieldErrors is optional and carries per-field validation errors.
func NewBadRequestError(message string, fieldErrors []FieldError) *HTTPError {
	return &HTTPError{
		Status:    http.StatusBadRequest,
		ErrorFlag: true,
		Message:   message,
		Errors:    fieldErrors,
	}
}

// NewNotFoundError creates a 404 Not Found HTTPError.
func NewNotFoundError(message string) *HTTPError {
	return &HTTPError{
		Status:    http.StatusNotFound,
		ErrorFlag: true,
		Message:   message,
	}
}

// NewInternalServerError creates a 500 HTTPError with a generic message.
//
// The message is deliberately not the underlying error: upstream failures
// are logged with full detail but clients only see a safe body.
func NewInternalServerError() *HTTPError {
	return &HTTPError{
		Status:    http.StatusInternalServerError,
		ErrorFlag: true,
		Message:   "internal server error",
	}
}
