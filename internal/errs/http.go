package errs

// FieldError represents a field-level validation error.
// Example:
//
//	{ "field": "email", "error": "must be a valid email address" }
type FieldError struct {
	// Field is the field name the error relates to (e.g. "email").
	Field string `json:"field"`

	// Error is the human-readable error message.
	Error string `json:"error"`
}

// HTTPError is the error envelope for API responses.
//
// It implements the `error` interface via Error() and serializes directly
// to the response body. Status is the HTTP status code and is never part
// of the body itself.
//
// ErrorFlag maps to the "error" body key. It is omitted when false because
// the 403 body carries only a message.
type HTTPError struct {
	Status    int          `json:"-"`
	ErrorFlag bool         `json:"error,omitempty"`
	Message   string       `json:"message"`
	Errors    []FieldError `json:"errors,omitempty"`
}

// Error makes *HTTPError satisfy the built-in `error` interface.
func (e *HTTPError) Error() string {
	return e.Message
}

// Is reports whether target is also a *HTTPError.
//
// It matches on type only, not on status or message, so
// errors.Is(err, &HTTPError{}) can be used as a broad class check.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// WithMessage returns a copy of this HTTPError with Message replaced.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Status:    e.Status,
		ErrorFlag: e.ErrorFlag,
		Message:   message,
		Errors:    e.Errors,
	}
}
