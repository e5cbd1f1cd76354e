// Package storeerr translates document-store driver errors into API errors.
//
// Handlers return driver errors untouched; the global error handler funnels
// anything it does not recognize through HandleError so a malformed id or a
// constraint violation becomes a structured 4xx and everything else becomes
// a safe 500, instead of tearing down the request pipeline.
package storeerr

// Code categorizes a store failure independent of the driver's own types.
type Code int

const (
	// Other is any failure with no more specific category (network,
	// command, server-side errors).
	Other Code = iota

	// InvalidID means an opaque identifier failed to parse.
	InvalidID

	// DuplicateKey means a unique index rejected a write.
	DuplicateKey

	// NotFound means a single-document read matched nothing.
	NotFound

	// Timeout means the operation exceeded its deadline.
	Timeout
)

// String returns the category name for logging.
func (c Code) String() string {
	switch c {
	case InvalidID:
		return "invalid_id"
	case DuplicateKey:
		return "duplicate_key"
	case NotFound:
		return "not_found"
	case Timeout:
		return "timeout"
	default:
		return "other"
	}
}
