// Package errs defines the error types returned to API clients.
//
// Authorization failures use fixed literal bodies that existing clients
// match on, so the JSON shape here is part of the wire contract:
//
//	401 -> {"error":true,"message":"unauthorized access"}
//	403 -> {"message":"forbidden access"}
//
// Other failures (validation, not found, upstream) reuse the same envelope
// with the "error" flag set.
package errs
