// Package handler is the HTTP layer: the first entry point for business
// logic after the router.
//
// Handlers bind and validate request payloads using the validation
// package, call the appropriate service, and return the service result for
// the typed pipeline in base.go to write out.
package handler
