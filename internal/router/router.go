// Package router initializes the HTTP router (using Echo).
//
// It installs the global middleware stack, sets the global error handler
// and maps the API route table onto the handler container, composing the
// token verifier and admin guard per route.
package router
