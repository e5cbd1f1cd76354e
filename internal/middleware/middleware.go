// Package middleware contains the HTTP middleware stack.
//
// The two guards at the heart of the API live here: VerifyToken (bearer
// token verification) and RequireAdmin (role lookup). RequireAdmin assumes
// VerifyToken already ran and attached the decoded identity; routes must
// compose them in that order.
package middleware
