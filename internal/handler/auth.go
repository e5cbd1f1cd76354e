package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/mariaparlour/backend/internal/server"
	"github.com/mariaparlour/backend/internal/service"
	"github.com/mariaparlour/backend/internal/validation"
)

// IssueTokenRequest is the identity payload to sign. The whole body becomes
// the token claims; issuance does not check it against the user store, it
// is the trusted login bootstrap step. An email claim is required because
// every downstream authorization decision keys on it.
type IssueTokenRequest map[string]any

func (r *IssueTokenRequest) Validate() error {
	if email, _ := (*r)["email"].(string); email == "" {
		return validation.CustomValidationErrors{
			{Field: "email", Message: "is required"},
		}
	}
	return nil
}

// TokenResponse carries a freshly signed bearer token.
type TokenResponse struct {
	Token string `json:"token"`
}

// AuthHandler issues bearer tokens.
type AuthHandler struct {
	Handler
	auth *service.AuthService
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(s *server.Server, auth *service.AuthService) *AuthHandler {
	return &AuthHandler{
		Handler: NewHandler(s),
		auth:    auth,
	}
}

// IssueToken signs the supplied identity payload with a fixed 24h expiry.
func (h *AuthHandler) IssueToken(c echo.Context, req *IssueTokenRequest) (*TokenResponse, error) {
	token, err := h.auth.SignToken(map[string]any(*req))
	if err != nil {
		return nil, err
	}
	return &TokenResponse{Token: token}, nil
}
