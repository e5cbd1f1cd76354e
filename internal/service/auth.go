package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/mariaparlour/backend/internal/server"
	"github.com/pkg/errors"
)

// TokenTTL is the fixed lifetime of every issued token.
const TokenTTL = 24 * time.Hour

// AuthService signs and verifies bearer tokens with the process-wide
// secret. Tokens are HS256-signed and carry whatever identity payload was
// supplied at issuance time, at minimum an email.
type AuthService struct {
	secret []byte
}

// NewAuthService constructs an AuthService from the configured secret.
func NewAuthService(s *server.Server) *AuthService {
	return &AuthService{
		secret: []byte(s.Config.Auth.SecretKey),
	}
}

// SignToken signs the given identity payload and sets the fixed 24h
// expiration. The payload is not checked against the user store; issuance
// is the trusted login bootstrap step.
func (a *AuthService) SignToken(identity map[string]any) (string, error) {
	claims := jwt.MapClaims{}
	for k, v := range identity {
		claims[k] = v
	}
	claims["exp"] = jwt.NewNumericDate(time.Now().Add(TokenTTL))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(a.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}
	return signed, nil
}

// ParseToken verifies the signature and expiry of a token and returns its
// claims. Any failure (malformed, wrong signature, expired) is returned as
// an error; callers translate it to the 401 contract.
func (a *AuthService) ParseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, jwt.MapClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// EmailFromClaims extracts the email claim, if present.
func EmailFromClaims(claims jwt.MapClaims) string {
	email, _ := claims["email"].(string)
	return email
}
