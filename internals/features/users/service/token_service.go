package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"namur_backend/internals/configs"
)

// TokenTTL is how long a login stays valid.
const TokenTTL = 7 * 24 * time.Hour

// IssueToken signs an HS256 token with the claims the auth middleware
// reads back (id, email, name, role, exp).
func IssueToken(id uint, email, name, role string) (string, error) {
	if configs.JWTSecret == "" {
		return "", errors.New("missing JWT secret")
	}
	claims := jwt.MapClaims{
		"id":    id,
		"email": email,
		"name":  name,
		"role":  role,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(TokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}
