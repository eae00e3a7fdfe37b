package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type JWTCustomClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// GenerateToken signs a session token for the shared login. ttl is 24h by
// default and 30 days when the caller asked to stay logged in.
func GenerateToken(secret, username string, ttl time.Duration) (string, error) {
	claims := &JWTCustomClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
