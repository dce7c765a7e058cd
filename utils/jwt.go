package utils

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var jwtSecret []byte

const defaultExpireMinutes = 30

func init() {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		// Development fallback, override in production.
		secret = "change-me-menu-api-secret"
	}
	jwtSecret = []byte(secret)
}

// TokenExpiry returns the configured access-token lifetime
// (TOKEN_EXPIRE_MINUTES, default 30 minutes).
func TokenExpiry() time.Duration {
	if v := os.Getenv("TOKEN_EXPIRE_MINUTES"); v != "" {
		if minutes, err := strconv.Atoi(v); err == nil && minutes > 0 {
			return time.Duration(minutes) * time.Minute
		}
	}
	return defaultExpireMinutes * time.Minute
}

// GenerateToken signs a bearer token carrying the username as subject.
func GenerateToken(username string) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   username,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenExpiry())),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		Issuer:    "menu-api",
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

// ParseToken validates a bearer token and returns its subject (the username).
// Expired and otherwise-invalid tokens come back as distinct errors so the
// middleware can log the real cause before answering with a generic 401.
func ParseToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return jwtSecret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrTokenInvalid
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", ErrTokenInvalid
	}
	return claims.Subject, nil
}
