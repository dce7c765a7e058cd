package utils

import "errors"

// Sentinel errors shared by controllers and middleware. The auth sentinels
// stay internally distinct (they get logged with their real cause) but every
// HTTP response collapses them into one generic 401.
var (
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrNotAuthenticated   = errors.New("could not validate credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrUserNotFound       = errors.New("user not found")
)
