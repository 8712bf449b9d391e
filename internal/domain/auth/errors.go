package auth

import "errors"

var (
	ErrInvalidCredentials    = errors.New("invalid email or password")
	ErrInvalidToken          = errors.New("invalid token")
	ErrTokenExpired          = errors.New("token expired")
	ErrRefreshTokenRevoked   = errors.New("refresh token revoked")
	ErrUserNotFound          = errors.New("user not found")
	ErrGoogleEmailUnverified = errors.New("google account email is not verified")
)
