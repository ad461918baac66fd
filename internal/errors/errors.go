package errors

import (
	"errors"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyInUse  = errors.New("email already in use")
	ErrAccountNotFound    = errors.New("account not found")
	ErrAccountNotVerified = errors.New("account not verified")

	ErrTokenExpired   = errors.New("token expired")
	ErrTokenMalformed = errors.New("token malformed")

	ErrRefreshTokenRequired = errors.New("refresh token required")
	ErrRefreshTokenInvalid  = errors.New("refresh token invalid or expired")

	ErrRecoveryTokenInvalid = errors.New("recovery token invalid or expired")
	ErrWeakPassword         = errors.New("password does not meet policy")
)
