package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or missing token")
	ErrForbidden          = errors.New("access denied")
)
