package user

import "errors"

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrLoginIDExists = errors.New("login ID already exists")
)
