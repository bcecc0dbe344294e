package services

import "errors"

var (
	ErrInvalidToken    = errors.New("invalid token")
	ErrInactiveSession = errors.New("session is not active")
	ErrNotAdmin        = errors.New("principal is not an administrator")
	ErrAdminNotFound   = errors.New("admin not found")
)
