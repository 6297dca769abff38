package repositories

import "errors"

var (
	ErrEmailTaken      = errors.New("user with this email already exists")
	ErrSessionNotFound = errors.New("session not found or expired")
	ErrItemNotFound    = errors.New("item not found")
)
