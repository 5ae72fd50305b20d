package store

import "errors"

var (
	// ErrEmailAlreadyExists is returned when an insert violates the unique
	// index on the users email column.
	ErrEmailAlreadyExists = errors.New("user with this email already exists")

	// ErrUserNotFound is returned when a lookup matches no user record.
	ErrUserNotFound = errors.New("no user was found")
)
