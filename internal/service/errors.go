package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials covers both "no such user" and "wrong password"
	// so that login failures do not reveal which of the two occurred.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAccountInactive is returned when a deactivated account attempts
	// to authenticate.
	ErrAccountInactive = errors.New("account is inactive")

	// ErrSystemAlreadyInitialized is returned when the one-time bootstrap
	// path is invoked while the directory is not empty.
	ErrSystemAlreadyInitialized = errors.New("system is already initialized")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrInvalidResetToken covers every reset-token failure: bad signature,
	// expiry, wrong purpose, superseded or already consumed token, or a
	// subject that no longer exists.
	ErrInvalidResetToken = errors.New("invalid or expired reset token")
)
