package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration values are missing or invalid.
var (
	ErrNoDatabaseDSN             = errors.New("database DSN is not configured")
	ErrNoTokenSignKey            = errors.New("session token sign key is not configured")
	ErrNoResetSignKey            = errors.New("reset token sign key is not configured")
	ErrInvalidTokenDuration      = errors.New("session token duration must be positive")
	ErrInvalidResetTokenDuration = errors.New("reset token duration must be positive")
	ErrNoServerAddress           = errors.New("server address is not configured")
)
