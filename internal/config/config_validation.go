package config

import "errors"

// validate checks that the merged configuration carries everything the
// server cannot run without. Defaults cover addresses and durations, so
// only secrets and the database DSN can still be missing here.
//
// AdminCreationKey is intentionally not required: the bootstrap endpoint
// guard treats an unset key as a hard request-time failure instead of a
// startup failure, so the rest of the API stays usable.
func (c *StructuredConfig) validate() error {
	var errs []error

	if c.Storage.DB.DSN == "" {
		errs = append(errs, ErrNoDatabaseDSN)
	}
	if c.App.TokenSignKey == "" {
		errs = append(errs, ErrNoTokenSignKey)
	}
	if c.App.ResetSignKey == "" {
		errs = append(errs, ErrNoResetSignKey)
	}
	if c.App.TokenDuration <= 0 {
		errs = append(errs, ErrInvalidTokenDuration)
	}
	if c.App.ResetTokenDuration <= 0 {
		errs = append(errs, ErrInvalidResetTokenDuration)
	}
	if c.Server.HTTPAddress == "" {
		errs = append(errs, ErrNoServerAddress)
	}

	return errors.Join(errs...)
}
