// Package service implements the business logic of the application: the
// user directory (creation, lookup, bootstrap) and the credential and
// session lifecycle (login, tokens, password change and reset).
package service

import (
	"context"

	"github.com/MKhiriev/staff-keeper/models"
	"github.com/google/uuid"
)

// UserService is the user directory: it creates, looks up, and lists user
// records and enforces the one-time system bootstrap rule.
type UserService interface {
	// IsInitialized reports whether at least one user record exists.
	IsInitialized(ctx context.Context) (bool, error)

	// InitializeSystem creates the very first HR admin. Fails with
	// ErrSystemAlreadyInitialized when any record already exists.
	InitializeSystem(ctx context.Context, req models.InitializeSystemRequest) (models.User, error)

	// CreateAdmin creates an admin record directly. Fails with
	// store.ErrEmailAlreadyExists on a duplicate normalized email.
	CreateAdmin(ctx context.Context, req models.CreateAdminRequest) (models.User, error)

	// CreateUser creates a regular employee record with a server-generated
	// password and returns both the record and the generated plaintext.
	// The caller is responsible for relaying the plaintext out-of-band.
	CreateUser(ctx context.Context, req models.CreateUserRequest) (models.User, string, error)

	// FindByEmail looks a user up by normalized email.
	FindByEmail(ctx context.Context, email string) (models.User, error)

	// FindByID looks a user up by primary key.
	FindByID(ctx context.Context, id uuid.UUID) (models.User, error)

	// ListAll returns every user record, newest first.
	ListAll(ctx context.Context) ([]models.User, error)
}

// AuthService handles credential verification and the token lifecycle.
type AuthService interface {
	// Login verifies the email/password pair and, on success, returns a
	// signed session token together with the authenticated user record.
	Login(ctx context.Context, req models.LoginRequest) (models.Token, models.User, error)

	// ChangePassword verifies the current password and replaces it with a
	// fresh hash of the new one, flipping the first-login flag.
	ChangePassword(ctx context.Context, userID uuid.UUID, req models.ChangePasswordRequest) (models.User, error)

	// RequestPasswordReset issues a short-lived reset token for the given
	// email. Returns the empty string (and no error) for unknown emails so
	// account existence is never revealed.
	RequestPasswordReset(ctx context.Context, email string) (string, error)

	// ResetPassword consumes a reset token and stores a fresh hash of the
	// new password, returning the updated user record.
	ResetPassword(ctx context.Context, req models.ResetPasswordRequest) (models.User, error)

	// CreateToken issues a signed session token for the given user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates and parses a raw session token string.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}
