// Package store implements the persistence layer of the application:
// the PostgreSQL connection, embedded schema migrations, and the user
// repository backing the directory and credential services.
package store

import (
	"context"
	"time"

	"github.com/MKhiriev/staff-keeper/models"
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is the data-access contract for user records.
// All mutations are atomic per-record; duplicate emails are rejected by a
// storage-level uniqueness constraint surfaced as [ErrEmailAlreadyExists],
// so two concurrent creations of the same email resolve to exactly one
// success.
type UserRepository interface {
	// CreateUser persists a new user record and returns the canonical
	// database representation with server-assigned fields (ID, timestamps).
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail retrieves a user by exact (already normalized) email.
	// Returns ErrUserNotFound if no such record exists.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID retrieves a user by primary key.
	// Returns ErrUserNotFound if no such record exists.
	FindUserByID(ctx context.Context, id uuid.UUID) (models.User, error)

	// CountUsers reports the total number of user records.
	CountUsers(ctx context.Context) (int64, error)

	// ListUsers returns all user records ordered by creation time descending.
	ListUsers(ctx context.Context) ([]models.User, error)

	// UpdatePassword replaces the stored password hash, clears the
	// first-login flag and any pending reset token, and returns the
	// updated record.
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) (models.User, error)

	// SetResetToken stores the digest and expiry of a freshly issued
	// password-reset token on the user record.
	SetResetToken(ctx context.Context, id uuid.UUID, tokenHash string, expiresAt time.Time) error
}
