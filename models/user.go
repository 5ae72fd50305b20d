package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Country is the closed set of countries an employee record may belong to.
type Country string

// Supported countries. Any other value is rejected during validation.
const (
	CountryFrance  Country = "France"
	CountryTunisia Country = "Tunisia"
)

// Valid reports whether c is one of the supported countries.
func (c Country) Valid() bool {
	switch c {
	case CountryFrance, CountryTunisia:
		return true
	}
	return false
}

// User represents an HR employee record used for authentication and
// authorization. It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the unique identifier of the user, assigned by the database.
	ID uuid.UUID `json:"id"`

	// Email is the unique, case-normalized login identifier.
	Email string `json:"email"`

	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`

	// Position is the employee's job title.
	Position string `json:"position"`

	// Country is the employee's country, one of the supported set.
	Country Country `json:"country"`

	// HireDate is the date the employee joined.
	HireDate time.Time `json:"hireDate"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This value MUST be a one-way salted hash, never plaintext, and is
	// never serialized to JSON.
	PasswordHash string `json:"-"`

	// IsAdmin grants access to admin-only operations such as user creation.
	IsAdmin bool `json:"isAdmin"`

	// IsActive gates login. An inactive account can never authenticate.
	IsActive bool `json:"isActive"`

	// FirstLogin starts true on creation and is flipped to false exactly
	// once, at the first successful password change or reset.
	FirstLogin bool `json:"firstLogin"`

	// ResetTokenHash is the SHA-256 digest of the currently valid password
	// reset token, empty when no reset is pending. Never serialized.
	ResetTokenHash string `json:"-"`

	// ResetTokenExpiresAt is the expiry of the pending reset token.
	// Zero when no reset is pending. Never serialized.
	ResetTokenExpiresAt time.Time `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// FullName returns the display name composed of first and last name.
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// NormalizeEmail canonicalizes an email address for storage and lookup:
// surrounding whitespace is trimmed and the address is lower-cased.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Identity is the decoded subject of a verified session token, attached to
// the request context by the authentication middleware. It carries only
// non-sensitive attributes.
type Identity struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	IsAdmin   bool      `json:"isAdmin"`
	IsActive  bool      `json:"isActive"`
}
