package models

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token purposes embedded in the custom "purpose" claim. Every verification
// path checks the purpose, so a reset token can never be replayed as a
// session credential (and vice versa), even if signing secrets were shared.
const (
	PurposeSession       = "session"
	PurposePasswordReset = "password-reset"
)

// Claims is the JWT claim set used for both session and password-reset
// tokens. Session tokens carry the full identity claims; reset tokens carry
// only the subject and the purpose marker.
type Claims struct {
	jwt.RegisteredClaims

	// Email is the account's normalized email. Session tokens only.
	Email string `json:"email,omitempty"`

	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`

	// IsAdmin mirrors the account's admin flag at issuance time.
	IsAdmin bool `json:"isAdmin,omitempty"`

	// Purpose discriminates token kinds. See PurposeSession and
	// PurposePasswordReset.
	Purpose string `json:"purpose"`
}

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and carries the decoded [Claims] for typed claim access.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers.
//
// UserID is a cached, parsed copy of the "sub" claim converted to uuid.UUID.
// It is populated during token construction or parsing and avoids repeated
// string-to-UUID parsing.
type Token struct {
	// Token is the underlying JWT token used for signing and claim
	// inspection. Excluded from JSON serialization because only the compact
	// string form is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// Claims is the decoded custom claim set of the token.
	Claims Claims `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the subject identifier extracted from the "sub" claim.
	UserID uuid.UUID `json:"-"`
}

// String returns the compact serialized form of the token.
func (t Token) String() string {
	return t.SignedString
}
