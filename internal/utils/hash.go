package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost is the fixed work factor applied to every password hash.
const bcryptCost = 10

// HashPassword derives a salted one-way bcrypt hash from the plaintext
// password. The plaintext is never stored or logged; only the resulting
// hash is persisted.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// CheckPassword compares a stored bcrypt hash against a plaintext password.
// The argument order mirrors bcrypt.CompareHashAndPassword: hash first.
// bcrypt's comparison is resistant to timing attacks.
//
// Returns nil on match and bcrypt.ErrMismatchedHashAndPassword (or a parse
// error for a malformed hash) otherwise.
func CheckPassword(hash, plaintext string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
}

// HashToken computes the SHA-256 digest of a token string and returns it
// hex-encoded. Used to persist reset tokens without storing them verbatim.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
