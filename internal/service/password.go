package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// passwordAlphabet is the character set generated passwords are drawn from:
// upper/lower-case letters, digits, and a fixed set of symbols.
const passwordAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789!@#$%^&*"

// generatedPasswordLength is the length of server-generated passwords.
const generatedPasswordLength = 12

// generateRandomPassword produces a random password for newly created
// employee accounts. Characters are drawn uniformly from passwordAlphabet
// using crypto/rand.
func generateRandomPassword() (string, error) {
	alphabetSize := big.NewInt(int64(len(passwordAlphabet)))

	password := make([]byte, generatedPasswordLength)
	for i := range password {
		idx, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			return "", fmt.Errorf("error generating random password: %w", err)
		}
		password[i] = passwordAlphabet[idx.Int64()]
	}

	return string(password), nil
}
