package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func ComparePasswords(hashedPassword string, plainPassword string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(plainPassword))
}

// HashToken digests an opaque token for at-rest storage. Tokens already
// carry their own entropy, so a plain SHA-256 is enough and sidesteps the
// bcrypt input length limit.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func CompareTokens(hashedToken string, plainToken string) error {
	if subtle.ConstantTimeCompare([]byte(hashedToken), []byte(HashToken(plainToken))) != 1 {
		return errors.New("token mismatch")
	}
	return nil
}

// GenerateSecureToken returns a hex string of length*2 characters, used for
// single-use password reset tokens.
func GenerateSecureToken(length int) (string, error) {
	if length <= 0 {
		return "", errors.New("invalid token length")
	}

	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}

	return hex.EncodeToString(bytes), nil
}
