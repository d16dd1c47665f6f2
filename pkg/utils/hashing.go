package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// tokenDigest pre-hashes the token because bcrypt only reads the first 72
// bytes of its input and signed tokens run longer than that.
func tokenDigest(token string) []byte {
	sum := sha256.Sum256([]byte(token))
	return sum[:]
}

// HashToken stores a delete token's bcrypt hash so a database leak does not
// hand out working tokens.
func HashToken(token string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword(tokenDigest(token), 10)
	return string(bytes), err
}

func CompareToken(hashedToken string, plainToken string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedToken), tokenDigest(plainToken))
}

// GenerateSecureToken returns length random bytes hex-encoded.
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
