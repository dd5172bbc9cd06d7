// Package auth holds the credential and session-token primitives: salted
// scrypt password hashes and opaque bearer tokens stored only as digests.
package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/scrypt"
)

// scrypt cost parameters. Existing hashes depend on these values.
const (
	scryptN  = 16384
	scryptR  = 8
	scryptP  = 1
	hashLen  = 64
	saltLen  = 16
	tokenLen = 32
)

// NormalizeUsername returns the canonical form used for uniqueness and lookup.
func NormalizeUsername(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// GenerateSalt returns 128 random bits, hex encoded.
func GenerateSalt() (string, error) {
	return randomHex(saltLen)
}

// HashPassword derives the hex-encoded scrypt hash of password. The salt is
// used as its hex text, not its decoded bytes.
func HashPassword(password, salt string) (string, error) {
	key, err := scrypt.Key([]byte(password), []byte(salt), scryptN, scryptR, scryptP, hashLen)
	if err != nil {
		return "", fmt.Errorf("scrypt: %w", err)
	}
	return hex.EncodeToString(key), nil
}

// VerifyPassword recomputes the hash and compares it in constant time.
// A corrupt or wrong-length expectedHash is a mismatch, never an error.
func VerifyPassword(password, salt, expectedHash string) bool {
	expected, err := hex.DecodeString(expectedHash)
	if err != nil || len(expected) != hashLen {
		return false
	}
	computed, err := scrypt.Key([]byte(password), []byte(salt), scryptN, scryptR, scryptP, hashLen)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare(expected, computed) == 1
}

// NewSessionToken returns a 256-bit random bearer token, hex encoded.
func NewSessionToken() (string, error) {
	return randomHex(tokenLen)
}

// HashToken is the session-store lookup key for a token.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func randomHex(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("read random: %w", err)
	}
	return hex.EncodeToString(b), nil
}
