package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/scrypt"
)

// scrypt parameters. keyLen and the 16-byte salt match the stored credential
// format already present in the users table ("hex(hash).hex(salt)").
const (
	scryptN      = 16384
	scryptR      = 8
	scryptP      = 1
	scryptKeyLen = 64
	saltLen      = 16
)

// HashPassword derives a storable credential from a plaintext password.
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	saltHex := hex.EncodeToString(salt)

	key, err := scrypt.Key([]byte(password), []byte(saltHex), scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(key) + "." + saltHex, nil
}

// IsHashedPassword reports whether stored has the exact credential shape
// produced by HashPassword: 128 hex chars, the separator, 32 hex chars.
// Legacy plaintext values do not match, even when they contain a dot.
func IsHashedPassword(stored string) bool {
	hashed, salt, ok := strings.Cut(stored, ".")
	if !ok {
		return false
	}
	key, err := hex.DecodeString(hashed)
	if err != nil || len(key) != scryptKeyLen {
		return false
	}
	raw, err := hex.DecodeString(salt)
	if err != nil || len(raw) != saltLen {
		return false
	}
	return true
}

// CheckPassword verifies a supplied password against a stored credential.
// This is the only accepted verification path: there is no plaintext
// fallback and no special-cased account. Malformed stored values fail
// closed.
func CheckPassword(supplied, stored string) bool {
	hashed, salt, ok := strings.Cut(stored, ".")
	if !ok || hashed == "" || salt == "" {
		return false
	}

	want, err := hex.DecodeString(hashed)
	if err != nil || len(want) != scryptKeyLen {
		return false
	}

	got, err := scrypt.Key([]byte(supplied), []byte(salt), scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare(want, got) == 1
}
