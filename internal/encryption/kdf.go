package encryption

import (
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// SaltSize is the length of the random KDF salt stored in the header.
	SaltSize = 16
	// KeySize is the length of the derived SHACAL-2 key.
	KeySize = 32
	// Iterations is the PBKDF2 iteration count.
	Iterations = 10000
)

// DeriveKey derives a KeySize-byte key from password and salt using PBKDF2-HMAC-SHA256.
// It is deliberately slow; the result must never be persisted.
func DeriveKey(password, salt []byte) []byte {
	return pbkdf2.Key(password, salt, Iterations, KeySize, sha256.New)
}
