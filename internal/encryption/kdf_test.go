package encryption_test

import (
	"crypto/hmac"
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/idelchi/shacbc/internal/encryption"
)

// referencePBKDF2 computes the first PBKDF2-HMAC-SHA256 block directly from RFC 8018.
func referencePBKDF2(password, salt []byte, iterations int) []byte {
	mac := hmac.New(sha256.New, password)
	mac.Write(salt)
	mac.Write([]byte{0, 0, 0, 1})

	u := mac.Sum(nil)
	out := append([]byte(nil), u...)

	for range iterations - 1 {
		mac.Reset()
		mac.Write(u)
		u = mac.Sum(u[:0])

		for i := range out {
			out[i] ^= u[i]
		}
	}

	return out
}

func TestDeriveKeyMatchesReference(t *testing.T) {
	t.Parallel()

	password := []byte("pw123")
	salt := []byte("0123456789abcdef")

	key := encryption.DeriveKey(password, salt)

	assert.Len(t, key, encryption.KeySize)
	assert.Equal(t, referencePBKDF2(password, salt, encryption.Iterations), key)
}

func TestDeriveKeyDeterministic(t *testing.T) {
	t.Parallel()

	salt := make([]byte, encryption.SaltSize)

	assert.Equal(t,
		encryption.DeriveKey([]byte("password"), salt),
		encryption.DeriveKey([]byte("password"), salt),
	)
}

func TestDeriveKeySaltAndPasswordSensitive(t *testing.T) {
	t.Parallel()

	saltA := make([]byte, encryption.SaltSize)
	saltB := make([]byte, encryption.SaltSize)
	saltB[encryption.SaltSize-1] = 1

	base := encryption.DeriveKey([]byte("password"), saltA)

	assert.NotEqual(t, base, encryption.DeriveKey([]byte("password"), saltB))
	assert.NotEqual(t, base, encryption.DeriveKey([]byte("Password"), saltA))
}
