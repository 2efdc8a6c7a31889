package encryption

import (
	"crypto/rand"
	"fmt"
	"io"
)

// Seal encrypts plaintext under a key derived from password and returns header ‖ ciphertext.
// Salt and IV are read from random; a nil random uses crypto/rand.
func Seal(plaintext, password []byte, random io.Reader) ([]byte, error) {
	if len(password) == 0 {
		return nil, ErrEmptyPassword
	}

	if random == nil {
		random = rand.Reader
	}

	header, err := newHeader(random)
	if err != nil {
		return nil, err
	}

	key := DeriveKey(password, header.Salt[:])
	defer zero(key)

	ciphertext, err := EncryptCBC(plaintext, key, header.IV[:])
	if err != nil {
		return nil, fmt.Errorf("encrypting: %w", err)
	}

	encoded, err := header.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("encoding header: %w", err)
	}

	return append(encoded, ciphertext...), nil
}

// Open reverses Seal: it reads the header, derives the key and decrypts the rest.
func Open(artifact, password []byte) ([]byte, error) {
	if len(password) == 0 {
		return nil, ErrEmptyPassword
	}

	switch {
	case len(artifact) < HeaderSize:
		return nil, fmt.Errorf("%w: %d bytes", ErrTruncatedFile, len(artifact))
	case len(artifact) == HeaderSize:
		return nil, ErrEmptyCiphertext
	}

	var header Header
	if err := header.UnmarshalBinary(artifact[:HeaderSize]); err != nil {
		return nil, err
	}

	ciphertext := artifact[HeaderSize:]
	if len(ciphertext)%BlockSize != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrInvalidBlockSize, len(ciphertext))
	}

	key := DeriveKey(password, header.Salt[:])
	defer zero(key)

	plaintext, err := DecryptCBC(ciphertext, key, header.IV[:])
	if err != nil {
		return nil, fmt.Errorf("decrypting: %w", err)
	}

	return plaintext, nil
}

// zero overwrites key material once it is no longer needed.
func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
