package encryption

import (
	"crypto/cipher"
	"fmt"

	"github.com/idelchi/shacbc/internal/shacal2"
)

// BlockSize is the SHACAL-2 block size; the IV has the same length.
const BlockSize = shacal2.BlockSize

// IVSize is the length of the CBC initialization vector.
const IVSize = BlockSize

// EncryptCBC pads plaintext and encrypts it with SHACAL-2 in CBC mode.
// The result is always at least one block longer than the last full block of plaintext.
func EncryptCBC(plaintext, key, iv []byte) ([]byte, error) {
	block, err := newBlock(key, iv)
	if err != nil {
		return nil, err
	}

	padded := pkcs7Pad(plaintext, BlockSize)

	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)

	return ciphertext, nil
}

// DecryptCBC decrypts SHACAL-2 CBC ciphertext and strips its padding.
func DecryptCBC(ciphertext, key, iv []byte) ([]byte, error) {
	if len(ciphertext) == 0 || len(ciphertext)%BlockSize != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrInvalidBlockSize, len(ciphertext))
	}

	block, err := newBlock(key, iv)
	if err != nil {
		return nil, err
	}

	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plaintext, ciphertext)

	unpadded, err := pkcs7Unpad(plaintext, BlockSize)
	if err != nil {
		return nil, fmt.Errorf("removing padding: %w", err)
	}

	return unpadded, nil
}

func newBlock(key, iv []byte) (cipher.Block, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("key must be %d bytes, got %d", KeySize, len(key))
	}

	if len(iv) != IVSize {
		return nil, fmt.Errorf("IV must be %d bytes, got %d", IVSize, len(iv))
	}

	block, err := shacal2.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("creating cipher: %w", err)
	}

	return block, nil
}
