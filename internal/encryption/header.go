package encryption

import (
	"fmt"
	"io"
)

// HeaderSize is the length of the plaintext header preceding the ciphertext.
const HeaderSize = SaltSize + IVSize

// Header carries the per-file KDF salt and CBC IV.
// On disk it is the salt immediately followed by the IV, with no magic or version.
type Header struct {
	Salt [SaltSize]byte
	IV   [IVSize]byte
}

// newHeader fills a header with fresh salt and IV bytes from random.
func newHeader(random io.Reader) (Header, error) {
	var header Header

	if _, err := io.ReadFull(random, header.Salt[:]); err != nil {
		return Header{}, fmt.Errorf("generating salt: %w", err)
	}

	if _, err := io.ReadFull(random, header.IV[:]); err != nil {
		return Header{}, fmt.Errorf("generating IV: %w", err)
	}

	return header, nil
}

// MarshalBinary encodes the header in its on-disk layout.
func (h Header) MarshalBinary() ([]byte, error) {
	out := make([]byte, 0, HeaderSize)
	out = append(out, h.Salt[:]...)
	out = append(out, h.IV[:]...)

	return out, nil
}

// UnmarshalBinary decodes a header from exactly HeaderSize bytes.
func (h *Header) UnmarshalBinary(data []byte) error {
	switch {
	case len(data) < HeaderSize:
		return fmt.Errorf("%w: header is %d bytes, want %d", ErrTruncatedFile, len(data), HeaderSize)
	case len(data) > HeaderSize:
		return fmt.Errorf("header is %d bytes, want %d", len(data), HeaderSize)
	}

	copy(h.Salt[:], data[:SaltSize])
	copy(h.IV[:], data[SaltSize:])

	return nil
}
