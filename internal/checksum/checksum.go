// Package checksum computes file digests.
package checksum

import (
	"crypto/sha1" //nolint:gosec // SHA-1 is the published digest format of the tool
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// File returns the lowercase hex SHA-1 digest of the file at path.
func File(path string) (string, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return "", fmt.Errorf("opening %q: %w", path, err)
	}
	defer f.Close()

	return Reader(f)
}

// Reader returns the lowercase hex SHA-1 digest of everything read from r.
func Reader(r io.Reader) (string, error) {
	h := sha1.New() //nolint:gosec // see import

	if _, err := io.Copy(h, r); err != nil {
		return "", fmt.Errorf("hashing: %w", err)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}
