package encryption

import "errors"

var (
	// ErrEmptyInput is returned when the file to encrypt has no content.
	ErrEmptyInput = errors.New("input is empty")
	// ErrEmptyPassword is returned when no password was supplied.
	ErrEmptyPassword = errors.New("password is empty")
	// ErrTruncatedFile is returned when encrypted data is shorter than the header.
	ErrTruncatedFile = errors.New("file too short to contain a header")
	// ErrEmptyCiphertext is returned when encrypted data holds a header but no ciphertext.
	ErrEmptyCiphertext = errors.New("file contains no ciphertext")
	// ErrInvalidPadding is returned when PKCS7 padding is malformed.
	// A wrong password and corrupted ciphertext both end up here.
	ErrInvalidPadding = errors.New("invalid padding (wrong password or corrupted data)")
	// ErrInvalidBlockSize is returned when encrypted data length is not aligned with the block size.
	ErrInvalidBlockSize = errors.New("ciphertext is not a multiple of block size")
)

// PathError records a file system failure together with the file it concerns.
type PathError struct {
	// Op is the failed operation, e.g. "read" or "write".
	Op string
	// Path is the file the operation was applied to.
	Path string
	// Err is the underlying cause.
	Err error
}

func (e *PathError) Error() string {
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *PathError) Unwrap() error {
	return e.Err
}
