// Package passphrase obtains the password used for key derivation.
package passphrase

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"golang.org/x/term"
)

// ErrMismatch is returned when the confirmation does not match the first entry.
var ErrMismatch = errors.New("passwords do not match")

// Reader reads a password without echo from a terminal file descriptor.
type Reader func(fd int) ([]byte, error)

// Source resolves a password from a literal value, a file, or an interactive prompt.
type Source struct {
	// Value is used as-is when non-empty.
	Value string
	// File is read when Value is empty; one trailing newline is stripped.
	File string
	// Confirm asks twice when prompting.
	Confirm bool

	// Prompt output, defaults to os.Stderr.
	Out io.Writer
	// Terminal input, defaults to os.Stdin with a /dev/tty fallback.
	In *os.File
	// Read defaults to term.ReadPassword.
	Read Reader
}

// Get returns the password. The caller owns the slice and should Zero it.
func (s Source) Get() ([]byte, error) {
	switch {
	case s.Value != "":
		return []byte(s.Value), nil
	case s.File != "":
		return fromFile(s.File)
	}

	if s.Out == nil {
		s.Out = os.Stderr
	}

	if s.Read == nil {
		s.Read = term.ReadPassword
	}

	in, closeFn, err := s.terminal()
	if err != nil {
		return nil, err
	}
	defer closeFn()

	password, err := s.prompt(in, "Enter password: ")
	if err != nil {
		return nil, err
	}

	if !s.Confirm {
		return password, nil
	}

	confirm, err := s.prompt(in, "Confirm password: ")
	if err != nil {
		Zero(password)

		return nil, err
	}
	defer Zero(confirm)

	if !bytes.Equal(password, confirm) {
		Zero(password)

		return nil, ErrMismatch
	}

	return password, nil
}

func (s Source) prompt(in *os.File, label string) ([]byte, error) {
	fmt.Fprint(s.Out, label)

	password, err := s.Read(int(in.Fd())) //nolint:gosec // fd fits in int
	fmt.Fprintln(s.Out)

	if err != nil {
		return nil, fmt.Errorf("reading password: %w", err)
	}

	return password, nil
}

// terminal picks the file to prompt on. When stdin is piped it falls back to /dev/tty.
func (s Source) terminal() (*os.File, func(), error) {
	if s.In != nil {
		return s.In, func() {}, nil
	}

	if term.IsTerminal(int(os.Stdin.Fd())) { //nolint:gosec // fd fits in int
		return os.Stdin, func() {}, nil
	}

	if runtime.GOOS == "windows" {
		return nil, nil, errors.New("stdin is not a terminal: pass --password, --password-file or SHACBC_PASSWORD")
	}

	tty, err := os.Open("/dev/tty")
	if err != nil {
		return nil, nil, fmt.Errorf("stdin is not a terminal and /dev/tty is unavailable: %w", err)
	}

	return tty, func() { tty.Close() }, nil
}

func fromFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the command line
	if err != nil {
		return nil, fmt.Errorf("reading password file %q: %w", path, err)
	}

	data = bytes.TrimSuffix(data, []byte("\n"))
	data = bytes.TrimSuffix(data, []byte("\r"))

	return data, nil
}

// Zero overwrites a byte slice with zeros.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}

	runtime.KeepAlive(b)
}
