// Package config holds the runtime configuration shared by all commands.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/idelchi/gogen/pkg/validator"
)

// Password sources. At most one of String and File may be set; with neither,
// the password is prompted for.
type Password struct {
	String string `label:"--password"      mapstructure:"password"      mask:"filled"`
	File   string `label:"--password-file" mapstructure:"password-file" validate:"exclusive=String"`
}

// Suffixes used to derive output paths when --output is not given.
type Suffixes struct {
	Encrypt string `label:"--encrypt-ext" mapstructure:"encrypt-ext" validate:"required"`
	Decrypt string `mapstructure:"decrypt-ext"`
}

// Config represents the configuration for the encryption/decryption operations.
type Config struct {
	// Password options
	Password Password `mapstructure:",squash"`

	// Output names the destination of a single input file.
	Output string

	// Suffixes for derived output names
	Suffixes Suffixes `mapstructure:",squash"`

	// Parallel is the number of files processed at once.
	Parallel int `label:"--parallel" validate:"min=1"`

	// Show prints the resolved configuration instead of running.
	Show bool

	Quiet              bool
	Verbose            bool
	Stats              bool
	Delete             bool
	PreserveTimestamps bool `mapstructure:"preserve-timestamps"`

	// Set by the subcommand
	Decrypt bool `mapstructure:"-"`

	// Positional arguments
	Files []string `label:"files" mapstructure:"-" validate:"min=1"`
}

const fallbackDecryptSuffix = ".dec"

var (
	// ErrOutputWithMultipleFiles is returned when --output is combined with more than one input.
	ErrOutputWithMultipleFiles = errors.New("--output requires exactly one input file")

	// ErrDeleteOverwritesInput is returned when --delete would remove the file --output just wrote.
	ErrDeleteOverwritesInput = errors.New("--delete cannot be combined with --output naming the input file")
)

// Display reports whether the configuration should be printed instead of run.
func (c *Config) Display() bool {
	return c.Show
}

// Validate validates the configuration against the struct tags
// and the rules that span several fields.
func (c *Config) Validate(config any) error {
	validate := validator.New()

	if err := registerExclusive(validate); err != nil {
		return err
	}

	if err := joinErrors(validate.Validate(config)); err != nil {
		return fmt.Errorf("validating configuration: %w", err)
	}

	if c.Output != "" && len(c.Files) != 1 {
		return ErrOutputWithMultipleFiles
	}

	if c.Delete && c.Output != "" && filepath.Clean(c.Output) == filepath.Clean(c.Files[0]) {
		return ErrDeleteOverwritesInput
	}

	return nil
}

// OutputPath returns where the result for filename is written.
// Decrypting a file that lacks the encrypted suffix, with no decrypt suffix configured,
// falls back to appending ".dec" so the input is never overwritten.
func (c *Config) OutputPath(filename string) string {
	if c.Output != "" {
		return c.Output
	}

	if !c.Decrypt {
		return filename + c.Suffixes.Encrypt
	}

	out := strings.TrimSuffix(filename, c.Suffixes.Encrypt) + c.Suffixes.Decrypt
	if filepath.Clean(out) == filepath.Clean(filename) {
		out = filename + fallbackDecryptSuffix
	}

	return out
}
