// Package fileutil provides shared file operation helpers.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const executableBits = 0o111

// OwnerReadWrite is the permission given to every output file, plus the
// executable bits when the source had any.
const OwnerReadWrite = 0o600

// Source is an input file loaded fully into memory.
type Source struct {
	Info os.FileInfo
	Data []byte
}

// IsExec reports whether any execute bit is set on the source.
func (s *Source) IsExec() bool {
	return s.Info.Mode()&executableBits != 0
}

// Perm returns the permission for an output derived from this source.
func (s *Source) Perm() os.FileMode {
	perm := os.FileMode(OwnerReadWrite)

	if s.IsExec() {
		perm |= executableBits
	}

	return perm
}

// ReadSource stats and reads the whole file.
func ReadSource(filename string) (*Source, error) {
	info, err := os.Stat(filename)
	if err != nil {
		return nil, fmt.Errorf("getting file info: %w", err)
	}

	if info.IsDir() {
		return nil, fmt.Errorf("%q is a directory", filename)
	}

	data, err := os.ReadFile(filepath.Clean(filename))
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	return &Source{Info: info, Data: data}, nil
}

// WriteAtomic writes data to a temporary file in the directory of outPath and
// renames it over outPath once it is complete. On failure the temporary file is removed.
func WriteAtomic(outPath string, data []byte, perm os.FileMode) (err error) {
	tmpFile, err := os.CreateTemp(filepath.Dir(outPath), ".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temporary file: %w", err)
	}

	tmpName := tmpFile.Name()

	defer func() {
		tmpFile.Close() //nolint:gosec // best-effort cleanup

		if err != nil {
			os.Remove(tmpName) //nolint:gosec // best-effort cleanup
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("writing temporary file: %w", err)
	}

	if err := tmpFile.Chmod(perm); err != nil {
		return fmt.Errorf("setting file permissions: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("closing temporary file: %w", err)
	}

	if err := os.Rename(tmpName, outPath); err != nil {
		return fmt.Errorf("renaming output file: %w", err)
	}

	return nil
}

// FinalizeOutput optionally preserves timestamps and returns the output file size.
func FinalizeOutput(outPath string, preserveTimestamps bool, modTime time.Time) (int64, error) {
	if preserveTimestamps {
		if err := os.Chtimes(outPath, modTime, modTime); err != nil {
			return 0, fmt.Errorf("preserving timestamps: %w", err)
		}
	}

	outInfo, err := os.Stat(outPath)
	if err != nil {
		return 0, fmt.Errorf("stat output %q: %w", outPath, err)
	}

	return outInfo.Size(), nil
}
