// Package logic implements the core business logic for the encryption/decryption.
package logic

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/idelchi/shacbc/internal/checksum"
	"github.com/idelchi/shacbc/internal/config"
	"github.com/idelchi/shacbc/internal/encryption"
	"github.com/idelchi/shacbc/internal/passphrase"
)

// Run encrypts or decrypts every file in cfg.
func Run(cfg *config.Config) error {
	if cfg.Show {
		return nil
	}

	return run(cfg, passphrase.Source{
		Value:   cfg.Password.String,
		File:    cfg.Password.File,
		Confirm: !cfg.Decrypt,
	})
}

func run(cfg *config.Config, source passphrase.Source, opts ...encryption.Option) error {
	start := time.Now()

	logger := NewLogger(os.Stderr, cfg.Verbose)

	password, err := source.Get()
	if err != nil {
		return fmt.Errorf("getting password: %w", err)
	}
	defer passphrase.Zero(password)

	opts = append([]encryption.Option{encryption.WithLogger(logger)}, opts...)

	proc, err := encryption.NewProcessor(cfg, password, opts...)
	if err != nil {
		return fmt.Errorf("creating processor: %w", err)
	}
	defer proc.Close()

	logger.Debug("processing files",
		"count", len(cfg.Files),
		"decrypt", cfg.Decrypt,
		"parallel", cfg.Parallel,
		"iterations", encryption.Iterations,
	)

	processed, errored, totalSize, err := proc.ProcessFiles()

	if cfg.Stats {
		printStats(os.Stderr, processed, errored, totalSize, time.Since(start))
	}

	if err != nil {
		return fmt.Errorf("running logic: %w", err)
	}

	return nil
}

// RunHash prints the SHA-1 digest of each file in sha1sum format.
func RunHash(files []string, out io.Writer) error {
	var failed int

	for _, file := range files {
		sum, err := checksum.File(file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error hashing %q: %v\n", file, err)

			failed++

			continue
		}

		fmt.Fprintf(out, "%s  %s\n", sum, file)
	}

	if failed > 0 {
		return fmt.Errorf("%d file(s) could not be hashed", failed)
	}

	return nil
}

// NewLogger returns a text logger writing to w, at debug level when verbose.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func printStats(w io.Writer, processed, errored int, totalSize int64, duration time.Duration) {
	fmt.Fprintf(w, "\nStats\n")
	fmt.Fprintf(w, "  Processed: %d\n", processed)
	fmt.Fprintf(w, "  Errors:    %d\n", errored)
	//nolint:gosec // totalSize is always non-negative (sum of file sizes)
	fmt.Fprintf(w, "  Size:      %s\n", humanize.IBytes(uint64(max(0, totalSize))))
	fmt.Fprintf(w, "  Duration:  %s\n", duration.Round(time.Millisecond))
}
