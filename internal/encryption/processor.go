package encryption

import (
	"crypto/rand"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/idelchi/shacbc/internal/config"
	"github.com/idelchi/shacbc/internal/fileutil"
)

// Processor handles the encryption and decryption of files.
type Processor struct {
	// cfg contains runtime configuration options
	cfg *config.Config

	// password is the KDF input for every file
	password []byte

	// random supplies salts and IVs
	random io.Reader

	logger *slog.Logger

	stdout io.Writer
	stderr io.Writer
}

// Option configures a Processor.
type Option func(*Processor)

// WithRandom replaces crypto/rand as the salt and IV source.
// Reads are serialized, so r need not be safe for concurrent use.
func WithRandom(r io.Reader) Option {
	return func(p *Processor) {
		p.random = &lockedReader{r: r}
	}
}

// WithLogger sets the logger for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Processor) {
		p.logger = logger
	}
}

// WithOutput redirects the per-file progress and error lines.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(p *Processor) {
		p.stdout = stdout
		p.stderr = stderr
	}
}

// NewProcessor creates a new Processor with the given configuration.
// The password is copied; an empty password is rejected before any work is done.
func NewProcessor(cfg *config.Config, password []byte, opts ...Option) (*Processor, error) {
	if len(password) == 0 {
		return nil, ErrEmptyPassword
	}

	processor := &Processor{
		cfg:      cfg,
		password: append([]byte(nil), password...),
		random:   rand.Reader,
		logger:   slog.New(slog.DiscardHandler),
		stdout:   os.Stdout,
		stderr:   os.Stderr,
	}

	for _, opt := range opts {
		opt(processor)
	}

	return processor, nil
}

// Close wipes the password held by the processor.
func (p *Processor) Close() {
	zero(p.password)
}

// ProcessFiles concurrently processes all files specified in the configuration.
// It encrypts or decrypts files based on the configuration settings.
// Returns the number of successfully processed files and the number of errors.
// Each call runs its own batch, so a Processor may be reused.
//
//nolint:cyclop,gocognit
func (p *Processor) ProcessFiles() (processed, errored int, totalSize int64, err error) {
	group := errgroup.Group{}
	group.SetLimit(max(1, p.cfg.Parallel))

	// results channels processing outcomes to the printer goroutine
	results := make(chan Result, len(p.cfg.Files))
	done := make(chan struct{})

	go func() {
		defer close(done)

		for result := range results {
			if result.Error != nil {
				errored++

				fmt.Fprintf(p.stderr, "Error processing %q: %v\n", result.Input, result.Error)

				continue
			}

			processed++

			totalSize += result.OutputSize

			if !p.cfg.Quiet {
				fmt.Fprintf(p.stdout, "Processed %q -> %q\n", result.Input, result.Output)
			}

			switch {
			case !p.cfg.Delete:
			case sameFile(result.Input, result.Output):
				// The output replaced the input; removing it would lose both.
				fmt.Fprintf(p.stderr, "Not deleting %q: it was overwritten by the output\n", result.Input)
			default:
				if err := os.Remove(result.Input); err != nil {
					fmt.Fprintf(p.stderr, "Error deleting %q: %v\n", result.Input, err)
				} else if !p.cfg.Quiet {
					fmt.Fprintf(p.stdout, "Deleted %q\n", result.Input)
				}
			}
		}
	}()

	for _, file := range p.cfg.Files {
		group.Go(func() error {
			outPath := p.cfg.OutputPath(file)

			size, err := p.processFile(file, outPath)
			if err != nil {
				results <- Result{Input: file, Error: err}

				return err
			}

			results <- Result{Input: file, Output: outPath, OutputSize: size}

			return nil
		})
	}

	err = group.Wait()

	close(results)

	<-done // Wait for printer to finish

	if err != nil {
		return processed, errored, totalSize, fmt.Errorf("processing files: %w", err)
	}

	return processed, errored, totalSize, nil
}

func sameFile(a, b string) bool {
	if filepath.Clean(a) == filepath.Clean(b) {
		return true
	}

	aInfo, errA := os.Stat(a)
	bInfo, errB := os.Stat(b)

	return errA == nil && errB == nil && os.SameFile(aInfo, bInfo)
}

// EncryptFile encrypts input and writes header ‖ ciphertext to output.
func (p *Processor) EncryptFile(input, output string) error {
	_, err := p.encryptFile(input, output)

	return err
}

// DecryptFile decrypts an encrypted input and writes the plaintext to output.
func (p *Processor) DecryptFile(input, output string) error {
	_, err := p.decryptFile(input, output)

	return err
}

func (p *Processor) processFile(filename, outPath string) (int64, error) {
	if p.cfg.Decrypt {
		return p.decryptFile(filename, outPath)
	}

	return p.encryptFile(filename, outPath)
}

func (p *Processor) encryptFile(input, output string) (int64, error) {
	src, err := fileutil.ReadSource(input)
	if err != nil {
		return 0, &PathError{Op: "read", Path: input, Err: err}
	}

	if len(src.Data) == 0 {
		return 0, fmt.Errorf("%s: %w", input, ErrEmptyInput)
	}

	p.logger.Debug("encrypting", "input", input, "output", output, "size", len(src.Data))

	artifact, err := Seal(src.Data, p.password, p.random)
	if err != nil {
		return 0, fmt.Errorf("encrypting %s: %w", input, err)
	}

	return p.write(src, output, artifact)
}

func (p *Processor) decryptFile(input, output string) (int64, error) {
	src, err := fileutil.ReadSource(input)
	if err != nil {
		return 0, &PathError{Op: "read", Path: input, Err: err}
	}

	p.logger.Debug("decrypting", "input", input, "output", output, "size", len(src.Data))

	plaintext, err := Open(src.Data, p.password)
	if err != nil {
		return 0, fmt.Errorf("decrypting %s: %w", input, err)
	}

	return p.write(src, output, plaintext)
}

func (p *Processor) write(src *fileutil.Source, output string, data []byte) (int64, error) {
	if err := fileutil.WriteAtomic(output, data, src.Perm()); err != nil {
		return 0, &PathError{Op: "write", Path: output, Err: err}
	}

	size, err := fileutil.FinalizeOutput(output, p.cfg.PreserveTimestamps, src.Info.ModTime())
	if err != nil {
		return 0, &PathError{Op: "finalize", Path: output, Err: err}
	}

	p.logger.Debug("wrote output", "output", output, "size", size)

	return size, nil
}

// Result is the outcome of processing a single file.
type Result struct {
	Input      string
	Output     string
	OutputSize int64
	Error      error
}

// lockedReader serializes reads from a random source shared by the workers.
type lockedReader struct {
	mu sync.Mutex
	r  io.Reader
}

func (l *lockedReader) Read(b []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.r.Read(b)
}
