package commands

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/idelchi/gogen/pkg/cobraext"
	"github.com/idelchi/shacbc/internal/config"
)

// NewRootCommand creates the root command with common configuration.
// It sets up environment variable binding and flag handling.
func NewRootCommand(cfg *config.Config, version string) *cobra.Command {
	root := cobraext.NewDefaultRootCommand(version)

	root.Use = "shacbc [flags] command [flags]"
	root.Short = "Password-based file encryption"
	root.Long = `A file encryption utility using SHACAL-2 (256-bit block and key) in CBC mode.
Keys are derived from a password with PBKDF2-HMAC-SHA256; the salt and IV are stored
in front of the ciphertext, so decryption needs only the password and the file.

The password is taken from --password, --password-file or SHACBC_PASSWORD,
or prompted for on the terminal.`
	root.SilenceUsage = true
	root.SilenceErrors = true
	root.CompletionOptions.DisableDefaultCmd = true

	flags := root.PersistentFlags()

	flags.BoolP("show", "s", false, "Show the configuration and exit")
	flags.StringP("password", "p", "", "Password (prefer --password-file or the prompt)")
	flags.StringP("password-file", "f", "", "Path to a file holding the password")
	flags.IntP("parallel", "j", runtime.NumCPU(), "Number of parallel workers, defaults to number of CPUs")
	flags.BoolP("quiet", "q", false, "Suppress non-error output")
	flags.BoolP("verbose", "v", false, "Enable debug logging")
	flags.Bool("stats", false, "Print statistics after processing")
	flags.BoolP("delete", "d", false, "Delete the original file after successful encryption/decryption")
	flags.Bool("preserve-timestamps", false, "Copy the modification time of the input to the output")

	flags.String("encrypt-ext", ".enc", "Suffix to append to encrypted files")
	flags.String("decrypt-ext", "", "Suffix to append to decrypted files, after stripping the encrypted suffix")

	root.AddCommand(NewEncryptCommand(cfg), NewDecryptCommand(cfg), NewHashCommand())

	return root
}
