// Package commands provides the command-line interface for the shacbc tool.
//
// It implements commands for:
//   - encryption
//   - decryption
//   - hashing
//
// The package handles command-line parsing, configuration validation,
// and environment variable binding through cobra and viper.
package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idelchi/gogen/pkg/cobraext"
	"github.com/idelchi/shacbc/internal/config"
)

// EnvPrefix is prepended to every flag name to form its environment variable,
// e.g. SHACBC_PASSWORD for --password.
const EnvPrefix = "SHACBC"

// preRun returns a PreRunE handler that stores the positional args in cfg.Files
// and validates the configuration merged from flags and environment variables.
func preRun(cfg *config.Config, decrypt bool) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		// Subcommand-local flags such as --output are not seen by the root's binding.
		viper.SetEnvPrefix(EnvPrefix)
		viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
		viper.AutomaticEnv()

		if err := viper.BindPFlags(cmd.Flags()); err != nil {
			return fmt.Errorf("binding flags: %w", err)
		}

		if err := viper.Unmarshal(cfg); err != nil {
			return fmt.Errorf("parsing config: %w", err)
		}

		cfg.Files = args
		cfg.Decrypt = decrypt

		return cobraext.Validate(cfg, cfg)
	}
}
