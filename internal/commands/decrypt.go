package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/shacbc/internal/config"
	"github.com/idelchi/shacbc/internal/logic"
)

// NewDecryptCommand creates a new cobra command for the decrypt subcommand.
func NewDecryptCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "decrypt [flags] files...",
		Aliases: []string{"dec"},
		Short:   "Decrypt files",
		Example: `  shacbc decrypt encrypted.bin -o decrypted.txt`,
		Args:    cobra.MinimumNArgs(1),
		PreRunE: preRun(cfg, true),
		RunE: func(_ *cobra.Command, _ []string) error {
			return logic.Run(cfg)
		},
	}

	cmd.Flags().StringP("output", "o", "", "Output path (single input only)")

	return cmd
}
