package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/shacbc/internal/config"
	"github.com/idelchi/shacbc/internal/logic"
)

// NewEncryptCommand creates a new cobra command for the encrypt subcommand.
func NewEncryptCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "encrypt [flags] files...",
		Aliases: []string{"enc"},
		Short:   "Encrypt files",
		Example: `  shacbc encrypt document.txt -o encrypted.bin
  SHACBC_PASSWORD=secret shacbc encrypt *.txt`,
		Args:    cobra.MinimumNArgs(1),
		PreRunE: preRun(cfg, false),
		RunE: func(_ *cobra.Command, _ []string) error {
			return logic.Run(cfg)
		},
	}

	cmd.Flags().StringP("output", "o", "", "Output path (single input only)")

	return cmd
}
