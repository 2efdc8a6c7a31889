package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/shacbc/internal/logic"
)

// NewHashCommand creates a new cobra command printing SHA-1 digests of files.
func NewHashCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "hash files...",
		Short: "Print the SHA-1 digest of files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return logic.RunHash(args, cmd.OutOrStdout())
		},
	}
}
