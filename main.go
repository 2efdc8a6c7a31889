// Command shacbc encrypts and decrypts files with a password.
package main

import (
	"fmt"
	"os"

	"github.com/idelchi/shacbc/internal/commands"
	"github.com/idelchi/shacbc/internal/config"
)

// version is set at build time.
var version = "unknown - unofficial & generated by unknown"

func main() {
	cfg := &config.Config{}

	if err := commands.NewRootCommand(cfg, version).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
