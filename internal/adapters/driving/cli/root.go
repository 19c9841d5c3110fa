// Package cli provides the command-line interface for gridpad.
// It implements a driving adapter following hexagonal architecture principles.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/gridpad-labs/gridpad-cli/internal/core/ports/driven"
	"github.com/gridpad-labs/gridpad-cli/internal/core/ports/driving"
	"github.com/gridpad-labs/gridpad-cli/internal/logger"
)

// version is the application version, set at build time via ldflags.
var version = "dev"

// Package-level services injected by the composition root.
var (
	normalizerService driving.Normalizer
	hostClient        driven.HostClient
	revisionStore     driven.RevisionStore
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "gridpad",
	Short: "Normalize pasted tabular text into clean tables",
	Long: `gridpad turns messy pasted text into a normalized table.

Pasted rows may be tab-separated, comma-separated, or the saved JSON
form; gridpad parses them into a canonical table document, renders it,
and persists the normalized JSON through the configured backend.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// SetVersion sets the application version shown by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// SetNormalizer injects the normalizer service.
func SetNormalizer(n driving.Normalizer) {
	normalizerService = n
}

// SetHostClient injects the host client backend.
func SetHostClient(h driven.HostClient) {
	hostClient = h
}

// SetRevisionStore injects the revision store backend.
func SetRevisionStore(r driven.RevisionStore) {
	revisionStore = r
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
