// Command gridpad is the table normalizer widget: it parses pasted
// tabular text into a canonical table, renders it, and persists the
// normalized JSON through the configured host backend.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gridpad-labs/gridpad-cli/internal/adapters/driven/config/file"
	hostfile "github.com/gridpad-labs/gridpad-cli/internal/adapters/driven/host/file"
	hostsqlite "github.com/gridpad-labs/gridpad-cli/internal/adapters/driven/host/sqlite"
	"github.com/gridpad-labs/gridpad-cli/internal/adapters/driving/cli"
	"github.com/gridpad-labs/gridpad-cli/internal/core/domain"
	"github.com/gridpad-labs/gridpad-cli/internal/core/services"
	"github.com/gridpad-labs/gridpad-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configDir, err := defaultConfigDir()
	if err != nil {
		return err
	}

	settingsStore, err := file.NewSettingsStore(configDir)
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}
	settings := settingsStore.Settings()

	logger.SetVerbose(settings.Verbose)

	normalizer := services.NewNormalizer()
	cli.SetNormalizer(normalizer)
	cli.SetVersion(version)

	editConfig := &cli.EditConfig{}

	switch settings.Backend {
	case domain.BackendSQLite:
		host, err := hostsqlite.NewClient(settings.DataDir)
		if err != nil {
			return fmt.Errorf("opening sqlite backend: %w", err)
		}
		defer host.Close()

		cli.SetHostClient(host)
		cli.SetRevisionStore(host)
		editConfig.Editor = services.NewEditorService(host, normalizer,
			services.WithCloseDelay(settings.CloseDelay()))

	case domain.BackendFile, "":
		host, err := hostfile.NewClient(settings.DataDir)
		if err != nil {
			return fmt.Errorf("opening file backend: %w", err)
		}

		cli.SetHostClient(host)
		editConfig.Editor = services.NewEditorService(host, normalizer,
			services.WithCloseDelay(settings.CloseDelay()))
		editConfig.Watcher = host

	default:
		return fmt.Errorf("unknown backend %q in %s", settings.Backend, settingsStore.Path())
	}

	cli.SetEditConfig(editConfig)

	return cli.Execute()
}

// defaultConfigDir returns the gridpad configuration directory.
func defaultConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".gridpad"), nil
}
