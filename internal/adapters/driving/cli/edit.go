package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/gridpad-labs/gridpad-cli/internal/adapters/driving/tui"
	"github.com/gridpad-labs/gridpad-cli/internal/core/ports/driven"
	"github.com/gridpad-labs/gridpad-cli/internal/core/ports/driving"
)

// EditConfig holds configuration for the edit command.
type EditConfig struct {
	Editor  driving.Editor
	Watcher driven.ValueWatcher
}

// editConfig holds the current edit configuration.
var editConfig *EditConfig

// editCmd represents the edit command.
var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the interactive table editor",
	Long: `Open the interactive terminal editor.

Paste tab- or comma-separated rows (or previously saved JSON) into the
paste area: the input is normalized immediately and rendered as a table.
Saving persists the normalized JSON and closes the editor.

Controls:
  (paste)  - Normalize pasted rows
  ctrl+s   - Save
  ctrl+l   - Clear
  ctrl+g   - Toggle help
  esc      - Quit`,
	RunE: runEdit,
}

// SetEditConfig sets the configuration for the edit command.
func SetEditConfig(config *EditConfig) {
	editConfig = config
}

func init() {
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, _ []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in editor: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	// Build ports from configuration
	ports := &tui.Ports{}
	if editConfig != nil {
		ports.Editor = editConfig.Editor
		ports.Watcher = editConfig.Watcher
	}

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create editor: %w", err)
	}

	app.WithContext(cmd.Context())

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("editor error: %w", err)
	}

	return nil
}
