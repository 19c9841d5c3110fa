package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gridpad-labs/gridpad-cli/internal/adapters/driving/tui/keymap"
	"github.com/gridpad-labs/gridpad-cli/internal/adapters/driving/tui/messages"
	"github.com/gridpad-labs/gridpad-cli/internal/adapters/driving/tui/styles"
	"github.com/gridpad-labs/gridpad-cli/internal/adapters/driving/tui/views/editor"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// keys holds the keybindings.
	keys *keymap.KeyMap

	// editorView is the paste-and-normalize editor.
	editorView *editor.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	keys := keymap.DefaultKeyMap()
	editorView := editor.NewView(s, keys, ports.Editor, ports.Watcher)

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		keys:        keys,
		editorView:  editorView,
		currentView: messages.ViewEditor,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.editorView = a.editorView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("gridpad - Table Normalizer"),
		a.editorView.Init(),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.editorView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		if key.Matches(msg, a.keys.Help) {
			if a.currentView == messages.ViewHelp {
				a.currentView = messages.ViewEditor
			} else {
				a.currentView = messages.ViewHelp
			}
			return a, nil
		}

		switch a.currentView {
		case messages.ViewHelp:
			// Esc from help goes back to the editor
			if msg.Type == tea.KeyEsc {
				a.currentView = messages.ViewEditor
			}
			return a, nil

		case messages.ViewEditor:
			// Esc from the editor quits
			if msg.Type == tea.KeyEsc {
				return a, tea.Quit
			}
			a.editorView, cmd = a.editorView.Update(msg)
			return a, cmd
		}
		return a, nil

	case messages.ViewChanged:
		a.currentView = msg.View
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages to the editor view
	a.editorView, cmd = a.editorView.Update(msg)
	return a, cmd
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.editorView.View()
	}
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return `Help

Editor:
  (paste)     Normalize pasted rows into a table
  ctrl+d      Re-normalize the current text
  ctrl+s      Save the normalized table
  ctrl+l      Clear the table
  ctrl+r      Reload the stored value

Navigation:
  ctrl+g      Toggle this help
  esc         Back / quit
  ctrl+c      Quit

Pasted text may be tab-separated, comma-separated, or the saved
JSON form. Lines containing a tab split on tabs; all other lines
split on commas. Saving closes the editor shortly afterwards.

[esc] back to editor`
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// EditorView returns the editor view component.
func (a *App) EditorView() *editor.View {
	return a.editorView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.editorView.SetDimensions(width, height)
}
