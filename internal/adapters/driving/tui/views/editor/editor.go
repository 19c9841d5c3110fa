// Package editor provides the paste-and-normalize editor view for the TUI.
// The paste area accepts pasted text only; pasting triggers normalization
// and the canonical JSON replaces whatever was pasted.
package editor

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gridpad-labs/gridpad-cli/internal/adapters/driving/tui/keymap"
	"github.com/gridpad-labs/gridpad-cli/internal/adapters/driving/tui/messages"
	"github.com/gridpad-labs/gridpad-cli/internal/adapters/driving/tui/styles"
	"github.com/gridpad-labs/gridpad-cli/internal/core/domain"
	"github.com/gridpad-labs/gridpad-cli/internal/core/ports/driven"
	"github.com/gridpad-labs/gridpad-cli/internal/core/ports/driving"
	"github.com/gridpad-labs/gridpad-cli/internal/render"
)

const (
	pasteAreaHeight = 8
	maxTableHeight  = 12
	minColumnWidth  = 4
	maxColumnWidth  = 28
)

// View is the editor view.
type View struct {
	styles *styles.Styles
	keys   *keymap.KeyMap
	editor driving.Editor

	ctx      context.Context
	textarea textarea.Model
	grid     table.Model
	hasGrid  bool

	state   domain.EditorState
	changes <-chan struct{}
	saved   bool
	closing bool

	width  int
	height int
	ready  bool
}

// NewView creates a new editor view. The watcher is optional; when set,
// external changes to the stored value reload the editor unless there
// are pending changes.
func NewView(s *styles.Styles, keys *keymap.KeyMap, editor driving.Editor, watcher driven.ValueWatcher) *View {
	ta := textarea.New()
	ta.Placeholder = "Paste tab- or comma-separated rows, or table JSON"
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.Focus()

	v := &View{
		styles:   s,
		keys:     keys,
		editor:   editor,
		ctx:      context.Background(),
		textarea: ta,
	}

	if watcher != nil {
		// Failure to watch is non-fatal; the editor simply never
		// reloads on its own.
		if ch, err := watcher.Watch(v.ctx); err == nil {
			v.changes = ch
		}
	}

	return v
}

// WithContext sets the context used for editor operations.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view: load the stored value and start waiting
// for external changes.
func (v *View) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, v.load(), v.waitForChange())
}

// load returns a command that loads the stored value into the editor.
func (v *View) load() tea.Cmd {
	return func() tea.Msg {
		state, _ := v.editor.Load(v.ctx)
		return messages.ValueLoaded{State: state}
	}
}

// waitForChange returns a command that blocks until the stored value
// changes externally.
func (v *View) waitForChange() tea.Cmd {
	if v.changes == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-v.changes; !ok {
			return nil
		}
		return messages.ExternalChange{}
	}
}

// apply returns a command that normalizes the given text.
func (v *View) apply(text string) tea.Cmd {
	return func() tea.Msg {
		state := v.editor.Paste(text)
		return messages.InputNormalized{State: state}
	}
}

// save returns a command that persists the normalized document.
func (v *View) save() tea.Cmd {
	return func() tea.Msg {
		state, err := v.editor.Save(v.ctx)
		return messages.SaveFinished{State: state, Err: err}
	}
}

// Update handles messages for the editor view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.ValueLoaded:
		v.setState(msg.State)
		return v, nil

	case messages.InputNormalized:
		v.saved = false
		v.setState(msg.State)
		return v, nil

	case messages.SaveFinished:
		v.state = msg.State
		if msg.Err != nil {
			return v, nil
		}
		v.saved = true
		v.closing = true
		return v, tea.Tick(v.editor.CloseDelay(), func(time.Time) tea.Msg {
			return messages.CloseTimerFired{}
		})

	case messages.CloseTimerFired:
		return v, func() tea.Msg {
			return messages.HostClosed{Err: v.editor.CloseHost(v.ctx)}
		}

	case messages.HostClosed:
		return v, func() tea.Msg { return messages.Quit{} }

	case messages.ExternalChange:
		var cmds []tea.Cmd
		if !v.state.HasPendingChanges && !v.closing {
			cmds = append(cmds, v.load())
		}
		cmds = append(cmds, v.waitForChange())
		return v, tea.Batch(cmds...)
	}

	return v, nil
}

// handleKeyMsg handles key presses. Typing into the paste area is
// blocked: only pasted input, shortcuts and cursor movement get through.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if v.closing {
		return v, nil
	}

	keyStr := msg.String()

	switch {
	case keymap.Matches(keyStr, v.keys.Save):
		if !v.state.CanSave() {
			return v, nil
		}
		return v, v.save()

	case keymap.Matches(keyStr, v.keys.Clear):
		v.saved = false
		v.setState(v.editor.Clear())
		return v, nil

	case keymap.Matches(keyStr, v.keys.Apply):
		return v, v.apply(v.textarea.Value())

	case keymap.Matches(keyStr, v.keys.Reload):
		if v.state.HasPendingChanges {
			return v, nil
		}
		return v, v.load()
	}

	if msg.Paste {
		// Normalize the raw pasted runes rather than the textarea
		// content: the textarea sanitizes tabs away, which would
		// defeat tab-delimiter detection. The canonical text lands
		// in the textarea via InputNormalized.
		return v, v.apply(string(msg.Runes))
	}

	if msg.Type == tea.KeyRunes {
		return v, nil
	}

	var taCmd tea.Cmd
	v.textarea, taCmd = v.textarea.Update(msg)
	return v, taCmd
}

// setState applies a new editor state to the view, syncing the paste
// area text and rebuilding the table.
func (v *View) setState(state domain.EditorState) {
	v.state = state
	v.textarea.SetValue(state.Text)
	v.rebuildGrid()
}

// rebuildGrid rebuilds the table component from the current document.
// The first row becomes the header band; remaining rows are the body.
func (v *View) rebuildGrid() {
	doc := v.state.Document
	if doc.RowCount() == 0 {
		v.grid = table.Model{}
		v.hasGrid = false
		return
	}

	header := doc.Header()
	widths := make([]int, len(header))
	for j, cell := range header {
		widths[j] = clampWidth(utf8.RuneCountInString(cell))
	}
	for _, row := range doc.Body() {
		for j, cell := range row {
			if j >= len(widths) {
				break
			}
			if w := clampWidth(utf8.RuneCountInString(cell)); w > widths[j] {
				widths[j] = w
			}
		}
	}

	columns := make([]table.Column, len(header))
	for j, cell := range header {
		columns[j] = table.Column{Title: cell, Width: widths[j]}
	}

	body := doc.Body()
	rows := make([]table.Row, 0, len(body))
	for _, row := range body {
		// Pad ragged rows so every table.Row has a cell per column.
		cells := make(table.Row, len(columns))
		for j := range cells {
			if j < len(row) {
				cells[j] = row[j]
			}
		}
		rows = append(rows, cells)
	}

	height := len(rows) + 1
	if height > maxTableHeight {
		height = maxTableHeight
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(height),
	)

	st := table.DefaultStyles()
	st.Header = v.styles.TableHeader
	st.Selected = v.styles.Selected
	t.SetStyles(st)

	v.grid = t
	v.hasGrid = true
}

func clampWidth(w int) int {
	if w < minColumnWidth {
		return minColumnWidth
	}
	if w > maxColumnWidth {
		return maxColumnWidth
	}
	return w
}

// View renders the editor view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Table Normalizer"))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("─", maxInt(minInt(v.width-4, 60), 16)))
	b.WriteString("\n\n")

	b.WriteString(v.styles.InputField.Render(v.textarea.View()))
	b.WriteString("\n")

	if v.state.ErrorMessage != "" {
		b.WriteString(v.styles.Error.Render(v.state.ErrorMessage))
		b.WriteString("\n")
	}

	b.WriteString("\n")

	if v.hasGrid {
		b.WriteString(v.grid.View())
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render(render.Footer(v.state.Document)))
		b.WriteString("\n")
	} else {
		b.WriteString(v.styles.Muted.Render("(no table)"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.renderStatus())
	b.WriteString("\n")
	b.WriteString(v.renderHelp())

	return b.String()
}

// renderStatus renders the save/pending status line.
func (v *View) renderStatus() string {
	switch {
	case v.closing:
		return v.styles.Success.Render("Saved ✓ closing…")
	case v.state.IsSaving:
		return v.styles.Warning.Render("Saving…")
	case v.saved:
		return v.styles.Success.Render("Saved ✓")
	case v.state.HasPendingChanges:
		return v.styles.Warning.Render("Unsaved changes")
	default:
		return v.styles.Muted.Render("No pending changes")
	}
}

// renderHelp renders the help footer.
func (v *View) renderHelp() string {
	parts := make([]string, 0, len(v.keys.EditorHelp()))
	for _, binding := range v.keys.EditorHelp() {
		h := binding.Help()
		parts = append(parts, fmt.Sprintf("[%s] %s", h.Key, h.Desc))
	}
	return v.styles.Help.Render(strings.Join(parts, "  "))
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.textarea.SetWidth(maxInt(width-6, 20))
	v.textarea.SetHeight(pasteAreaHeight)
}

// State returns the current editor state.
func (v *View) State() domain.EditorState {
	return v.state
}

// TextValue returns the current paste area content.
func (v *View) TextValue() string {
	return v.textarea.Value()
}

// Closing reports whether a successful save has scheduled the close.
func (v *View) Closing() bool {
	return v.closing
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
