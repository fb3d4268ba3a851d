// Package components provides reusable TUI components.
package components

import (
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nanobeat/slidercraft/internal/ui/styles"
)

// -----------------------------------------------------------------------------
// Confirm Dialog Component
// -----------------------------------------------------------------------------

const dialogWidth = 44

// ConfirmAction represents what action the dialog is confirming.
type ConfirmAction int

const (
	ConfirmNone ConfirmAction = iota
	ConfirmDeleteDocument
	ConfirmDeleteAllDocuments
	ConfirmDiscardChanges
)

// ConfirmResult is sent when the user responds to the dialog.
type ConfirmResult struct {
	Action    ConfirmAction
	Confirmed bool
	Data      string // file path for single-document delete
}

// ConfirmDialog is a modal yes/no dialog. Each destructive flow has its
// own Show helper so prompts stay consistent across call sites.
type ConfirmDialog struct {
	visible bool
	action  ConfirmAction
	prompt  string
	detail  string
	data    string
	width   int
	height  int
}

// NewConfirmDialog creates a hidden dialog.
func NewConfirmDialog() ConfirmDialog {
	return ConfirmDialog{}
}

// ShowDeleteDocument asks before removing one document file.
func (c *ConfirmDialog) ShowDeleteDocument(path string) {
	c.visible = true
	c.action = ConfirmDeleteDocument
	c.prompt = "Delete document?"
	c.detail = filepath.Base(path)
	c.data = path
}

// ShowDeleteAll asks before wiping every document in the data dirs.
func (c *ConfirmDialog) ShowDeleteAll(count int) {
	c.visible = true
	c.action = ConfirmDeleteAllDocuments
	c.prompt = fmt.Sprintf("Delete ALL %d documents?", count)
	c.detail = "This cannot be undone."
	c.data = ""
}

// ShowDiscardChanges asks before quitting with unsaved edits. The
// autosave sibling survives the quit, so the work stays recoverable.
func (c *ConfirmDialog) ShowDiscardChanges(docName string) {
	c.visible = true
	c.action = ConfirmDiscardChanges
	c.prompt = fmt.Sprintf("Quit without saving '%s'?", docName)
	c.detail = "An autosave will be kept."
	c.data = ""
}

// Hide dismisses the dialog without emitting a result.
func (c *ConfirmDialog) Hide() {
	*c = ConfirmDialog{width: c.width, height: c.height}
}

// IsVisible reports whether the dialog is on screen.
func (c *ConfirmDialog) IsVisible() bool {
	return c.visible
}

// SetSize sets the area the dialog centers itself in.
func (c *ConfirmDialog) SetSize(width, height int) {
	c.width = width
	c.height = height
}

// Update handles input while the dialog is visible. The bool is true
// when the user answered either way.
func (c *ConfirmDialog) Update(msg tea.Msg) (ConfirmResult, bool) {
	if !c.visible {
		return ConfirmResult{}, false
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return ConfirmResult{}, false
	}

	switch keyMsg.String() {
	case "y", "Y", "enter":
		result := ConfirmResult{Action: c.action, Confirmed: true, Data: c.data}
		c.Hide()
		return result, true
	case "n", "N", "esc", "q":
		result := ConfirmResult{Action: c.action, Data: c.data}
		c.Hide()
		return result, true
	}

	// Swallow everything else so keystrokes cannot reach the panels.
	return ConfirmResult{}, false
}

// borderColor picks the frame color by how destructive the action is.
func (c ConfirmDialog) borderColor() lipgloss.Color {
	if c.action == ConfirmDeleteAllDocuments {
		return styles.ColorDanger
	}
	return styles.ColorWarning
}

// View renders the dialog centered in the app frame.
func (c ConfirmDialog) View() string {
	if !c.visible {
		return ""
	}

	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(c.borderColor()).
		Padding(1, 2).
		Width(dialogWidth)

	title := lipgloss.NewStyle().
		Foreground(c.borderColor()).
		Bold(true).
		Render(c.prompt)

	var b strings.Builder
	b.WriteString(title)
	if c.detail != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(styles.ColorText).Render(c.detail))
	}
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(styles.ColorMuted).
		Render("[y] Yes    [n/esc] Cancel"))

	dialog := frame.Render(b.String())
	if c.width > 0 && c.height > 0 {
		return lipgloss.Place(c.width, c.height, lipgloss.Center, lipgloss.Center, dialog)
	}
	return dialog
}
