/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 nanobeat */

package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nanobeat/slidercraft/internal/overlay"
	"github.com/nanobeat/slidercraft/internal/slider"
	"github.com/nanobeat/slidercraft/internal/ui/styles"
)

// -----------------------------------------------------------------------------
// Context Menu Component
// -----------------------------------------------------------------------------

// MenuResult is sent when the user picks a context menu entry.
type MenuResult struct {
	// ApplyType is set when a curve type entry was picked. A nil Type
	// means the points become inheriting.
	ApplyType bool
	Type      *slider.Type

	// Delete is set when the delete entry was picked.
	Delete bool
}

// ContextMenu is a popup listing curve types and a delete action.
type ContextMenu struct {
	menu    overlay.Menu
	cursor  int
	visible bool
	width   int
	height  int
}

// NewContextMenu creates a hidden context menu.
func NewContextMenu() ContextMenu {
	return ContextMenu{}
}

// Show opens the popup for the given menu contract.
func (m *ContextMenu) Show(menu overlay.Menu) {
	m.menu = menu
	m.cursor = 0
	m.visible = true
}

// Hide closes the popup.
func (m *ContextMenu) Hide() {
	m.visible = false
}

// IsVisible returns whether the popup is open.
func (m *ContextMenu) IsVisible() bool {
	return m.visible
}

// SetSize sets the overlay placement dimensions.
func (m *ContextMenu) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// entryCount is the number of selectable rows: curve types plus delete.
func (m *ContextMenu) entryCount() int {
	return len(m.menu.CurveTypes) + 1
}

// Update handles input for the popup. The bool result reports whether the
// message was consumed.
func (m *ContextMenu) Update(msg tea.Msg) (MenuResult, bool) {
	if !m.visible {
		return MenuResult{}, false
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return MenuResult{}, false
	}

	switch keyMsg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < m.entryCount()-1 {
			m.cursor++
		}
	case "esc", "m":
		m.Hide()
	case "enter", " ":
		result := m.resultForCursor()
		m.Hide()
		return result, true
	}

	return MenuResult{}, true
}

// resultForCursor maps the highlighted row to a result.
func (m *ContextMenu) resultForCursor() MenuResult {
	if m.cursor < len(m.menu.CurveTypes) {
		entry := m.menu.CurveTypes[m.cursor]
		return MenuResult{ApplyType: true, Type: entry.Type}
	}
	return MenuResult{Delete: true}
}

// View renders the popup.
func (m ContextMenu) View() string {
	if !m.visible {
		return ""
	}

	var b strings.Builder

	for i, entry := range m.menu.CurveTypes {
		line := checkGlyph(entry.State) + " " + entry.Label

		switch {
		case i == m.cursor:
			line = styles.MenuSelectedStyle.Render(line)
		case entry.State == overlay.Checked:
			line = styles.MenuCheckedStyle.Render(line)
		case entry.State == overlay.Indeterminate:
			line = styles.MenuIndeterminateStyle.Render(line)
		default:
			line = styles.NormalItemStyle.Render(line)
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString(styles.DimItemStyle.Render(strings.Repeat("─", 20)))
	b.WriteString("\n")

	deleteLine := "    " + m.menu.DeleteLabel
	if m.cursor == len(m.menu.CurveTypes) {
		b.WriteString(styles.MenuSelectedStyle.Render(deleteLine))
	} else {
		b.WriteString(styles.ErrorStyle.Render(deleteLine))
	}

	const popupWidth = 26
	frame := styles.MenuStyle.
		Width(popupWidth).
		Border(styles.BuildTitledBorder("Selection", popupWidth+2, lipgloss.RoundedBorder()))
	popup := frame.Render(b.String())

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(
			m.width, m.height,
			lipgloss.Center, lipgloss.Center,
			popup,
		)
	}

	return popup
}

// checkGlyph maps a check state to its marker.
func checkGlyph(state overlay.CheckState) string {
	switch state {
	case overlay.Checked:
		return "[x]"
	case overlay.Indeterminate:
		return "[-]"
	}
	return "[ ]"
}
