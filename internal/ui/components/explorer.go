/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 nanobeat */

// Package components provides reusable TUI components.
package components

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nanobeat/slidercraft/internal/config"
	"github.com/nanobeat/slidercraft/internal/processor"
	"github.com/nanobeat/slidercraft/internal/ui/styles"
)

// -----------------------------------------------------------------------------
// Explorer Component
// -----------------------------------------------------------------------------

// Explorer is the document browser. Rows show the document name, a
// bullet for the file currently open in the editor and a tilde badge
// for files that still have an autosave working copy on disk.
type Explorer struct {
	files    []processor.FileInfo
	cursor   int
	openPath string
	width    int
	height   int
	focused  bool
	title    string
}

// NewExplorer creates a new document browser.
func NewExplorer() Explorer {
	return Explorer{title: "📂 Documents"}
}

// SetFiles updates the document list.
func (e *Explorer) SetFiles(files []processor.FileInfo) {
	e.files = files
	if e.cursor >= len(files) {
		e.cursor = max(0, len(files)-1)
	}
}

// SetOpenPath marks the document currently open in the editor.
func (e *Explorer) SetOpenPath(path string) {
	e.openPath = path
}

// SetSize updates the component dimensions.
func (e *Explorer) SetSize(width, height int) {
	e.width = width
	e.height = height
}

// SetFocused sets the focus state.
func (e *Explorer) SetFocused(focused bool) {
	e.focused = focused
}

// SelectedFile returns the file info under the cursor.
func (e *Explorer) SelectedFile() *processor.FileInfo {
	if e.cursor >= 0 && e.cursor < len(e.files) {
		return &e.files[e.cursor]
	}
	return nil
}

// Selected returns the path under the cursor.
func (e *Explorer) Selected() string {
	if f := e.SelectedFile(); f != nil {
		return f.Path
	}
	return ""
}

// Cursor returns the current cursor position.
func (e *Explorer) Cursor() int {
	return e.cursor
}

// FileCount returns total number of documents.
func (e *Explorer) FileCount() int {
	return len(e.files)
}

// Update handles input for the explorer.
func (e *Explorer) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if e.cursor > 0 {
			e.cursor--
		}
	case "down", "j":
		if e.cursor < len(e.files)-1 {
			e.cursor++
		}
	case "g":
		e.cursor = 0
	case "G":
		e.cursor = max(0, len(e.files)-1)
	}
	return nil
}

// View renders the explorer.
func (e Explorer) View() string {
	var b strings.Builder

	titleText := fmt.Sprintf("%s (%d)", e.title, len(e.files))
	b.WriteString(styles.PanelTitleStyle.Render(titleText))
	b.WriteString("\n\n")

	if len(e.files) == 0 {
		b.WriteString(styles.DimItemStyle.Render("No documents found"))
		b.WriteString("\n")
		b.WriteString(styles.DimItemStyle.Render("Create one with --new"))
		return e.applyPanelStyle(b.String())
	}

	visibleHeight := e.height - 5
	if visibleHeight < 1 {
		visibleHeight = 5
	}

	start := 0
	if e.cursor >= visibleHeight {
		start = e.cursor - visibleHeight + 1
	}
	end := min(start+visibleHeight, len(e.files))

	for i := start; i < end; i++ {
		b.WriteString(e.renderRow(i))
		if i < end-1 {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	indicator := fmt.Sprintf(" [%d/%d]", e.cursor+1, len(e.files))
	b.WriteString(styles.DimItemStyle.Render(indicator))

	return e.applyPanelStyle(b.String())
}

// renderRow formats one document line: cursor marker, open bullet,
// name, autosave badge, right-aligned age.
func (e Explorer) renderRow(i int) string {
	file := e.files[i]

	marker := "  "
	if file.Path == e.openPath {
		marker = "● "
	}

	name := documentDisplayName(file.Name)
	badge := ""
	if file.HasAutosave {
		badge = " ~"
	}
	age := relativeAge(file.ModTime)

	// name gets whatever width the marker, badge and age leave over
	avail := e.width - 4 - lipgloss.Width(marker) - len(badge) - len(age) - 1
	if avail < 8 {
		avail = 8
	}
	if len(name) > avail {
		name = name[:avail-1] + "…"
	}
	pad := avail - len(name)
	if pad < 0 {
		pad = 0
	}

	line := marker + name + badge + strings.Repeat(" ", pad+1) + age
	if i == e.cursor {
		return styles.SelectedItemStyle.Render("▸ " + line)
	}
	return styles.NormalItemStyle.Render("  " + line)
}

// applyPanelStyle applies the appropriate panel style.
func (e Explorer) applyPanelStyle(content string) string {
	style := styles.BasePanelStyle
	if e.focused {
		style = styles.ActivePanelStyle
	}

	return style.
		Width(e.width).
		Height(e.height).
		Render(content)
}

// -----------------------------------------------------------------------------
// Formatting Helpers
// -----------------------------------------------------------------------------

// documentDisplayName strips the document extension from a file name.
func documentDisplayName(name string) string {
	return strings.TrimSuffix(name, config.DocumentFileExtension)
}

// relativeAge renders a compact modification age for list rows.
func relativeAge(t time.Time) string {
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "now"
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh", int(d.Hours()))
	case d < 14*24*time.Hour:
		return fmt.Sprintf("%dd", int(d.Hours()/24))
	}
	return t.Format("02 Jan 06")
}

// FormatDateTime formats a time for detailed display.
func FormatDateTime(t time.Time) string {
	now := time.Now()
	if t.Year() == now.Year() && t.YearDay() == now.YearDay() {
		return "Today at " + t.Format("15:04:05")
	}
	yesterday := now.AddDate(0, 0, -1)
	if t.Year() == yesterday.Year() && t.YearDay() == yesterday.YearDay() {
		return "Yesterday at " + t.Format("15:04:05")
	}
	return t.Format("02 Jan 2006, 15:04:05")
}

// FormatFileSize formats bytes as human-readable size.
func FormatFileSize(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMG"[exp])
}
