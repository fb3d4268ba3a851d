/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 nanobeat */

package processor

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nanobeat/slidercraft/internal/config"
	"github.com/nanobeat/slidercraft/internal/model"
)

// -----------------------------------------------------------------------------
// Save Messages
// -----------------------------------------------------------------------------

// SaveResultMsg is sent when a document save operation completes.
type SaveResultMsg struct {
	Path     string
	Autosave bool
	Err      error
}

// -----------------------------------------------------------------------------
// Save Commands
// -----------------------------------------------------------------------------

// SaveDocumentCmd creates a command to save a document asynchronously. A
// clean save removes the autosave sibling so stale working copies never
// outlive an explicit save.
func SaveDocumentCmd(path string, doc *model.Document) tea.Cmd {
	return func() tea.Msg {
		if err := model.SaveDocument(path, doc); err != nil {
			return SaveResultMsg{Path: path, Err: err}
		}
		if err := os.Remove(config.AutosavePath(path)); err != nil && !os.IsNotExist(err) {
			return SaveResultMsg{Path: path, Err: err}
		}
		return SaveResultMsg{Path: path}
	}
}

// AutosaveCmd creates a command to write the autosave working copy next to
// the document without touching the document itself.
func AutosaveCmd(path string, doc *model.Document) tea.Cmd {
	return func() tea.Msg {
		err := model.SaveDocument(config.AutosavePath(path), doc)
		return SaveResultMsg{Path: path, Autosave: true, Err: err}
	}
}
