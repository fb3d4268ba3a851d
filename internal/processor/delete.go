/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 nanobeat */

package processor

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nanobeat/slidercraft/internal/config"
)

// -----------------------------------------------------------------------------
// Delete Messages
// -----------------------------------------------------------------------------

// DeleteResultMsg is sent when a file deletion operation completes.
type DeleteResultMsg struct {
	Path    string
	Success bool
	Err     error
}

// DeleteAllResultMsg is sent when a bulk deletion operation completes.
type DeleteAllResultMsg struct {
	DeletedCount int
	FailedCount  int
	Errors       []error
}

// -----------------------------------------------------------------------------
// Delete Commands
// -----------------------------------------------------------------------------

// DeleteDocumentCmd creates a command to delete a single document file.
// The autosave sibling, when present, is deleted with it.
func DeleteDocumentCmd(path string) tea.Cmd {
	return func() tea.Msg {
		// Validate path exists and is a file
		info, err := os.Stat(path)
		if err != nil {
			return DeleteResultMsg{
				Path:    path,
				Success: false,
				Err:     fmt.Errorf("file not found: %w", err),
			}
		}

		if info.IsDir() {
			return DeleteResultMsg{
				Path:    path,
				Success: false,
				Err:     fmt.Errorf("cannot delete directory: %s", path),
			}
		}

		if err := os.Remove(path); err != nil {
			return DeleteResultMsg{
				Path:    path,
				Success: false,
				Err:     fmt.Errorf("failed to delete: %w", err),
			}
		}

		if err := os.Remove(config.AutosavePath(path)); err != nil && !os.IsNotExist(err) {
			return DeleteResultMsg{
				Path:    path,
				Success: false,
				Err:     fmt.Errorf("failed to delete autosave: %w", err),
			}
		}

		return DeleteResultMsg{
			Path:    path,
			Success: true,
			Err:     nil,
		}
	}
}

// DeleteAllDocumentsCmd creates a command that wipes every document,
// autosave siblings included, across the configured data paths.
func DeleteAllDocumentsCmd() tea.Cmd {
	return func() tea.Msg {
		result := config.CleanupAllDocuments()
		return DeleteAllResultMsg{
			DeletedCount: result.DeletedCount,
			FailedCount:  result.FailedCount,
			Errors:       result.Errors,
		}
	}
}
