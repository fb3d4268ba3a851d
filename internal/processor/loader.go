/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 nanobeat */

// Package processor provides async document I/O and model conversion for the TUI.
package processor

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nanobeat/slidercraft/internal/model"
)

// -----------------------------------------------------------------------------
// Messages
// -----------------------------------------------------------------------------

// LoadResultMsg is sent when a document file has been loaded.
type LoadResultMsg struct {
	Path string
	Doc  *model.Document
	Err  error
}

// FileListMsg is sent when the file list has been refreshed.
type FileListMsg struct {
	Files []FileInfo
	Err   error
}

// -----------------------------------------------------------------------------
// Commands
// -----------------------------------------------------------------------------

// LoadDocumentCmd loads a document file off the Update loop. The model
// layer enforces schema and size limits; the command only adds the
// file-name context the status bar shows on failure.
func LoadDocumentCmd(path string) tea.Cmd {
	return func() tea.Msg {
		msg := LoadResultMsg{Path: path}
		msg.Doc, msg.Err = model.LoadDocument(path)
		if msg.Err != nil {
			msg.Err = fmt.Errorf("load %s: %w", filepath.Base(path), msg.Err)
		}
		return msg
	}
}

// RefreshFilesCmd rescans the data paths for documents. Directories
// that do not exist yet are fine (fresh installs have none); the
// refresh fails only when no path was readable and at least one failed
// for a reason other than absence.
func RefreshFilesCmd(paths []string, extension string) tea.Cmd {
	return func() tea.Msg {
		var all []FileInfo
		var firstErr error
		readable := 0
		for _, dir := range paths {
			files, err := listFilesWithInfo(dir, extension)
			if err != nil {
				if firstErr == nil && !os.IsNotExist(err) {
					firstErr = err
				}
				continue
			}
			readable++
			all = append(all, files...)
		}

		if readable == 0 && firstErr != nil {
			return FileListMsg{Err: fmt.Errorf("refresh documents: %w", firstErr)}
		}
		return FileListMsg{Files: all}
	}
}
