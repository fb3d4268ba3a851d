/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 nanobeat */

package processor

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/nanobeat/slidercraft/internal/config"
)

// FileInfo holds file metadata for display.
type FileInfo struct {
	Path        string
	Name        string
	Size        int64
	ModTime     time.Time
	HasAutosave bool
}

// listFilesWithInfo returns document files with metadata, sorted by
// modification time (newest first). Autosave working copies are skipped.
func listFilesWithInfo(dir, extension string) ([]FileInfo, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []FileInfo
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if filepath.Ext(entry.Name()) != extension {
			continue
		}
		if strings.HasSuffix(entry.Name(), config.AutosaveSuffix) {
			continue
		}

		fileInfo, err := entry.Info()
		if err != nil {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		_, autosaveErr := os.Stat(config.AutosavePath(path))

		files = append(files, FileInfo{
			Path:        path,
			Name:        entry.Name(),
			Size:        fileInfo.Size(),
			ModTime:     fileInfo.ModTime(),
			HasAutosave: autosaveErr == nil,
		})
	}

	// Sort by modification time (newest first)
	sort.Slice(files, func(i, j int) bool {
		return files[i].ModTime.After(files[j].ModTime)
	})

	return files, nil
}
