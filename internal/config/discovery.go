/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 nanobeat */

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// -----------------------------------------------------------------------------
// Document File Discovery
// -----------------------------------------------------------------------------

// DiscoverLatestDocument searches configured paths for the most recent
// document file. Returns the path to the newest .json file found, or an
// error if none exist. Autosave working copies are excluded.
func DiscoverLatestDocument() (string, error) {
	dataPaths := GetDataPaths()

	var candidates []fileCandidate

	for _, dir := range dataPaths {
		files, err := findDocumentFiles(dir)
		if err != nil {
			// Directory might not exist; continue searching
			continue
		}
		candidates = append(candidates, files...)
	}

	if len(candidates) == 0 {
		return "", fmt.Errorf("no document files found in paths: %v", dataPaths)
	}

	// Sort by modification time (newest first)
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].modTime.After(candidates[j].modTime)
	})

	return candidates[0].path, nil
}

// fileCandidate represents a discovered document file with its metadata.
type fileCandidate struct {
	path    string
	modTime time.Time
}

// findDocumentFiles returns all document .json files in the given directory,
// excluding autosave copies.
func findDocumentFiles(dir string) ([]fileCandidate, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var candidates []fileCandidate
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		if filepath.Ext(entry.Name()) != DocumentFileExtension {
			continue
		}
		if strings.HasSuffix(entry.Name(), AutosaveSuffix) {
			continue
		}

		fullPath := filepath.Join(dir, entry.Name())
		fileInfo, err := entry.Info()
		if err != nil {
			continue
		}

		candidates = append(candidates, fileCandidate{
			path:    fullPath,
			modTime: fileInfo.ModTime(),
		})
	}

	return candidates, nil
}

// ListAvailableDocuments returns all discovered document files across all
// configured paths, for the document browser.
func ListAvailableDocuments() ([]string, error) {
	dataPaths := GetDataPaths()

	var allDocs []string
	for _, dir := range dataPaths {
		files, err := findDocumentFiles(dir)
		if err != nil {
			continue
		}
		for _, f := range files {
			allDocs = append(allDocs, f.path)
		}
	}

	if len(allDocs) == 0 {
		return nil, fmt.Errorf("no document files found")
	}

	return allDocs, nil
}

// AutosavePath returns the autosave sibling path for a document file.
func AutosavePath(docPath string) string {
	return strings.TrimSuffix(docPath, DocumentFileExtension) + AutosaveSuffix
}
