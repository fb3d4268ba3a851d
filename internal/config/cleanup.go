/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 nanobeat */

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// -----------------------------------------------------------------------------
// Cleanup Operations
// -----------------------------------------------------------------------------

// CleanupResult holds the result of a cleanup operation.
type CleanupResult struct {
	DeletedCount int
	FailedCount  int
	Errors       []error
}

// CleanupStaleAutosaves deletes autosave working copies whose document
// either no longer exists or is newer than the autosave. Called at startup.
func CleanupStaleAutosaves() CleanupResult {
	result := CleanupResult{}

	for _, dir := range GetDataPaths() {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}

		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), AutosaveSuffix) {
				continue
			}

			autosave := filepath.Join(dir, entry.Name())
			doc := strings.TrimSuffix(autosave, AutosaveSuffix) + DocumentFileExtension
			if !autosaveStale(autosave, doc) {
				continue
			}

			if err := os.Remove(autosave); err != nil {
				result.FailedCount++
				result.Errors = append(result.Errors,
					fmt.Errorf("%s: %w", entry.Name(), err))
			} else {
				result.DeletedCount++
			}
		}
	}

	return result
}

// autosaveStale reports whether an autosave is superseded by its document.
// An autosave with no surviving document is stale.
func autosaveStale(autosave, doc string) bool {
	docInfo, err := os.Stat(doc)
	if err != nil {
		return true
	}
	autoInfo, err := os.Stat(autosave)
	if err != nil {
		return false
	}
	return !autoInfo.ModTime().After(docInfo.ModTime())
}

// CleanupAllDocuments deletes all document files across all configured data
// paths, each together with its autosave sibling. This backs the delete-all
// confirmation in the document browser.
func CleanupAllDocuments() CleanupResult {
	result := CleanupResult{}

	docs, err := ListAvailableDocuments()
	if err != nil {
		return result
	}

	for _, path := range docs {
		if err := removeDocumentAndAutosave(path); err != nil {
			result.FailedCount++
			result.Errors = append(result.Errors,
				fmt.Errorf("%s: %w", filepath.Base(path), err))
		} else {
			result.DeletedCount++
		}
	}

	return result
}

// removeDocumentAndAutosave deletes a document file together with its
// autosave sibling, if one exists.
func removeDocumentAndAutosave(path string) error {
	if err := os.Remove(path); err != nil {
		return err
	}
	if err := os.Remove(AutosavePath(path)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
