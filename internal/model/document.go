/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 nanobeat */

package model

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/oklog/ulid/v2"
)

// MaxFileSize is the maximum allowed document file size (16 MiB).
const MaxFileSize = 16 * 1024 * 1024

// SchemaVersion is the version written by this build.
const SchemaVersion = 2

// NewDocument creates an empty v2 document with a fresh ULID.
func NewDocument(name string) *Document {
	return &Document{
		SchemaVersion: SchemaVersion,
		ID:            ulid.Make().String(),
		Name:          name,
		CreatedAt:     time.Now().Format(time.RFC3339),
	}
}

// NewSlider creates an empty slider with a fresh ULID.
func NewSlider(label string) Slider {
	return Slider{
		ID:    ulid.Make().String(),
		Label: label,
	}
}

// LoadDocument reads and parses a slider document JSON file.
func LoadDocument(path string) (*Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("cannot stat %s: %w", path, err)
	}

	if info.Size() > MaxFileSize {
		return nil, fmt.Errorf("file %s exceeds maximum size (%d bytes)", path, MaxFileSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("cannot parse JSON: %w", err)
	}

	return &doc, nil
}

// SaveDocument writes the document as indented JSON.
func SaveDocument(path string, doc *Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot encode document: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("cannot write %s: %w", path, err)
	}
	return nil
}
