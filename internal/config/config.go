/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 nanobeat */

// Package config provides configuration constants and path discovery for slidercraft.
package config

import (
	"os"
	"path/filepath"
)

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	// AppName is the application identifier.
	AppName = "slidercraft"

	// DefaultDocumentDir is the system-wide document directory.
	DefaultDocumentDir = "/var/lib/slidercraft"

	// DocumentFileExtension is the expected extension for document files.
	DocumentFileExtension = ".json"

	// AutosaveSuffix marks unsaved working copies alongside their document.
	AutosaveSuffix = ".autosave.json"
)

// -----------------------------------------------------------------------------
// Playfield Constants
// -----------------------------------------------------------------------------

const (
	// PlayfieldWidth is the width of the editable coordinate space.
	PlayfieldWidth = 512

	// PlayfieldHeight is the height of the editable coordinate space.
	PlayfieldHeight = 384
)

// -----------------------------------------------------------------------------
// UI Constants
// -----------------------------------------------------------------------------

const (
	// MaxSliderDisplay is the maximum number of sliders shown in the browser
	// before scrolling.
	MaxSliderDisplay = 16

	// PointListRankWidth is the width for point index display.
	PointListRankWidth = 3
)

// -----------------------------------------------------------------------------
// Environment Variables
// -----------------------------------------------------------------------------

const (
	// EnvDataDir overrides the default data directory.
	EnvDataDir = "SLIDERCRAFT_DATA_DIR"

	// EnvXDGDataHome is the XDG data home environment variable.
	EnvXDGDataHome = "XDG_DATA_HOME"
)

// -----------------------------------------------------------------------------
// Path Resolution
// -----------------------------------------------------------------------------

// GetDataPaths returns an ordered list of directories to search for documents.
// Priority order:
//  1. $SLIDERCRAFT_DATA_DIR (if set)
//  2. $XDG_DATA_HOME/slidercraft (or ~/.local/share/slidercraft)
//  3. /var/lib/slidercraft (system default)
func GetDataPaths() []string {
	var paths []string

	// Priority 1: Environment variable override
	if envDir := os.Getenv(EnvDataDir); envDir != "" {
		paths = append(paths, envDir)
	}

	// Priority 2: XDG Data Home
	xdgDataHome := os.Getenv(EnvXDGDataHome)
	if xdgDataHome == "" {
		// Fallback to default XDG location
		if home, err := os.UserHomeDir(); err == nil {
			xdgDataHome = filepath.Join(home, ".local", "share")
		}
	}
	if xdgDataHome != "" {
		paths = append(paths, filepath.Join(xdgDataHome, AppName))
	}

	// Priority 3: System default
	paths = append(paths, DefaultDocumentDir)

	return paths
}

// DefaultSaveDir returns the directory where new documents are created: the
// environment override when set, otherwise the XDG location.
func DefaultSaveDir() string {
	return GetDataPaths()[0]
}
