/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 nanobeat */

// Package model provides data types for slidercraft document files.
package model

// Document is the top-level structure of a slider document JSON file.
type Document struct {
	SchemaVersion int      `json:"schema_version"`
	ID            string   `json:"id"`                   // ULID assigned at creation
	Name          string   `json:"name"`
	CreatedAt     string   `json:"created_at,omitempty"` // ISO8601 wall-clock timestamp
	Sliders       []Slider `json:"sliders"`
}

// Slider is one slider path within a document.
type Slider struct {
	ID    string `json:"id"`
	Label string `json:"label,omitempty"`
	// CurveType is the v1 whole-slider curve type. v2 documents tag
	// individual points instead and leave this empty.
	CurveType string        `json:"curve_type,omitempty"`
	Points    []PointRecord `json:"points"`
}

// PointRecord is one control point in playfield coordinates.
type PointRecord struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	// Type marks a segment start ("linear", "perfect", "bezier",
	// "catmull"); empty means the point inherits (v2).
	Type string `json:"type,omitempty"`
}
