/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 nanobeat */

// Package styles provides Lipgloss styles for the editor TUI.
package styles

import "github.com/charmbracelet/lipgloss"

// -----------------------------------------------------------------------------
// Color Palette
// -----------------------------------------------------------------------------

var (
	// Primary colors
	ColorPrimary   = lipgloss.Color("39")  // Deep Sky Blue
	ColorSecondary = lipgloss.Color("238") // Dark Gray (Borders)
	ColorAccent    = lipgloss.Color("201") // Hot Pink/Magenta
	ColorSuccess   = lipgloss.Color("46")  // Neon Green
	ColorWarning   = lipgloss.Color("214") // Orange
	ColorYellow    = lipgloss.Color("226") // Yellow
	ColorDanger    = lipgloss.Color("196") // Bright Red
	ColorMuted     = lipgloss.Color("60")  // Cool Gray
	ColorDarkGray  = lipgloss.Color("240") // Dark Gray (empty/background)

	// Text colors
	ColorText        = lipgloss.Color("255") // White (High Contrast)
	ColorTextDim     = lipgloss.Color("246") // Dim Gray
	ColorTextBold    = lipgloss.Color("231") // Bright White
	ColorBlack       = lipgloss.Color("16")  // Black (for inverted text)
	ColorStatusBarBg = lipgloss.Color("235") // Very Dark Gray (status bar background)
)

// -----------------------------------------------------------------------------
// Curve Type Colors
// -----------------------------------------------------------------------------

var (
	// ColorLinear marks linear segment starts on the canvas.
	ColorLinear = lipgloss.Color("42") // Green

	// ColorPerfect marks perfect-curve segment starts.
	ColorPerfect = lipgloss.Color("214") // Orange

	// ColorBezier marks bezier segment starts.
	ColorBezier = lipgloss.Color("39") // Blue

	// ColorCatmull marks catmull segment starts.
	ColorCatmull = lipgloss.Color("201") // Magenta
)

// -----------------------------------------------------------------------------
// Panel Styles
// -----------------------------------------------------------------------------

var (
	// BasePanelStyle is the foundation style for all panels.
	BasePanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorSecondary).
			Padding(0, 1)

	// ActivePanelStyle is used for the currently focused panel.
	ActivePanelStyle = BasePanelStyle.
				BorderForeground(ColorPrimary)

	// PanelTitleStyle styles panel titles.
	PanelTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(0, 1)
)

// -----------------------------------------------------------------------------
// List Item Styles
// -----------------------------------------------------------------------------

var (
	// SelectedItemStyle is for the currently selected list item.
	SelectedItemStyle = lipgloss.NewStyle().
				Foreground(ColorBlack).
				Background(ColorPrimary).
				Bold(true).
				Padding(0, 1)

	// NormalItemStyle is for unselected list items.
	NormalItemStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Padding(0, 1)

	// DimItemStyle is for less important items.
	DimItemStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim).
			Padding(0, 1)
)

// -----------------------------------------------------------------------------
// Canvas Styles
// -----------------------------------------------------------------------------

var (
	// PieceStyle is for unselected control point markers.
	PieceStyle = lipgloss.NewStyle().
			Foreground(ColorTextBold).
			Bold(true)

	// SelectedPieceStyle is for selected control point markers.
	SelectedPieceStyle = lipgloss.NewStyle().
				Foreground(ColorBlack).
				Background(ColorAccent).
				Bold(true)

	// HoveredPieceStyle is for the marker under the cursor.
	HoveredPieceStyle = lipgloss.NewStyle().
				Foreground(ColorBlack).
				Background(ColorPrimary).
				Bold(true)

	// ConnectionStyle is for the lines between consecutive points.
	ConnectionStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// GridStyle is for the canvas background dots.
	GridStyle = lipgloss.NewStyle().
			Foreground(ColorDarkGray)
)

// -----------------------------------------------------------------------------
// Data Display Styles
// -----------------------------------------------------------------------------

var (
	// LabelStyle is for field labels.
	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	// ValueStyle is for field values.
	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	// HighlightValueStyle is for important values.
	HighlightValueStyle = lipgloss.NewStyle().
				Foreground(ColorAccent).
				Bold(true)

	// SectionTitleStyle is for section headers within panels.
	SectionTitleStyle = lipgloss.NewStyle().
				Foreground(ColorSuccess).
				Bold(true).
				MarginTop(1).
				MarginBottom(0)

	// MetricLabelStyle is for metric category labels (Spacing, Turn, Arc).
	MetricLabelStyle = lipgloss.NewStyle().
				Foreground(ColorText).
				Bold(true)

	// MetricValueStyle is for primary metric values.
	MetricValueStyle = lipgloss.NewStyle().
				Foreground(ColorPrimary).
				Bold(true)

	// MetricSecondaryStyle is for secondary/context values.
	MetricSecondaryStyle = lipgloss.NewStyle().
				Foreground(ColorTextDim)

	// IndexStyle is for point index numbers.
	IndexStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// -----------------------------------------------------------------------------
// Menu Styles
// -----------------------------------------------------------------------------

var (
	// MenuStyle frames the context menu popup.
	MenuStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(0, 1)

	// MenuSelectedStyle is for the highlighted menu row.
	MenuSelectedStyle = lipgloss.NewStyle().
				Foreground(ColorBlack).
				Background(ColorPrimary)

	// MenuCheckedStyle is for fully-checked type entries.
	MenuCheckedStyle = lipgloss.NewStyle().
				Foreground(ColorSuccess)

	// MenuIndeterminateStyle is for partially-checked type entries.
	MenuIndeterminateStyle = lipgloss.NewStyle().
				Foreground(ColorYellow)
)

// -----------------------------------------------------------------------------
// Status Bar Styles
// -----------------------------------------------------------------------------

var (
	// StatusBarStyle is the main status bar style.
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Background(ColorStatusBarBg).
			Padding(0, 1)

	// HelpKeyStyle is for keyboard shortcut keys.
	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	// HelpDescStyle is for keyboard shortcut descriptions.
	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)
)

// -----------------------------------------------------------------------------
// Loading & Error Styles
// -----------------------------------------------------------------------------

var (
	// LoadingStyle is for loading indicators.
	LoadingStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Italic(true)

	// ErrorStyle is for error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorDanger).
			Bold(true)

	// SuccessStyle is for success messages.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)
)

// CurveTypeColor maps a curve-type name to its canvas color.
func CurveTypeColor(name string) lipgloss.Color {
	switch name {
	case "linear":
		return ColorLinear
	case "perfect":
		return ColorPerfect
	case "bezier":
		return ColorBezier
	case "catmull":
		return ColorCatmull
	}
	return ColorText
}
