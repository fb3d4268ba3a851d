/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 nanobeat */

package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// MarginBar renders a horizontal bar for a stability margin, where low
// values are the dangerous end.
type MarginBar struct {
	Value       float64 // Current value
	MaxValue    float64 // Scale maximum
	Width       int
	EmptyColor  lipgloss.Color
	MarkerColor lipgloss.Color
	Threshold   float64 // Optional threshold marker position
	ShowMarker  bool
}

// NewMarginBar creates a margin bar with default styling.
func NewMarginBar(value float64, width int) MarginBar {
	return MarginBar{
		Value:       value,
		MaxValue:    1,
		Width:       width,
		EmptyColor:  lipgloss.Color("240"), // Dark gray
		MarkerColor: lipgloss.Color("231"), // White
	}
}

// WithThreshold adds a threshold marker at the given value.
func (p MarginBar) WithThreshold(threshold float64) MarginBar {
	p.Threshold = threshold
	p.ShowMarker = true
	return p
}

// WithMax sets the scale maximum.
func (p MarginBar) WithMax(max float64) MarginBar {
	p.MaxValue = max
	return p
}

// Render produces the margin bar string.
func (p MarginBar) Render() string {
	if p.Width <= 0 || p.MaxValue <= 0 {
		return ""
	}

	// Severity runs inverted: a thin margin is the problem case.
	ratio := p.Value / p.MaxValue
	var filledColor lipgloss.Color
	if ratio <= 0 {
		filledColor = lipgloss.Color("196") // Red - degenerate
	} else if ratio < 0.25 {
		filledColor = lipgloss.Color("214") // Orange - thin margin
	} else if ratio < 0.5 {
		filledColor = lipgloss.Color("226") // Yellow - moderate
	} else {
		filledColor = lipgloss.Color("42") // Green - stable
	}

	filledStyle := lipgloss.NewStyle().Foreground(filledColor)
	emptyStyle := lipgloss.NewStyle().Foreground(p.EmptyColor)
	markerStyle := lipgloss.NewStyle().Foreground(p.MarkerColor).Bold(true)

	if ratio > 1 {
		ratio = 1
	}
	if ratio < 0 {
		ratio = 0
	}
	filledWidth := int(ratio * float64(p.Width))

	markerPos := -1
	if p.ShowMarker {
		thresholdRatio := p.Threshold / p.MaxValue
		if thresholdRatio >= 0 && thresholdRatio <= 1 {
			markerPos = int(thresholdRatio * float64(p.Width))
			if markerPos >= p.Width {
				markerPos = p.Width - 1
			}
		}
	}

	var b strings.Builder
	for i := 0; i < p.Width; i++ {
		switch {
		case i == markerPos:
			b.WriteString(markerStyle.Render("│"))
		case i < filledWidth:
			b.WriteString(filledStyle.Render("█"))
		default:
			b.WriteString(emptyStyle.Render("░"))
		}
	}

	return b.String()
}
