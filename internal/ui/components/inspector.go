/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 nanobeat */

package components

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nanobeat/slidercraft/internal/analysis"
	"github.com/nanobeat/slidercraft/internal/geom"
	"github.com/nanobeat/slidercraft/internal/model"
	"github.com/nanobeat/slidercraft/internal/processor"
	"github.com/nanobeat/slidercraft/internal/slider"
	"github.com/nanobeat/slidercraft/internal/ui/styles"
	"github.com/nanobeat/slidercraft/internal/ui/widgets"
)

// -----------------------------------------------------------------------------
// Constants
// -----------------------------------------------------------------------------

const (
	minSparklineWidth = 20
	minMarginBarWidth = 10
	widthLabel        = 10 // Fixed width for metadata labels
)

// SliderChangedMsg asks the app to switch the edited slider.
type SliderChangedMsg struct {
	Index int
}

// -----------------------------------------------------------------------------
// Inspector Component
// -----------------------------------------------------------------------------

// Inspector displays document metadata and path analysis.
type Inspector struct {
	// File metadata (before loading)
	selectedFile *processor.FileInfo

	// Loaded document data
	doc       *model.Document
	sliderIdx int

	// Live path under edit
	path *slider.Path

	// View state
	showTurnDetail bool

	// Layout
	width   int
	height  int
	focused bool
	title   string
}

// NewInspector creates a new inspector panel.
func NewInspector() Inspector {
	return Inspector{
		title: "📋 Inspector",
	}
}

// SetSelectedFile updates the selected file metadata.
func (t *Inspector) SetSelectedFile(file *processor.FileInfo) {
	t.selectedFile = file
}

// SetDocument updates the loaded document data.
func (t *Inspector) SetDocument(doc *model.Document) {
	t.doc = doc
	t.sliderIdx = 0
}

// SetPath points the inspector at the path under edit.
func (t *Inspector) SetPath(path *slider.Path) {
	t.path = path
}

// SetSize updates the component dimensions.
func (t *Inspector) SetSize(width, height int) {
	t.width = width
	t.height = height
}

// SetFocused sets the focus state.
func (t *Inspector) SetFocused(focused bool) {
	t.focused = focused
}

// SliderIdx returns the current slider index.
func (t *Inspector) SliderIdx() int {
	return t.sliderIdx
}

// Document returns the currently loaded document.
func (t *Inspector) Document() *model.Document {
	return t.doc
}

// SliderCount returns the number of sliders in the document.
func (t *Inspector) SliderCount() int {
	if t.doc == nil {
		return 0
	}
	return len(t.doc.Sliders)
}

// Update handles input for the inspector panel.
func (t *Inspector) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || t.doc == nil {
		return nil
	}

	prev := t.sliderIdx
	switch keyMsg.String() {
	case "up", "k", "h":
		if t.sliderIdx > 0 {
			t.sliderIdx--
		}
	case "down", "j", "l":
		if t.sliderIdx < len(t.doc.Sliders)-1 {
			t.sliderIdx++
		}
	case "g":
		t.sliderIdx = 0
	case "G":
		if len(t.doc.Sliders) > 0 {
			t.sliderIdx = len(t.doc.Sliders) - 1
		}
	case "t":
		t.showTurnDetail = !t.showTurnDetail
	}

	if t.sliderIdx != prev {
		idx := t.sliderIdx
		return func() tea.Msg { return SliderChangedMsg{Index: idx} }
	}
	return nil
}

// View renders the inspector panel.
func (t Inspector) View() string {
	var b strings.Builder

	title := styles.PanelTitleStyle.Render(t.title)
	b.WriteString(title)
	b.WriteString("\n\n")

	if t.selectedFile != nil {
		b.WriteString(t.renderFileInfo())
		b.WriteString("\n\n")
	}

	if t.doc != nil {
		b.WriteString(t.renderSliderNav())
		b.WriteString("\n")

		if t.path != nil {
			b.WriteString(t.renderProfiles())
			b.WriteString("\n")
			b.WriteString(t.renderStability())
		}
	} else if t.selectedFile == nil {
		b.WriteString(styles.DimItemStyle.Render("Select a document to view info"))
	}

	return t.applyPanelStyle(b.String())
}

// renderFileInfo renders the selected file metadata.
func (t Inspector) renderFileInfo() string {
	var b strings.Builder
	f := t.selectedFile

	b.WriteString(styles.SectionTitleStyle.Render("File"))
	b.WriteString("\n")

	// Width - Label(10) - Borders(4)
	valWidth := t.width - widthLabel - 4
	if valWidth < 10 {
		valWidth = 10
	}

	// File name (truncated)
	name := f.Name
	if len(name) > valWidth {
		prefixLen := (valWidth - 3) / 2
		suffixLen := valWidth - 3 - prefixLen
		if prefixLen > 0 && suffixLen > 0 {
			name = name[:prefixLen] + "..." + name[len(name)-suffixLen:]
		} else {
			name = name[:valWidth]
		}
	}
	b.WriteString(styles.LabelStyle.Render(fmt.Sprintf("%-*s", widthLabel, "Name: ")))
	b.WriteString(styles.HighlightValueStyle.Render(name))
	b.WriteString("\n")

	b.WriteString(styles.LabelStyle.Render(fmt.Sprintf("%-*s", widthLabel, "Size: ")))
	b.WriteString(styles.ValueStyle.Render(FormatFileSize(f.Size)))
	b.WriteString("\n")

	b.WriteString(styles.LabelStyle.Render(fmt.Sprintf("%-*s", widthLabel, "Modified: ")))
	b.WriteString(styles.ValueStyle.Render(FormatDateTime(f.ModTime)))

	if t.doc != nil {
		b.WriteString("\n")
		b.WriteString(styles.SuccessStyle.Render("✓ Loaded"))
		if ts := formatCreatedTime(t.doc.CreatedAt); ts != "" {
			b.WriteString("\n")
			b.WriteString(styles.LabelStyle.Render(fmt.Sprintf("%-*s", widthLabel, "Created: ")))
			b.WriteString(styles.MetricSecondaryStyle.Render(ts))
		}
	} else {
		b.WriteString("\n")
		b.WriteString(styles.DimItemStyle.Render("Press Enter to load"))
	}

	return b.String()
}

// renderSliderNav renders slider navigation with visual progress.
func (t Inspector) renderSliderNav() string {
	var b strings.Builder
	count := len(t.doc.Sliders)

	b.WriteString(styles.SectionTitleStyle.Render("Slider"))
	b.WriteString("\n")

	if count == 0 {
		b.WriteString(styles.DimItemStyle.Render("Document has no sliders"))
		return b.String()
	}

	sl := &t.doc.Sliders[t.sliderIdx]
	if sl.Label != "" {
		b.WriteString(styles.LabelStyle.Render(fmt.Sprintf("%-*s", widthLabel, "Label: ")))
		b.WriteString(styles.HighlightValueStyle.Render(sl.Label))
		b.WriteString("\n")
	}

	b.WriteString(styles.LabelStyle.Render(fmt.Sprintf("%-*s", widthLabel, "Slider: ")))
	b.WriteString(styles.MetricValueStyle.Render(fmt.Sprintf("%d", t.sliderIdx+1)))
	b.WriteString(styles.MetricSecondaryStyle.Render(fmt.Sprintf("/%d ", count)))

	// Visual progress dots (max 10 to avoid overflow)
	maxDots := 10
	if count <= maxDots {
		for i := 0; i < count; i++ {
			if i <= t.sliderIdx {
				b.WriteString(styles.MetricValueStyle.Render("●"))
			} else {
				b.WriteString(styles.MetricSecondaryStyle.Render("○"))
			}
		}
	} else {
		pct := float64(t.sliderIdx+1) / float64(count) * 100
		b.WriteString(styles.MetricSecondaryStyle.Render(fmt.Sprintf("(%.0f%%)", pct)))
	}

	if t.path != nil {
		b.WriteString("\n")
		b.WriteString(styles.LabelStyle.Render(fmt.Sprintf("%-*s", widthLabel, "Points: ")))
		b.WriteString(styles.MetricValueStyle.Render(fmt.Sprintf("%d", t.path.ControlPoints.Len())))

		segments := 0
		for _, p := range t.path.ControlPoints.Points() {
			if p.IsSegmentStart() {
				segments++
			}
		}
		b.WriteString(styles.MetricSecondaryStyle.Render(fmt.Sprintf("  %d segments", segments)))
	}

	return b.String()
}

// renderProfiles renders the spacing (and optionally turn-angle) sparklines
// with segment starts highlighted.
func (t Inspector) renderProfiles() string {
	var b strings.Builder
	sparkWidth := t.width - 10
	if sparkWidth < minSparklineWidth {
		sparkWidth = minSparklineWidth
	}

	b.WriteString(styles.SectionTitleStyle.Render("Profile"))
	b.WriteString("\n")

	spacing := analysis.BuildSpacingProfile(t.path)
	if len(spacing.Points) < 2 {
		b.WriteString(styles.DimItemStyle.Render("Not enough points"))
		return b.String()
	}

	b.WriteString(styles.MetricSecondaryStyle.Render("Gap  "))
	spark := widgets.NewSparkline(spacing.Values(), sparkWidth).
		WithHighlights(spacing.StartIndices)
	b.WriteString(spark.Render())
	b.WriteString("\n")
	b.WriteString(styles.MetricSecondaryStyle.Render(
		fmt.Sprintf("     %.1f .. %.1f %s", spacing.MinValue, spacing.MaxValue, spacing.MetricUnit)))
	b.WriteString("\n")

	if t.showTurnDetail {
		turn := analysis.BuildTurnAngleProfile(t.path)
		b.WriteString(styles.MetricSecondaryStyle.Render("Turn "))
		turnSpark := widgets.NewSparkline(turn.Values(), sparkWidth).
			WithHighlights(turn.StartIndices)
		b.WriteString(turnSpark.Render())
		b.WriteString("\n")
		b.WriteString(styles.MetricSecondaryStyle.Render(
			fmt.Sprintf("     max %.0f%s", turn.MaxValue, turn.MetricUnit)))
		b.WriteString("\n")
	}

	return b.String()
}

// renderStability renders the arc-stability margin of the weakest
// three-point perfect segment.
func (t Inspector) renderStability() string {
	var b strings.Builder
	barWidth := t.width - 20
	if barWidth < minMarginBarWidth {
		barWidth = minMarginBarWidth
	}

	b.WriteString(styles.SectionTitleStyle.Render("Arc Stability"))
	b.WriteString("\n")

	margin, present := t.weakestArcMargin()
	if !present {
		b.WriteString(styles.DimItemStyle.Render("No perfect-curve segments"))
		return b.String()
	}

	b.WriteString(styles.MetricLabelStyle.Render(fmt.Sprintf("%-*s", widthLabel, "Margin")))
	bar := widgets.NewMarginBar(margin, barWidth).WithMax(0.5)
	b.WriteString(bar.Render())
	b.WriteString(" ")
	if margin <= 0 {
		b.WriteString(styles.ErrorStyle.Render("degenerate"))
	} else {
		b.WriteString(styles.MetricValueStyle.Render(fmt.Sprintf("%.3f", margin)))
	}

	return b.String()
}

// weakestArcMargin finds the smallest determinant margin among the
// three-point perfect-curve segments.
func (t Inspector) weakestArcMargin() (float64, bool) {
	points := t.path.ControlPoints.Points()
	best := 0.0
	found := false

	for i, p := range points {
		if pt := p.PathType(); pt == nil || *pt != slider.TypePerfectCurve {
			continue
		}
		seg := t.path.SegmentPoints(i)
		if len(seg) != 3 {
			continue
		}
		det, threshold := geom.ArcStability(
			seg[0].Position(), seg[1].Position(), seg[2].Position())
		margin := det - threshold
		if !found || margin < best {
			best = margin
			found = true
		}
	}

	return best, found
}

// formatCreatedTime extracts HH:MM:SS from an ISO8601 timestamp.
func formatCreatedTime(isoTimestamp string) string {
	ts, err := time.Parse(time.RFC3339, isoTimestamp)
	if err != nil {
		return ""
	}
	return ts.Format("02 Jan 2006, 15:04")
}

// applyPanelStyle applies the appropriate panel style.
func (t Inspector) applyPanelStyle(content string) string {
	style := styles.BasePanelStyle
	if t.focused {
		style = styles.ActivePanelStyle
	}

	return style.
		Width(t.width).
		Height(t.height).
		Render(content)
}
