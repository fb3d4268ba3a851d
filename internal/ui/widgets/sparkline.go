// Package widgets provides reusable TUI visualization components.
package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// sparkBlocks are Unicode block elements for 8 levels of height.
var sparkBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline renders a value series as a Unicode bar chart. Marked
// indices (segment starts) keep their accent color even after the
// series is bucketed down to the available width.
type Sparkline struct {
	Data             []float64
	Width            int
	HighlightIndices []int
	NormalColor      lipgloss.Color
	HighlightColor   lipgloss.Color
}

// NewSparkline creates a sparkline with default styling.
func NewSparkline(data []float64, width int) Sparkline {
	return Sparkline{
		Data:           data,
		Width:          width,
		NormalColor:    lipgloss.Color("62"),  // Blue
		HighlightColor: lipgloss.Color("214"), // Orange
	}
}

// WithHighlights sets the data indices to accent.
func (s Sparkline) WithHighlights(indices []int) Sparkline {
	s.HighlightIndices = indices
	return s
}

// bucket is one rendered column: the peak value of its data range and
// whether the range contains a highlighted index.
type bucket struct {
	peak   float64
	marked bool
}

// Render produces the sparkline string.
func (s Sparkline) Render() string {
	buckets := s.bucketize()
	if len(buckets) == 0 {
		return ""
	}

	minVal, maxVal := buckets[0].peak, buckets[0].peak
	for _, bk := range buckets {
		if bk.peak < minVal {
			minVal = bk.peak
		}
		if bk.peak > maxVal {
			maxVal = bk.peak
		}
	}
	valRange := maxVal - minVal
	if valRange == 0 {
		valRange = 1
	}

	normalStyle := lipgloss.NewStyle().Foreground(s.NormalColor)
	markStyle := lipgloss.NewStyle().Foreground(s.HighlightColor).Bold(true)

	var b strings.Builder
	for _, bk := range buckets {
		level := int((bk.peak - minVal) / valRange * 7)
		if level > 7 {
			level = 7
		}
		if level < 0 {
			level = 0
		}

		ch := string(sparkBlocks[level])
		if bk.marked {
			b.WriteString(markStyle.Render(ch))
		} else {
			b.WriteString(normalStyle.Render(ch))
		}
	}
	return b.String()
}

// bucketize folds the series into at most Width columns. Each column
// keeps the peak of its range so narrow spikes stay visible.
func (s Sparkline) bucketize() []bucket {
	n := len(s.Data)
	if n == 0 || s.Width <= 0 {
		return nil
	}

	marked := make(map[int]bool, len(s.HighlightIndices))
	for _, idx := range s.HighlightIndices {
		marked[idx] = true
	}

	cols := s.Width
	if n < cols {
		cols = n
	}

	buckets := make([]bucket, cols)
	for c := range buckets {
		lo := c * n / cols
		hi := (c + 1) * n / cols
		if hi <= lo {
			hi = lo + 1
		}

		bk := bucket{peak: s.Data[lo]}
		for i := lo; i < hi; i++ {
			if s.Data[i] > bk.peak {
				bk.peak = s.Data[i]
			}
			if marked[i] {
				bk.marked = true
			}
		}
		buckets[c] = bk
	}
	return buckets
}
