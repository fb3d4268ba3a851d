// Package render provides formatting functions for slider document data.
package render

import (
	"fmt"

	"github.com/nanobeat/slidercraft/internal/geom"
	"github.com/nanobeat/slidercraft/internal/model"
)

// SliderInfo formats the slider summary for display.
func SliderInfo(s *model.Slider) string {
	var out string

	out += fmt.Sprintf(SectionHeaderFormat, Bold, "SLIDER", Reset)
	if s.Label != "" {
		out += fmt.Sprintf("Label: %s%s%s\n", Cyan, s.Label, Reset)
	}
	out += fmt.Sprintf("ID: %s%s%s\n", Dim, s.ID, Reset)

	// Legacy whole-slider curve type (schema v1)
	if s.CurveType != "" {
		out += fmt.Sprintf("Curve: %s%s%s %s(v1)%s\n", Yellow, s.CurveType, Reset, Dim, Reset)
	}

	out += fmt.Sprintf("Points: %d  Segments: %d\n", len(s.Points), s.SegmentStartCount())
	out += fmt.Sprintf("Length: %s%.1f px%s (chord sum)\n", Yellow, chordLength(s), Reset)

	return out
}

// PointTable formats the control point list for display.
func PointTable(s *model.Slider) string {
	var out string
	out += fmt.Sprintf(SectionHeaderFormat, Bold, "CONTROL POINTS", Reset)

	shown := len(s.Points)
	if shown > MaxPointDisplay {
		shown = MaxPointDisplay
	}

	for i := 0; i < shown; i++ {
		p := &s.Points[i]
		typeName := s.PointType(i)
		if typeName == "" {
			out += fmt.Sprintf("%*d. %s(%*.1f, %*.1f)%s %-*s\n",
				PointRankWidth, i,
				Cyan, CoordWidth, p.X, CoordWidth, p.Y, Reset,
				TypeDisplayWidth, "")
		} else {
			out += fmt.Sprintf("%*d. %s(%*.1f, %*.1f)%s %s%-*s%s\n",
				PointRankWidth, i,
				Cyan, CoordWidth, p.X, CoordWidth, p.Y, Reset,
				Magenta, TypeDisplayWidth, typeName, Reset)
		}
	}

	if len(s.Points) > shown {
		out += fmt.Sprintf("%s... %d more%s\n", Dim, len(s.Points)-shown, Reset)
	}

	return out
}

// Stability formats arc-stability warnings for three-point perfect segments.
func Stability(s *model.Slider) string {
	var out string
	out += fmt.Sprintf(SectionHeaderFormat, Bold, "ARC STABILITY", Reset)

	warned := false
	for i := 0; i < len(s.Points); i++ {
		if s.PointType(i) != "perfect" {
			continue
		}
		end := segmentEnd(s, i)
		if end-i+1 != 3 {
			continue
		}

		a := geom.V(s.Points[i].X, s.Points[i].Y)
		b := geom.V(s.Points[i+1].X, s.Points[i+1].Y)
		c := geom.V(s.Points[i+2].X, s.Points[i+2].Y)
		if !geom.PerfectCurveFits(a, b, c) {
			out += fmt.Sprintf("%sSegment at %d: degenerate arc, will load as bezier%s\n",
				Red, i, Reset)
			warned = true
		}
	}

	if !warned {
		out += fmt.Sprintf("%sAll perfect segments stable%s\n", Green, Reset)
	}

	return out
}

// Header formats the header line.
func Header(doc *model.Document, sliderIdx int) string {
	if doc.CreatedAt != "" {
		return fmt.Sprintf("%s | %s | Slider %d/%d\n",
			doc.Name, doc.CreatedAt, sliderIdx+1, len(doc.Sliders))
	}
	return fmt.Sprintf("%s | Schema v%d | Slider %d/%d\n",
		doc.Name, doc.SchemaVersion, sliderIdx+1, len(doc.Sliders))
}

// Help returns the expanded help text for the footer.
func Help() string {
	return "↑/k: Prev slider  ↓/j: Next slider  ?: Hide help  q/ctrl+c: Quit\n"
}

// chordLength sums the straight-line distances between consecutive points.
func chordLength(s *model.Slider) float64 {
	total := 0.0
	for i := 1; i < len(s.Points); i++ {
		a := geom.V(s.Points[i-1].X, s.Points[i-1].Y)
		b := geom.V(s.Points[i].X, s.Points[i].Y)
		total += a.Dist(b)
	}
	return total
}

// segmentEnd returns the index of the last point of the segment starting at
// start, including the shared boundary point when a later typed point exists.
func segmentEnd(s *model.Slider, start int) int {
	for i := start + 1; i < len(s.Points); i++ {
		if s.PointType(i) != "" {
			return i
		}
	}
	return len(s.Points) - 1
}
