// Package model provides compatibility helpers for different schema versions.
package model

// PointType resolves the effective curve type of point i across schema
// versions. v2 documents store the type on the point itself; v1
// documents carried a single slider-level CurveType, which applies to
// the first point only. Every other point inherits ("").
func (s *Slider) PointType(i int) string {
	if i < 0 || i >= len(s.Points) {
		return ""
	}
	if t := s.Points[i].Type; t != "" {
		return t
	}
	if i == 0 {
		if s.CurveType != "" {
			return s.CurveType
		}
		// A slider's first point always starts a segment; legacy files
		// that predate explicit types default to bezier.
		return "bezier"
	}
	return ""
}

// SegmentStartCount returns how many points carry an effective type.
func (s *Slider) SegmentStartCount() int {
	count := 0
	for i := range s.Points {
		if s.PointType(i) != "" {
			count++
		}
	}
	return count
}
