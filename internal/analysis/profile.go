package analysis

import "github.com/nanobeat/slidercraft/internal/slider"

// ProfilePoint represents one vertex in a path profile.
type ProfilePoint struct {
	Index        int
	Value        float64
	SegmentStart bool // true when the vertex starts a curve segment
}

// Profile represents a metric evaluated at every vertex of a path.
type Profile struct {
	MetricName   string
	MetricUnit   string
	Points       []ProfilePoint
	StartIndices []int // indices of segment-start vertices
	MinValue     float64
	MaxValue     float64
}

// BuildProfile evaluates the given metric along the path.
func BuildProfile(p *slider.Path, metric Metric) Profile {
	if p == nil || p.ControlPoints.Len() == 0 {
		return Profile{}
	}

	points := p.ControlPoints.Points()
	prof := Profile{
		MetricName: metric.Name(),
		MetricUnit: metric.Unit(),
		Points:     make([]ProfilePoint, 0, len(points)),
		MinValue:   1e18,
		MaxValue:   -1e18,
	}

	for i, cp := range points {
		val := metric.Extract(points, i)

		if val < prof.MinValue {
			prof.MinValue = val
		}
		if val > prof.MaxValue {
			prof.MaxValue = val
		}

		start := cp.IsSegmentStart()
		if start {
			prof.StartIndices = append(prof.StartIndices, i)
		}

		prof.Points = append(prof.Points, ProfilePoint{
			Index:        i,
			Value:        val,
			SegmentStart: start,
		})
	}

	return prof
}

// BuildSpacingProfile is a convenience function for the spacing profile.
func BuildSpacingProfile(p *slider.Path) Profile {
	return BuildProfile(p, SpacingMetric{})
}

// BuildTurnAngleProfile is a convenience function for the turn-angle profile.
func BuildTurnAngleProfile(p *slider.Path) Profile {
	return BuildProfile(p, TurnAngleMetric{})
}

// Values extracts the raw value series, for sparkline rendering.
func (p Profile) Values() []float64 {
	out := make([]float64, len(p.Points))
	for i, pt := range p.Points {
		out[i] = pt.Value
	}
	return out
}
