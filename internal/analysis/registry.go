package analysis

// DefaultMetrics returns the standard set of metrics for path analysis.
func DefaultMetrics() []Metric {
	return []Metric{
		SpacingMetric{},
		TurnAngleMetric{},
		ArcStabilityMetric{},
	}
}
