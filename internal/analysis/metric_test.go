/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 nanobeat */

package analysis

import (
	"math"
	"testing"

	"github.com/nanobeat/slidercraft/internal/geom"
	"github.com/nanobeat/slidercraft/internal/slider"
)

func testPath() *slider.Path {
	return slider.NewPath(
		slider.NewTypedControlPoint(geom.V(0, 0), slider.TypePerfectCurve),
		slider.NewControlPoint(geom.V(3, 4)),
		slider.NewTypedControlPoint(geom.V(3, 14), slider.TypeLinear),
	)
}

func TestSpacingMetricExtract(t *testing.T) {
	m := SpacingMetric{}

	if m.Name() != "Spacing" {
		t.Errorf("Name() = %q, want \"Spacing\"", m.Name())
	}
	if m.Unit() != "px" {
		t.Errorf("Unit() = %q, want \"px\"", m.Unit())
	}

	p := testPath()
	points := p.ControlPoints.Points()

	if got := m.Extract(points, 0); got != 0 {
		t.Errorf("Extract(0) = %f, want 0 (no previous point)", got)
	}
	if got := m.Extract(points, 1); got != 5 {
		t.Errorf("Extract(1) = %f, want 5", got)
	}
	if got := m.Extract(points, 2); got != 10 {
		t.Errorf("Extract(2) = %f, want 10", got)
	}
}

func TestTurnAngleMetricExtract(t *testing.T) {
	m := TurnAngleMetric{}

	right := slider.NewPath(
		slider.NewTypedControlPoint(geom.V(0, 0), slider.TypeLinear),
		slider.NewControlPoint(geom.V(10, 0)),
		slider.NewControlPoint(geom.V(10, 10)),
	)
	points := right.ControlPoints.Points()

	got := m.Extract(points, 1)
	if math.Abs(got-90) > 1e-9 {
		t.Errorf("right-angle turn = %f, want 90", got)
	}

	if got := m.Extract(points, 0); got != 0 {
		t.Errorf("endpoint turn = %f, want 0", got)
	}
	if got := m.Extract(points, 2); got != 0 {
		t.Errorf("endpoint turn = %f, want 0", got)
	}
}

func TestArcStabilityMetricSign(t *testing.T) {
	m := ArcStabilityMetric{}

	arc := slider.NewPath(
		slider.NewTypedControlPoint(geom.V(0, 0), slider.TypePerfectCurve),
		slider.NewControlPoint(geom.V(5, 5)),
		slider.NewControlPoint(geom.V(10, 0)),
	)
	if got := m.Extract(arc.ControlPoints.Points(), 1); got <= 0 {
		t.Errorf("stable arc margin = %f, want > 0", got)
	}

	flat := slider.NewPath(
		slider.NewTypedControlPoint(geom.V(0, 0), slider.TypePerfectCurve),
		slider.NewControlPoint(geom.V(5, 0)),
		slider.NewControlPoint(geom.V(10, 0)),
	)
	if got := m.Extract(flat.ControlPoints.Points(), 1); got > 0 {
		t.Errorf("collinear margin = %f, want <= 0", got)
	}
}

func TestBuildProfileMarksSegmentStarts(t *testing.T) {
	prof := BuildSpacingProfile(testPath())

	if len(prof.Points) != 3 {
		t.Fatalf("profile has %d points, want 3", len(prof.Points))
	}
	if prof.MetricName != "Spacing" {
		t.Errorf("MetricName = %q, want \"Spacing\"", prof.MetricName)
	}
	if prof.MinValue != 0 || prof.MaxValue != 10 {
		t.Errorf("range = [%f, %f], want [0, 10]", prof.MinValue, prof.MaxValue)
	}

	wantStarts := []int{0, 2}
	if len(prof.StartIndices) != len(wantStarts) {
		t.Fatalf("StartIndices = %v, want %v", prof.StartIndices, wantStarts)
	}
	for i, idx := range wantStarts {
		if prof.StartIndices[i] != idx {
			t.Errorf("StartIndices[%d] = %d, want %d", i, prof.StartIndices[i], idx)
		}
	}
	if !prof.Points[0].SegmentStart || prof.Points[1].SegmentStart {
		t.Error("SegmentStart flags wrong")
	}
}

func TestBuildProfileEmptyPath(t *testing.T) {
	prof := BuildProfile(slider.NewPath(), SpacingMetric{})
	if len(prof.Points) != 0 {
		t.Errorf("empty path profile has %d points, want 0", len(prof.Points))
	}
}

func TestDefaultMetricsIncludesArcStability(t *testing.T) {
	found := false
	for _, m := range DefaultMetrics() {
		if m.Name() == "Arc stability" {
			found = true
			break
		}
	}
	if !found {
		t.Error("DefaultMetrics() does not include ArcStabilityMetric")
	}
}
