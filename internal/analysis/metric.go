/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 nanobeat */

// Package analysis provides editor-side computation for slider paths.
// This layer sits between the domain model and presentation, computing
// per-vertex metrics and whole-path profiles for the inspector panel.
package analysis

import (
	"math"

	"github.com/nanobeat/slidercraft/internal/geom"
	"github.com/nanobeat/slidercraft/internal/slider"
)

// Metric defines a pluggable extractor for one per-vertex value along a
// path. Implement this interface to add new metrics without modifying
// rendering code.
type Metric interface {
	Name() string
	Unit() string
	Extract(points []*slider.ControlPoint, i int) float64
}

// SpacingMetric extracts the distance from the previous control point.
type SpacingMetric struct{}

func (SpacingMetric) Name() string { return "Spacing" }
func (SpacingMetric) Unit() string { return "px" }

func (SpacingMetric) Extract(points []*slider.ControlPoint, i int) float64 {
	if i <= 0 || i >= len(points) {
		return 0
	}
	return points[i].Position().Dist(points[i-1].Position())
}

// TurnAngleMetric extracts the direction change at a vertex in degrees.
// Endpoints have no turn and report 0.
type TurnAngleMetric struct{}

func (TurnAngleMetric) Name() string { return "Turn angle" }
func (TurnAngleMetric) Unit() string { return "°" }

func (TurnAngleMetric) Extract(points []*slider.ControlPoint, i int) float64 {
	if i <= 0 || i >= len(points)-1 {
		return 0
	}
	in := points[i].Position().Sub(points[i-1].Position())
	out := points[i+1].Position().Sub(points[i].Position())
	if in.LenSq() == 0 || out.LenSq() == 0 {
		return 0
	}
	cos := in.Dot(out) / (in.Len() * out.Len())
	if cos > 1 {
		cos = 1
	}
	if cos < -1 {
		cos = -1
	}
	return math.Acos(cos) * 180 / math.Pi
}

// ArcStabilityMetric extracts the determinant margin of the three-point
// window centered on a vertex: how far the local geometry sits above the
// degenerate-arc threshold. Values at or below 0 mean a PerfectCurve
// through the window would be downgraded.
type ArcStabilityMetric struct{}

func (ArcStabilityMetric) Name() string { return "Arc stability" }
func (ArcStabilityMetric) Unit() string { return "" }

func (ArcStabilityMetric) Extract(points []*slider.ControlPoint, i int) float64 {
	if i <= 0 || i >= len(points)-1 {
		return 0
	}
	det, threshold := geom.ArcStability(
		points[i-1].Position(),
		points[i].Position(),
		points[i+1].Position(),
	)
	return det - threshold
}
