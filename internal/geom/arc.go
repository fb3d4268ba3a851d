/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 nanobeat */

package geom

import "math"

// Minimum signed-area determinants below which a circular-arc fit through
// three points is considered degenerate. Exterior arcs (sweeping the long
// way around) blow up in drawing cost much faster as the points approach
// collinearity, so they get a stricter threshold than interior arcs.
const (
	ExteriorArcThreshold = 0.05
	InteriorArcThreshold = 0.001
)

// ArcStability computes the degeneracy proxy for the circular arc through
// a, b, c. The points are normalized by the largest vector length among
// them so the determinant is scale-independent. It returns the absolute
// determinant and the threshold it must meet for a stable arc fit.
func ArcStability(a, b, c Vec2) (det, threshold float64) {
	maxLen := math.Max(a.Len(), math.Max(b.Len(), c.Len()))
	if maxLen > 0 {
		inv := 1 / maxLen
		a = a.Scale(inv)
		b = b.Scale(inv)
		c = c.Scale(inv)
	}

	det = (a.X-b.X)*(b.Y-c.Y) - (b.X-c.X)*(a.Y-b.Y)
	if det < 0 {
		det = -det
	}

	// The arc sweeps the long way around when either adjacent chord is
	// longer than the diagonal a-c.
	acSq := a.Sub(c).LenSq()
	exterior := a.Sub(b).LenSq() > acSq || b.Sub(c).LenSq() > acSq

	threshold = InteriorArcThreshold
	if exterior {
		threshold = ExteriorArcThreshold
	}
	return det, threshold
}

// PerfectCurveFits reports whether a circular arc through the three points
// can be fit without a near-infinite radius. Near-collinear points fail.
func PerfectCurveFits(a, b, c Vec2) bool {
	det, threshold := ArcStability(a, b, c)
	return det >= threshold
}
