/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 nanobeat */

package slider

import (
	"testing"

	"github.com/nanobeat/slidercraft/internal/geom"
)

func TestEnsureValidTypesDowngradesCollinearPerfectCurve(t *testing.T) {
	p := NewPath(
		NewTypedControlPoint(geom.V(0, 0), TypePerfectCurve),
		NewControlPoint(geom.V(5, 0)),
		NewControlPoint(geom.V(10, 0)),
	)

	p.EnsureValidTypes()

	got := p.ControlPoints.At(0).PathType()
	if got == nil || *got != TypeBezier {
		t.Errorf("type after validation = %v, want Bezier", got)
	}
}

func TestEnsureValidTypesKeepsProperArc(t *testing.T) {
	p := NewPath(
		NewTypedControlPoint(geom.V(0, 0), TypePerfectCurve),
		NewControlPoint(geom.V(5, 5)),
		NewControlPoint(geom.V(10, 0)),
	)

	p.EnsureValidTypes()

	got := p.ControlPoints.At(0).PathType()
	if got == nil || *got != TypePerfectCurve {
		t.Errorf("type after validation = %v, want PerfectCurve", got)
	}
}

func TestEnsureValidTypesIsIdempotent(t *testing.T) {
	start := NewTypedControlPoint(geom.V(0, 0), TypePerfectCurve)
	p := NewPath(start, NewControlPoint(geom.V(5, 0)), NewControlPoint(geom.V(10, 0)))

	mutations := 0
	start.Subscribe(func() { mutations++ })

	p.EnsureValidTypes()
	if mutations != 1 {
		t.Fatalf("mutations after first run = %d, want 1", mutations)
	}

	p.EnsureValidTypes()
	if mutations != 1 {
		t.Errorf("mutations after second run = %d, want 1 (no extra events)", mutations)
	}
	got := p.ControlPoints.At(0).PathType()
	if got == nil || *got != TypeBezier {
		t.Errorf("type after second run = %v, want Bezier", got)
	}
}

func TestEnsureValidTypesIgnoresLongerSegments(t *testing.T) {
	// Four collinear points in one segment: not a 3-point perfect curve,
	// so the type stays.
	p := NewPath(
		NewTypedControlPoint(geom.V(0, 0), TypePerfectCurve),
		NewControlPoint(geom.V(3, 0)),
		NewControlPoint(geom.V(6, 0)),
		NewControlPoint(geom.V(9, 0)),
	)

	p.EnsureValidTypes()

	got := p.ControlPoints.At(0).PathType()
	if got == nil || *got != TypePerfectCurve {
		t.Errorf("type = %v, want PerfectCurve untouched", got)
	}
}

func TestSegmentPointsSharesBoundary(t *testing.T) {
	a := NewTypedControlPoint(geom.V(0, 0), TypePerfectCurve)
	b := NewControlPoint(geom.V(5, 5))
	c := NewTypedControlPoint(geom.V(10, 0), TypeLinear)
	d := NewControlPoint(geom.V(20, 0))
	p := NewPath(a, b, c, d)

	seg := p.SegmentPoints(0)
	if len(seg) != 3 || seg[0] != a || seg[1] != b || seg[2] != c {
		t.Errorf("first segment has %d points, want [a b c]", len(seg))
	}

	seg = p.SegmentPoints(2)
	if len(seg) != 2 || seg[0] != c || seg[1] != d {
		t.Errorf("second segment has %d points, want [c d]", len(seg))
	}

	if got := p.SegmentPoints(99); got != nil {
		t.Errorf("out-of-range segment = %v, want nil", got)
	}
}

type recordingChanges struct {
	begins, ends int
}

func (r *recordingChanges) BeginChange() { r.begins++ }
func (r *recordingChanges) EndChange()   { r.ends++ }

func TestChangeBracketNesting(t *testing.T) {
	p := NewPath()
	rec := &recordingChanges{}
	p.Recorder = rec

	p.BeginChange()
	p.BeginChange()
	p.EndChange()
	if rec.ends != 0 {
		t.Errorf("inner EndChange reached recorder: ends = %d, want 0", rec.ends)
	}
	p.EndChange()

	if rec.begins != 1 || rec.ends != 1 {
		t.Errorf("recorder saw %d/%d brackets, want 1/1", rec.begins, rec.ends)
	}

	// An unmatched EndChange is ignored.
	p.EndChange()
	if rec.ends != 1 {
		t.Errorf("unmatched EndChange reached recorder: ends = %d, want 1", rec.ends)
	}
}
