/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 nanobeat */

package overlay

import (
	"testing"

	"github.com/nanobeat/slidercraft/internal/geom"
	"github.com/nanobeat/slidercraft/internal/slider"
)

// checkLockstep verifies the core invariant: both derived collections
// match the point count, and the connection carrying index i refers to
// the control point currently at list index i.
func checkLockstep(t *testing.T, o *ControlPoints, p *slider.Path) {
	t.Helper()

	n := p.ControlPoints.Len()
	if len(o.Pieces()) != n {
		t.Fatalf("pieces = %d, want %d", len(o.Pieces()), n)
	}
	if len(o.Connections()) != n {
		t.Fatalf("connections = %d, want %d", len(o.Connections()), n)
	}

	seen := make(map[int]bool, n)
	for _, c := range o.Connections() {
		if c.PointIndex < 0 || c.PointIndex >= n {
			t.Fatalf("connection index %d out of range [0,%d)", c.PointIndex, n)
		}
		if seen[c.PointIndex] {
			t.Fatalf("duplicate connection index %d", c.PointIndex)
		}
		seen[c.PointIndex] = true
		if p.ControlPoints.At(c.PointIndex) != c.Point {
			t.Fatalf("connection %d refers to the wrong control point", c.PointIndex)
		}
	}

	for i := 0; i < n; i++ {
		if o.PieceFor(p.ControlPoints.At(i)) == nil {
			t.Fatalf("no piece for control point at index %d", i)
		}
	}
}

func pathWith(n int) *slider.Path {
	pts := make([]*slider.ControlPoint, n)
	for i := range pts {
		if i == 0 {
			pts[i] = slider.NewTypedControlPoint(geom.V(0, 0), slider.TypeBezier)
		} else {
			pts[i] = slider.NewControlPoint(geom.V(float64(i*10), float64(i%2*10)))
		}
	}
	return slider.NewPath(pts...)
}

func connectionAt(o *ControlPoints, index int) *Connection {
	for _, c := range o.Connections() {
		if c.PointIndex == index {
			return c
		}
	}
	return nil
}

func TestOverlaySeedsExistingPoints(t *testing.T) {
	p := pathWith(3)
	o := NewControlPoints(p, true)
	defer o.Close()

	checkLockstep(t, o, p)
}

func TestOverlayInsertInMiddle(t *testing.T) {
	p := pathWith(3)
	o := NewControlPoints(p, true)
	defer o.Close()

	x := slider.NewControlPoint(geom.V(5, 5))
	p.ControlPoints.Insert(1, x)

	checkLockstep(t, o, p)
	c := connectionAt(o, 1)
	if c == nil || c.Point != x {
		t.Error("connection at index 1 does not reference the inserted point")
	}
}

func TestOverlayRemoveFromMiddle(t *testing.T) {
	p := pathWith(4)
	o := NewControlPoints(p, true)
	defer o.Close()

	b := p.ControlPoints.At(1)
	p.ControlPoints.Remove(b)

	checkLockstep(t, o, p)
	if o.PieceFor(b) != nil {
		t.Error("piece for removed point still present")
	}
}

func TestOverlayRemoveAtTail(t *testing.T) {
	p := pathWith(3)
	o := NewControlPoints(p, true)
	defer o.Close()

	// A removal at the tail has nothing to its right; the boundary
	// check against the post-removal count must shift nothing.
	p.ControlPoints.Remove(p.ControlPoints.At(2))

	checkLockstep(t, o, p)
}

func TestOverlayBatchInsertShiftsOnce(t *testing.T) {
	p := pathWith(3)
	o := NewControlPoints(p, true)
	defer o.Close()

	tailBefore := connectionAt(o, 2)

	batch := []*slider.ControlPoint{
		slider.NewControlPoint(geom.V(1, 1)),
		slider.NewControlPoint(geom.V(2, 2)),
	}
	p.ControlPoints.Insert(1, batch...)

	checkLockstep(t, o, p)
	if tailBefore.PointIndex != 4 {
		t.Errorf("tail connection shifted to %d, want 4 (single shift by batch size)", tailBefore.PointIndex)
	}
}

func TestOverlayBatchRemoveShiftsOnce(t *testing.T) {
	p := pathWith(5)
	o := NewControlPoints(p, true)
	defer o.Close()

	tailBefore := connectionAt(o, 4)

	p.ControlPoints.Remove(p.ControlPoints.At(1), p.ControlPoints.At(2))

	checkLockstep(t, o, p)
	if tailBefore.PointIndex != 2 {
		t.Errorf("tail connection shifted to %d, want 2", tailBefore.PointIndex)
	}
}

func TestOverlayAppendDoesNotShift(t *testing.T) {
	p := pathWith(2)
	o := NewControlPoints(p, true)
	defer o.Close()

	first := connectionAt(o, 0)
	p.ControlPoints.Add(slider.NewControlPoint(geom.V(30, 0)))

	checkLockstep(t, o, p)
	if first.PointIndex != 0 {
		t.Errorf("append shifted existing connection to %d, want 0", first.PointIndex)
	}
}

func TestOverlayRandomisedOpsKeepInvariant(t *testing.T) {
	p := pathWith(2)
	o := NewControlPoints(p, true)
	defer o.Close()

	ops := []func(){
		func() { p.ControlPoints.Add(slider.NewControlPoint(geom.V(1, 2))) },
		func() { p.ControlPoints.Insert(1, slider.NewControlPoint(geom.V(3, 4))) },
		func() { p.ControlPoints.Insert(0, slider.NewControlPoint(geom.V(5, 6))) },
		func() { p.ControlPoints.Remove(p.ControlPoints.At(p.ControlPoints.Len() - 1)) },
		func() { p.ControlPoints.Remove(p.ControlPoints.At(0)) },
		func() {
			p.ControlPoints.Insert(1,
				slider.NewControlPoint(geom.V(7, 8)),
				slider.NewControlPoint(geom.V(9, 10)))
		},
		func() { p.ControlPoints.Remove(p.ControlPoints.At(0), p.ControlPoints.At(1)) },
	}

	for round := 0; round < 3; round++ {
		for _, op := range ops {
			op()
			checkLockstep(t, o, p)
		}
	}
}

func TestOverlayRevalidatesOnPointChange(t *testing.T) {
	start := slider.NewTypedControlPoint(geom.V(0, 0), slider.TypePerfectCurve)
	mid := slider.NewControlPoint(geom.V(5, 5))
	end := slider.NewControlPoint(geom.V(10, 0))
	p := slider.NewPath(start, mid, end)
	o := NewControlPoints(p, true)
	defer o.Close()

	// Moving the middle point onto the chord makes the arc degenerate;
	// the subscription must downgrade the segment automatically.
	mid.SetPosition(geom.V(5, 0))

	got := start.PathType()
	if got == nil || *got != slider.TypeBezier {
		t.Errorf("type after collinear move = %v, want Bezier", got)
	}
}

func TestOverlayUnsubscribesRemovedPoints(t *testing.T) {
	start := slider.NewTypedControlPoint(geom.V(0, 0), slider.TypePerfectCurve)
	mid := slider.NewControlPoint(geom.V(5, 5))
	end := slider.NewControlPoint(geom.V(10, 0))
	extra := slider.NewControlPoint(geom.V(20, 20))
	p := slider.NewPath(start, mid, end, extra)
	o := NewControlPoints(p, true)
	defer o.Close()

	p.ControlPoints.Remove(extra)
	checkLockstep(t, o, p)

	// The removed point's subscription is gone: mutating it must not
	// reach the validator.
	fired := 0
	p.ControlPoints.Subscribe(func(slider.ListEvent) { fired++ })
	before := *start.PathType()
	extra.SetPosition(geom.V(99, 99))
	if *start.PathType() != before {
		t.Error("mutating a removed point changed the path")
	}
	if fired != 0 {
		t.Errorf("mutating a removed point emitted %d list events, want 0", fired)
	}
}

func TestOverlayCloseReleasesSubscriptions(t *testing.T) {
	p := pathWith(3)
	o := NewControlPoints(p, true)

	o.Close()
	p.ControlPoints.Add(slider.NewControlPoint(geom.V(50, 50)))

	if len(o.Pieces()) != 3 {
		t.Errorf("pieces after Close = %d, want 3 (no longer tracking)", len(o.Pieces()))
	}
}
