/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 nanobeat */

package slider

import (
	"testing"

	"github.com/nanobeat/slidercraft/internal/geom"
)

func newPoints(n int) []*ControlPoint {
	pts := make([]*ControlPoint, n)
	for i := range pts {
		pts[i] = NewControlPoint(geom.V(float64(i*10), 0))
	}
	return pts
}

func TestListInsertEmitsBatchedAdd(t *testing.T) {
	pts := newPoints(3)
	l := NewControlPointList(pts...)

	var events []ListEvent
	l.Subscribe(func(ev ListEvent) { events = append(events, ev) })

	batch := newPoints(2)
	l.Insert(1, batch...)

	if l.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", l.Len())
	}
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	ev := events[0]
	if ev.Kind != EventAdd || ev.Index != 1 || len(ev.Points) != 2 {
		t.Errorf("event = {%v %d %d points}, want {Add 1 2 points}", ev.Kind, ev.Index, len(ev.Points))
	}
	if l.At(1) != batch[0] || l.At(2) != batch[1] {
		t.Error("batch not spliced at index 1")
	}
	if l.At(0) != pts[0] || l.At(3) != pts[1] || l.At(4) != pts[2] {
		t.Error("existing points not preserved around the splice")
	}
}

func TestListRemoveByIdentity(t *testing.T) {
	pts := newPoints(4)
	l := NewControlPointList(pts...)

	var events []ListEvent
	l.Subscribe(func(ev ListEvent) { events = append(events, ev) })

	if got := l.Remove(pts[1]); got != 1 {
		t.Fatalf("Remove returned %d, want 1", got)
	}
	if l.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", l.Len())
	}
	if len(events) != 1 || events[0].Kind != EventRemove || events[0].Index != 1 {
		t.Fatalf("unexpected events: %+v", events)
	}
	if l.IndexOf(pts[1]) != -1 {
		t.Error("removed point still present")
	}
}

func TestListRemoveContiguousRunIsOneEvent(t *testing.T) {
	pts := newPoints(5)
	l := NewControlPointList(pts...)

	var events []ListEvent
	l.Subscribe(func(ev ListEvent) { events = append(events, ev) })

	// Points 1,2,3 are contiguous; order of the arguments is irrelevant.
	if got := l.Remove(pts[3], pts[1], pts[2]); got != 3 {
		t.Fatalf("Remove returned %d, want 3", got)
	}
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1 batched event", len(events))
	}
	ev := events[0]
	if ev.Index != 1 || len(ev.Points) != 3 {
		t.Errorf("event = {index %d, %d points}, want {index 1, 3 points}", ev.Index, len(ev.Points))
	}
	if ev.Points[0] != pts[1] || ev.Points[2] != pts[3] {
		t.Error("event points not in sequence order")
	}
}

func TestListRemoveDisjointRunsEmitSeparateEvents(t *testing.T) {
	pts := newPoints(5)
	l := NewControlPointList(pts...)

	var events []ListEvent
	l.Subscribe(func(ev ListEvent) { events = append(events, ev) })

	l.Remove(pts[0], pts[3])

	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	// Tail run first so that earlier indices are still valid when its
	// event fires.
	if events[0].Index != 3 || events[1].Index != 0 {
		t.Errorf("event indices = %d, %d, want 3, 0", events[0].Index, events[1].Index)
	}
	if l.Len() != 3 {
		t.Errorf("Len() = %d, want 3", l.Len())
	}
}

func TestListRemoveUnknownPoint(t *testing.T) {
	l := NewControlPointList(newPoints(2)...)

	fired := 0
	l.Subscribe(func(ListEvent) { fired++ })

	if got := l.Remove(NewControlPoint(geom.V(99, 99))); got != 0 {
		t.Errorf("Remove returned %d, want 0", got)
	}
	if fired != 0 {
		t.Errorf("events fired = %d, want 0", fired)
	}
}

func TestListSubscribeCancel(t *testing.T) {
	l := NewControlPointList()

	fired := 0
	cancel := l.Subscribe(func(ListEvent) { fired++ })

	l.Add(NewControlPoint(geom.V(0, 0)))
	cancel()
	l.Add(NewControlPoint(geom.V(1, 1)))

	if fired != 1 {
		t.Errorf("fired = %d, want 1", fired)
	}
}

func TestListEventsFireAfterMutation(t *testing.T) {
	l := NewControlPointList(newPoints(1)...)

	var lenDuringEvent int
	l.Subscribe(func(ev ListEvent) { lenDuringEvent = l.Len() })

	l.Add(NewControlPoint(geom.V(1, 1)))
	if lenDuringEvent != 2 {
		t.Errorf("Len() during Add event = %d, want 2", lenDuringEvent)
	}

	l.Remove(l.At(1))
	if lenDuringEvent != 1 {
		t.Errorf("Len() during Remove event = %d, want 1", lenDuringEvent)
	}
}
