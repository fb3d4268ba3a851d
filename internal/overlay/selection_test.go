/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 nanobeat */

package overlay

import (
	"testing"

	"github.com/nanobeat/slidercraft/internal/slider"
)

type countingRecorder struct {
	begins, ends int
}

func (r *countingRecorder) BeginChange() { r.begins++ }
func (r *countingRecorder) EndChange()   { r.ends++ }

func TestSelectReplacesSelection(t *testing.T) {
	p := pathWith(3)
	o := NewControlPoints(p, true)
	defer o.Close()

	pieces := o.Pieces()
	o.Select(pieces[0], false)
	o.Select(pieces[1], false)

	if pieces[0].Selected {
		t.Error("piece 0 still selected after plain-selecting piece 1")
	}
	if !pieces[1].Selected {
		t.Error("piece 1 not selected")
	}
	if got := len(o.SelectedPieces()); got != 1 {
		t.Errorf("selected pieces = %d, want 1", got)
	}
}

func TestSelectWithModifierToggles(t *testing.T) {
	p := pathWith(3)
	o := NewControlPoints(p, true)
	defer o.Close()

	pieces := o.Pieces()
	o.Select(pieces[0], false)
	o.Select(pieces[2], true)

	if !pieces[0].Selected || !pieces[2].Selected {
		t.Error("modifier select did not preserve the existing selection")
	}

	o.Select(pieces[2], true)
	if pieces[2].Selected {
		t.Error("modifier select did not toggle off")
	}
	if !pieces[0].Selected {
		t.Error("toggling piece 2 affected piece 0")
	}
}

func TestSelectDisabled(t *testing.T) {
	p := pathWith(2)
	o := NewControlPoints(p, false)
	defer o.Close()

	o.Select(o.Pieces()[0], false)
	if len(o.SelectedPieces()) != 0 {
		t.Error("selection succeeded on a selection-disabled overlay")
	}
}

func TestClearSelection(t *testing.T) {
	p := pathWith(3)
	o := NewControlPoints(p, true)
	defer o.Close()

	o.Select(o.Pieces()[0], false)
	o.Select(o.Pieces()[1], true)
	o.ClearSelection()

	if got := len(o.SelectedPieces()); got != 0 {
		t.Errorf("selected pieces after clear = %d, want 0", got)
	}
}

func TestDeleteSelected(t *testing.T) {
	p := pathWith(4)
	rec := &countingRecorder{}
	p.Recorder = rec
	o := NewControlPoints(p, true)
	defer o.Close()

	var requested []*slider.ControlPoint
	o.RemoveRequested = func(points []*slider.ControlPoint) {
		requested = points
		p.ControlPoints.Remove(points...)
	}

	o.Select(o.Pieces()[1], false)
	o.Select(o.Pieces()[2], true)

	if !o.DeleteSelected() {
		t.Fatal("DeleteSelected() = false, want true")
	}
	if len(requested) != 2 {
		t.Errorf("delegate received %d points, want 2", len(requested))
	}
	if rec.begins != 1 || rec.ends != 1 {
		t.Errorf("change brackets = %d/%d, want 1/1", rec.begins, rec.ends)
	}
	if p.ControlPoints.Len() != 2 {
		t.Errorf("points after delete = %d, want 2", p.ControlPoints.Len())
	}
	checkLockstep(t, o, p)
	if got := len(o.SelectedPieces()); got != 0 {
		t.Errorf("selection after delete = %d pieces, want 0", got)
	}
}

func TestDeleteSelectedEmptyIsNoOp(t *testing.T) {
	p := pathWith(3)
	rec := &countingRecorder{}
	p.Recorder = rec
	o := NewControlPoints(p, true)
	defer o.Close()

	called := false
	o.RemoveRequested = func([]*slider.ControlPoint) { called = true }

	if o.DeleteSelected() {
		t.Error("DeleteSelected() = true with empty selection, want false")
	}
	if called {
		t.Error("delegate invoked with empty selection")
	}
	if rec.begins != 0 {
		t.Errorf("change bracket opened for empty deletion: begins = %d, want 0", rec.begins)
	}
}

func TestDeleteSelectedDelegateEnforcesDomainRules(t *testing.T) {
	// The overlay takes no precaution itself; the delegate may refuse
	// part of the removal (e.g. keep the first point).
	p := pathWith(3)
	o := NewControlPoints(p, true)
	defer o.Close()

	first := p.ControlPoints.At(0)
	o.RemoveRequested = func(points []*slider.ControlPoint) {
		var allowed []*slider.ControlPoint
		for _, pt := range points {
			if pt != first {
				allowed = append(allowed, pt)
			}
		}
		p.ControlPoints.Remove(allowed...)
	}

	o.Select(o.Pieces()[0], false)
	o.Select(o.Pieces()[1], true)

	if !o.DeleteSelected() {
		t.Fatal("DeleteSelected() = false, want true")
	}
	if p.ControlPoints.Len() != 2 {
		t.Errorf("points = %d, want 2 (first point kept)", p.ControlPoints.Len())
	}
	if p.ControlPoints.At(0) != first {
		t.Error("first point was removed despite delegate rule")
	}
	checkLockstep(t, o, p)
}

func TestSelectedPoints(t *testing.T) {
	p := pathWith(4)
	o := NewControlPoints(p, true)
	defer o.Close()

	o.Select(o.Pieces()[3], true)
	o.Select(o.Pieces()[1], true)

	pts := o.SelectedPoints()
	if len(pts) != 2 {
		t.Fatalf("selected points = %d, want 2", len(pts))
	}
	want := map[*slider.ControlPoint]bool{
		p.ControlPoints.At(1): true,
		p.ControlPoints.At(3): true,
	}
	for _, pt := range pts {
		if !want[pt] {
			t.Error("SelectedPoints returned a point that was not selected")
		}
	}
}
