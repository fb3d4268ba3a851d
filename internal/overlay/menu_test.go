/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 nanobeat */

package overlay

import (
	"testing"

	"github.com/nanobeat/slidercraft/internal/geom"
	"github.com/nanobeat/slidercraft/internal/slider"
)

func entryByLabel(t *testing.T, m Menu, label string) CurveTypeEntry {
	t.Helper()
	for _, e := range m.CurveTypes {
		if e.Label == label {
			return e
		}
	}
	t.Fatalf("menu has no entry %q", label)
	return CurveTypeEntry{}
}

func TestContextMenuRequiresHoverAndSelection(t *testing.T) {
	p := pathWith(3)
	o := NewControlPoints(p, true)
	defer o.Close()

	if _, ok := o.ContextMenu(true); ok {
		t.Error("menu available with nothing selected")
	}

	o.Select(o.Pieces()[0], false)
	if _, ok := o.ContextMenu(false); ok {
		t.Error("menu available without hover")
	}
	if _, ok := o.ContextMenu(true); !ok {
		t.Error("menu unavailable while hovering a selection")
	}
}

func TestContextMenuDeleteLabel(t *testing.T) {
	p := pathWith(3)
	o := NewControlPoints(p, true)
	defer o.Close()

	o.Select(o.Pieces()[0], false)
	m, ok := o.ContextMenu(true)
	if !ok {
		t.Fatal("menu unavailable")
	}
	if m.DeleteLabel != "Delete control point" || m.DeleteCount != 1 {
		t.Errorf("single selection label = %q (%d), want singular", m.DeleteLabel, m.DeleteCount)
	}

	o.Select(o.Pieces()[1], true)
	m, _ = o.ContextMenu(true)
	if m.DeleteLabel != "Delete 2 control points" || m.DeleteCount != 2 {
		t.Errorf("label = %q (%d), want \"Delete 2 control points\"", m.DeleteLabel, m.DeleteCount)
	}
}

func TestContextMenuCheckStates(t *testing.T) {
	// Points: 0 bezier (segment start), 1 inherit, 2 inherit.
	p := pathWith(3)
	o := NewControlPoints(p, true)
	defer o.Close()

	tests := []struct {
		name      string
		selectIdx []int
		label     string
		want      CheckState
	}{
		{name: "all match", selectIdx: []int{1, 2}, label: "Inherit", want: Checked},
		{name: "none match", selectIdx: []int{1, 2}, label: "Bezier", want: Unchecked},
		{name: "some match", selectIdx: []int{0, 1}, label: "Bezier", want: Indeterminate},
		{name: "single checked", selectIdx: []int{0}, label: "Bezier", want: Checked},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o.ClearSelection()
			for _, i := range tt.selectIdx {
				o.Select(o.Pieces()[i], true)
			}
			m, ok := o.ContextMenu(true)
			if !ok {
				t.Fatal("menu unavailable")
			}
			if got := entryByLabel(t, m, tt.label).State; got != tt.want {
				t.Errorf("%s state = %v, want %v", tt.label, got, tt.want)
			}
		})
	}
}

func TestApplyTypeToSelection(t *testing.T) {
	p := pathWith(3)
	rec := &countingRecorder{}
	p.Recorder = rec
	o := NewControlPoints(p, true)
	defer o.Close()

	o.Select(o.Pieces()[1], false)
	o.Select(o.Pieces()[2], true)
	o.ApplyTypeToSelection(slider.TypeRef(slider.TypeLinear))

	for i := 1; i <= 2; i++ {
		got := p.ControlPoints.At(i).PathType()
		if got == nil || *got != slider.TypeLinear {
			t.Errorf("point %d type = %v, want Linear", i, got)
		}
	}
	if rec.begins != 1 || rec.ends != 1 {
		t.Errorf("change brackets = %d/%d, want 1/1", rec.begins, rec.ends)
	}
}

func TestApplyInheritSkipsFirstPoint(t *testing.T) {
	p := pathWith(2)
	o := NewControlPoints(p, true)
	defer o.Close()

	o.Select(o.Pieces()[0], false)
	o.ApplyTypeToSelection(nil)

	if p.ControlPoints.At(0).PathType() == nil {
		t.Error("first point became Inherit")
	}
}

func TestApplyPerfectCurveRevalidates(t *testing.T) {
	// Collinear 3-point path: promoting it to PerfectCurve must bounce
	// straight back to Bezier through validation.
	p := slider.NewPath(
		slider.NewTypedControlPoint(geom.V(0, 0), slider.TypeLinear),
		slider.NewControlPoint(geom.V(5, 0)),
		slider.NewControlPoint(geom.V(10, 0)),
	)
	o := NewControlPoints(p, true)
	defer o.Close()

	o.Select(o.Pieces()[0], false)
	o.ApplyTypeToSelection(slider.TypeRef(slider.TypePerfectCurve))

	got := p.ControlPoints.At(0).PathType()
	if got == nil || *got != slider.TypeBezier {
		t.Errorf("type = %v, want Bezier after revalidation", got)
	}
}
