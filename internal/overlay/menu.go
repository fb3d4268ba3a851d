/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 nanobeat */

package overlay

import (
	"fmt"

	"github.com/nanobeat/slidercraft/internal/slider"
)

// CheckState is the three-state checkmark of a curve-type menu entry.
type CheckState int

const (
	Unchecked CheckState = iota
	Indeterminate
	Checked
)

// CurveTypeEntry is one entry of the curve-type submenu. A nil Type is
// the Inherit entry.
type CurveTypeEntry struct {
	Type  *slider.Type
	Label string
	State CheckState
}

// Menu is the context menu offered over a hovered, selected overlay.
type Menu struct {
	DeleteLabel string
	DeleteCount int
	CurveTypes  []CurveTypeEntry
}

// ContextMenu builds the context menu for the current selection. It is
// only available while the pointer hovers an element and at least one
// piece is selected; otherwise ok is false.
func (o *ControlPoints) ContextMenu(hovering bool) (menu Menu, ok bool) {
	selected := o.SelectedPieces()
	if !hovering || len(selected) == 0 {
		return Menu{}, false
	}

	count := len(selected)
	label := fmt.Sprintf("Delete %d control points", count)
	if count == 1 {
		label = "Delete control point"
	}

	menu = Menu{
		DeleteLabel: label,
		DeleteCount: count,
		CurveTypes: []CurveTypeEntry{
			{Type: nil, Label: "Inherit"},
			{Type: slider.TypeRef(slider.TypeLinear), Label: "Linear"},
			{Type: slider.TypeRef(slider.TypePerfectCurve), Label: "Perfect curve"},
			{Type: slider.TypeRef(slider.TypeBezier), Label: "Bezier"},
			{Type: slider.TypeRef(slider.TypeCatmull), Label: "Catmull"},
		},
	}

	for i := range menu.CurveTypes {
		menu.CurveTypes[i].State = checkState(selected, menu.CurveTypes[i].Type)
	}
	return menu, true
}

// checkState classifies how many of the selected pieces carry the type:
// all of them, some of them, or none.
func checkState(selected []*Piece, t *slider.Type) CheckState {
	matches := 0
	for _, p := range selected {
		if typesEqual(p.Point.PathType(), t) {
			matches++
		}
	}
	switch matches {
	case 0:
		return Unchecked
	case len(selected):
		return Checked
	}
	return Indeterminate
}

func typesEqual(a, b *slider.Type) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// ApplyTypeToSelection sets the path type of every selected point inside
// one change bracket and revalidates the path. The first point of the
// path always starts a segment, so it never becomes Inherit.
func (o *ControlPoints) ApplyTypeToSelection(t *slider.Type) {
	selected := o.SelectedPieces()
	if len(selected) == 0 {
		return
	}

	o.path.BeginChange()
	for _, p := range selected {
		if t == nil && o.path.ControlPoints.IndexOf(p.Point) == 0 {
			continue
		}
		p.Point.SetPathType(t)
	}
	o.path.EnsureValidTypes()
	o.path.EndChange()
}
