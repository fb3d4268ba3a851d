/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 nanobeat */

package overlay

import "github.com/nanobeat/slidercraft/internal/slider"

// Select selects piece. Without the modifier the rest of the selection is
// cleared first; with it the piece's own selection is toggled and the
// others are untouched.
func (o *ControlPoints) Select(piece *Piece, modifier bool) {
	if !o.allowSelection || piece == nil {
		return
	}
	if modifier {
		piece.Selected = !piece.Selected
		return
	}
	for _, p := range o.pieces {
		p.Selected = p == piece
	}
}

// ClearSelection deselects every piece.
func (o *ControlPoints) ClearSelection() {
	for _, p := range o.pieces {
		p.Selected = false
	}
}

// SelectedPieces returns the selected pieces in sequence order.
func (o *ControlPoints) SelectedPieces() []*Piece {
	var out []*Piece
	for _, p := range o.pieces {
		if p.Selected {
			out = append(out, p)
		}
	}
	return out
}

// SelectedPoints returns the control points of the selected pieces.
func (o *ControlPoints) SelectedPoints() []*slider.ControlPoint {
	var out []*slider.ControlPoint
	for _, p := range o.pieces {
		if p.Selected {
			out = append(out, p.Point)
		}
	}
	return out
}

// DeleteSelected requests removal of every selected point through the
// RemoveRequested delegate, wrapped in a single change bracket. It
// reports whether anything was deleted; with nothing selected it is a
// no-op and opens no bracket.
func (o *ControlPoints) DeleteSelected() bool {
	points := o.SelectedPoints()
	if len(points) == 0 {
		return false
	}

	o.path.BeginChange()
	if o.RemoveRequested != nil {
		o.RemoveRequested(points)
	}
	o.path.EndChange()

	// Removed point identities can come back through undo; drop every
	// flag so they do not reappear selected.
	o.ClearSelection()
	return true
}
