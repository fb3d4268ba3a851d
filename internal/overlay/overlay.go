/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 nanobeat */

// Package overlay keeps visual proxy elements for a slider path's control
// points in lockstep with the path as points are inserted and removed.
package overlay

import (
	"github.com/charmbracelet/log"

	"github.com/nanobeat/slidercraft/internal/slider"
)

// Piece is the visual proxy for one control point.
type Piece struct {
	Point    *slider.ControlPoint
	Selected bool
}

// Connection is the visual proxy for the link anchored at one sequence
// index. PointIndex tracks the index of Point in the owning list and is
// kept consistent through inserts and removals elsewhere in the list.
type Connection struct {
	Point      *slider.ControlPoint
	PointIndex int
}

// ControlPoints maintains one Piece and one Connection per control point
// of a path, reacting to the list's change events. It also carries the
// selection state and the deletion flow for interactive editing.
type ControlPoints struct {
	path           *slider.Path
	allowSelection bool

	pieces      []*Piece
	connections []*Connection

	cancelList  func()
	cancelPoint map[*slider.ControlPoint]func()

	// RemoveRequested is invoked when deletion of selected points is
	// requested. The owner applies the actual removal and enforces
	// domain rules (the first point stays, at least two points remain).
	RemoveRequested func(points []*slider.ControlPoint)
}

// NewControlPoints creates an overlay for path. When allowSelection is
// false the selection gestures are no-ops. Call Close when done to
// release all subscriptions.
func NewControlPoints(path *slider.Path, allowSelection bool) *ControlPoints {
	o := &ControlPoints{
		path:           path,
		allowSelection: allowSelection,
		cancelPoint:    make(map[*slider.ControlPoint]func()),
	}
	o.cancelList = path.ControlPoints.Subscribe(o.pointsChanged)

	// Seed the derived collections from the points already present.
	if pts := path.ControlPoints.Points(); len(pts) > 0 {
		o.pointsChanged(slider.ListEvent{Kind: slider.EventAdd, Index: 0, Points: pts})
	}
	return o
}

// Close cancels the list subscription and every per-point subscription.
func (o *ControlPoints) Close() {
	if o.cancelList != nil {
		o.cancelList()
		o.cancelList = nil
	}
	for p, cancel := range o.cancelPoint {
		cancel()
		delete(o.cancelPoint, p)
	}
}

// Pieces returns the piece collection for rendering. The slice is shared;
// callers must not mutate it.
func (o *ControlPoints) Pieces() []*Piece {
	return o.pieces
}

// Connections returns the connection collection for rendering. The slice
// is shared; callers must not mutate it.
func (o *ControlPoints) Connections() []*Connection {
	return o.connections
}

// PieceFor returns the piece wrapping p, or nil.
func (o *ControlPoints) PieceFor(p *slider.ControlPoint) *Piece {
	for _, piece := range o.pieces {
		if piece.Point == p {
			return piece
		}
	}
	return nil
}

// pointsChanged is the single structural event handler.
func (o *ControlPoints) pointsChanged(ev slider.ListEvent) {
	switch ev.Kind {
	case slider.EventAdd:
		o.pointsAdded(ev.Index, ev.Points)
	case slider.EventRemove:
		o.pointsRemoved(ev.Index, ev.Points)
	}
}

func (o *ControlPoints) pointsAdded(index int, points []*slider.ControlPoint) {
	// Shift existing connections right first: the connections created
	// below already carry their final indices and must not move.
	if index < len(o.pieces) {
		for _, c := range o.connections {
			if c.PointIndex >= index {
				c.PointIndex += len(points)
			}
		}
	}

	for i, p := range points {
		o.pieces = append(o.pieces, &Piece{Point: p})
		o.connections = append(o.connections, &Connection{Point: p, PointIndex: index + i})
		o.cancelPoint[p] = p.Subscribe(o.path.EnsureValidTypes)
	}
}

func (o *ControlPoints) pointsRemoved(index int, points []*slider.ControlPoint) {
	for _, p := range points {
		if !o.dropElements(p) {
			// Invariant violation: every listed point has exactly one
			// piece and one connection. Leave both collections as they
			// are rather than guessing.
			log.Error("no overlay elements for removed control point", "index", index)
		}
		if cancel := o.cancelPoint[p]; cancel != nil {
			cancel()
			delete(o.cancelPoint, p)
		}
	}

	// The boundary check runs against the post-removal piece count: a
	// removal at the tail leaves nothing to its right to shift.
	if index < len(o.pieces) {
		for _, c := range o.connections {
			if c.PointIndex >= index {
				c.PointIndex -= len(points)
			}
		}
	}
}

// dropElements removes the piece and connection for p by identity.
// Positions in the derived slices may be stale during batched removals,
// so the lookup scans by back-reference. Removal is all-or-nothing so a
// failed lookup can never break the count equality of the two slices.
func (o *ControlPoints) dropElements(p *slider.ControlPoint) bool {
	pi, ci := -1, -1
	for i, piece := range o.pieces {
		if piece.Point == p {
			pi = i
			break
		}
	}
	for i, c := range o.connections {
		if c.Point == p {
			ci = i
			break
		}
	}
	if pi < 0 || ci < 0 {
		return false
	}
	o.pieces = append(o.pieces[:pi], o.pieces[pi+1:]...)
	o.connections = append(o.connections[:ci], o.connections[ci+1:]...)
	return true
}
