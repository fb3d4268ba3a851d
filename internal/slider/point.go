/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 nanobeat */

package slider

import "github.com/nanobeat/slidercraft/internal/geom"

// ControlPoint is a single anchor of a piecewise curve. A point with a
// nil path type inherits the type of the segment it belongs to; a point
// with a non-nil type starts a new segment.
//
// Mutations go through the setters so that subscribers observe every
// actual change. Setting an equal value does not notify.
type ControlPoint struct {
	position geom.Vec2
	pathType *Type

	subs    map[int]func()
	nextSub int
}

// NewControlPoint creates an untyped (inheriting) control point.
func NewControlPoint(pos geom.Vec2) *ControlPoint {
	return &ControlPoint{position: pos}
}

// NewTypedControlPoint creates a control point that starts a segment.
func NewTypedControlPoint(pos geom.Vec2, t Type) *ControlPoint {
	return &ControlPoint{position: pos, pathType: &t}
}

// Position returns the point's position.
func (c *ControlPoint) Position() geom.Vec2 {
	return c.position
}

// SetPosition moves the point and notifies subscribers on change.
func (c *ControlPoint) SetPosition(pos geom.Vec2) {
	if c.position == pos {
		return
	}
	c.position = pos
	c.notify()
}

// PathType returns the point's type, or nil when it inherits.
func (c *ControlPoint) PathType() *Type {
	return c.pathType
}

// SetPathType changes the point's type and notifies subscribers on
// change. Pass nil to make the point inherit.
func (c *ControlPoint) SetPathType(t *Type) {
	if c.pathType == nil && t == nil {
		return
	}
	if c.pathType != nil && t != nil && *c.pathType == *t {
		return
	}
	if t != nil {
		v := *t
		c.pathType = &v
	} else {
		c.pathType = nil
	}
	c.notify()
}

// IsSegmentStart reports whether the point starts a segment.
func (c *ControlPoint) IsSegmentStart() bool {
	return c.pathType != nil
}

// Subscribe registers fn to run after every change to the point's
// position or type. The returned function cancels the subscription.
func (c *ControlPoint) Subscribe(fn func()) (cancel func()) {
	if c.subs == nil {
		c.subs = make(map[int]func())
	}
	id := c.nextSub
	c.nextSub++
	c.subs[id] = fn
	return func() {
		delete(c.subs, id)
	}
}

func (c *ControlPoint) notify() {
	for _, fn := range c.subs {
		fn()
	}
}
