/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 nanobeat */

package slider

import "sort"

// EventKind discriminates structural list changes.
type EventKind int

const (
	EventAdd EventKind = iota
	EventRemove
)

// ListEvent describes one structural change to a ControlPointList.
// Index is the first affected position; Points holds the added or
// removed items in order.
type ListEvent struct {
	Kind   EventKind
	Index  int
	Points []*ControlPoint
}

// ControlPointList is an ordered, observable sequence of control points.
// Events are delivered synchronously, after the list has mutated, within
// the call that performed the mutation.
type ControlPointList struct {
	points []*ControlPoint

	subs    map[int]func(ListEvent)
	nextSub int
}

// NewControlPointList creates a list seeded with the given points.
// No events fire for the seed.
func NewControlPointList(points ...*ControlPoint) *ControlPointList {
	l := &ControlPointList{}
	l.points = append(l.points, points...)
	return l
}

// Len returns the number of points.
func (l *ControlPointList) Len() int {
	return len(l.points)
}

// At returns the point at index i.
func (l *ControlPointList) At(i int) *ControlPoint {
	return l.points[i]
}

// Points returns a copy of the current sequence.
func (l *ControlPointList) Points() []*ControlPoint {
	out := make([]*ControlPoint, len(l.points))
	copy(out, l.points)
	return out
}

// IndexOf returns the index of p, or -1 when p is not in the list.
func (l *ControlPointList) IndexOf(p *ControlPoint) int {
	for i, q := range l.points {
		if q == p {
			return i
		}
	}
	return -1
}

// Add appends points to the end of the list as one batch.
func (l *ControlPointList) Add(points ...*ControlPoint) {
	l.Insert(len(l.points), points...)
}

// Insert splices points into the list at index as one batch and emits a
// single Add event covering the whole batch.
func (l *ControlPointList) Insert(index int, points ...*ControlPoint) {
	if len(points) == 0 {
		return
	}
	out := make([]*ControlPoint, 0, len(l.points)+len(points))
	out = append(out, l.points[:index]...)
	out = append(out, points...)
	out = append(out, l.points[index:]...)
	l.points = out

	items := make([]*ControlPoint, len(points))
	copy(items, points)
	l.emit(ListEvent{Kind: EventAdd, Index: index, Points: items})
}

// Remove removes the given points by identity and returns how many were
// actually present. Contiguous runs of the removal set are removed and
// reported as single batched events; runs are processed from the tail so
// earlier indices stay valid while events fire.
func (l *ControlPointList) Remove(points ...*ControlPoint) int {
	seen := make(map[*ControlPoint]bool, len(points))
	var idxs []int
	for _, p := range points {
		if seen[p] {
			continue
		}
		seen[p] = true
		if i := l.IndexOf(p); i >= 0 {
			idxs = append(idxs, i)
		}
	}
	if len(idxs) == 0 {
		return 0
	}
	sort.Ints(idxs)

	for end := len(idxs); end > 0; {
		start := end - 1
		for start > 0 && idxs[start-1] == idxs[start]-1 {
			start--
		}
		from, to := idxs[start], idxs[end-1]

		items := make([]*ControlPoint, to-from+1)
		copy(items, l.points[from:to+1])
		l.points = append(l.points[:from], l.points[to+1:]...)
		l.emit(ListEvent{Kind: EventRemove, Index: from, Points: items})

		end = start
	}
	return len(idxs)
}

// Subscribe registers fn for structural change events. The returned
// function cancels the subscription.
func (l *ControlPointList) Subscribe(fn func(ListEvent)) (cancel func()) {
	if l.subs == nil {
		l.subs = make(map[int]func(ListEvent))
	}
	id := l.nextSub
	l.nextSub++
	l.subs[id] = fn
	return func() {
		delete(l.subs, id)
	}
}

func (l *ControlPointList) emit(ev ListEvent) {
	for _, fn := range l.subs {
		fn(ev)
	}
}
