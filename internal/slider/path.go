/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 nanobeat */

package slider

import "github.com/nanobeat/slidercraft/internal/geom"

// ChangeRecorder groups mutations for undo/redo. BeginChange/EndChange
// brackets nest; only the outermost pair reaches the recorder.
type ChangeRecorder interface {
	BeginChange()
	EndChange()
}

// Path is a slider path entity: an observable list of control points
// plus the transactional change bracket its editors wrap mutations in.
type Path struct {
	ControlPoints *ControlPointList

	// Recorder, when set, receives the outermost change brackets.
	Recorder ChangeRecorder

	changeDepth int
	validating  bool
}

// NewPath creates a path from the given control points.
func NewPath(points ...*ControlPoint) *Path {
	return &Path{ControlPoints: NewControlPointList(points...)}
}

// BeginChange opens a change bracket.
func (p *Path) BeginChange() {
	p.changeDepth++
	if p.changeDepth == 1 && p.Recorder != nil {
		p.Recorder.BeginChange()
	}
}

// EndChange closes the current change bracket.
func (p *Path) EndChange() {
	if p.changeDepth == 0 {
		return
	}
	p.changeDepth--
	if p.changeDepth == 0 && p.Recorder != nil {
		p.Recorder.EndChange()
	}
}

// SegmentPoints returns the ordered points of the segment starting at
// index start: the start point, every following inheriting point, and
// the next typed point when one exists. Adjacent segments share their
// boundary point, which is the geometric endpoint of the earlier one.
func (p *Path) SegmentPoints(start int) []*ControlPoint {
	pts := p.ControlPoints.points
	if start < 0 || start >= len(pts) {
		return nil
	}
	seg := []*ControlPoint{pts[start]}
	for i := start + 1; i < len(pts); i++ {
		seg = append(seg, pts[i])
		if pts[i].IsSegmentStart() {
			break
		}
	}
	return seg
}

// EnsureValidTypes downgrades every three-point PerfectCurve segment
// whose points are too close to collinear for a stable circular-arc fit.
// The correction is silent and idempotent; running it on an already
// corrected path changes nothing.
func (p *Path) EnsureValidTypes() {
	if p.validating {
		return
	}
	p.validating = true
	defer func() { p.validating = false }()

	for i, cp := range p.ControlPoints.points {
		t := cp.PathType()
		if t == nil || *t != TypePerfectCurve {
			continue
		}
		seg := p.SegmentPoints(i)
		if len(seg) != 3 {
			continue
		}
		if !geom.PerfectCurveFits(seg[0].Position(), seg[1].Position(), seg[2].Position()) {
			cp.SetPathType(TypeRef(TypeBezier))
		}
	}
}
