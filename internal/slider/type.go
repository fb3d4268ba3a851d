/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 nanobeat */

// Package slider provides the slider path domain model: typed control
// points, an observable ordered point list, and path-type validation.
package slider

import "fmt"

// Type identifies how the segment starting at a control point is curved.
type Type int

const (
	TypeLinear Type = iota
	TypePerfectCurve
	TypeBezier
	TypeCatmull
)

// String returns the canonical name used in document files.
func (t Type) String() string {
	switch t {
	case TypeLinear:
		return "linear"
	case TypePerfectCurve:
		return "perfect"
	case TypeBezier:
		return "bezier"
	case TypeCatmull:
		return "catmull"
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// ParseType maps a document curve-type string back to a Type.
func ParseType(s string) (Type, error) {
	switch s {
	case "linear":
		return TypeLinear, nil
	case "perfect":
		return TypePerfectCurve, nil
	case "bezier":
		return TypeBezier, nil
	case "catmull":
		return TypeCatmull, nil
	}
	return 0, fmt.Errorf("unknown curve type %q", s)
}

// TypeRef returns a pointer to t, for assigning to a control point.
func TypeRef(t Type) *Type {
	return &t
}
