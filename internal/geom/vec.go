/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 nanobeat */

// Package geom provides 2D vector math for slider path geometry.
package geom

import "math"

// Vec2 is a 2D vector in playfield coordinates.
type Vec2 struct {
	X, Y float64
}

// V is a shorthand constructor.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + w.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns v - w.
func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{X: v.X - w.X, Y: v.Y - w.Y}
}

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Dot returns the dot product of v and w.
func (v Vec2) Dot(w Vec2) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Len returns the length of v.
func (v Vec2) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// LenSq returns the squared length of v.
func (v Vec2) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Dist returns the distance between v and w.
func (v Vec2) Dist(w Vec2) float64 {
	return v.Sub(w).Len()
}

// Lerp linearly interpolates between v and w.
func (v Vec2) Lerp(w Vec2, t float64) Vec2 {
	return Vec2{
		X: v.X + (w.X-v.X)*t,
		Y: v.Y + (w.Y-v.Y)*t,
	}
}
