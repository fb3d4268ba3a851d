/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 nanobeat */

package slider

import (
	"testing"

	"github.com/nanobeat/slidercraft/internal/geom"
)

func TestControlPointNotifiesOnChange(t *testing.T) {
	p := NewControlPoint(geom.V(1, 2))

	fired := 0
	cancel := p.Subscribe(func() { fired++ })

	p.SetPosition(geom.V(3, 4))
	if fired != 1 {
		t.Errorf("after SetPosition: fired = %d, want 1", fired)
	}

	p.SetPathType(TypeRef(TypeBezier))
	if fired != 2 {
		t.Errorf("after SetPathType: fired = %d, want 2", fired)
	}

	cancel()
	p.SetPosition(geom.V(5, 6))
	if fired != 2 {
		t.Errorf("after cancel: fired = %d, want 2", fired)
	}
}

func TestControlPointEqualValueDoesNotNotify(t *testing.T) {
	p := NewTypedControlPoint(geom.V(1, 1), TypePerfectCurve)

	fired := 0
	p.Subscribe(func() { fired++ })

	p.SetPosition(geom.V(1, 1))
	p.SetPathType(TypeRef(TypePerfectCurve))
	if fired != 0 {
		t.Errorf("fired = %d, want 0", fired)
	}

	p2 := NewControlPoint(geom.V(0, 0))
	fired2 := 0
	p2.Subscribe(func() { fired2++ })
	p2.SetPathType(nil)
	if fired2 != 0 {
		t.Errorf("nil to nil: fired = %d, want 0", fired2)
	}
}

func TestControlPointTypeIsCopied(t *testing.T) {
	p := NewControlPoint(geom.V(0, 0))
	typ := TypeLinear
	p.SetPathType(&typ)

	// Mutating the caller's variable must not change the point.
	typ = TypeCatmull
	if got := p.PathType(); got == nil || *got != TypeLinear {
		t.Errorf("PathType() = %v, want Linear", got)
	}
}

func TestParseType(t *testing.T) {
	tests := []struct {
		input   string
		want    Type
		wantErr bool
	}{
		{input: "linear", want: TypeLinear},
		{input: "perfect", want: TypePerfectCurve},
		{input: "bezier", want: TypeBezier},
		{input: "catmull", want: TypeCatmull},
		{input: "spline", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseType(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseType(%q) succeeded, want error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseType(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseType(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if got.String() != tt.input {
				t.Errorf("String() = %q, want %q", got.String(), tt.input)
			}
		})
	}
}
