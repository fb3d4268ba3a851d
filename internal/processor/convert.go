/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 nanobeat */

package processor

import (
	"fmt"

	"github.com/nanobeat/slidercraft/internal/geom"
	"github.com/nanobeat/slidercraft/internal/model"
	"github.com/nanobeat/slidercraft/internal/slider"
)

// -----------------------------------------------------------------------------
// Model Conversion
// -----------------------------------------------------------------------------

// PathFromSlider builds an editable path from a stored slider. Schema v1
// sliders resolve their whole-slider curve type through the compat layer,
// so the returned path is always in per-point form. Unknown type strings
// are an error rather than a silent default.
func PathFromSlider(s *model.Slider) (*slider.Path, error) {
	points := make([]*slider.ControlPoint, 0, len(s.Points))
	for i, rec := range s.Points {
		pos := geom.V(rec.X, rec.Y)

		typeName := s.PointType(i)
		if typeName == "" {
			points = append(points, slider.NewControlPoint(pos))
			continue
		}

		t, err := slider.ParseType(typeName)
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
		points = append(points, slider.NewTypedControlPoint(pos, t))
	}

	return slider.NewPath(points...), nil
}

// SliderFromPath stores an editable path back into slider form, always in
// schema v2 per-point layout. The slider's identity fields are preserved;
// the v1 CurveType field is cleared so it cannot shadow point types.
func SliderFromPath(s *model.Slider, p *slider.Path) {
	records := make([]model.PointRecord, 0, p.ControlPoints.Len())
	for _, cp := range p.ControlPoints.Points() {
		rec := model.PointRecord{
			X: cp.Position().X,
			Y: cp.Position().Y,
		}
		if t := cp.PathType(); t != nil {
			rec.Type = t.String()
		}
		records = append(records, rec)
	}

	s.CurveType = ""
	s.Points = records
}
