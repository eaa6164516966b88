// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/widgets/slider_geometry.go
// Summary: Value to pixel geometry for the slider handle and track.

package widgets

import (
	"fmt"

	"github.com/framegrace/texelslider/texelui/core"
)

// span returns value-min and max-min, failing when the range is empty or the
// value lies outside it. The fraction is pos/rng.
func (s *Slider) span() (pos, rng int, err error) {
	if s.max <= s.min {
		return 0, 0, fmt.Errorf("slider: empty range [%d, %d]: %w", s.min, s.max, core.ErrInvalidArgument)
	}
	if s.value < s.min || s.value > s.max {
		return 0, 0, fmt.Errorf("slider: value %d outside [%d, %d]: %w", s.value, s.min, s.max, core.ErrInvalidArgument)
	}
	return int(s.value - s.min), int(s.max - s.min), nil
}

// HandleRect returns the handle square in local coordinates. Its side is
// the smaller widget dimension. It is also the pointer-down target.
func (s *Slider) HandleRect() (core.Rect, error) {
	if s == nil {
		return core.Rect{}, errNilSlider
	}
	pos, rng, err := s.span()
	if err != nil {
		return core.Rect{}, err
	}
	w, h := s.Size()
	side := min(w, h)
	if s.vertical {
		// fraction 1 puts the handle at the top
		return core.Rect{X: 0, Y: (h - side) * (rng - pos) / rng, W: side, H: side}, nil
	}
	return core.Rect{X: (w - side) * pos / rng, Y: 0, W: side, H: side}, nil
}

// FillRects returns the filled and the unfilled part of the track. Both are
// half the widget thickness, centred on the perpendicular axis. The filled
// part starts at the low end: left for horizontal, bottom for vertical.
func (s *Slider) FillRects() (fill, track core.Rect, err error) {
	if s == nil {
		return core.Rect{}, core.Rect{}, errNilSlider
	}
	pos, rng, err := s.span()
	if err != nil {
		return core.Rect{}, core.Rect{}, err
	}
	w, h := s.Size()
	if s.vertical {
		fh := h * pos / rng
		fill = core.Rect{X: w >> 2, Y: h - fh, W: w >> 1, H: fh}
		track = core.Rect{X: w >> 2, Y: 0, W: w >> 1, H: h - fh}
		return fill, track, nil
	}
	fw := w * pos / rng
	fill = core.Rect{X: 0, Y: h >> 2, W: fw, H: h >> 1}
	track = core.Rect{X: fw, Y: h >> 2, W: w - fw, H: h >> 1}
	return fill, track, nil
}

// valueAt maps a local pointer position back to the value domain. The
// fraction (x/w, or 1-y/h when vertical) is clamped to [0,1] and the result
// truncated toward zero. ok is false when no value can be produced.
func (s *Slider) valueAt(x, y int) (v uint16, ok bool) {
	if s.max <= s.min {
		return 0, false
	}
	w, h := s.Size()
	num, den := x, w
	if s.vertical {
		num, den = h-y, h
	}
	if den <= 0 {
		return 0, false
	}
	num = max(0, min(num, den))
	rng := int(s.max - s.min)
	return s.min + uint16(num*rng/den), true
}
