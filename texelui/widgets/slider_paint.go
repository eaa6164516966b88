// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/widgets/slider_paint.go
// Summary: Slider rendering.

package widgets

import (
	"fmt"

	"github.com/framegrace/texelslider/texelui/core"
)

// Paint fills the track and the handle. It fails with ErrInvalidArgument,
// before issuing any draw call, when max <= min or the value is out of
// range. Layers whose colour resolves to transparent are skipped.
func (s *Slider) Paint(c core.Canvas) error {
	if s == nil {
		return errNilSlider
	}
	if c == nil {
		return fmt.Errorf("slider: nil canvas: %w", core.ErrInvalidArgument)
	}
	fill, track, err := s.FillRects()
	if err != nil {
		return err
	}
	handle, err := s.HandleRect()
	if err != nil {
		return err
	}

	layers := [...]struct {
		role core.ColorRole
		rect core.Rect
	}{
		{core.RoleForeground, fill},
		{core.RoleBackground, track},
		{core.RoleBorder, handle},
	}
	for _, l := range layers {
		col := s.StyleColor(l.role, core.Transparent)
		if col.A == 0 {
			continue
		}
		c.SetFillColor(col)
		c.FillRect(l.rect.X, l.rect.Y, l.rect.W, l.rect.H)
	}
	return nil
}
