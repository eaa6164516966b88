// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/widgets/slider_events.go
// Summary: Pointer interaction for the slider (idle/dragging).

package widgets

import "github.com/framegrace/texelslider/texelui/core"

// HandlePointer drives the drag state machine. A press must land on the
// handle to start dragging; presses on the track are ignored.
func (s *Slider) HandlePointer(ev *core.PointerEvent) bool {
	if s == nil || ev == nil {
		return false
	}
	switch ev.Type {
	case core.PointerDown:
		if s.dragging {
			return true
		}
		r, err := s.HandleRect()
		if err != nil || !r.Contains(ev.X, ev.Y) {
			return false
		}
		s.dragging = true
		s.SetState(core.StatePressed)
		s.grab = core.AcquireGrab(s.Parent(), s)
		s.Invalidate()
		return true

	case core.PointerMove:
		if !s.dragging {
			return false
		}
		if v, ok := s.valueAt(ev.X, ev.Y); ok && v != s.value {
			// valueAt stays inside [min, max], so SetValue cannot fail here
			_ = s.SetValue(v)
		}
		return true

	case core.PointerUp:
		wasDragging := s.dragging
		s.endDrag()
		s.SetState(core.StateNormal)
		s.Invalidate()
		return wasDragging

	case core.PointerLeave:
		s.SetState(core.StateNormal)
		return true

	case core.PointerEnter:
		// over even mid-drag; the next press or release resets it
		s.SetState(core.StateOver)
		return true
	}
	return false
}

func (s *Slider) endDrag() {
	s.dragging = false
	s.grab.Release()
	s.grab = nil
}
