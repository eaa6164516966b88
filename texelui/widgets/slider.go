// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/widgets/slider.go
// Summary: Slider widget: value model and typed mutators.
// Usage: NewSlider(ui, x, y, w, h), then SetMin/SetMax/SetValue. Range
// invariants are checked when the slider is painted or its geometry is
// computed, not when min or max are written.

package widgets

import (
	"fmt"

	"github.com/framegrace/texelslider/texelui/core"
	"github.com/framegrace/texelslider/texelui/theme"
)

var errNilSlider = fmt.Errorf("slider: nil widget: %w", core.ErrInvalidArgument)

// Slider maps an integer range onto a draggable square handle. Horizontal
// sliders grow left to right, vertical sliders bottom to top.
type Slider struct {
	core.BaseWidget

	min      uint16
	max      uint16
	value    uint16
	delta    uint16
	vertical bool

	dragging bool
	grab     *core.Grab
	props    core.PropertyTable

	// OnChange is called after the stored value changes.
	OnChange func(value uint16)
}

// NewSlider creates a slider with range [0, 100], value 0 and step 1, and
// adds it to parent. A nil parent yields a detached slider whose grabs and
// repaint requests go nowhere.
func NewSlider(parent core.Container, x, y, w, h int) (*Slider, error) {
	if w < 0 || h < 0 {
		return nil, fmt.Errorf("slider: size %dx%d: %w", w, h, core.ErrInvalidArgument)
	}
	s := &Slider{max: 100, delta: 1}
	s.Style = core.Style{Section: "slider", Source: theme.Get()}
	s.SetPosition(x, y)
	s.Resize(w, h)
	s.props = s.propertyTable()
	if parent != nil {
		s.SetParent(parent)
		parent.AddWidget(s)
	}
	return s, nil
}

func (s *Slider) Value() uint16  { return s.value }
func (s *Slider) Min() uint16    { return s.min }
func (s *Slider) Max() uint16    { return s.max }
func (s *Slider) Delta() uint16  { return s.delta }
func (s *Slider) Vertical() bool { return s.vertical }

// Dragging reports whether a pointer drag is in progress.
func (s *Slider) Dragging() bool { return s.dragging }

// SetValue stores v and requests a repaint, even when v equals the current
// value. It fails with ErrInvalidArgument unless min <= v <= max.
func (s *Slider) SetValue(v uint16) error {
	if s == nil {
		return errNilSlider
	}
	if v < s.min || v > s.max {
		return fmt.Errorf("slider: value %d outside [%d, %d]: %w", v, s.min, s.max, core.ErrInvalidArgument)
	}
	changed := v != s.value
	s.value = v
	s.Invalidate()
	if changed && s.OnChange != nil {
		s.OnChange(v)
	}
	return nil
}

// SetMin stores the lower bound. The current value is not re-clamped.
func (s *Slider) SetMin(m uint16) error {
	if s == nil {
		return errNilSlider
	}
	s.min = m
	return nil
}

// SetMax stores the upper bound. The current value is not re-clamped.
func (s *Slider) SetMax(m uint16) error {
	if s == nil {
		return errNilSlider
	}
	s.max = m
	return nil
}

// SetDelta stores the step used by Increment and Decrement; it must be non-zero.
func (s *Slider) SetDelta(d uint16) error {
	if s == nil {
		return errNilSlider
	}
	if d == 0 {
		return fmt.Errorf("slider: zero delta: %w", core.ErrInvalidArgument)
	}
	s.delta = d
	return nil
}

// SetVertical stores the orientation. It does not request a repaint;
// callers changing orientation on screen must call Invalidate.
func (s *Slider) SetVertical(vertical bool) error {
	if s == nil {
		return errNilSlider
	}
	s.vertical = vertical
	return nil
}

// Increment moves the value up by delta, stopping at max.
func (s *Slider) Increment() error {
	if s == nil {
		return errNilSlider
	}
	next := s.max
	if s.value < s.max && s.max-s.value > s.delta {
		next = s.value + s.delta
	}
	return s.SetValue(next)
}

// Decrement moves the value down by delta, stopping at min.
func (s *Slider) Decrement() error {
	if s == nil {
		return errNilSlider
	}
	next := s.min
	if s.value > s.min && s.value-s.min > s.delta {
		next = s.value - s.delta
	}
	return s.SetValue(next)
}

// Destroy ends any drag in progress, gives the grab back to the parent and
// returns the slider to the normal state.
func (s *Slider) Destroy() {
	if s == nil {
		return
	}
	s.endDrag()
	s.SetState(core.StateNormal)
}
