// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/widgets/slider_props.go
// Summary: Generic property bridge for the slider.

package widgets

import (
	"fmt"
	"math"

	"github.com/framegrace/texelslider/texelui/core"
)

// Property names understood by Slider.GetProperty and Slider.SetProperty.
const (
	PropValue    = "value"
	PropVertical = "vertical"
	PropMin      = "min"
	PropMax      = "max"
	PropDelta    = "delta"
)

// SliderProperties lists the slider properties in the order they should be
// applied so that the range exists before the value is set.
var SliderProperties = []string{PropMin, PropMax, PropDelta, PropVertical, PropValue}

func (s *Slider) propertyTable() core.PropertyTable {
	t := core.PropertyTable{}
	t.Define(PropValue, s.intGetter(func() uint16 { return s.value }), uint16Setter(PropValue, s.SetValue))
	t.Define(PropMin, s.intGetter(func() uint16 { return s.min }), uint16Setter(PropMin, s.SetMin))
	t.Define(PropMax, s.intGetter(func() uint16 { return s.max }), uint16Setter(PropMax, s.SetMax))
	t.Define(PropDelta, s.intGetter(func() uint16 { return s.delta }), uint16Setter(PropDelta, s.SetDelta))
	t.Define(PropVertical,
		func() (core.Value, error) { return core.BoolValue(s.vertical), nil },
		func(v core.Value) error {
			b, err := v.Bool()
			if err != nil {
				return fmt.Errorf("slider: %s: %w", PropVertical, err)
			}
			return s.SetVertical(b)
		})
	return t
}

func (s *Slider) intGetter(read func() uint16) func() (core.Value, error) {
	return func() (core.Value, error) { return core.IntValue(int64(read())), nil }
}

func uint16Setter(name string, set func(uint16) error) func(core.Value) error {
	return func(v core.Value) error {
		n, err := v.Int()
		if err != nil {
			return fmt.Errorf("slider: %s: %w", name, err)
		}
		if n < 0 || n > math.MaxUint16 {
			return fmt.Errorf("slider: %s %d out of range: %w", name, n, core.ErrInvalidArgument)
		}
		return set(uint16(n))
	}
}

// GetProperty reads value, vertical, min, max or delta.
func (s *Slider) GetProperty(name string) (core.Value, error) {
	if s == nil {
		return core.Value{}, errNilSlider
	}
	return s.props.Get(name)
}

// SetProperty writes value, vertical, min, max or delta through the typed
// setters, returning their errors unchanged.
func (s *Slider) SetProperty(name string, v core.Value) error {
	if s == nil {
		return errNilSlider
	}
	return s.props.Set(name, v)
}

// PropertyNames lists the slider properties in application order.
func (s *Slider) PropertyNames() []string {
	return append([]string(nil), SliderProperties...)
}
