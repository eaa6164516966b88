// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/widgets/slider_props_test.go
// Summary: Exercises the slider's name-keyed property bridge.

package widgets_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/framegrace/texelslider/texelui/core"
	"github.com/framegrace/texelslider/texelui/widgets"
)

func TestPropertyRoundTrip(t *testing.T) {
	s := newTestSlider(t, nil, 100, 20)
	var h core.PropertyHolder = s

	writes := []struct {
		name string
		v    core.Value
	}{
		{widgets.PropMin, core.IntValue(10)},
		{widgets.PropMax, core.IntValue(500)},
		{widgets.PropDelta, core.IntValue(7)},
		{widgets.PropVertical, core.BoolValue(true)},
		{widgets.PropValue, core.IntValue(250)},
	}
	for _, w := range writes {
		if err := h.SetProperty(w.name, w.v); err != nil {
			t.Fatalf("SetProperty(%s): %v", w.name, err)
		}
	}
	for _, w := range writes {
		got, err := h.GetProperty(w.name)
		if err != nil {
			t.Fatalf("GetProperty(%s): %v", w.name, err)
		}
		if got != w.v {
			t.Fatalf("%s: got %v (%s), want %v", w.name, got, got.Kind(), w.v)
		}
	}
	if s.Min() != 10 || s.Max() != 500 || s.Delta() != 7 || !s.Vertical() || s.Value() != 250 {
		t.Fatalf("typed state out of sync: min=%d max=%d delta=%d vertical=%v value=%d",
			s.Min(), s.Max(), s.Delta(), s.Vertical(), s.Value())
	}
}

func TestPropertyCoercions(t *testing.T) {
	s := newTestSlider(t, nil, 100, 20)
	if err := s.SetProperty(widgets.PropValue, core.StringValue("42")); err != nil {
		t.Fatalf("numeric string: %v", err)
	}
	if s.Value() != 42 {
		t.Fatalf("expected 42, got %d", s.Value())
	}
	if err := s.SetProperty(widgets.PropVertical, core.IntValue(1)); err != nil || !s.Vertical() {
		t.Fatalf("int as bool: err=%v vertical=%v", err, s.Vertical())
	}
	if err := s.SetProperty(widgets.PropVertical, core.StringValue("false")); err != nil || s.Vertical() {
		t.Fatalf("string as bool: err=%v vertical=%v", err, s.Vertical())
	}
}

func TestPropertyErrors(t *testing.T) {
	tests := []struct {
		name string
		prop string
		v    core.Value
		want error
	}{
		{"unknown name", "colour", core.IntValue(1), core.ErrNotFound},
		{"invalid value", widgets.PropValue, core.Value{}, core.ErrInvalidArgument},
		{"not a number", widgets.PropMax, core.StringValue("lots"), core.ErrInvalidArgument},
		{"negative", widgets.PropMin, core.IntValue(-1), core.ErrInvalidArgument},
		{"too large", widgets.PropMax, core.IntValue(70000), core.ErrInvalidArgument},
		{"value out of range", widgets.PropValue, core.IntValue(101), core.ErrInvalidArgument},
		{"zero delta", widgets.PropDelta, core.IntValue(0), core.ErrInvalidArgument},
		{"not a bool", widgets.PropVertical, core.StringValue("sideways"), core.ErrInvalidArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSlider(t, nil, 100, 20)
			setValue(t, s, 30)
			err := s.SetProperty(tt.prop, tt.v)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if s.Min() != 0 || s.Max() != 100 || s.Delta() != 1 || s.Value() != 30 || s.Vertical() {
				t.Fatalf("failed write changed state")
			}
		})
	}

	s := newTestSlider(t, nil, 100, 20)
	if _, err := s.GetProperty("colour"); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("GetProperty unknown: %v", err)
	}
	var nilSlider *widgets.Slider
	if _, err := nilSlider.GetProperty(widgets.PropValue); !errors.Is(err, core.ErrInvalidArgument) {
		t.Fatalf("GetProperty on nil slider: %v", err)
	}
	if err := nilSlider.SetProperty(widgets.PropValue, core.IntValue(1)); !errors.Is(err, core.ErrInvalidArgument) {
		t.Fatalf("SetProperty on nil slider: %v", err)
	}
}

func TestPropertySetterRepaintsLikeTypedSetter(t *testing.T) {
	parent := &fakeParent{}
	s := newTestSlider(t, parent, 100, 20)
	parent.invalidated = nil

	if err := s.SetProperty(widgets.PropVertical, core.BoolValue(true)); err != nil {
		t.Fatalf("SetProperty: %v", err)
	}
	if len(parent.invalidated) != 0 {
		t.Fatalf("vertical via property should not repaint, got %v", parent.invalidated)
	}
	if err := s.SetProperty(widgets.PropValue, core.IntValue(0)); err != nil {
		t.Fatalf("SetProperty: %v", err)
	}
	if len(parent.invalidated) != 1 {
		t.Fatalf("value via property should repaint once, got %v", parent.invalidated)
	}
}

func TestApplyPropertiesOrderAdmitsNewRange(t *testing.T) {
	s := newTestSlider(t, nil, 100, 20)
	cfg := map[string]interface{}{
		"value":    float64(900),
		"max":      float64(1000),
		"min":      float64(800),
		"vertical": true,
	}
	if err := core.ApplyProperties(s, cfg, s.PropertyNames()); err != nil {
		t.Fatalf("ApplyProperties: %v", err)
	}
	if s.Value() != 900 || s.Min() != 800 || s.Max() != 1000 || !s.Vertical() {
		t.Fatalf("unexpected state value=%d min=%d max=%d", s.Value(), s.Min(), s.Max())
	}
	if diff := cmp.Diff(widgets.SliderProperties, s.PropertyNames()); diff != "" {
		t.Fatalf("property order mismatch (-want +got):\n%s", diff)
	}
}
