// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package adapter

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelslider/config"
	"github.com/framegrace/texelslider/texelui/core"
)

func rowText(row []core.Cell) string {
	var b strings.Builder
	for _, c := range row {
		b.WriteRune(c.Ch)
	}
	return b.String()
}

func TestSliderDemoAppliesConfig(t *testing.T) {
	cfg := config.Config{
		"slider": map[string]interface{}{
			"min":      float64(10),
			"max":      float64(20),
			"value":    float64(15),
			"delta":    float64(2),
			"vertical": true,
		},
	}
	d, err := NewSliderDemoApp("demo", cfg)
	if err != nil {
		t.Fatalf("NewSliderDemoApp: %v", err)
	}
	primary, ok := d.Item(PrimaryID)
	if !ok {
		t.Fatalf("missing primary slider")
	}
	s := primary.Slider
	if s.Min() != 10 || s.Max() != 20 || s.Value() != 15 || s.Delta() != 2 || !s.Vertical() {
		t.Fatalf("config not applied: min=%d max=%d value=%d delta=%d vertical=%v", s.Min(), s.Max(), s.Value(), s.Delta(), s.Vertical())
	}
	secondary, _ := d.Item(SecondaryID)
	if secondary.Slider.Vertical() {
		t.Fatalf("secondary slider should use the other orientation")
	}
	if got := primary.Label.Text(); got != "vertical 15 [10..20]" {
		t.Fatalf("unexpected label %q", got)
	}
}

func TestSliderDemoDragUpdatesLabel(t *testing.T) {
	d, err := NewSliderDemoApp("demo", config.Config{})
	if err != nil {
		t.Fatalf("NewSliderDemoApp: %v", err)
	}
	d.App.Resize(80, 24)
	item, _ := d.Item(PrimaryID)
	s := item.Slider

	x, y := s.Position()
	r, err := s.HandleRect()
	if err != nil {
		t.Fatalf("HandleRect: %v", err)
	}
	d.App.HandleMouse(tcell.NewEventMouse(x+r.X, y+r.Y, tcell.Button1, tcell.ModNone))
	w, _ := s.Size()
	d.App.HandleMouse(tcell.NewEventMouse(x+w, y, tcell.Button1, tcell.ModNone))
	d.App.HandleMouse(tcell.NewEventMouse(x+w, y, tcell.ButtonNone, tcell.ModNone))

	if s.Value() != s.Max() {
		t.Fatalf("expected drag to the end to reach max, got %d", s.Value())
	}
	if got := item.Label.Text(); got != "horizontal 100 [0..100]" {
		t.Fatalf("label not updated: %q", got)
	}

	buf := d.App.Render()
	lx, ly := item.Label.Position()
	if text := rowText(buf[ly][lx:]); !strings.HasPrefix(text, "horizontal 100") {
		t.Fatalf("label not rendered, row reads %q", text)
	}
}

func TestUIAppStopsOnQuit(t *testing.T) {
	app := NewUIApp("", nil)
	if app.GetTitle() != "TexelSlider" {
		t.Fatalf("unexpected default title %q", app.GetTitle())
	}
	done := make(chan error, 1)
	go func() { done <- app.Run() }()
	app.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone))
	select {
	case <-app.Done():
		t.Fatalf("unrelated key stopped the app")
	default:
	}
	app.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone))
	if err := <-done; err != nil {
		t.Fatalf("Run: %v", err)
	}
	app.Stop()
}

type memStore map[string]map[string]core.Value

func (m memStore) Save(id string, h core.PropertyHolder, names ...string) error {
	if l, ok := h.(core.PropertyLister); ok && len(names) == 0 {
		names = l.PropertyNames()
	}
	snap := make(map[string]core.Value)
	for _, n := range names {
		v, err := h.GetProperty(n)
		if err != nil {
			return err
		}
		snap[n] = v
	}
	m[id] = snap
	return nil
}

func (m memStore) Restore(id string, h core.PropertyHolder) error {
	snap, ok := m[id]
	if !ok {
		return core.ErrNotFound
	}
	order := h.(core.PropertyLister).PropertyNames()
	for _, n := range order {
		if v, ok := snap[n]; ok {
			if err := h.SetProperty(n, v); err != nil {
				return err
			}
		}
	}
	return nil
}

func TestSliderDemoSaveRestore(t *testing.T) {
	store := memStore{}
	first, err := NewSliderDemoApp("demo", config.Config{})
	if err != nil {
		t.Fatalf("NewSliderDemoApp: %v", err)
	}
	item, _ := first.Item(SecondaryID)
	if err := item.Slider.SetValue(64); err != nil {
		t.Fatalf("SetValue: %v", err)
	}
	if err := first.Save(store); err != nil {
		t.Fatalf("Save: %v", err)
	}

	second, err := NewSliderDemoApp("demo", config.Config{})
	if err != nil {
		t.Fatalf("NewSliderDemoApp: %v", err)
	}
	delete(store, PrimaryID)
	if err := second.Restore(store); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	restored, _ := second.Item(SecondaryID)
	if restored.Slider.Value() != 64 || !restored.Slider.Vertical() {
		t.Fatalf("restored value=%d vertical=%v", restored.Slider.Value(), restored.Slider.Vertical())
	}
	if got := restored.Label.Text(); got != "vertical 64 [0..100]" {
		t.Fatalf("label not refreshed: %q", got)
	}
}
