// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/adapter/slider_demo.go
// Summary: Two-slider demo application shared by the terminal and pixel hosts.

package adapter

import (
	"errors"
	"fmt"
	"log"

	"github.com/framegrace/texelslider/config"
	"github.com/framegrace/texelslider/texelui/core"
	"github.com/framegrace/texelslider/texelui/theme"
	"github.com/framegrace/texelslider/texelui/widgets"
)

// Persistence ids of the demo sliders.
const (
	PrimaryID   = "primary"
	SecondaryID = "secondary"
)

// DemoItem is one slider of the demo with its value label.
type DemoItem struct {
	ID     string
	Slider *widgets.Slider
	Label  *widgets.Label
}

// SliderDemo lays out a horizontal and a vertical slider, each with a label
// showing its value.
type SliderDemo struct {
	App   *UIApp
	Items []DemoItem
	pane  *widgets.Pane
}

// NewSliderDemoApp builds the demo. The primary slider takes the "slider"
// config section (range, value, step, orientation); the secondary slider
// shares the range and uses the other orientation.
func NewSliderDemoApp(title string, cfg config.Config) (*SliderDemo, error) {
	ui := core.NewUIManager(theme.Get().GetColor("ui", "surface_bg", core.Transparent))
	d := &SliderDemo{App: NewUIApp(title, ui), pane: widgets.NewPane(0, 0, 0, 0)}
	ui.AddWidget(d.pane)

	settings := map[string]interface{}(cfg.Section("slider"))
	for _, id := range []string{PrimaryID, SecondaryID} {
		s, err := widgets.NewSlider(ui, 0, 0, 0, 0)
		if err != nil {
			return nil, err
		}
		if err := core.ApplyProperties(s, settings, s.PropertyNames()); err != nil {
			log.Printf("Demo: slider %s config: %v", id, err)
		}
		item := DemoItem{ID: id, Slider: s, Label: widgets.NewLabel(0, 0, 0, 1, "")}
		ui.AddWidget(item.Label)
		d.Items = append(d.Items, item)
	}
	secondary := d.Items[1].Slider
	if err := secondary.SetVertical(!d.Items[0].Slider.Vertical()); err != nil {
		return nil, err
	}

	for i := range d.Items {
		item := d.Items[i]
		item.Slider.OnChange = func(uint16) { d.updateLabel(item) }
		d.updateLabel(item)
	}
	d.App.SetOnResize(d.Layout)
	return d, nil
}

// Item returns the demo entry with the given id.
func (d *SliderDemo) Item(id string) (DemoItem, bool) {
	for _, it := range d.Items {
		if it.ID == id {
			return it, true
		}
	}
	return DemoItem{}, false
}

// Refresh rewrites every label and redoes the layout, for use after
// properties were changed without going through SetValue.
func (d *SliderDemo) Refresh() {
	for _, it := range d.Items {
		d.updateLabel(it)
	}
	ui := d.App.UI()
	d.Layout(ui.W, ui.H)
}

func (d *SliderDemo) updateLabel(it DemoItem) {
	s := it.Slider
	orient := "horizontal"
	if s.Vertical() {
		orient = "vertical"
	}
	it.Label.SetText(fmt.Sprintf("%s %d [%d..%d]", orient, s.Value(), s.Min(), s.Max()))
}

// Layout places the horizontal slider along the top and the vertical one
// down the right edge. Sizes are in host units (cells or scaled pixels).
func (d *SliderDemo) Layout(w, h int) {
	d.pane.SetPosition(0, 0)
	d.pane.Resize(w, h)

	const margin = 2
	const thickness = 3
	colW := thickness + 2*margin
	for _, it := range d.Items {
		if it.Slider.Vertical() {
			x := max(w-colW+margin, 0)
			it.Slider.SetPosition(x, margin)
			it.Slider.Resize(thickness, max(h-2*margin-2, 1))
			it.Label.SetPosition(max(w-24, 0), max(h-margin, 0))
			it.Label.Resize(min(24, w), 1)
			continue
		}
		it.Slider.SetPosition(margin, margin)
		it.Slider.Resize(max(w-2*margin-colW, 1), thickness)
		it.Label.SetPosition(margin, margin+thickness+1)
		it.Label.Resize(max(w-2*margin-colW, 0), 1)
	}
	d.App.UI().InvalidateAll()
}

// PropertyStore persists property holders by id.
type PropertyStore interface {
	Save(id string, h core.PropertyHolder, names ...string) error
	Restore(id string, h core.PropertyHolder) error
}

// Restore loads every slider from store. Sliders without a snapshot keep
// their configured state.
func (d *SliderDemo) Restore(store PropertyStore) error {
	var errs []error
	for _, it := range d.Items {
		if err := store.Restore(it.ID, it.Slider); err != nil && !errors.Is(err, core.ErrNotFound) {
			errs = append(errs, err)
		}
	}
	d.Refresh()
	return errors.Join(errs...)
}

// Save snapshots every slider into store.
func (d *SliderDemo) Save(store PropertyStore) error {
	var errs []error
	for _, it := range d.Items {
		if err := store.Save(it.ID, it.Slider); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
