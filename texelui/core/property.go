// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/core/property.go
// Summary: Name-keyed property bridge.
// Usage: Widgets build a PropertyTable at construction and delegate
// GetProperty/SetProperty to it.

package core

import (
	"errors"
	"fmt"
	"sort"
)

// PropertyHolder exposes widget state by name without compile-time
// knowledge of the concrete widget type.
type PropertyHolder interface {
	GetProperty(name string) (Value, error)
	SetProperty(name string, v Value) error
}

// Property pairs the typed accessors of one named property.
type Property struct {
	Get func() (Value, error)
	Set func(Value) error
}

// PropertyTable maps property names to accessors.
type PropertyTable map[string]Property

// Define registers a property. A nil set makes the property read-only.
func (t PropertyTable) Define(name string, get func() (Value, error), set func(Value) error) {
	t[name] = Property{Get: get, Set: set}
}

// Get reads a property; unknown names fail with ErrNotFound.
func (t PropertyTable) Get(name string) (Value, error) {
	p, ok := t[name]
	if !ok || p.Get == nil {
		return Value{}, fmt.Errorf("property %q: %w", name, ErrNotFound)
	}
	return p.Get()
}

// Set writes a property; unknown names fail with ErrNotFound.
func (t PropertyTable) Set(name string, v Value) error {
	p, ok := t[name]
	if !ok {
		return fmt.Errorf("property %q: %w", name, ErrNotFound)
	}
	if p.Set == nil {
		return fmt.Errorf("property %q is read-only: %w", name, ErrInvalidArgument)
	}
	return p.Set(v)
}

// Names lists the registered property names in sorted order.
func (t PropertyTable) Names() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PropertyLister is implemented by holders that can enumerate their
// properties.
type PropertyLister interface {
	PropertyNames() []string
}

// ApplyProperties writes values[name] for each name in order, skipping
// names missing from values. Raw values are converted with ValueOf. Every
// failure is reported; later names are still applied.
func ApplyProperties(h PropertyHolder, values map[string]interface{}, order []string) error {
	var errs []error
	for _, name := range order {
		raw, ok := values[name]
		if !ok {
			continue
		}
		v, err := ValueOf(raw)
		if err == nil {
			err = h.SetProperty(name, v)
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("property %q: %w", name, err))
		}
	}
	return errors.Join(errs...)
}
