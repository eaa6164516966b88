// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/theme/theme.go
// Summary: Named colour sections and the process-wide active theme.
// Usage: widgets resolve colours with theme.Get().GetColor("slider", "bg_color", fallback).

package theme

import (
	"image/color"
	"log"
	"sync"
)

// Section maps colour keys to colours.
type Section map[string]color.NRGBA

// Theme is a set of named sections. It satisfies core.ColorSource.
type Theme struct {
	Name     string
	sections map[string]Section
}

// New returns an empty theme.
func New(name string) *Theme {
	return &Theme{Name: name, sections: make(map[string]Section)}
}

// Set defines one colour.
func (t *Theme) Set(section, key string, c color.NRGBA) {
	s := t.sections[section]
	if s == nil {
		s = make(Section)
		t.sections[section] = s
	}
	s[key] = c
}

// Lookup returns the colour stored under section/key.
func (t *Theme) Lookup(section, key string) (color.NRGBA, bool) {
	if t == nil {
		return color.NRGBA{}, false
	}
	c, ok := t.sections[section][key]
	return c, ok
}

// GetColor returns the colour stored under section/key or fallback.
func (t *Theme) GetColor(section, key string, fallback color.NRGBA) color.NRGBA {
	if c, ok := t.Lookup(section, key); ok {
		return c
	}
	return fallback
}

// Section returns a copy of the named section, or nil.
func (t *Theme) Section(name string) Section {
	s, ok := t.sections[name]
	if !ok {
		return nil
	}
	out := make(Section, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// WithOverrides returns a copy of t where every colour in overrides replaces
// the base colour.
func (t *Theme) WithOverrides(overrides *Theme) *Theme {
	out := New(t.Name)
	for name, s := range t.sections {
		for k, v := range s {
			out.Set(name, k, v)
		}
	}
	if overrides == nil {
		return out
	}
	for name, s := range overrides.sections {
		for k, v := range s {
			out.Set(name, k, v)
		}
	}
	return out
}

var (
	mu     sync.RWMutex
	active *Theme
)

// Get returns the active theme, initializing it from the embedded default
// on first use.
func Get() *Theme {
	mu.RLock()
	t := active
	mu.RUnlock()
	if t != nil {
		return t
	}

	mu.Lock()
	defer mu.Unlock()
	if active == nil {
		def, err := Default()
		if err != nil {
			log.Printf("Theme: Failed to parse embedded default: %v", err)
			def = New("empty")
		}
		active = def
	}
	return active
}

// SetActive replaces the active theme. Passing nil restores the default on
// the next Get.
func SetActive(t *Theme) {
	mu.Lock()
	defer mu.Unlock()
	active = t
}

// Reload loads path (if non-empty) over the embedded default and makes the
// result active. On error the active theme is left untouched.
func Reload(path string) error {
	def, err := Default()
	if err != nil {
		return err
	}
	t := def
	if path != "" {
		user, err := LoadFile(path)
		if err != nil {
			return err
		}
		t = def.WithOverrides(user)
		t.Name = user.Name
	}
	SetActive(t)
	log.Printf("Theme: Active theme %q", t.Name)
	return nil
}
