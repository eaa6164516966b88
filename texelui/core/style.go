// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/core/style.go
// Summary: Symbolic colour-role lookup for widgets.
// Usage: Widgets call BaseWidget.StyleColor(role, fallback); the active theme
// resolves "<state>.<role>" first, then "<role>", within the widget's section.

package core

import "image/color"

// ColorRole names a colour slot in a widget style.
type ColorRole string

const (
	RoleBackground ColorRole = "bg_color"
	RoleForeground ColorRole = "fg_color"
	RoleBorder     ColorRole = "border_color"
	RoleText       ColorRole = "text_color"
)

// ColorSource resolves named colours, typically a theme.
type ColorSource interface {
	Lookup(section, key string) (color.NRGBA, bool)
}

// Style binds a widget to a theme section.
type Style struct {
	Section string
	Source  ColorSource
}

// GetColor resolves role for the given state, returning fallback when
// neither the state-specific nor the plain key is defined.
func (s Style) GetColor(state WidgetState, role ColorRole, fallback color.NRGBA) color.NRGBA {
	if s.Source == nil {
		return fallback
	}
	if state != StateNormal {
		if c, ok := s.Source.Lookup(s.Section, state.String()+"."+string(role)); ok {
			return c
		}
	}
	if c, ok := s.Source.Lookup(s.Section, string(role)); ok {
		return c
	}
	return fallback
}
