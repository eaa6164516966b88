// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/core/state.go
// Summary: Generic visual state of a widget, consumed by style lookups.

package core

// WidgetState is the visual state a widget reports to the styling layer.
type WidgetState int

const (
	StateNormal WidgetState = iota
	StateOver
	StatePressed
)

func (s WidgetState) String() string {
	switch s {
	case StateNormal:
		return "normal"
	case StateOver:
		return "over"
	case StatePressed:
		return "pressed"
	default:
		return "unknown"
	}
}
