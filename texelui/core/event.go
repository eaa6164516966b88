// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/core/event.go
// Summary: Pointer notifications delivered to widgets by the UI host.

package core

// EventType tags a PointerEvent.
type EventType int

const (
	PointerDown EventType = iota
	PointerMove
	PointerUp
	PointerEnter
	PointerLeave
)

func (t EventType) String() string {
	switch t {
	case PointerDown:
		return "pointer_down"
	case PointerMove:
		return "pointer_move"
	case PointerUp:
		return "pointer_up"
	case PointerEnter:
		return "pointer_enter"
	case PointerLeave:
		return "pointer_leave"
	default:
		return "unknown"
	}
}

// PointerEvent carries a pointer position in the receiving widget's local
// coordinate space. Coordinates may lie outside the widget while it holds
// the grab.
type PointerEvent struct {
	Type EventType
	X, Y int
}
