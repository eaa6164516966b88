// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/core/widget.go
// Summary: Widget contract and the BaseWidget every widget embeds.

package core

import "image/color"

// Widget is the minimal contract for drawable UI elements. Position and
// HitTest use surface coordinates; Paint draws in local coordinates.
type Widget interface {
	SetPosition(x, y int)
	Position() (int, int)
	Resize(w, h int)
	Size() (int, int)
	Paint(c Canvas) error
	HitTest(x, y int) bool
}

// PointerAware widgets consume pointer notifications. The return value
// reports whether the event was used.
type PointerAware interface {
	HandlePointer(ev *PointerEvent) bool
}

// Container is the parent a widget lives in: it owns repaint scheduling and
// the pointer grab.
type Container interface {
	Grabber
	AddWidget(w Widget)
	Invalidate(r Rect)
}

// ParentAware widgets are told which container they were added to.
type ParentAware interface {
	SetParent(c Container)
}

// Destroyer widgets release resources (such as an active grab) when removed
// from their container.
type Destroyer interface {
	Destroy()
}

// BaseWidget provides common fields/behaviour for widgets.
type BaseWidget struct {
	Rect   Rect
	Style  Style
	parent Container
	state  WidgetState
}

func (b *BaseWidget) SetPosition(x, y int) { b.Rect.X, b.Rect.Y = x, y }
func (b *BaseWidget) Position() (int, int) { return b.Rect.X, b.Rect.Y }
func (b *BaseWidget) Resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	b.Rect.W, b.Rect.H = w, h
}
func (b *BaseWidget) Size() (int, int)        { return b.Rect.W, b.Rect.H }
func (b *BaseWidget) HitTest(x, y int) bool   { return b.Rect.Contains(x, y) }
func (b *BaseWidget) SetParent(c Container)   { b.parent = c }
func (b *BaseWidget) Parent() Container       { return b.parent }
func (b *BaseWidget) State() WidgetState      { return b.state }
func (b *BaseWidget) LocalRect() Rect         { return Rect{W: b.Rect.W, H: b.Rect.H} }
func (b *BaseWidget) Paint(c Canvas) error    { return nil }

// SetState changes the visual state and schedules a repaint when it differs.
func (b *BaseWidget) SetState(s WidgetState) {
	if b.state == s {
		return
	}
	b.state = s
	b.Invalidate()
}

// Invalidate requests a repaint of the whole widget area.
func (b *BaseWidget) Invalidate() {
	if b.parent != nil {
		b.parent.Invalidate(b.Rect)
	}
}

// StyleColor resolves role for the current visual state.
func (b *BaseWidget) StyleColor(role ColorRole, fallback color.NRGBA) color.NRGBA {
	return b.Style.GetColor(b.state, role, fallback)
}
