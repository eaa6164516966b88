// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/core/canvas.go
// Summary: Drawing primitives consumed by widgets.
// Usage: Widgets paint in local coordinates; hosts hand them a translated canvas.

package core

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
)

// Transparent is the fallback colour for style lookups. Layers resolving to
// it are not drawn.
var Transparent = color.NRGBA{}

// Canvas is the minimal rendering backend a widget paints onto.
type Canvas interface {
	SetFillColor(c color.NRGBA)
	FillRect(x, y, w, h int)
}

// TextCanvas is implemented by canvases that can also draw text. DrawText
// returns the number of columns (or pixels) used.
type TextCanvas interface {
	DrawText(x, y int, s string, style tcell.Style) int
}

type translated struct {
	c      Canvas
	dx, dy int
}

// Translate returns a canvas that offsets every rectangle by dx, dy before
// forwarding it to c.
func Translate(c Canvas, dx, dy int) Canvas {
	if t, ok := c.(*translated); ok {
		return &translated{c: t.c, dx: t.dx + dx, dy: t.dy + dy}
	}
	return &translated{c: c, dx: dx, dy: dy}
}

func (t *translated) SetFillColor(c color.NRGBA) { t.c.SetFillColor(c) }

func (t *translated) FillRect(x, y, w, h int) { t.c.FillRect(x+t.dx, y+t.dy, w, h) }

func (t *translated) DrawText(x, y int, s string, style tcell.Style) int {
	if tc, ok := t.c.(TextCanvas); ok {
		return tc.DrawText(x+t.dx, y+t.dy, s, style)
	}
	return 0
}
