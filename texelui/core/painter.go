// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/core/painter.go
// Summary: Cell-buffer canvas with clipping.
// Usage: UIManager.Render hands each widget a clipped, translated Painter.

package core

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
)

// Painter draws into a cell framebuffer, restricted to a clip rectangle.
// Each cell is treated as one pixel by FillRect.
type Painter struct {
	buf  [][]Cell
	clip Rect
	fill color.NRGBA
}

// NewPainter returns a painter over buf clipped to clip (and to the buffer).
func NewPainter(buf [][]Cell, clip Rect) *Painter {
	h := len(buf)
	w := 0
	if h > 0 {
		w = len(buf[0])
	}
	return &Painter{buf: buf, clip: clip.Intersect(Rect{W: w, H: h})}
}

// WithClip returns a painter sharing the buffer whose clip is further
// restricted to r.
func (p *Painter) WithClip(r Rect) *Painter {
	return &Painter{buf: p.buf, clip: p.clip.Intersect(r), fill: p.fill}
}

// Clip returns the active clip rectangle.
func (p *Painter) Clip() Rect { return p.clip }

// SetCell writes a single cell if it is inside the clip.
func (p *Painter) SetCell(x, y int, ch rune, style tcell.Style) {
	if !p.clip.Contains(x, y) {
		return
	}
	p.buf[y][x] = Cell{Ch: ch, Style: style}
}

// Fill paints every cell of rect with ch and style.
func (p *Painter) Fill(rect Rect, ch rune, style tcell.Style) {
	r := rect.Intersect(p.clip)
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			p.buf[y][x] = Cell{Ch: ch, Style: style}
		}
	}
}

// DrawText writes s starting at x, y and returns the number of columns used.
// Wide runes advance by their display width.
func (p *Painter) DrawText(x, y int, s string, style tcell.Style) int {
	col := x
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		p.SetCell(col, y, r, style)
		for i := 1; i < w; i++ {
			p.SetCell(col+i, y, ' ', style)
		}
		col += w
	}
	return col - x
}

// SetFillColor sets the colour used by FillRect.
func (p *Painter) SetFillColor(c color.NRGBA) { p.fill = c }

// FillRect sets the background of every cell in the rectangle to the fill
// colour. Translucent colours are blended over the existing background.
func (p *Painter) FillRect(x, y, w, h int) {
	if p.fill.A == 0 {
		return
	}
	r := Rect{X: x, Y: y, W: w, H: h}.Intersect(p.clip)
	for yy := r.Y; yy < r.Y+r.H; yy++ {
		for xx := r.X; xx < r.X+r.W; xx++ {
			cell := &p.buf[yy][xx]
			fg, bg, attr := cell.Style.Decompose()
			cell.Ch = ' '
			cell.Style = tcell.StyleDefault.Foreground(fg).Background(blend(bg, p.fill)).Attributes(attr)
		}
	}
}

// blend composes c over an existing tcell background.
func blend(under tcell.Color, c color.NRGBA) tcell.Color {
	top := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	if c.A < 255 && under != tcell.ColorDefault {
		r, g, b := under.RGB()
		if r >= 0 {
			base := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
			top = base.BlendRgb(top, float64(c.A)/255)
		}
	}
	r, g, b := top.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
