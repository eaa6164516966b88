// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/ebitenhost/ebitenhost.go
// Summary: Pixel-window host for UIApp built on ebiten.
// Usage: ebiten.RunGame(ebitenhost.NewGame(app, 8)). One host unit is scale
// pixels square; widgets keep working in host units.

package ebitenhost

import (
	"image/color"
	"log"

	"github.com/gdamore/tcell/v2"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/mattn/go-runewidth"

	"github.com/framegrace/texelslider/texelui/adapter"
)

// debug font cell width in pixels
const glyphWidth = 6

// Canvas draws widget fill calls onto an ebiten image, scaling host units
// to pixels.
type Canvas struct {
	dst   *ebiten.Image
	scale int
	fill  color.NRGBA
}

func NewCanvas(dst *ebiten.Image, scale int) *Canvas {
	return &Canvas{dst: dst, scale: max(scale, 1)}
}

func (c *Canvas) SetFillColor(col color.NRGBA) { c.fill = col }

func (c *Canvas) FillRect(x, y, w, h int) {
	if c.fill.A == 0 || w <= 0 || h <= 0 {
		return
	}
	px, py, pw, ph := pixelRect(x, y, w, h, c.scale)
	vector.DrawFilledRect(c.dst, px, py, pw, ph, c.fill, false)
}

// DrawText prints s with the ebiten debug font; style is ignored. The
// return value is the width in host units.
func (c *Canvas) DrawText(x, y int, s string, _ tcell.Style) int {
	ebitenutil.DebugPrintAt(c.dst, s, x*c.scale, y*c.scale)
	return ceilDiv(runewidth.StringWidth(s)*glyphWidth, c.scale)
}

// Game runs a UIApp inside an ebiten window.
type Game struct {
	app    *adapter.UIApp
	scale  int
	w, h   int
	failed bool
}

func NewGame(app *adapter.UIApp, scale int) *Game {
	return &Game{app: app, scale: max(scale, 1)}
}

// Update feeds the cursor to the UI. It ends the game once the app stops.
func (g *Game) Update() error {
	select {
	case <-g.app.Done():
		return ebiten.Termination
	default:
	}
	x, y := ebiten.CursorPosition()
	down := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	g.app.UI().DispatchPointer(floorDiv(x, g.scale), floorDiv(y, g.scale), down)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	err := g.app.UI().PaintTo(NewCanvas(screen, g.scale))
	switch {
	case err != nil && !g.failed:
		log.Printf("EbitenHost: %v", err)
		g.failed = true
	case err == nil:
		g.failed = false
	}
}

// Layout resizes the app whenever the window size in host units changes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := outsideWidth/g.scale, outsideHeight/g.scale
	if w != g.w || h != g.h {
		g.w, g.h = w, h
		g.app.Resize(w, h)
	}
	return outsideWidth, outsideHeight
}

func pixelRect(x, y, w, h, scale int) (px, py, pw, ph float32) {
	return float32(x * scale), float32(y * scale), float32(w * scale), float32(h * scale)
}

// floorDiv rounds toward negative infinity so positions left of or above
// the window stay outside it.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
