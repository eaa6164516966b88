// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/core/recorder.go
// Summary: Canvas that records draw calls for deferred replay.

package core

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// DrawOp is one recorded FillRect call with the fill colour active at the
// time, or a DrawText call when Text is set (Rect.X/Y is the text origin).
type DrawOp struct {
	Color color.NRGBA
	Rect  Rect
	Text  string
}

// Recorder is a Canvas that stores draw calls instead of drawing them.
// Text styles are not kept.
type Recorder struct {
	Ops  []DrawOp
	fill color.NRGBA
}

func (r *Recorder) SetFillColor(c color.NRGBA) { r.fill = c }

func (r *Recorder) FillRect(x, y, w, h int) {
	r.Ops = append(r.Ops, DrawOp{Color: r.fill, Rect: Rect{X: x, Y: y, W: w, H: h}})
}

func (r *Recorder) DrawText(x, y int, s string, _ tcell.Style) int {
	w := runewidth.StringWidth(s)
	r.Ops = append(r.Ops, DrawOp{Rect: Rect{X: x, Y: y, W: w, H: 1}, Text: s})
	return w
}

// Replay issues the recorded calls on c in order. Text is dropped when c
// cannot draw it.
func (r *Recorder) Replay(c Canvas) {
	tc, _ := c.(TextCanvas)
	for _, op := range r.Ops {
		if op.Text != "" {
			if tc != nil {
				tc.DrawText(op.Rect.X, op.Rect.Y, op.Text, tcell.StyleDefault)
			}
			continue
		}
		c.SetFillColor(op.Color)
		c.FillRect(op.Rect.X, op.Rect.Y, op.Rect.W, op.Rect.H)
	}
}

// Reset drops all recorded calls.
func (r *Recorder) Reset() { r.Ops = r.Ops[:0] }
