// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/widgets/label.go
// Summary: Single-line text label.

package widgets

import (
	"image/color"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelslider/texelui/core"
	"github.com/framegrace/texelslider/texelui/theme"
)

var defaultTextColor = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// Label draws one line of text over an optional background.
type Label struct {
	core.BaseWidget
	text string
}

func NewLabel(x, y, w, h int, text string) *Label {
	l := &Label{text: text}
	l.Style = core.Style{Section: "label", Source: theme.Get()}
	l.SetPosition(x, y)
	l.Resize(w, h)
	return l
}

// Text returns the label text.
func (l *Label) Text() string { return l.text }

// SetText replaces the text and requests a repaint when it changed.
func (l *Label) SetText(text string) {
	if l.text == text {
		return
	}
	l.text = text
	l.Invalidate()
}

func (l *Label) Paint(c core.Canvas) error {
	w, h := l.Size()
	bg := l.StyleColor(core.RoleBackground, core.Transparent)
	if bg.A != 0 {
		c.SetFillColor(bg)
		c.FillRect(0, 0, w, h)
	}
	tc, ok := c.(core.TextCanvas)
	if !ok || h == 0 {
		return nil
	}
	fg := l.StyleColor(core.RoleText, defaultTextColor)
	style := tcell.StyleDefault.Foreground(core.TcellColor(fg)).Background(core.TcellColor(bg))
	tc.DrawText(0, 0, l.text, style)
	return nil
}
