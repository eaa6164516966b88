// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/widgets/pane.go
// Summary: Solid background pane.

package widgets

import (
	"github.com/framegrace/texelslider/texelui/core"
	"github.com/framegrace/texelslider/texelui/theme"
)

// Pane fills its rectangle with the theme's pane background.
type Pane struct {
	core.BaseWidget
}

func NewPane(x, y, w, h int) *Pane {
	p := &Pane{}
	p.Style = core.Style{Section: "pane", Source: theme.Get()}
	p.SetPosition(x, y)
	p.Resize(w, h)
	return p
}

func (p *Pane) Paint(c core.Canvas) error {
	bg := p.StyleColor(core.RoleBackground, core.Transparent)
	if bg.A == 0 {
		return nil
	}
	w, h := p.Size()
	c.SetFillColor(bg)
	c.FillRect(0, 0, w, h)
	return nil
}
