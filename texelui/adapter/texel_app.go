// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/adapter/texel_app.go
// Summary: Wraps a UIManager as a runnable core.App.

package adapter

import (
	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelslider/texelui/core"
)

// UIApp adapts a UIManager to the core.App interface.
type UIApp struct {
	title    string
	ui       *core.UIManager
	stopCh   chan struct{}
	refresh  chan<- bool
	onResize func(w, h int)
}

func NewUIApp(title string, ui *core.UIManager) *UIApp {
	if ui == nil {
		ui = core.NewUIManager(core.Transparent)
	}
	return &UIApp{title: title, ui: ui, stopCh: make(chan struct{})}
}

func (a *UIApp) Run() error { <-a.stopCh; return nil }

func (a *UIApp) Stop() {
	select {
	case <-a.stopCh:
	default:
		close(a.stopCh)
	}
}

// Done is closed once Stop has been called.
func (a *UIApp) Done() <-chan struct{} { return a.stopCh }

func (a *UIApp) Resize(cols, rows int) {
	a.ui.Resize(cols, rows)
	if a.onResize != nil {
		a.onResize(cols, rows)
	}
}

func (a *UIApp) Render() [][]core.Cell { return a.ui.Render() }

func (a *UIApp) GetTitle() string {
	if a.title == "" {
		return "TexelSlider"
	}
	return a.title
}

// HandleKey stops the app on 'q' or Escape. Widgets take pointer input only.
func (a *UIApp) HandleKey(ev *tcell.EventKey) {
	if ev.Key() == tcell.KeyEscape || (ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
		a.Stop()
	}
}

func (a *UIApp) HandleMouse(ev *tcell.EventMouse) { a.ui.HandleMouse(ev) }

func (a *UIApp) SetRefreshNotifier(ch chan<- bool) { a.refresh = ch; a.ui.SetRefreshNotifier(ch) }

// SetOnResize installs a layout callback run after every Resize.
func (a *UIApp) SetOnResize(fn func(w, h int)) { a.onResize = fn }

// Expose UI for composition
func (a *UIApp) UI() *core.UIManager { return a.ui }
