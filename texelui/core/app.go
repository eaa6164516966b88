// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/core/app.go
// Summary: Runnable application contract used by terminal hosts.

package core

import "github.com/gdamore/tcell/v2"

// App is a cell-rendering application a host can drive.
type App interface {
	Run() error
	Stop()
	Resize(cols, rows int)
	Render() [][]Cell
	GetTitle() string
	HandleKey(ev *tcell.EventKey)
	SetRefreshNotifier(ch chan<- bool)
}

// MouseHandler is implemented by apps that accept pointer input.
type MouseHandler interface {
	HandleMouse(ev *tcell.EventMouse)
}
