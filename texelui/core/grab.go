// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/core/grab.go
// Summary: Pointer grab as a release-once capability token.

package core

// Grabber routes all pointer events to one widget while it holds the grab.
type Grabber interface {
	Grab(w Widget)
	Ungrab(w Widget)
}

// Grab is an acquired pointer grab. Release ungrabs exactly once; further
// calls are no-ops, so every acquisition has a single matching ungrab on
// both the normal and the teardown path.
type Grab struct {
	owner    Grabber
	widget   Widget
	released bool
}

// AcquireGrab asks owner to route pointer events to w. A nil owner yields a
// token that ungrabs nothing, for widgets without a parent.
func AcquireGrab(owner Grabber, w Widget) *Grab {
	if owner != nil {
		owner.Grab(w)
	}
	return &Grab{owner: owner, widget: w}
}

// Release gives the grab back. Safe on a nil token.
func (g *Grab) Release() {
	if g == nil || g.released {
		return
	}
	g.released = true
	if g.owner != nil {
		g.owner.Ungrab(g.widget)
	}
}

// Active reports whether the grab has not been released yet.
func (g *Grab) Active() bool { return g != nil && !g.released }
