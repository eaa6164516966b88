// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/core/uimanager.go
// Summary: Widget host: pointer routing with grabs, dirty tracking and composition.
// Usage: Backends feed pointer input through HandleMouse or DispatchPointer and
// compose frames with Render (cells) or PaintTo (any Canvas).

package core

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// UIManager owns a flat widget list and composes it to a cell buffer.
type UIManager struct {
	mu       sync.Mutex // protects widgets, hover, pointer state, buffer
	dirtyMu  sync.Mutex // protects dirty list and notifier
	grabMu   sync.Mutex // protects grab; widgets grab from inside dispatch
	W, H     int
	widgets  []Widget // later entries draw on top
	bgStyle  tcell.Style
	bgColor  color.NRGBA
	notifier chan<- bool
	buf      [][]Cell
	dirty    []Rect
	grab     Widget
	hover    Widget
	pressed  bool
	lastX    int
	lastY    int
	seen     bool
	lastGood map[Widget][]DrawOp // PaintTo replay cache
}

// NewUIManager returns an empty host. bg is the surface colour used to clear
// dirty regions; Transparent leaves the terminal default.
func NewUIManager(bg color.NRGBA) *UIManager {
	return &UIManager{bgStyle: tcell.StyleDefault.Background(TcellColor(bg)), bgColor: bg}
}

func (u *UIManager) SetRefreshNotifier(ch chan<- bool) {
	u.dirtyMu.Lock()
	defer u.dirtyMu.Unlock()
	u.notifier = ch
}

func (u *UIManager) Resize(w, h int) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.dirtyMu.Lock()
	defer u.dirtyMu.Unlock()

	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	u.W, u.H = w, h
	u.buf = nil
	u.invalidateAllLocked()
}

// AddWidget appends w on top of the existing widgets and makes the manager
// its parent. Adding a widget twice is a no-op.
func (u *UIManager) AddWidget(w Widget) {
	u.mu.Lock()
	defer u.mu.Unlock()

	for _, existing := range u.widgets {
		if existing == w {
			return
		}
	}
	u.widgets = append(u.widgets, w)
	if pa, ok := w.(ParentAware); ok {
		pa.SetParent(u)
	}
	u.dirtyMu.Lock()
	u.invalidateAllLocked()
	u.dirtyMu.Unlock()
}

// RemoveWidget detaches w, destroying it. A widget destroyed mid-drag
// releases its grab through Destroy; any grab left behind is dropped here.
func (u *UIManager) RemoveWidget(w Widget) {
	u.mu.Lock()
	defer u.mu.Unlock()

	idx := -1
	for i, existing := range u.widgets {
		if existing == w {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	u.widgets = append(u.widgets[:idx], u.widgets[idx+1:]...)
	if d, ok := w.(Destroyer); ok {
		d.Destroy()
	}
	u.grabMu.Lock()
	if u.grab == w {
		log.Printf("UIManager: %T removed while holding the grab", w)
		u.grab = nil
	}
	u.grabMu.Unlock()
	if u.hover == w {
		u.hover = nil
	}
	delete(u.lastGood, w)
	if pa, ok := w.(ParentAware); ok {
		pa.SetParent(nil)
	}
	u.dirtyMu.Lock()
	u.invalidateAllLocked()
	u.dirtyMu.Unlock()
}

// Widgets returns a copy of the widget list in draw order.
func (u *UIManager) Widgets() []Widget {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]Widget(nil), u.widgets...)
}

// Grab routes every subsequent pointer event to w until Ungrab.
func (u *UIManager) Grab(w Widget) {
	u.grabMu.Lock()
	defer u.grabMu.Unlock()
	u.grab = w
}

// Ungrab releases the grab if w holds it.
func (u *UIManager) Ungrab(w Widget) {
	u.grabMu.Lock()
	defer u.grabMu.Unlock()
	if u.grab == w {
		u.grab = nil
	}
}

// Grabbed returns the widget holding the grab, or nil.
func (u *UIManager) Grabbed() Widget {
	u.grabMu.Lock()
	defer u.grabMu.Unlock()
	return u.grab
}

// HandleMouse translates a tcell mouse event into pointer notifications.
// Only the primary button drives press/release; wheel events are ignored.
func (u *UIManager) HandleMouse(ev *tcell.EventMouse) bool {
	x, y := ev.Position()
	down := ev.Buttons()&tcell.Button1 != 0
	return u.DispatchPointer(x, y, down)
}

// DispatchPointer feeds one pointer sample in surface coordinates. Enter and
// leave are synthesized from hit-testing; down, move and up go to the grab
// holder when there is one, otherwise to the topmost widget under the point.
func (u *UIManager) DispatchPointer(x, y int, down bool) bool {
	u.mu.Lock()
	defer u.mu.Unlock()

	moved := !u.seen || x != u.lastX || y != u.lastY
	u.seen = true
	u.lastX, u.lastY = x, y
	wasDown := u.pressed
	u.pressed = down

	handled := u.updateHoverLocked(x, y)

	var typ EventType
	switch {
	case down && !wasDown:
		typ = PointerDown
	case !down && wasDown:
		typ = PointerUp
	case moved:
		typ = PointerMove
	default:
		return handled
	}

	target := u.Grabbed()
	if target == nil {
		target = u.topmostAtLocked(x, y)
	}
	if target == nil {
		return handled
	}
	if deliver(target, typ, x, y) {
		handled = true
	}
	return handled
}

// updateHoverLocked sends leave/enter when the widget under the pointer changes.
func (u *UIManager) updateHoverLocked(x, y int) bool {
	next := u.topmostAtLocked(x, y)
	if next == u.hover {
		return false
	}
	handled := false
	if u.hover != nil {
		handled = deliver(u.hover, PointerLeave, x, y) || handled
	}
	u.hover = next
	if next != nil {
		handled = deliver(next, PointerEnter, x, y) || handled
	}
	return handled
}

func deliver(w Widget, typ EventType, x, y int) bool {
	pa, ok := w.(PointerAware)
	if !ok {
		return false
	}
	wx, wy := w.Position()
	return pa.HandlePointer(&PointerEvent{Type: typ, X: x - wx, Y: y - wy})
}

func (u *UIManager) topmostAtLocked(x, y int) Widget {
	for i := len(u.widgets) - 1; i >= 0; i-- {
		if u.widgets[i].HitTest(x, y) {
			return u.widgets[i]
		}
	}
	return nil
}

// Invalidate marks a region for redraw.
// Thread-safe.
func (u *UIManager) Invalidate(r Rect) {
	u.dirtyMu.Lock()
	defer u.dirtyMu.Unlock()

	if r.Empty() {
		return
	}
	u.dirty = append(u.dirty, r)
	u.requestRefreshLocked()
}

// InvalidateAll marks the whole surface for redraw.
func (u *UIManager) InvalidateAll() {
	u.dirtyMu.Lock()
	defer u.dirtyMu.Unlock()
	u.invalidateAllLocked()
}

// Dirty reports whether a redraw is pending.
func (u *UIManager) Dirty() bool {
	u.dirtyMu.Lock()
	defer u.dirtyMu.Unlock()
	return len(u.dirty) > 0
}

// Internal helper - assumes dirtyMu is held
func (u *UIManager) invalidateAllLocked() {
	u.dirty = append(u.dirty, Rect{X: 0, Y: 0, W: u.W, H: u.H})
	u.requestRefreshLocked()
}

// Internal helper - assumes dirtyMu is held
func (u *UIManager) requestRefreshLocked() {
	if u.notifier == nil {
		return
	}
	select {
	case u.notifier <- true:
	default:
	}
}

func (u *UIManager) takeDirty() []Rect {
	u.dirtyMu.Lock()
	defer u.dirtyMu.Unlock()
	d := u.dirty
	u.dirty = nil
	return d
}

func (u *UIManager) ensureBufferLocked() {
	h := u.H
	w := u.W
	if u.buf != nil && len(u.buf) == h && (h == 0 || len(u.buf[0]) == w) {
		return
	}
	u.buf = make([][]Cell, h)
	for y := 0; y < h; y++ {
		row := make([]Cell, w)
		for x := 0; x < w; x++ {
			row[x] = Cell{Ch: ' ', Style: u.bgStyle}
		}
		u.buf[y] = row
	}
}

// Render updates dirty regions and returns the framebuffer. A widget whose
// Paint fails keeps the cells it had in the previous frame.
func (u *UIManager) Render() [][]Cell {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.ensureBufferLocked()
	dirty := u.takeDirty()
	if len(dirty) == 0 {
		return u.buf
	}

	prev := cloneBuffer(u.buf)
	surface := Rect{W: u.W, H: u.H}
	for _, clip := range mergeRects(dirty) {
		clip = clip.Intersect(surface)
		if clip.Empty() {
			continue
		}
		p := NewPainter(u.buf, clip)
		p.Fill(clip, ' ', u.bgStyle)
		for _, w := range u.widgets {
			wx, wy := w.Position()
			ww, wh := w.Size()
			wr := Rect{X: wx, Y: wy, W: ww, H: wh}
			if !rectsOverlap(wr, clip) {
				continue
			}
			if err := w.Paint(Translate(p.WithClip(wr), wx, wy)); err != nil {
				log.Printf("UIManager: paint %T: %v", w, err)
				restore(u.buf, prev, wr.Intersect(clip))
			}
		}
	}
	return u.buf
}

func restore(dst, src [][]Cell, r Rect) {
	for y := r.Y; y < r.Y+r.H; y++ {
		copy(dst[y][r.X:r.X+r.W], src[y][r.X:r.X+r.W])
	}
}

// PaintTo composes every widget onto c, clearing the surface first. Each
// widget is recorded before anything is drawn; a widget whose Paint fails is
// replayed from its last successful frame instead. The returned error joins
// all paint failures.
func (u *UIManager) PaintTo(c Canvas) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.takeDirty()
	if u.lastGood == nil {
		u.lastGood = make(map[Widget][]DrawOp)
	}
	var errs []error
	frames := make([][]DrawOp, len(u.widgets))
	for i, w := range u.widgets {
		rec := &Recorder{}
		wx, wy := w.Position()
		if err := w.Paint(Translate(rec, wx, wy)); err != nil {
			errs = append(errs, fmt.Errorf("paint %T: %w", w, err))
			frames[i] = u.lastGood[w]
			continue
		}
		u.lastGood[w] = rec.Ops
		frames[i] = rec.Ops
	}

	c.SetFillColor(u.bgColor)
	c.FillRect(0, 0, u.W, u.H)
	for _, ops := range frames {
		(&Recorder{Ops: ops}).Replay(c)
	}
	return errors.Join(errs...)
}
