// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package propstore

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/framegrace/texelslider/texelui/core"
	"github.com/framegrace/texelslider/texelui/widgets"
)

func openTemp(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "state", "props.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s, path
}

func newSlider(t *testing.T) *widgets.Slider {
	t.Helper()
	s, err := widgets.NewSlider(nil, 0, 0, 100, 20)
	if err != nil {
		t.Fatalf("NewSlider: %v", err)
	}
	return s
}

func TestSaveRestoreSlider(t *testing.T) {
	store, path := openTemp(t)

	src := newSlider(t)
	if err := src.SetMax(500); err != nil {
		t.Fatalf("SetMax: %v", err)
	}
	if err := src.SetValue(321); err != nil {
		t.Fatalf("SetValue: %v", err)
	}
	if err := src.SetVertical(true); err != nil {
		t.Fatalf("SetVertical: %v", err)
	}
	if err := store.Save("volume", src); err != nil {
		t.Fatalf("Save: %v", err)
	}
	store.Close()

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	dst := newSlider(t)
	if err := reopened.Restore("volume", dst); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if dst.Max() != 500 || dst.Value() != 321 || !dst.Vertical() {
		t.Fatalf("restored max=%d value=%d vertical=%v", dst.Max(), dst.Value(), dst.Vertical())
	}
}

func TestSaveSelectedNames(t *testing.T) {
	store, _ := openTemp(t)
	src := newSlider(t)
	if err := src.SetValue(40); err != nil {
		t.Fatalf("SetValue: %v", err)
	}
	if err := store.Save("s", src, widgets.PropValue); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := store.Load("s")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != 1 || got[widgets.PropValue] != core.IntValue(40) {
		t.Fatalf("unexpected snapshot %v", got)
	}
}

func TestSaveRejectsUnknownProperty(t *testing.T) {
	store, _ := openTemp(t)
	err := store.Save("s", newSlider(t), "colour")
	if !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := store.Load("s"); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("failed save should write nothing, got %v", err)
	}
}

func TestRestoreReportsSetterErrors(t *testing.T) {
	store, _ := openTemp(t)
	src := newSlider(t)
	if err := src.SetMax(500); err != nil {
		t.Fatalf("SetMax: %v", err)
	}
	if err := src.SetValue(300); err != nil {
		t.Fatalf("SetValue: %v", err)
	}
	// Only the value is stored, so the default range rejects it.
	if err := store.Save("s", src, widgets.PropValue, widgets.PropDelta); err != nil {
		t.Fatalf("Save: %v", err)
	}
	dst := newSlider(t)
	err := store.Restore("s", dst)
	if !errors.Is(err, core.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	if dst.Value() != 0 {
		t.Fatalf("rejected value was applied: %d", dst.Value())
	}
}

func TestDeleteAndMissing(t *testing.T) {
	store, _ := openTemp(t)
	if err := store.Restore("nobody", newSlider(t)); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := store.Save("s", newSlider(t)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.Delete("s"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.Load("s"); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestInMemoryStore(t *testing.T) {
	store, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()
	if err := store.Save("s", newSlider(t)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := store.Load("s"); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := store.Save("", newSlider(t)); !errors.Is(err, core.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for an empty id, got %v", err)
	}
}
