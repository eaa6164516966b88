// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"testing"

	"github.com/framegrace/texelslider/config"
	"github.com/framegrace/texelslider/texelui/adapter"
	"github.com/framegrace/texelslider/texelui/theme"
)

func startFresh(t *testing.T, opts Options) *Session {
	t.Helper()
	if err := config.Reload(); err != nil {
		t.Fatalf("config.Reload: %v", err)
	}
	s, err := Start(opts)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	return s
}

func TestSessionPersistsSliderValues(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Cleanup(func() { theme.SetActive(nil) })

	first := startFresh(t, Options{})
	if !first.Persistent() {
		t.Fatalf("expected persistence to be enabled by default")
	}
	item, _ := first.Demo.Item(adapter.PrimaryID)
	if err := item.Slider.SetValue(73); err != nil {
		t.Fatalf("SetValue: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	second := startFresh(t, Options{})
	defer second.Close()
	item, _ = second.Demo.Item(adapter.PrimaryID)
	if item.Slider.Value() != 73 {
		t.Fatalf("expected restored value 73, got %d", item.Slider.Value())
	}
}

func TestSessionWithoutPersistence(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Cleanup(func() { theme.SetActive(nil) })

	s := startFresh(t, Options{NoPersist: true, Title: "plain"})
	if s.Persistent() {
		t.Fatalf("NoPersist should skip the store")
	}
	if s.Demo.App.GetTitle() != "plain" {
		t.Fatalf("unexpected title %q", s.Demo.App.GetTitle())
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}
