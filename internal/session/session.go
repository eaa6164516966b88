// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/session/session.go
// Summary: Shared start-up for the demo commands: config, theme, demo and
// property persistence.

package session

import (
	"errors"
	"fmt"
	"log"

	"github.com/framegrace/texelslider/config"
	"github.com/framegrace/texelslider/internal/propstore"
	"github.com/framegrace/texelslider/internal/theming"
	"github.com/framegrace/texelslider/texelui/adapter"
	"github.com/framegrace/texelslider/texelui/theme"
)

// Options adjust start-up. Zero values use the configuration file.
type Options struct {
	Title     string
	ThemePath string // overrides activeTheme
	NoPersist bool
}

// Session owns the demo and its property store.
type Session struct {
	Demo  *adapter.SliderDemo
	store *propstore.Store
}

// Start loads config and theme, builds the demo and restores saved slider
// state. Config and theme problems are logged and fall back to defaults.
func Start(opts Options) (*Session, error) {
	cfg := config.System()
	if err := config.Err(); err != nil {
		log.Printf("Session: config: %v", err)
	}

	path := opts.ThemePath
	if path == "" {
		p, err := config.ThemePath(cfg)
		if err != nil {
			log.Printf("Session: %v", err)
		}
		path = p
	}
	if err := theme.Reload(path); err != nil {
		log.Printf("Session: theme %s: %v", path, err)
	}
	theme.SetActive(theming.ForConfig(theme.Get(), cfg))

	title := opts.Title
	if title == "" {
		title = "texelslider"
	}
	demo, err := adapter.NewSliderDemoApp(title, cfg)
	if err != nil {
		return nil, fmt.Errorf("build demo: %w", err)
	}
	s := &Session{Demo: demo}

	if opts.NoPersist || !cfg.GetBool("propstore", "enabled", true) {
		return s, nil
	}
	dbPath, err := config.StatePath(cfg)
	if err != nil {
		log.Printf("Session: state path: %v", err)
		return s, nil
	}
	store, err := propstore.Open(dbPath)
	if err != nil {
		log.Printf("Session: %v", err)
		return s, nil
	}
	s.store = store
	if err := demo.Restore(store); err != nil {
		log.Printf("Session: restore: %v", err)
	}
	return s, nil
}

// Persistent reports whether slider state is saved on Close.
func (s *Session) Persistent() bool { return s.store != nil }

// Close saves slider state and closes the store.
func (s *Session) Close() error {
	if s.store == nil {
		return nil
	}
	saveErr := s.Demo.Save(s.store)
	closeErr := s.store.Close()
	s.store = nil
	return errors.Join(saveErr, closeErr)
}
