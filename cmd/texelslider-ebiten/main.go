// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/texelslider-ebiten/main.go
// Summary: The slider demo in a pixel window.

package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/framegrace/texelslider/internal/session"
	"github.com/framegrace/texelslider/texelui/ebitenhost"
)

func main() {
	scale := flag.Int("scale", 8, "pixels per layout unit")
	width := flag.Int("width", 800, "initial window width in pixels")
	height := flag.Int("height", 480, "initial window height in pixels")
	themePath := flag.String("theme", "", "theme file (.json, .yaml), overrides activeTheme")
	noPersist := flag.Bool("no-persist", false, "do not load or save slider state")
	flag.Parse()

	s, err := session.Start(session.Options{Title: "texelslider", ThemePath: *themePath, NoPersist: *noPersist})
	if err != nil {
		log.Fatalf("texelslider-ebiten: %v", err)
	}

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle(s.Demo.App.GetTitle())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	runErr := ebiten.RunGame(ebitenhost.NewGame(s.Demo.App, *scale))
	if err := s.Close(); err != nil {
		log.Printf("texelslider-ebiten: save state: %v", err)
	}
	if runErr != nil {
		log.Fatalf("texelslider-ebiten: %v", runErr)
	}
}
