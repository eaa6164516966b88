// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/texelslider/main.go
// Summary: Terminal slider demo with persisted slider state.
// Usage: texelslider [-log file] [-theme file] [-no-persist]. Drag a handle
// with the mouse; q, Escape or Ctrl-C quits.

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"golang.org/x/term"

	"github.com/framegrace/texelslider/internal/devshell"
	"github.com/framegrace/texelslider/internal/session"
)

func main() {
	logPath := flag.String("log", filepath.Join(os.TempDir(), "texelslider.log"), "log file (empty to discard)")
	themePath := flag.String("theme", "", "theme file (.json, .yaml), overrides activeTheme")
	noPersist := flag.Bool("no-persist", false, "do not load or save slider state")
	flag.Parse()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "texelslider: stdout is not a terminal")
		os.Exit(1)
	}

	// tcell owns the terminal, so logs go to a file.
	if *logPath == "" {
		log.SetOutput(io.Discard)
	} else {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "texelslider: open log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	s, err := session.Start(session.Options{ThemePath: *themePath, NoPersist: *noPersist})
	if err != nil {
		log.Fatalf("texelslider: %v", err)
	}
	runErr := devshell.RunApp(s.Demo.App)
	if err := s.Close(); err != nil {
		log.Printf("texelslider: save state: %v", err)
	}
	if runErr != nil {
		log.Fatalf("texelslider: %v", runErr)
	}
}
