// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/devshell/runner.go
// Summary: Runs a core.App full-screen in a local tcell screen.

package devshell

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelslider/config"
	"github.com/framegrace/texelslider/texelui/adapter"
	"github.com/framegrace/texelslider/texelui/core"
)

// Builder constructs a core.App, optionally using CLI args.
type Builder func(args []string) (core.App, error)

var registry = map[string]Builder{
	"slider-demo": func(args []string) (core.App, error) {
		d, err := adapter.NewSliderDemoApp("Slider Demo", config.System())
		if err != nil {
			return nil, err
		}
		return d.App, nil
	},
}

var screenFactory = tcell.NewScreen

// SetScreenFactory overrides the screen factory used by Run. Passing nil restores the default.
func SetScreenFactory(factory func() (tcell.Screen, error)) {
	if factory == nil {
		screenFactory = tcell.NewScreen
		return
	}
	screenFactory = factory
}

// Run executes the provided builder inside a local tcell screen.
func Run(builder Builder, args []string) error {
	app, err := builder(args)
	if err != nil {
		return err
	}
	return RunApp(app)
}

// RunApp drives an already built app until it stops or Ctrl-C is pressed.
func RunApp(app core.App) error {
	screen, err := screenFactory()
	if err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}
	defer screen.Fini()
	screen.Clear()
	screen.EnableMouse()
	defer screen.DisableMouse()

	width, height := screen.Size()
	app.Resize(width, height)
	refreshCh := make(chan bool, 1)
	app.SetRefreshNotifier(refreshCh)

	draw := func() {
		buffer := app.Render()
		for y := 0; y < len(buffer); y++ {
			row := buffer[y]
			for x := 0; x < len(row); x++ {
				cell := row[x]
				screen.SetContent(x, y, cell.Ch, nil, cell.Style)
			}
		}
		screen.Show()
	}

	draw()

	runErr := make(chan error, 1)
	go func() {
		err := app.Run()
		runErr <- err
		// wake PollEvent so the loop sees the exit
		screen.PostEvent(tcell.NewEventInterrupt(nil))
	}()
	defer app.Stop()

	go func() {
		for range refreshCh {
			screen.PostEvent(tcell.NewEventInterrupt(nil))
		}
	}()

	for {
		select {
		case err := <-runErr:
			return err
		default:
		}

		ev := screen.PollEvent()
		switch tev := ev.(type) {
		case nil:
			return nil
		case *tcell.EventInterrupt:
			draw()
		case *tcell.EventResize:
			w, h := tev.Size()
			app.Resize(w, h)
			screen.Sync()
			draw()
		case *tcell.EventKey:
			if tev.Key() == tcell.KeyCtrlC {
				return nil
			}
			app.HandleKey(tev)
			draw()
		case *tcell.EventMouse:
			if mh, ok := app.(core.MouseHandler); ok {
				mh.HandleMouse(tev)
				draw()
			}
		}
	}
}

// RunNamed finds a registered builder by name and runs it.
func RunNamed(name string, args []string) error {
	buildApp, ok := registry[name]
	if !ok {
		return fmt.Errorf("unknown app %q", name)
	}
	return Run(buildApp, args)
}
