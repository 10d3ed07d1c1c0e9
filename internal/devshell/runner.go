// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/devshell/runner.go
// Summary: Standalone tcell harness driving a single UI host.
// Usage: devshell.Run(builder) from a command's RunE.
// Notes: Scheduled panel continuations run on the polling goroutine.

package devshell

import (
	"fmt"

	"github.com/framegrace/texelslide/slideout"
	"github.com/framegrace/texelslide/texelui/core"
	"github.com/gdamore/tcell/v2"
)

// App is a host driven by Run.
type App interface {
	Resize(w, h int)
	Render() [][]core.Cell
	SetRefreshNotifier(ch chan<- bool)
	// HandleEvent processes input. Returning true stops the loop.
	HandleEvent(ev tcell.Event) (quit bool)
}

// Builder constructs the app once the screen is initialised.
type Builder func(screen tcell.Screen) (App, error)

var screenFactory = tcell.NewScreen

// SetScreenFactory overrides the screen factory used by Run. Passing nil restores the default.
func SetScreenFactory(factory func() (tcell.Screen, error)) {
	if factory == nil {
		screenFactory = tcell.NewScreen
		return
	}
	screenFactory = factory
}

// Run executes the app built by builder inside a local tcell screen until
// Ctrl-C or the app asks to quit.
func Run(builder Builder) error {
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

	app, err := builder(screen)
	if err != nil {
		return err
	}

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

	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			select {
			case <-refreshCh:
				_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
			case <-done:
				return
			}
		}
	}()

	draw()

	for {
		ev := screen.PollEvent()
		if ev == nil {
			return nil
		}
		if slideout.RunContinuation(ev) {
			draw()
			continue
		}
		switch tev := ev.(type) {
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
			if app.HandleEvent(tev) {
				return nil
			}
			draw()
		default:
			if app.HandleEvent(ev) {
				return nil
			}
			draw()
		}
	}
}
