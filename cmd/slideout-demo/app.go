// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/slideout-demo/app.go
// Summary: Demo host mounting one slide-out panel over a help screen.

package main

import (
	"fmt"

	"github.com/framegrace/texelslide/config"
	"github.com/framegrace/texelslide/internal/preview"
	"github.com/framegrace/texelslide/slideout"
	"github.com/framegrace/texelslide/texelui/core"
	"github.com/framegrace/texelslide/texelui/widgets"
	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

var helpText = []string{
	"slideout-demo",
	"",
	"  p        toggle the panel",
	"  f        toggle full screen",
	"  Esc      close the panel (keeps the key while typing)",
	"  Tab      switch focus between the help text and the input line",
	"  drag     the panel's inner edge to resize it",
	"  click    outside the panel to dismiss it",
	"  q        quit (Ctrl-C always quits)",
}

type demoApp struct {
	ui     *core.UIManager
	hub    *slideout.Hub
	panel  *slideout.Panel
	root   slideout.Classes
	help   *widgets.TextView
	body   *widgets.TextView
	status *widgets.TextView
	full   *widgets.Checkbox
	input  *widgets.Input
	logger *zap.Logger
}

func newDemoApp(screen tcell.Screen, cfg *config.Config, logger *zap.Logger) (*demoApp, error) {
	opts, err := cfg.Panel.Options()
	if err != nil {
		return nil, err
	}
	a := &demoApp{
		ui:     core.NewUIManager(),
		hub:    slideout.NewHub(),
		root:   slideout.NewClasses(),
		help:   widgets.NewTextView(0, 0, 0, 0),
		body:   widgets.NewTextView(0, 0, 0, 0),
		status: widgets.NewTextView(0, 0, 0, 0),
		full:   widgets.NewCheckbox(0, 0, "Full screen"),
		input:  widgets.NewInput(0, 0, 0),
		logger: logger.Named("demo"),
	}
	a.help.SetText(helpText...)
	a.ui.AddWidget(a.help)
	a.ui.AddWidget(a.full)
	a.ui.AddWidget(a.input)
	a.ui.Focus(a.help)

	if err := a.loadBody(cfg.Demo); err != nil {
		a.logger.Warn("preview unavailable", zap.Error(err))
		a.body.SetText("No preview: " + err.Error())
		a.status.SetText("Esc closes")
	}
	if opts.Title == "" {
		opts.Title = "Panel"
	}

	a.panel, err = slideout.New(opts, slideout.Deps{
		Scheduler: slideout.NewScreenScheduler(screen, logger),
		Events:    a.hub,
		Parent:    a.ui,
		Viewport: func() core.Size {
			w, h := screen.Size()
			return core.Size{W: w, H: h}
		},
		Root:   a.root,
		Logger: logger,
	})
	if err != nil {
		return nil, err
	}
	a.panel.SetBody(a.body)
	a.panel.SetFooter(a.status, 1)
	a.panel.Subscribe(slideout.Handlers{
		Open: func(region slideout.ContentRegion) {
			a.logger.Info("panel opened", zap.Int("width", region.Bounds.W), zap.Int("height", region.Bounds.H))
			a.ui.Focus(a.body)
		},
		Closed: func() {
			a.logger.Info("panel closed")
			a.ui.Focus(a.help)
		},
		FullscreenChange: func(v bool) {
			a.full.Checked = v
			a.panel.SetFullscreen(v)
		},
		Resize: func(ev slideout.ResizeEvent) {
			a.logger.Info("panel resized", zap.Int("size", ev.Size))
		},
	})
	a.full.OnChange = a.panel.SetFullscreen
	a.input.OnSubmit = func(text string) {
		a.logger.Info("input submitted", zap.String("text", text))
		a.input.SetText("")
	}

	w, h := screen.Size()
	a.Resize(w, h)
	if err := a.panel.Mount(); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *demoApp) loadBody(demo config.DemoConfig) error {
	if demo.File == "" {
		a.body.SetText("Pass --file to preview a source file here.")
		a.status.SetText("Esc closes")
		return nil
	}
	doc, err := preview.Load(demo.File, demo.Style)
	if err != nil {
		return err
	}
	a.body.SetLines(doc.Lines)
	a.status.SetText(fmt.Sprintf("%s · %s · %d lines", doc.Name, doc.Language, len(doc.Lines)))
	a.logger.Info("preview loaded", zap.String("file", doc.Name), zap.String("language", doc.Language))
	return nil
}

func (a *demoApp) Resize(w, h int) {
	a.ui.Resize(w, h)
	a.help.Resize(w, h-2)
	a.full.SetPosition(1, h-2)
	a.input.SetPosition(0, h-1)
	a.input.Resize(w, 1)
	if a.panel != nil {
		a.panel.Layout()
	}
}

func (a *demoApp) Render() [][]core.Cell { return a.ui.Render() }

func (a *demoApp) SetRefreshNotifier(ch chan<- bool) { a.ui.SetRefreshNotifier(ch) }

func (a *demoApp) HandleEvent(ev tcell.Event) bool {
	switch tev := ev.(type) {
	case *tcell.EventMouse:
		a.handleMouse(tev)
	case *tcell.EventKey:
		return a.handleKey(tev)
	}
	return false
}

func (a *demoApp) handleMouse(ev *tcell.EventMouse) {
	if ev.Buttons()&(tcell.WheelUp|tcell.WheelDown) != 0 {
		a.handleWheel(ev)
		return
	}
	if a.hub.DispatchMouse(ev) {
		return
	}
	a.ui.HandleMouse(ev)
}

// handleWheel scrolls the view under the pointer. The help text stays put
// while a fixed panel holds the root scroll lock.
func (a *demoApp) handleWheel(ev *tcell.EventMouse) {
	x, y := ev.Position()
	if f, ok := a.panel.Frame(); ok && f.Content.Contains(x, y) {
		a.body.HandleMouse(ev)
		return
	}
	if a.root.Has(slideout.LockScrollClass) {
		return
	}
	a.help.HandleMouse(ev)
}

func (a *demoApp) handleKey(ev *tcell.EventKey) bool {
	editable := core.IsEditable(a.ui.Focused())
	if a.hub.DispatchKey(ev, editable) {
		return false
	}
	switch {
	case ev.Key() == tcell.KeyTab:
		if editable {
			a.ui.Focus(a.help)
		} else {
			a.ui.Focus(a.input)
		}
		return false
	case editable && ev.Key() == tcell.KeyEscape:
		a.ui.Focus(a.help)
		return false
	case !editable && ev.Key() == tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case 'p':
			a.panel.Toggle()
			return false
		case 'f':
			a.full.Toggle()
			return false
		}
	}
	a.ui.HandleKey(ev)
	return false
}

func (a *demoApp) Close() {
	a.panel.Destroy()
	a.logger.Info("demo closed", zap.String("panel", a.panel.ID()))
}
