package main

import (
	"testing"

	"github.com/framegrace/texelslide/config"
	"github.com/framegrace/texelslide/slideout"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newTestApp(t *testing.T, panel config.PanelConfig) *demoApp {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)

	panel.DisableAnimation = true
	app, err := newDemoApp(screen, &config.Config{Panel: panel}, zaptest.NewLogger(t))
	require.NoError(t, err)
	t.Cleanup(app.Close)
	return app
}

func press(app *demoApp, r rune) bool {
	return app.HandleEvent(tcell.NewEventKey(tcell.KeyRune, r, 0))
}

func TestDemoTogglesPanel(t *testing.T) {
	app := newTestApp(t, config.PanelConfig{Dock: "left", Size: "25%", CloseOnMaskClick: true})

	press(app, 'p')
	require.True(t, app.panel.Visible())
	assert.Same(t, app.body, app.ui.Focused(), "open focuses the body")
	assert.True(t, app.root.Has(slideout.LockScrollClass))

	app.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, 0))
	assert.False(t, app.panel.Visible())
	assert.Same(t, app.help, app.ui.Focused())

	assert.True(t, press(app, 'q'))
}

func TestDemoEscapeWhileTyping(t *testing.T) {
	app := newTestApp(t, config.PanelConfig{Visible: true})
	require.True(t, app.panel.Visible())

	app.HandleEvent(tcell.NewEventKey(tcell.KeyTab, 0, 0))
	press(app, 'p')
	assert.Equal(t, "p", app.input.Text(), "runes go to the input")
	assert.True(t, app.panel.Visible())

	app.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, 0))
	assert.True(t, app.panel.Visible(), "input keeps Escape")
	assert.Same(t, app.help, app.ui.Focused())
}

func TestDemoFullscreenCheckbox(t *testing.T) {
	app := newTestApp(t, config.PanelConfig{Visible: true})

	press(app, 'f')
	assert.True(t, app.panel.Fullscreen())
	assert.True(t, app.full.Checked)

	// Hosts bound to the fullscreen signal follow update:fullscreen(false).
	app.panel.Close()
	assert.False(t, app.panel.Fullscreen())
	assert.False(t, app.full.Checked)
}

func TestDemoScrollLock(t *testing.T) {
	app := newTestApp(t, config.PanelConfig{Dock: "right", Size: "30%"})
	app.help.SetText(make([]string, 100)...)

	wheel := tcell.NewEventMouse(5, 5, tcell.WheelDown, 0)
	app.HandleEvent(wheel)
	assert.Equal(t, 3, app.help.ScrollOffset())

	press(app, 'p')
	app.HandleEvent(wheel)
	assert.Equal(t, 3, app.help.ScrollOffset(), "locked while the fixed panel is open")
}

func TestDemoPanelFooter(t *testing.T) {
	app := newTestApp(t, config.PanelConfig{Dock: "right", Size: "30"})

	assert.Same(t, app.status, app.panel.Footer())
	assert.Equal(t, "Esc closes", app.status.Lines()[0][0].Text)
	assert.True(t, app.panel.Classes().Has("slideout-show-footer"))
}
