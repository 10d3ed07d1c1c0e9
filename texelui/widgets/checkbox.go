// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/widgets/checkbox.go
// Summary: Toggleable "[X] label" widget.

package widgets

import (
	"github.com/framegrace/texelslide/texelui/core"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Checkbox is a toggleable widget that displays a checked or unchecked state.
// Format: [X] Label or [ ] Label
// When focused, shows a cursor: > [X] Label
type Checkbox struct {
	core.BaseWidget
	Label    string
	Checked  bool
	Style    tcell.Style
	OnChange func(checked bool)
}

// NewCheckbox creates a checkbox at the specified position.
// Width is calculated automatically based on label width.
func NewCheckbox(x, y int, label string) *Checkbox {
	c := &Checkbox{
		Label: label,
		Style: tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack),
	}
	c.SetPosition(x, y)
	c.Resize(6+runewidth.StringWidth(label), 1)
	c.SetFocusable(true)
	return c
}

// Draw renders the checkbox with its current state.
func (c *Checkbox) Draw(painter *core.Painter) {
	style := c.Style
	if c.IsFocused() {
		style = style.Reverse(true)
	}
	painter.Fill(core.Rect{X: c.Rect.X, Y: c.Rect.Y, W: c.Rect.W, H: 1}, ' ', style)

	cursor := "  "
	if c.IsFocused() {
		cursor = "> "
	}
	check := "[ ] "
	if c.Checked {
		check = "[X] "
	}
	painter.DrawText(c.Rect.X, c.Rect.Y, cursor+check+c.Label, c.Rect.W, style)
}

// HandleKey processes keyboard input. Space toggles the checkbox.
func (c *Checkbox) HandleKey(ev *tcell.EventKey) bool {
	if ev.Rune() == ' ' || ev.Key() == tcell.KeyEnter {
		c.Toggle()
		return true
	}
	return false
}

// HandleMouse processes mouse input. Click toggles the checkbox.
func (c *Checkbox) HandleMouse(ev *tcell.EventMouse) bool {
	x, y := ev.Position()
	if !c.HitTest(x, y) {
		return false
	}
	if ev.Buttons() == tcell.Button1 {
		c.Toggle()
		return true
	}
	return false
}

// Toggle switches the checked state and triggers the OnChange callback.
func (c *Checkbox) Toggle() {
	c.Checked = !c.Checked
	c.Invalidate(c.Rect)
	if c.OnChange != nil {
		c.OnChange(c.Checked)
	}
}
