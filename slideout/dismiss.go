// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: slideout/dismiss.go
// Summary: Escape-key and mask-click dismissal plus pointer routing.

package slideout

import "github.com/gdamore/tcell/v2"

// handleKey closes a visible panel on Escape. Text editors keep their
// Escape.
func (p *Panel) handleKey(ev KeyEvent) bool {
	if ev.Key != tcell.KeyEscape || ev.Editable || !p.machine.Visible() {
		return false
	}
	p.logger.Debug("escape dismiss")
	p.machine.Close()
	return true
}

// handleMaskClick closes the panel when clicks on the mask dismiss it.
func (p *Panel) handleMaskClick() {
	if !p.opts.CloseOnMaskClick {
		return
	}
	p.logger.Debug("mask dismiss")
	p.machine.Close()
}

// onElementPointer handles presses on the panel element: the handle starts
// a resize, the content receives the press untouched and the remaining
// container area is the mask.
func (p *Panel) onElementPointer(ev PointerEvent) bool {
	if ev.Kind != PointerDown {
		return false
	}
	f, ok := p.Frame()
	if !ok || !f.Container.Contains(ev.Pos.X, ev.Pos.Y) {
		return false
	}
	if p.resizable() && f.Handle.Contains(ev.Pos.X, ev.Pos.Y) {
		if p.resizer.PointerDown(ev.Pos) {
			p.refresh()
			return true
		}
	}
	if f.Content.Contains(ev.Pos.X, ev.Pos.Y) {
		return false
	}
	p.handleMaskClick()
	return true
}

// onRootPointer follows an active drag anywhere on the screen.
func (p *Panel) onRootPointer(ev PointerEvent) bool {
	switch ev.Kind {
	case PointerMove:
		if p.resizer.PointerMove(ev.Pos) {
			p.refresh()
			return true
		}
	case PointerUp:
		if p.resizer.PointerUp() {
			p.refresh()
			return true
		}
	}
	return false
}
