// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/widgets/input.go
// Summary: Single-line text entry.

package widgets

import (
	"github.com/framegrace/texelslide/texelui/core"
	"github.com/gdamore/tcell/v2"
)

// Input is a minimal single-line editor with a caret and horizontal scroll.
type Input struct {
	core.BaseWidget
	Style      tcell.Style
	CaretStyle tcell.Style
	OnSubmit   func(text string)

	text  []rune
	caret int
	offX  int
}

func NewInput(x, y, w int) *Input {
	in := &Input{
		Style:      tcell.StyleDefault.Background(tcell.ColorDarkSlateGray).Foreground(tcell.ColorWhite),
		CaretStyle: tcell.StyleDefault.Reverse(true),
	}
	in.SetPosition(x, y)
	in.Resize(w, 1)
	in.SetFocusable(true)
	return in
}

// Editable implements core.Editable.
func (in *Input) Editable() bool { return true }

// Text returns the current content.
func (in *Input) Text() string { return string(in.text) }

// SetText replaces the content and moves the caret to the end.
func (in *Input) SetText(s string) {
	in.text = []rune(s)
	in.caret = len(in.text)
	in.ensureVisible()
	in.Invalidate(in.Rect)
}

func (in *Input) ensureVisible() {
	if in.caret < in.offX {
		in.offX = in.caret
	}
	if in.Rect.W > 0 && in.caret >= in.offX+in.Rect.W {
		in.offX = in.caret - in.Rect.W + 1
	}
	if in.offX < 0 {
		in.offX = 0
	}
}

func (in *Input) Draw(p *core.Painter) {
	p.Fill(core.Rect{X: in.Rect.X, Y: in.Rect.Y, W: in.Rect.W, H: 1}, ' ', in.Style)
	for i := 0; i < in.Rect.W; i++ {
		idx := in.offX + i
		if idx < len(in.text) {
			p.SetCell(in.Rect.X+i, in.Rect.Y, in.text[idx], in.Style)
		}
	}
	if in.IsFocused() {
		ch := ' '
		if in.caret < len(in.text) {
			ch = in.text[in.caret]
		}
		p.SetCell(in.Rect.X+in.caret-in.offX, in.Rect.Y, ch, in.CaretStyle)
	}
}

func (in *Input) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyLeft:
		if in.caret > 0 {
			in.caret--
		}
	case tcell.KeyRight:
		if in.caret < len(in.text) {
			in.caret++
		}
	case tcell.KeyHome:
		in.caret = 0
	case tcell.KeyEnd:
		in.caret = len(in.text)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if in.caret == 0 {
			return true
		}
		in.text = append(in.text[:in.caret-1], in.text[in.caret:]...)
		in.caret--
	case tcell.KeyDelete:
		if in.caret < len(in.text) {
			in.text = append(in.text[:in.caret], in.text[in.caret+1:]...)
		}
	case tcell.KeyEnter:
		if in.OnSubmit != nil {
			in.OnSubmit(string(in.text))
		}
	case tcell.KeyRune:
		in.text = append(in.text[:in.caret], append([]rune{ev.Rune()}, in.text[in.caret:]...)...)
		in.caret++
	default:
		return false
	}
	in.ensureVisible()
	in.Invalidate(in.Rect)
	return true
}
