// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/widgets/textview.go
// Summary: Read-only scrollable view over pre-styled lines.

package widgets

import (
	"github.com/framegrace/texelslide/texelui/core"
	"github.com/framegrace/texelslide/texelui/scroll"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Span is a run of text sharing one style.
type Span struct {
	Text  string
	Style tcell.Style
}

// Line is a sequence of spans rendered left to right.
type Line []Span

// TextView renders lines with a vertical scroll offset.
type TextView struct {
	core.BaseWidget
	Style tcell.Style
	lines []Line
	offY  int
}

func NewTextView(x, y, w, h int) *TextView {
	tv := &TextView{Style: tcell.StyleDefault}
	tv.SetPosition(x, y)
	tv.Resize(w, h)
	tv.SetFocusable(true)
	return tv
}

// SetLines replaces the content and scrolls back to the top.
func (t *TextView) SetLines(lines []Line) {
	t.lines = lines
	t.offY = 0
	t.Invalidate(t.Rect)
}

// SetText replaces the content with unstyled lines.
func (t *TextView) SetText(lines ...string) {
	out := make([]Line, len(lines))
	for i, s := range lines {
		out[i] = Line{{Text: s, Style: t.Style}}
	}
	t.SetLines(out)
}

// Lines returns the current content.
func (t *TextView) Lines() []Line { return t.lines }

// ScrollOffset returns the index of the first visible line.
func (t *TextView) ScrollOffset() int { return t.offY }

func (t *TextView) scrollState() scroll.State {
	return scroll.State{Offset: t.offY, Content: len(t.lines), Viewport: t.Rect.H}
}

// ScrollBy moves the viewport by delta lines, clamped to the content.
func (t *TextView) ScrollBy(delta int) {
	st := t.scrollState().ScrollBy(delta)
	if st.Offset != t.offY {
		t.offY = st.Offset
		t.Invalidate(t.Rect)
	}
}

func (t *TextView) Draw(p *core.Painter) {
	p.Fill(t.Rect, ' ', t.Style)
	for row := 0; row < t.Rect.H; row++ {
		idx := t.offY + row
		if idx >= len(t.lines) {
			break
		}
		col := 0
		for _, span := range t.lines[idx] {
			if col >= t.Rect.W {
				break
			}
			col += p.DrawText(t.Rect.X+col, t.Rect.Y+row, expandTabs(span.Text), t.Rect.W-col, span.Style)
		}
	}
	scroll.NewIndicators(t.Style).Draw(p, t.Rect, t.scrollState())
}

func (t *TextView) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyUp:
		t.ScrollBy(-1)
	case tcell.KeyDown:
		t.ScrollBy(1)
	case tcell.KeyPgUp:
		t.ScrollBy(-t.Rect.H)
	case tcell.KeyPgDn:
		t.ScrollBy(t.Rect.H)
	case tcell.KeyHome:
		t.ScrollBy(-len(t.lines))
	case tcell.KeyEnd:
		t.ScrollBy(len(t.lines))
	default:
		return false
	}
	return true
}

func (t *TextView) HandleMouse(ev *tcell.EventMouse) bool {
	switch {
	case ev.Buttons()&tcell.WheelUp != 0:
		t.ScrollBy(-3)
	case ev.Buttons()&tcell.WheelDown != 0:
		t.ScrollBy(3)
	default:
		return false
	}
	return true
}

func expandTabs(s string) string {
	out := make([]rune, 0, len(s))
	col := 0
	for _, r := range s {
		if r == '\t' {
			n := 4 - col%4
			for i := 0; i < n; i++ {
				out = append(out, ' ')
			}
			col += n
			continue
		}
		out = append(out, r)
		col += runewidth.RuneWidth(r)
	}
	return string(out)
}
