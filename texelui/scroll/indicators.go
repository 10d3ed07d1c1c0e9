// Copyright 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/scroll/indicators.go
// Summary: Overflow arrows and a position thumb drawn in a viewport gutter.

package scroll

import (
	"github.com/framegrace/texelslide/texelui/core"
	"github.com/gdamore/tcell/v2"
)

// Gutter is the column indicators are drawn in.
type Gutter int

const (
	GutterRight Gutter = iota
	GutterLeft
)

const (
	UpGlyph    = '▲'
	DownGlyph  = '▼'
	ThumbGlyph = '┃'
)

// Indicators draws ▲ on the first row when rows are hidden above, ▼ on the
// last row when rows are hidden below, and a thumb between them marking the
// offset. Zero glyphs fall back to the package defaults; a negative Thumb
// disables the thumb.
type Indicators struct {
	Gutter Gutter
	Style  tcell.Style
	Up     rune
	Down   rune
	Thumb  rune
}

// NewIndicators returns right-gutter indicators in style.
func NewIndicators(style tcell.Style) Indicators {
	return Indicators{Style: style}
}

// Draw paints the indicators for s inside rect. Nothing is drawn when the
// content fits.
func (in Indicators) Draw(p *core.Painter, rect core.Rect, s State) {
	if rect.Empty() || s.MaxOffset() == 0 {
		return
	}
	x := rect.X + rect.W - 1
	if in.Gutter == GutterLeft {
		x = rect.X
	}
	if s.CanScrollUp() {
		p.SetCell(x, rect.Y, pick(in.Up, UpGlyph), in.Style)
	}
	if s.CanScrollDown() {
		p.SetCell(x, rect.Y+rect.H-1, pick(in.Down, DownGlyph), in.Style)
	}
	if row, ok := thumbRow(rect, s); ok && in.Thumb >= 0 {
		p.SetCell(x, row, pick(in.Thumb, ThumbGlyph), in.Style)
	}
}

// thumbRow maps the offset onto the rows between the two arrows.
func thumbRow(rect core.Rect, s State) (int, bool) {
	track := rect.H - 2
	if track < 1 {
		return 0, false
	}
	s = s.Clamp()
	return rect.Y + 1 + s.Offset*(track-1)/s.MaxOffset(), true
}

func pick(r, fallback rune) rune {
	if r == 0 {
		return fallback
	}
	return r
}
