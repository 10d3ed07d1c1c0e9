// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: slideout/place.go
// Summary: Resolves computed styles into cell rectangles.
// Usage: Render boundary between the style calculator and the painter.

package slideout

import "github.com/framegrace/texelslide/texelui/core"

// Frame is the cell geometry of one rendered panel.
type Frame struct {
	Container core.Rect // mask layer, the full bounds when on-screen
	Content   core.Rect
	Handle    core.Rect // one-cell drag strip on the inner edge of the content
}

// Place resolves st against bounds. Percentages resolve against the bounds
// extent on the matching axis.
func Place(st Styles, bounds core.Rect) Frame {
	c := bounds
	off := st.Container.Offset
	switch st.Container.Edge {
	case SideLeft:
		c.X += off.Resolve(bounds.W)
	case SideRight:
		c.X -= off.Resolve(bounds.W)
	case SideTop:
		c.Y += off.Resolve(bounds.H)
	case SideBottom:
		c.Y -= off.Resolve(bounds.H)
	}

	cs := st.Content
	w := clampInt(cs.Width.Resolve(c.W), 0, c.W)
	h := clampInt(cs.Height.Resolve(c.H), 0, c.H)
	content := core.Rect{X: c.X, Y: c.Y, W: w, H: h}

	switch cs.Cross.Edge {
	case SideTop:
		content.Y = c.Y + cs.Cross.Offset.Resolve(c.H)
	case SideLeft:
		content.X = c.X + cs.Cross.Offset.Resolve(c.W)
	}

	var handle core.Rect
	switch cs.Edge.Edge {
	case SideRight:
		content.X = c.X + c.W - w - cs.Edge.Offset.Resolve(c.W)
		handle = core.Rect{X: content.X, Y: content.Y, W: 1, H: content.H}
	case SideLeft:
		content.X = c.X + cs.Edge.Offset.Resolve(c.W)
		handle = core.Rect{X: content.X + content.W - 1, Y: content.Y, W: 1, H: content.H}
	case SideBottom:
		content.Y = c.Y + c.H - h - cs.Edge.Offset.Resolve(c.H)
		handle = core.Rect{X: content.X, Y: content.Y, W: content.W, H: 1}
	case SideTop:
		content.Y = c.Y + cs.Edge.Offset.Resolve(c.H)
		handle = core.Rect{X: content.X, Y: content.Y + content.H - 1, W: content.W, H: 1}
	}
	if content.Empty() {
		handle = core.Rect{}
	}
	return Frame{Container: c, Content: content, Handle: handle}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
