// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: slideout/geometry.go
// Summary: Pure mapping from panel configuration and state to computed styles.
// Notes: No side effects; callers recompute whenever an input changes.

package slideout

// FullscreenZIndex keeps full-screen panels above everything else.
const FullscreenZIndex = 2147483647

// Geometry is the static configuration the style calculator reads.
type Geometry struct {
	Dock             Side
	Size             SizeSpec
	Offset           Length // cross-axis offset in fixed mode
	ZIndex           int
	DisableAnimation bool
}

// State is the live input of the style calculator.
type State struct {
	Visible    bool
	Fullscreen bool
	Dragging   bool
	Override   int // resize override in cells, 0 = use the size spec
}

// Placement positions a box by its distance from one side.
type Placement struct {
	Edge   Side
	Offset Length
}

// ContentStyle sizes and positions the content box inside the container.
type ContentStyle struct {
	Width  Length
	Height Length
	// Edge is measured from the dock side. Negative values push the content
	// out of the container.
	Edge Placement
	// Cross anchors the non-resize axis.
	Cross Placement
}

// Styles are the computed positioning values for one frame.
type Styles struct {
	ZIndex    int
	NoSelect  bool
	Container Placement
	Content   ContentStyle
}

// ComputeStyles maps configuration and state to styles.
func ComputeStyles(g Geometry, s State) Styles {
	dock := g.Dock
	if dock == "" {
		dock = DefaultDock
	}

	st := Styles{ZIndex: g.ZIndex, NoSelect: s.Dragging}
	if s.Fullscreen {
		st.ZIndex = FullscreenZIndex
	}

	distance := Full
	if s.Visible {
		distance = Length{}
	}
	st.Container = Placement{Edge: dock.Opposite(), Offset: distance}

	var width, height, main Length
	cross := Length{}
	switch {
	case g.Size.IsFixed():
		width, height = g.Size.Width(), g.Size.Height()
		if s.Fullscreen {
			width, height = Full, Full
		} else {
			cross = g.Offset
		}
		main = height
		if dock.Horizontal() {
			main = width
		}
	default:
		main = g.Size.Magnitude()
		if s.Override > 0 {
			main = Cells(s.Override)
		}
		if s.Fullscreen {
			main = Full
		}
		width, height = Full, main
		if dock.Horizontal() {
			width, height = main, Full
		}
	}

	edge := Length{}
	if !s.Visible && !g.DisableAnimation {
		edge = main.Neg()
	}

	st.Content = ContentStyle{
		Width:  width,
		Height: height,
		Edge:   Placement{Edge: dock, Offset: edge},
		Cross:  Placement{Edge: dock.Cross(), Offset: cross},
	}
	return st
}

// Hidden reports whether the container is parked off-screen.
func (st Styles) Hidden() bool { return !st.Container.Offset.IsZero() }
