// Copyright 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/scroll/state.go
// Summary: Vertical scroll bookkeeping shared by scrollable widgets.

package scroll

// State describes a vertical viewport over taller content.
type State struct {
	Offset   int // first visible row
	Content  int // total rows
	Viewport int // visible rows
}

// MaxOffset is the largest valid Offset.
func (s State) MaxOffset() int {
	if m := s.Content - s.Viewport; m > 0 {
		return m
	}
	return 0
}

// Clamp returns s with Offset forced into [0, MaxOffset].
func (s State) Clamp() State {
	if s.Offset > s.MaxOffset() {
		s.Offset = s.MaxOffset()
	}
	if s.Offset < 0 {
		s.Offset = 0
	}
	return s
}

// ScrollBy returns s moved by delta rows and clamped.
func (s State) ScrollBy(delta int) State {
	s.Offset += delta
	return s.Clamp()
}

func (s State) CanScrollUp() bool   { return s.Offset > 0 }
func (s State) CanScrollDown() bool { return s.Offset < s.MaxOffset() }
