// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: slideout/resize.go
// Summary: Drag-to-resize session tracking and the clamped resize override.

package slideout

import "github.com/framegrace/texelslide/texelui/core"

// Metrics is the render boundary queried while resizing.
type Metrics interface {
	// ContentSize is the rendered size of the content box.
	ContentSize() core.Size
	// ParentSize is the rendered size of the container's parent.
	ParentSize() core.Size
	// ViewportSize is the size of the whole screen.
	ViewportSize() core.Size
}

// Limits bound the resize override. Zero disables a bound. Min wins over
// Max when they conflict.
type Limits struct {
	Min int
	Max int
}

// Session is the transient state of one drag.
type Session struct {
	Active     bool
	Anchor     core.Point
	AnchorSize core.Size
}

// Resizer converts pointer drags along the dock axis into a size override.
type Resizer struct {
	dock    Side
	limits  Limits
	allowed func() bool
	metrics Metrics
	events  *Dispatcher
	sched   Scheduler

	session  Session
	override int
	pending  bool
}

// NewResizer builds a controller. allowed gates every pointer event; it
// folds in the resize flag, size mode and full-screen state.
func NewResizer(dock Side, limits Limits, allowed func() bool, metrics Metrics, events *Dispatcher, sched Scheduler) *Resizer {
	if dock == "" {
		dock = DefaultDock
	}
	return &Resizer{dock: dock, limits: limits, allowed: allowed, metrics: metrics, events: events, sched: sched}
}

// SetLimits replaces the bounds used by later moves.
func (r *Resizer) SetLimits(l Limits) { r.limits = l }

// Override returns the live or last committed size, 0 when unset.
func (r *Resizer) Override() int { return r.override }

// Session returns the current drag session.
func (r *Resizer) Session() Session { return r.session }

// Active reports whether a drag is in progress.
func (r *Resizer) Active() bool { return r.session.Active }

// Reset clears the override. The visibility machine calls it on open.
func (r *Resizer) Reset() { r.override = 0 }

// PointerDown starts a session anchored at pos.
func (r *Resizer) PointerDown(pos core.Point) bool {
	if !r.allowed() {
		return false
	}
	r.session = Session{Active: true, Anchor: pos, AnchorSize: r.metrics.ContentSize()}
	return true
}

// PointerMove updates the override from the drag delta. Returns true if the
// move was consumed.
func (r *Resizer) PointerMove(pos core.Point) bool {
	if !r.session.Active || !r.allowed() {
		return false
	}
	r.override = r.candidate(pos)
	r.scheduleEmit()
	return true
}

// PointerUp ends the session; the override persists.
func (r *Resizer) PointerUp() bool {
	if !r.session.Active {
		return false
	}
	r.session.Active = false
	return true
}

func (r *Resizer) candidate(pos core.Point) int {
	dx := pos.X - r.session.Anchor.X
	dy := pos.Y - r.session.Anchor.Y
	size := r.session.AnchorSize
	parent := r.metrics.ParentSize()
	viewport := r.metrics.ViewportSize()

	var next, bound int
	switch r.dock {
	case SideTop:
		next, bound = size.H+dy, minInt(parent.H, viewport.H)
	case SideBottom:
		next, bound = size.H-dy, minInt(parent.H, viewport.H)
	case SideLeft:
		next, bound = size.W+dx, minInt(parent.W, viewport.W)
	default:
		next, bound = size.W-dx, minInt(parent.W, viewport.W)
	}

	next = clampInt(next, 0, bound)
	if r.limits.Max > 0 && next > r.limits.Max {
		next = r.limits.Max
	}
	if next < r.limits.Min {
		next = r.limits.Min
	}
	return next
}

// scheduleEmit coalesces bursts of moves into one resize event per turn,
// carrying the override current at emission time.
func (r *Resizer) scheduleEmit() {
	if r.pending {
		return
	}
	r.pending = true
	emit := func() {
		r.pending = false
		r.events.Broadcast(Event{Type: EventResize, Payload: ResizeEvent{Size: r.override}})
	}
	if r.sched == nil {
		emit()
		return
	}
	r.sched.Defer(emit)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
