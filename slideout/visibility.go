// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: slideout/visibility.go
// Summary: Hidden/Visible state machine with cancelable open and deferrable close.
// Notes: Event order per transition is pre-event, mutation, state events, settle event.

package slideout

import "time"

// OpenRequest is the payload of EventBeforeOpen.
type OpenRequest struct {
	canceled bool
}

// Cancel aborts the pending open. No state changes and no further events.
func (r *OpenRequest) Cancel() { r.canceled = true }

// Canceled reports whether a listener canceled the open.
func (r *OpenRequest) Canceled() bool { return r.canceled }

// Resolver delivers a deferred close decision. Only the first call counts.
type Resolver func(proceed bool)

// CloseRequest is the payload of EventClose. Without intervention the close
// proceeds when the notification returns. A listener may Reject it, or Wait
// and decide later through the returned Resolver.
type CloseRequest struct {
	m        *Machine
	cycle    uint64
	rejected bool
	waiting  bool
	resolved bool
}

// Reject abandons the close silently.
func (r *CloseRequest) Reject() { r.rejected = true }

// Rejected reports whether a listener rejected the close.
func (r *CloseRequest) Rejected() bool { return r.rejected }

// Wait defers the decision. The machine stays Visible until the resolver is
// called with true, from this turn or any later one. A decision arriving
// after the panel was hidden and reopened belongs to a finished cycle and is
// ignored.
func (r *CloseRequest) Wait() Resolver {
	r.waiting = true
	return func(proceed bool) {
		if r.resolved {
			return
		}
		r.resolved = true
		if proceed && r.m.cycle == r.cycle {
			r.m.hide()
		}
	}
}

// Waiting reports whether a listener deferred the decision.
func (r *CloseRequest) Waiting() bool { return r.waiting }

// MachineHooks connects the machine to the component that owns it.
type MachineHooks struct {
	// Opening runs right before the state becomes Visible (resize reset).
	Opening func()
	// Changed runs right after every state mutation, before any event.
	Changed func(visible bool)
	// Settle returns the delay before open/closed fire; 0 fires synchronously.
	Settle func() time.Duration
	// Content returns the handle passed with EventOpen.
	Content func() ContentRegion
}

// Machine owns the single visibility flag of a panel.
type Machine struct {
	visible bool
	cycle   uint64 // bumped on every Hidden→Visible transition
	events  *Dispatcher
	sched   Scheduler
	hooks   MachineHooks
}

// NewMachine returns a Hidden machine.
func NewMachine(events *Dispatcher, sched Scheduler, hooks MachineHooks) *Machine {
	return &Machine{events: events, sched: sched, hooks: hooks}
}

// Visible reports the current state.
func (m *Machine) Visible() bool { return m.visible }

// Open transitions Hidden→Visible unless a before-open listener cancels.
// Returns true if the state changed.
func (m *Machine) Open() bool {
	if m.visible {
		return false
	}
	req := &OpenRequest{}
	m.events.Broadcast(Event{Type: EventBeforeOpen, Payload: req})
	if req.canceled || m.visible {
		return false
	}
	m.show()
	return true
}

// Close transitions Visible→Hidden unless a close listener rejects or
// defers. Returns true if the panel is hidden when Close returns.
func (m *Machine) Close() bool {
	if !m.visible {
		return false
	}
	req := &CloseRequest{m: m, cycle: m.cycle}
	m.events.Broadcast(Event{Type: EventClose, Payload: req})
	if req.waiting {
		return !m.visible
	}
	if req.rejected {
		return false
	}
	m.hide()
	return true
}

// Toggle flips the state.
func (m *Machine) Toggle() bool {
	return m.SetVisible(!m.visible)
}

// SetVisible opens or closes toward target; equal state is a no-op.
func (m *Machine) SetVisible(target bool) bool {
	if target == m.visible {
		return false
	}
	if target {
		return m.Open()
	}
	return m.Close()
}

// ForceHide hides without a close intent. Used on teardown.
func (m *Machine) ForceHide() { m.hide() }

func (m *Machine) show() {
	if m.visible {
		return
	}
	if m.hooks.Opening != nil {
		m.hooks.Opening()
	}
	m.visible = true
	m.cycle++
	m.changed()
	m.events.Broadcast(Event{Type: EventVisibleChange, Payload: true})
	m.events.Broadcast(Event{Type: EventFullscreenChange, Payload: false})
	m.settled(func() Event {
		var region ContentRegion
		if m.hooks.Content != nil {
			region = m.hooks.Content()
		}
		return Event{Type: EventOpen, Payload: region}
	})
}

func (m *Machine) hide() {
	if !m.visible {
		return
	}
	m.visible = false
	m.changed()
	m.events.Broadcast(Event{Type: EventVisibleChange, Payload: false})
	m.events.Broadcast(Event{Type: EventFullscreenChange, Payload: false})
	m.settled(func() Event { return Event{Type: EventClosed} })
}

func (m *Machine) changed() {
	if m.hooks.Changed != nil {
		m.hooks.Changed(m.visible)
	}
}

func (m *Machine) settled(build func() Event) {
	var d time.Duration
	if m.hooks.Settle != nil {
		d = m.hooks.Settle()
	}
	if d <= 0 || m.sched == nil {
		m.events.Broadcast(build())
		return
	}
	m.sched.After(d, func() { m.events.Broadcast(build()) })
}
