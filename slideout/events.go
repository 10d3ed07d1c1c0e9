// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: slideout/events.go
// Summary: Lifecycle notifications raised by the visibility and resize controllers.
// Usage: Hosts subscribe a Listener or a Handlers set on Panel.Events().

package slideout

import "sync"

// EventType identifies a lifecycle notification.
type EventType int

const (
	// EventBeforeOpen carries a cancelable *OpenRequest.
	EventBeforeOpen EventType = iota
	// EventOpen carries the ContentRegion once the slide-in has settled.
	EventOpen
	// EventClose carries a *CloseRequest (close intent).
	EventClose
	// EventClosed fires once the panel is fully retracted.
	EventClosed
	// EventVisibleChange carries the new visibility (bool).
	EventVisibleChange
	// EventFullscreenChange carries the full-screen flag (bool, always false).
	EventFullscreenChange
	// EventResize carries a ResizeEvent with the committed size.
	EventResize
)

var eventNames = map[EventType]string{
	EventBeforeOpen:       "before-open",
	EventOpen:             "open",
	EventClose:            "close",
	EventClosed:           "closed",
	EventVisibleChange:    "update:visible",
	EventFullscreenChange: "update:fullscreen",
	EventResize:           "resize",
}

func (t EventType) String() string {
	if name, ok := eventNames[t]; ok {
		return name
	}
	return "unknown"
}

// Event is a single notification.
type Event struct {
	Type    EventType
	Payload interface{}
}

// ResizeEvent is the payload of EventResize.
type ResizeEvent struct {
	Size int
}

// Listener receives panel events.
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(Event)

func (f ListenerFunc) OnEvent(event Event) { f(event) }

// Handlers is a typed alternative to switching on Event.Type. Nil fields
// are skipped.
type Handlers struct {
	BeforeOpen       func(*OpenRequest)
	Open             func(ContentRegion)
	Close            func(*CloseRequest)
	Closed           func()
	VisibleChange    func(bool)
	FullscreenChange func(bool)
	Resize           func(ResizeEvent)
}

func (h Handlers) OnEvent(ev Event) {
	switch ev.Type {
	case EventBeforeOpen:
		if h.BeforeOpen != nil {
			h.BeforeOpen(ev.Payload.(*OpenRequest))
		}
	case EventOpen:
		if h.Open != nil {
			h.Open(ev.Payload.(ContentRegion))
		}
	case EventClose:
		if h.Close != nil {
			h.Close(ev.Payload.(*CloseRequest))
		}
	case EventClosed:
		if h.Closed != nil {
			h.Closed()
		}
	case EventVisibleChange:
		if h.VisibleChange != nil {
			h.VisibleChange(ev.Payload.(bool))
		}
	case EventFullscreenChange:
		if h.FullscreenChange != nil {
			h.FullscreenChange(ev.Payload.(bool))
		}
	case EventResize:
		if h.Resize != nil {
			h.Resize(ev.Payload.(ResizeEvent))
		}
	}
}

type subscription struct {
	id       int
	listener Listener
}

// Dispatcher broadcasts events to subscribed listeners in subscription
// order. After Close every broadcast is dropped, which guards continuations
// that fire after the panel was torn down.
type Dispatcher struct {
	mu        sync.RWMutex
	nextID    int
	listeners []subscription
	closed    bool
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Subscribe adds a listener and returns the func that removes it.
func (d *Dispatcher) Subscribe(listener Listener) (unsubscribe func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return func() {}
	}
	d.nextID++
	id := d.nextID
	d.listeners = append(d.listeners, subscription{id: id, listener: listener})
	return func() { d.unsubscribe(id) }
}

func (d *Dispatcher) unsubscribe(id int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, s := range d.listeners {
		if s.id == id {
			d.listeners = append(d.listeners[:i], d.listeners[i+1:]...)
			return
		}
	}
}

// Broadcast delivers event to every listener. Listeners may subscribe or
// unsubscribe while being notified; changes apply to the next broadcast.
func (d *Dispatcher) Broadcast(event Event) {
	d.mu.RLock()
	if d.closed {
		d.mu.RUnlock()
		return
	}
	subs := make([]subscription, len(d.listeners))
	copy(subs, d.listeners)
	d.mu.RUnlock()

	for _, s := range subs {
		s.listener.OnEvent(event)
	}
}

// Len returns the number of subscribed listeners.
func (d *Dispatcher) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.listeners)
}

// Close drops all listeners and discards later broadcasts.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closed = true
	d.listeners = nil
}
