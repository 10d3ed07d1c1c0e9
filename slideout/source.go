// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: slideout/source.go
// Summary: Injected pointer/keyboard event source and its tcell-fed hub.
// Usage: Panels acquire listeners on mount and release them on destroy.

package slideout

import (
	"sync"

	"github.com/framegrace/texelslide/texelui/core"
	"github.com/gdamore/tcell/v2"
)

// PointerKind classifies pointer events.
type PointerKind int

const (
	PointerDown PointerKind = iota
	PointerMove
	PointerUp
)

// PointerEvent is a single-pointer event in screen cells.
type PointerEvent struct {
	Kind PointerKind
	Pos  core.Point
}

// KeyEvent is a key press together with what it targets.
type KeyEvent struct {
	Key  tcell.Key
	Rune rune
	Mod  tcell.ModMask
	// Editable is true when the focused widget is a text-entry control.
	Editable bool
}

// EventSource delivers root-level input. Each registration returns the
// release func that removes it; release is idempotent.
type EventSource interface {
	OnPointer(fn func(PointerEvent) bool) (release func())
	OnKey(fn func(KeyEvent) bool) (release func())
}

type pointerSub struct {
	id int
	fn func(PointerEvent) bool
}

type keySub struct {
	id int
	fn func(KeyEvent) bool
}

// Hub is an EventSource fed from a tcell event loop.
type Hub struct {
	mu       sync.Mutex
	nextID   int
	pointers []pointerSub
	keys     []keySub
	down     bool
}

// NewHub returns a hub with no listeners.
func NewHub() *Hub { return &Hub{} }

func (h *Hub) OnPointer(fn func(PointerEvent) bool) func() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.nextID++
	id := h.nextID
	h.pointers = append(h.pointers, pointerSub{id: id, fn: fn})
	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		for i, s := range h.pointers {
			if s.id == id {
				h.pointers = append(h.pointers[:i], h.pointers[i+1:]...)
				return
			}
		}
	}
}

func (h *Hub) OnKey(fn func(KeyEvent) bool) func() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.nextID++
	id := h.nextID
	h.keys = append(h.keys, keySub{id: id, fn: fn})
	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		for i, s := range h.keys {
			if s.id == id {
				h.keys = append(h.keys[:i], h.keys[i+1:]...)
				return
			}
		}
	}
}

// Listeners returns the number of registered pointer and key listeners.
func (h *Hub) Listeners() (pointer, key int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.pointers), len(h.keys)
}

// DispatchMouse translates primary-button transitions into down, move and
// up events and delivers them to every pointer listener, newest first.
// Returns true if any listener consumed the event.
func (h *Hub) DispatchMouse(ev *tcell.EventMouse) bool {
	x, y := ev.Position()
	pressed := ev.Buttons()&tcell.Button1 != 0

	h.mu.Lock()
	kind := PointerMove
	switch {
	case pressed && !h.down:
		kind = PointerDown
	case !pressed && h.down:
		kind = PointerUp
	}
	h.down = pressed
	subs := make([]pointerSub, len(h.pointers))
	copy(subs, h.pointers)
	h.mu.Unlock()

	pe := PointerEvent{Kind: kind, Pos: core.Point{X: x, Y: y}}
	consumed := false
	for i := len(subs) - 1; i >= 0; i-- {
		if subs[i].fn(pe) {
			consumed = true
		}
	}
	return consumed
}

// DispatchKey delivers ev to key listeners, newest first, stopping at the
// first one that consumes it.
func (h *Hub) DispatchKey(ev *tcell.EventKey, editable bool) bool {
	h.mu.Lock()
	subs := make([]keySub, len(h.keys))
	copy(subs, h.keys)
	h.mu.Unlock()

	ke := KeyEvent{Key: ev.Key(), Rune: ev.Rune(), Mod: ev.Modifiers(), Editable: editable}
	for i := len(subs) - 1; i >= 0; i-- {
		if subs[i].fn(ke) {
			return true
		}
	}
	return false
}
