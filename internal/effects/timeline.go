// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/effects/timeline.go
// Summary: Per-key animation timeline with configurable easing and clock.
// Usage: Drives the slide progress of panels between hidden (0) and shown (1).

package effects

import (
	"sync"
	"time"
)

// AnimateOptions configures an animation transition
type AnimateOptions struct {
	Duration time.Duration // 0 = instant
	Easing   EasingFunc    // nil = timeline default
}

type keyState struct {
	current   float32
	start     float32
	target    float32
	startTime time.Time
	duration  time.Duration
	easing    EasingFunc
}

// Timeline provides thread-safe, per-key animation timelines.
type Timeline struct {
	mu             sync.Mutex
	states         map[interface{}]*keyState
	defaultEasing  EasingFunc
	defaultInitial float32
	now            func() time.Time
}

// NewTimeline creates a new timeline manager.
// defaultInitial: initial value for uninitialized keys (typically 0.0)
func NewTimeline(defaultInitial float32) *Timeline {
	return &Timeline{
		states:         make(map[interface{}]*keyState),
		defaultEasing:  EaseSmoothstep,
		defaultInitial: defaultInitial,
		now:            time.Now,
	}
}

// SetClock replaces the time source. Tests inject a fake clock.
func (tl *Timeline) SetClock(now func() time.Time) {
	tl.mu.Lock()
	defer tl.mu.Unlock()
	if now == nil {
		now = time.Now
	}
	tl.now = now
}

// SetDefaultEasing changes the curve used when AnimateOptions.Easing is nil.
func (tl *Timeline) SetDefaultEasing(fn EasingFunc) {
	tl.mu.Lock()
	defer tl.mu.Unlock()
	if fn == nil {
		fn = EaseSmoothstep
	}
	tl.defaultEasing = fn
}

// AnimateTo starts or retargets an animation and returns the current value.
func (tl *Timeline) AnimateTo(key interface{}, target float32, duration time.Duration) float32 {
	return tl.AnimateToWithOptions(key, target, AnimateOptions{Duration: duration})
}

// AnimateToWithOptions starts an animation with a custom easing function.
// Retargeting mid-flight starts from the current interpolated value.
func (tl *Timeline) AnimateToWithOptions(key interface{}, target float32, opts AnimateOptions) float32 {
	tl.mu.Lock()
	defer tl.mu.Unlock()

	now := tl.now()
	state := tl.states[key]
	if state == nil {
		state = &keyState{current: tl.defaultInitial}
		tl.states[key] = state
	} else {
		state.current = tl.computeValue(state, now)
	}

	state.start = state.current
	state.target = target
	state.startTime = now
	state.duration = opts.Duration
	state.easing = opts.Easing

	if opts.Duration <= 0 || state.current == target {
		state.current = target
		state.duration = 0
	}
	return state.current
}

// Set jumps key to value with no animation.
func (tl *Timeline) Set(key interface{}, value float32) {
	tl.AnimateTo(key, value, 0)
}

// Get returns the current animated value for a key.
func (tl *Timeline) Get(key interface{}) float32 {
	tl.mu.Lock()
	defer tl.mu.Unlock()

	state := tl.states[key]
	if state == nil {
		return tl.defaultInitial
	}
	state.current = tl.computeValue(state, tl.now())
	return state.current
}

// IsAnimating returns true if the key has not reached its target yet.
func (tl *Timeline) IsAnimating(key interface{}) bool {
	tl.mu.Lock()
	defer tl.mu.Unlock()

	state := tl.states[key]
	if state == nil || state.duration <= 0 {
		return false
	}
	return tl.computeValue(state, tl.now()) != state.target
}

// Reset removes the timeline state for a key
func (tl *Timeline) Reset(key interface{}) {
	tl.mu.Lock()
	defer tl.mu.Unlock()
	delete(tl.states, key)
}

// computeValue must be called with lock held.
func (tl *Timeline) computeValue(state *keyState, now time.Time) float32 {
	if state.duration <= 0 {
		return state.target
	}
	if now.Before(state.startTime) {
		return state.start
	}
	elapsed := now.Sub(state.startTime)
	if elapsed >= state.duration {
		return state.target
	}

	progress := float32(elapsed) / float32(state.duration)
	easing := state.easing
	if easing == nil {
		easing = tl.defaultEasing
	}
	return state.start + (state.target-state.start)*easing(progress)
}
