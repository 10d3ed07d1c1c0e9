// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: slideout/scheduler.go
// Summary: Timer and next-tick continuations for deferred panel events.
// Notes: Continuations are fire-and-forget; they are never canceled once scheduled.

package slideout

import (
	"sort"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

// SettleDelay matches the slide transition; open and closed fire after it
// when animation is enabled.
const SettleDelay = 318 * time.Millisecond

// Scheduler runs continuations on the panel's event loop.
type Scheduler interface {
	// After runs fn once d has elapsed.
	After(d time.Duration, fn func())
	// Defer runs fn on the next turn of the event loop.
	Defer(fn func())
}

// Poster is the part of tcell.Screen used to wake the event loop.
type Poster interface {
	PostEvent(ev tcell.Event) error
}

type continuation struct {
	fn func()
}

// ScreenScheduler posts continuations as tcell interrupt events so they run
// on the goroutine polling the screen, never concurrently with handlers.
type ScreenScheduler struct {
	screen Poster
	logger *zap.Logger
}

// NewScreenScheduler wraps a screen. logger may be nil.
func NewScreenScheduler(screen Poster, logger *zap.Logger) *ScreenScheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScreenScheduler{screen: screen, logger: logger.Named("scheduler")}
}

func (s *ScreenScheduler) After(d time.Duration, fn func()) {
	if d <= 0 {
		s.Defer(fn)
		return
	}
	time.AfterFunc(d, func() { s.Defer(fn) })
}

func (s *ScreenScheduler) Defer(fn func()) {
	if err := s.screen.PostEvent(tcell.NewEventInterrupt(continuation{fn: fn})); err != nil {
		s.logger.Warn("dropped continuation", zap.Error(err))
	}
}

// RunContinuation executes ev if it carries a scheduled continuation.
// Event loops call it for every polled event and skip events it consumed.
func RunContinuation(ev tcell.Event) bool {
	irq, ok := ev.(*tcell.EventInterrupt)
	if !ok {
		return false
	}
	c, ok := irq.Data().(continuation)
	if !ok {
		return false
	}
	c.fn()
	return true
}

type timer struct {
	at  time.Duration
	seq int
	fn  func()
}

// ManualScheduler is a deterministic Scheduler driven by Flush and Advance.
// Hosts without an event loop (tests, headless replays) use it.
type ManualScheduler struct {
	now      time.Duration
	seq      int
	deferred []func()
	timers   []timer
}

// NewManualScheduler returns a scheduler at time zero.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

func (m *ManualScheduler) After(d time.Duration, fn func()) {
	m.seq++
	m.timers = append(m.timers, timer{at: m.now + d, seq: m.seq, fn: fn})
}

func (m *ManualScheduler) Defer(fn func()) {
	m.deferred = append(m.deferred, fn)
}

// Now returns the virtual elapsed time.
func (m *ManualScheduler) Now() time.Duration { return m.now }

// Pending returns the number of queued continuations.
func (m *ManualScheduler) Pending() int { return len(m.deferred) + len(m.timers) }

// Flush runs deferred continuations until none remain, including ones
// scheduled while flushing.
func (m *ManualScheduler) Flush() {
	for len(m.deferred) > 0 {
		fn := m.deferred[0]
		m.deferred = m.deferred[1:]
		fn()
	}
}

// Advance moves virtual time forward by d, firing due timers in order and
// flushing deferred work after each.
func (m *ManualScheduler) Advance(d time.Duration) {
	m.Flush()
	deadline := m.now + d
	for {
		sort.SliceStable(m.timers, func(i, j int) bool {
			if m.timers[i].at == m.timers[j].at {
				return m.timers[i].seq < m.timers[j].seq
			}
			return m.timers[i].at < m.timers[j].at
		})
		if len(m.timers) == 0 || m.timers[0].at > deadline {
			break
		}
		t := m.timers[0]
		m.timers = m.timers[1:]
		m.now = t.at
		t.fn()
		m.Flush()
	}
	m.now = deadline
}
