// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: slideout/options.go
// Summary: Panel configuration and host-provided collaborators.

package slideout

import (
	"time"

	"github.com/framegrace/texelslide/texelui/core"
	"go.uber.org/zap"
)

// Options configures a panel. The zero value is a right-docked, 30% wide,
// animated panel that closes on Escape.
type Options struct {
	Dock   Side
	Size   SizeSpec
	Offset Length // cross-axis offset, fixed size mode only

	// MinSize and MaxSize bound drag-resize in cells; 0 disables a bound.
	MinSize int
	MaxSize int

	Fullscreen bool
	// Fixed positions the panel against the viewport. Panels without an
	// AppendTo selector are always fixed.
	Fixed    bool
	AppendTo string

	MaskColor   string // tcell color name or #rrggbb; empty leaves the mask transparent
	CustomClass string
	ZIndex      int
	Title       string
	Easing      string // slide curve, see effects.EasingByName

	DisableAnimation bool
	IgnoreEscape     bool
	AllowResize      bool
	CloseOnMaskClick bool

	// Visible opens the panel as part of Mount.
	Visible bool
}

// Validate reports configuration errors that must abort setup.
func (o Options) Validate() error {
	_, err := ParseSide(string(o.Dock))
	return err
}

func (o Options) withDefaults() Options {
	if side, err := ParseSide(string(o.Dock)); err == nil {
		o.Dock = side
	}
	if o.Size.IsZero() {
		o.Size = DefaultSize
	}
	return o
}

// IsFixed reports whether the panel is positioned against the viewport.
func (o Options) IsFixed() bool { return o.Fixed || o.AppendTo == "" }

// Deps are the render-boundary collaborators of a panel.
type Deps struct {
	Scheduler Scheduler
	Events    EventSource
	// Parent is used when Options.AppendTo is empty.
	Parent  Target
	Targets TargetResolver
	// Viewport returns the screen size.
	Viewport func() core.Size
	// Root receives LockScrollClass while a fixed panel is visible.
	Root   ClassList
	Logger *zap.Logger
	// Clock drives the slide animation; defaults to time.Now.
	Clock func() time.Time
}
