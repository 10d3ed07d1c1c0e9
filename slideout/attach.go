// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: slideout/attach.go
// Summary: Attachment targets a panel is mounted into.
// Notes: The render boundary owns the widget tree; a panel only keeps the
// target handle and the detach func returned by Attach.

package slideout

import (
	"fmt"

	"github.com/framegrace/texelslide/texelui/core"
)

// Target is a node a panel can be appended to.
type Target interface {
	// Bounds is the rectangle the panel's container fills.
	Bounds() core.Rect
	// Attach adds w and returns the func that removes it again.
	Attach(w core.Widget) (detach func() error)
}

// TargetResolver looks targets up by selector.
type TargetResolver interface {
	Lookup(selector string) (Target, bool)
}

// Targets is a name → target map implementing TargetResolver.
type Targets map[string]Target

func (t Targets) Lookup(selector string) (Target, bool) {
	target, ok := t[selector]
	return target, ok && target != nil
}

// attachment records where a panel lives.
type attachment struct {
	target Target
	detach func() error
}

func resolveTarget(selector string, resolver TargetResolver, parent Target) (Target, error) {
	if selector == "" {
		if parent == nil {
			return nil, ErrNoTarget
		}
		return parent, nil
	}
	if resolver != nil {
		if target, ok := resolver.Lookup(selector); ok {
			return target, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrTargetNotFound, selector)
}

// ContentRegion is the handle passed with EventOpen.
type ContentRegion struct {
	Bounds core.Rect
	Body   core.Widget
}
