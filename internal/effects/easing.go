// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/effects/easing.go
// Summary: Easing curves and lookup by config name.

package effects

import (
	"sort"
	"strings"
)

// EasingFunc maps progress [0,1] to eased progress [0,1].
type EasingFunc func(progress float32) float32

var (
	// EaseLinear - No easing, constant speed
	EaseLinear EasingFunc = func(t float32) float32 { return t }

	// EaseSmoothstep - Smooth S-curve, accelerates at start, decelerates at end
	EaseSmoothstep EasingFunc = func(t float32) float32 {
		return t * t * (3.0 - 2.0*t)
	}

	// EaseOutQuad - Quadratic ease-out (fast start, decelerating)
	EaseOutQuad EasingFunc = func(t float32) float32 {
		return t * (2.0 - t)
	}

	// EaseInOutCubic - Cubic ease-in-out
	EaseInOutCubic EasingFunc = func(t float32) float32 {
		if t < 0.5 {
			return 4.0 * t * t * t
		}
		t1 := 2.0*t - 2.0
		return 1.0 + t1*t1*t1*0.5
	}
)

var easings = map[string]EasingFunc{
	"linear":            EaseLinear,
	"smoothstep":        EaseSmoothstep,
	"ease-out-quad":     EaseOutQuad,
	"ease-in-out":       EaseInOutCubic,
	"ease-in-out-cubic": EaseInOutCubic,
}

// EasingByName returns the named curve, or smoothstep for unknown names.
func EasingByName(name string) EasingFunc {
	if fn, ok := easings[strings.ToLower(strings.TrimSpace(name))]; ok {
		return fn
	}
	return EaseSmoothstep
}

// EasingNames lists every name EasingByName recognises, sorted.
func EasingNames() []string {
	names := make([]string, 0, len(easings))
	for name := range easings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
