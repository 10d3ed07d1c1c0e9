// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: slideout/size.go
// Summary: Relative (adjustable) and fixed panel size specifications.

package slideout

import (
	"fmt"
	"strings"
)

// SizeSpec is either a single adjustable magnitude (relative mode) or one or
// two immutable magnitudes (fixed mode). Fixed mode disables drag-resize.
type SizeSpec struct {
	relative Length
	fixed    []Length
}

// DefaultSize is used when no size is configured.
var DefaultSize = RelativeSize(Percent(30))

// RelativeSize returns an adjustable size along the dock axis.
func RelativeSize(l Length) SizeSpec { return SizeSpec{relative: l} }

// FixedSize returns a fixed size. One value applies to both width and
// height; a second value sets the height.
func FixedSize(width Length, height ...Length) SizeSpec {
	fixed := []Length{width}
	if len(height) > 0 {
		fixed = append(fixed, height[0])
	}
	return SizeSpec{fixed: fixed}
}

// ParseSize builds a spec from config strings: one value is relative, two
// values are fixed. A single "[w]" or "[w,h]" literal is also fixed.
func ParseSize(values ...string) (SizeSpec, error) {
	if len(values) == 1 {
		v := strings.TrimSpace(values[0])
		if strings.HasPrefix(v, "[") && strings.HasSuffix(v, "]") {
			inner := strings.Trim(v, "[]")
			parts := strings.Split(inner, ",")
			if strings.TrimSpace(inner) == "" {
				parts = nil
			}
			return parseFixed(values[0], parts)
		}
		l, err := ParseLength(v)
		if err != nil {
			return SizeSpec{}, err
		}
		return RelativeSize(l), nil
	}
	return parseFixed(strings.Join(values, ","), values)
}

func parseFixed(raw string, parts []string) (SizeSpec, error) {
	if len(parts) == 0 || len(parts) > 2 {
		return SizeSpec{}, fmt.Errorf("%w: fixed size needs one or two values, got %q", ErrInvalidSize, raw)
	}
	w, err := ParseLength(parts[0])
	if err != nil {
		return SizeSpec{}, err
	}
	if len(parts) == 1 {
		return FixedSize(w), nil
	}
	h, err := ParseLength(parts[1])
	if err != nil {
		return SizeSpec{}, err
	}
	return FixedSize(w, h), nil
}

// IsFixed reports fixed mode.
func (s SizeSpec) IsFixed() bool { return len(s.fixed) > 0 }

// Magnitude is the relative-mode size.
func (s SizeSpec) Magnitude() Length { return s.relative }

// Width is the fixed-mode width.
func (s SizeSpec) Width() Length {
	if !s.IsFixed() {
		return Length{}
	}
	return s.fixed[0]
}

// Height is the fixed-mode height; it falls back to the width when only one
// value was given.
func (s SizeSpec) Height() Length {
	if !s.IsFixed() {
		return Length{}
	}
	return s.fixed[len(s.fixed)-1]
}

func (s SizeSpec) String() string {
	if !s.IsFixed() {
		return s.relative.String()
	}
	if len(s.fixed) == 1 {
		return "[" + s.fixed[0].String() + "]"
	}
	return "[" + s.fixed[0].String() + "," + s.fixed[1].String() + "]"
}

// IsZero reports an unset spec.
func (s SizeSpec) IsZero() bool { return !s.IsFixed() && s.relative.IsZero() }
