// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: slideout/side.go
// Summary: Dock sides and the axis each one drives.

package slideout

import (
	"fmt"
	"strings"
)

// Side names an edge of the container. Panels dock against one side and
// styles position boxes relative to sides.
type Side string

const (
	SideTop    Side = "top"
	SideRight  Side = "right"
	SideBottom Side = "bottom"
	SideLeft   Side = "left"
)

// DefaultDock is used when no dock side is configured.
const DefaultDock = SideRight

var sides = []Side{SideTop, SideRight, SideBottom, SideLeft}

// ParseSide validates s. The empty string resolves to DefaultDock.
func ParseSide(s string) (Side, error) {
	if s == "" {
		return DefaultDock, nil
	}
	side := Side(strings.ToLower(strings.TrimSpace(s)))
	if !side.Valid() {
		return "", fmt.Errorf("%w %q, optional: %s", ErrInvalidDock, s, joinSides())
	}
	return side, nil
}

// Valid reports whether s is one of the four sides.
func (s Side) Valid() bool {
	for _, v := range sides {
		if s == v {
			return true
		}
	}
	return false
}

// Opposite returns the facing side.
func (s Side) Opposite() Side {
	switch s {
	case SideTop:
		return SideBottom
	case SideBottom:
		return SideTop
	case SideLeft:
		return SideRight
	default:
		return SideLeft
	}
}

// Horizontal reports whether the side sizes along the x axis.
func (s Side) Horizontal() bool { return s == SideLeft || s == SideRight }

// Cross returns the side that anchors the non-resize axis.
func (s Side) Cross() Side {
	if s.Horizontal() {
		return SideTop
	}
	return SideLeft
}

func (s Side) String() string { return string(s) }

func joinSides() string {
	names := make([]string, len(sides))
	for i, s := range sides {
		names[i] = string(s)
	}
	return strings.Join(names, ",")
}
