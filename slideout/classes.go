// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: slideout/classes.go
// Summary: Class-list equivalent used for scroll locking and theming hooks.

package slideout

import "sort"

// LockScrollClass is added to the root class list while a fixed panel is visible.
const LockScrollClass = "slideout-lock-scroll"

// ClassList is a mutable set of class names.
type ClassList interface {
	Add(name string)
	Remove(name string)
	Has(name string) bool
}

// Classes is a map-backed ClassList.
type Classes map[string]struct{}

// NewClasses returns a set holding names; empty names are skipped.
func NewClasses(names ...string) Classes {
	c := Classes{}
	for _, n := range names {
		c.Add(n)
	}
	return c
}

func (c Classes) Add(name string) {
	if name != "" {
		c[name] = struct{}{}
	}
}

func (c Classes) Remove(name string) { delete(c, name) }

func (c Classes) Has(name string) bool {
	_, ok := c[name]
	return ok
}

// Names returns the set sorted.
func (c Classes) Names() []string {
	out := make([]string, 0, len(c))
	for n := range c {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
