// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: slideout/length.go
// Summary: Cell or percentage magnitudes used by computed styles.

package slideout

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Unit is the unit of a Length.
type Unit int

const (
	// UnitCell is an absolute terminal cell count.
	UnitCell Unit = iota
	// UnitPercent is relative to the containing box along the same axis.
	UnitPercent
)

// Length is a signed magnitude with a unit. The zero value is 0 cells.
type Length struct {
	Value int
	Unit  Unit
}

// Cells returns an absolute length.
func Cells(n int) Length { return Length{Value: n, Unit: UnitCell} }

// Percent returns a relative length.
func Percent(n int) Length { return Length{Value: n, Unit: UnitPercent} }

// Full is 100% of the containing box.
var Full = Percent(100)

// ParseLength reads "40", "40px", "40c" or "30%". Fractions truncate toward
// zero.
func ParseLength(s string) (Length, error) {
	raw := strings.TrimSpace(s)
	unit := UnitCell
	num := raw
	switch {
	case strings.HasSuffix(num, "%"):
		unit = UnitPercent
		num = strings.TrimSuffix(num, "%")
	case strings.HasSuffix(num, "px"):
		num = strings.TrimSuffix(num, "px")
	case strings.HasSuffix(num, "c"):
		num = strings.TrimSuffix(num, "c")
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return Length{}, fmt.Errorf("%w: %q", ErrInvalidSize, s)
	}
	return Length{Value: int(f), Unit: unit}, nil
}

// IsZero reports whether the magnitude is zero (in any unit).
func (l Length) IsZero() bool { return l.Value == 0 }

// Neg returns the negated length, preserving the unit.
func (l Length) Neg() Length { return Length{Value: -l.Value, Unit: l.Unit} }

// Scale multiplies the magnitude by f, rounding to the nearest integer.
func (l Length) Scale(f float64) Length {
	return Length{Value: int(math.Round(float64(l.Value) * f)), Unit: l.Unit}
}

// Resolve converts l into cells against a containing extent.
func (l Length) Resolve(total int) int {
	if l.Unit == UnitPercent {
		return int(math.Round(float64(total) * float64(l.Value) / 100))
	}
	return l.Value
}

func (l Length) String() string {
	if l.Value == 0 {
		return "0"
	}
	if l.Unit == UnitPercent {
		return strconv.Itoa(l.Value) + "%"
	}
	return strconv.Itoa(l.Value)
}
