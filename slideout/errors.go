// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: slideout/errors.go
// Summary: Configuration errors raised while building or mounting a panel.

package slideout

import "errors"

var (
	// ErrInvalidDock reports a dock value outside top/right/bottom/left.
	ErrInvalidDock = errors.New("slideout: invalid dock value")
	// ErrInvalidSize reports an unparsable or empty size specification.
	ErrInvalidSize = errors.New("slideout: invalid size")
	// ErrTargetNotFound reports an append-to selector that resolves to nothing.
	ErrTargetNotFound = errors.New("slideout: cannot find the node to append to")
	// ErrNoTarget reports a mount without AppendTo and without a parent.
	ErrNoTarget = errors.New("slideout: no parent to attach to")
	// ErrDestroyed reports a mount on a destroyed panel.
	ErrDestroyed = errors.New("slideout: panel destroyed")
)
