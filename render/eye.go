// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "fmt"

// Eye identifies one of the two stereo views.
type Eye int

const (
	// Left is eye 0.
	Left Eye = 0

	// Right is eye 1.
	Right Eye = 1
)

// Other returns the opposite eye.
func (e Eye) Other() Eye {
	if e == Left {
		return Right
	}
	return Left
}

// String returns the eye name.
func (e Eye) String() string {
	switch e {
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return fmt.Sprintf("Eye(%d)", int(e))
	}
}
