// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package layout

import (
	"fmt"
	"image"
)

// Rect is an axis-aligned integer rectangle on the output surface.
// Top is measured from the bottom edge of the surface.
type Rect struct {
	Left, Top     int
	Width, Height int
}

// NewRect creates a rectangle from its components.
func NewRect(left, top, width, height int) Rect {
	return Rect{Left: left, Top: top, Width: width, Height: height}
}

// Right returns the exclusive right edge.
func (r Rect) Right() int { return r.Left + r.Width }

// Bottom returns the exclusive upper edge in bottom-origin coordinates,
// which is Top+Height.
func (r Rect) Bottom() int { return r.Top + r.Height }

// Empty reports whether the rectangle covers no pixels.
func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Area returns the number of pixels covered by the rectangle.
func (r Rect) Area() int {
	if r.Empty() {
		return 0
	}
	return r.Width * r.Height
}

// Contains reports whether o lies entirely inside r.
func (r Rect) Contains(o Rect) bool {
	if o.Empty() {
		return true
	}
	return o.Left >= r.Left && o.Right() <= r.Right() &&
		o.Top >= r.Top && o.Bottom() <= r.Bottom()
}

// Overlaps reports whether r and o share at least one pixel.
func (r Rect) Overlaps(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.Left < o.Right() && o.Left < r.Right() &&
		r.Top < o.Bottom() && o.Top < r.Bottom()
}

// ImageRect converts r into top-origin image coordinates for a surface of
// the given height.
func (r Rect) ImageRect(surfaceHeight int) image.Rectangle {
	y0 := surfaceHeight - r.Bottom()
	return image.Rect(r.Left, y0, r.Right(), y0+r.Height)
}

// String returns a human-readable representation.
func (r Rect) String() string {
	return fmt.Sprintf("Rect(left=%d, top=%d, %dx%d)", r.Left, r.Top, r.Width, r.Height)
}
