// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package layout computes the output regions and pixel parities used when
// presenting a stereo frame.
//
// Every function in this package is pure: regions are derived per call from
// the output letterbox rectangle handed in by the host, and parities are
// recomputed every frame because the window position and size can change.
//
// # Coordinate System
//
// Rectangles follow the graphics API convention of an origin at the bottom
// of the surface. Rect.Top is the vertical offset of the rectangle's lower
// edge from the bottom of the surface, so the region with the larger Top is
// the one shown higher on screen.
//
// # Splits
//
//   - SideBySide: left half W/2, right half W-W/2, both at full height
//   - SideBySideLetterbox: halves at half height, vertically centered
//   - TopBottom: upper half H/2 for the left eye, lower half H-H/2 for the right
//
// Odd sizes never leave a gap or an overlap: the remainder pixel always goes
// to the second region.
package layout
