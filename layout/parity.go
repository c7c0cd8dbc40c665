// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package layout

// WindowOffset is the position of the client area of the output window
// relative to the screen, in pixels. Interleaved displays select eyes by
// screen-relative row or column, so the window offset shifts the parity.
type WindowOffset struct {
	Horizontal int
	Vertical   int
}

// ClientWindowOffset returns the window offset used by the interleaved
// parity computations. It is always zero.
//
// TODO: read the client area offset from the window once the host exposes
// it; until then row, column and checker parity assume a window at the
// screen origin.
func ClientWindowOffset() WindowOffset {
	return WindowOffset{}
}

// RowParity returns the row-interleave parity for an output of the given
// height. The +1 accounts for the origin being at the bottom of the surface
// while the parity has to describe the topmost visible row.
func RowParity(verticalOffset, outputHeight int) int {
	return mod2(verticalOffset + outputHeight + 1)
}

// ColumnParity returns the column-interleave parity. Columns are counted
// from the left edge, so no height term is involved.
func ColumnParity(horizontalOffset int) int {
	return mod2(horizontalOffset)
}

// CheckerParity returns the checkerboard-interleave parity, combining both
// window offsets with the same origin correction as RowParity.
func CheckerParity(verticalOffset, horizontalOffset, outputHeight int) int {
	return mod2(verticalOffset + horizontalOffset + outputHeight + 1)
}

// mod2 returns n modulo 2 in {0, 1}, also for negative n.
func mod2(n int) int {
	return n & 1
}
