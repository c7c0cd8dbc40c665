// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package layout

// SideBySide splits box vertically into a left and a right half.
// The left half is W/2 wide, the right half takes the remainder and starts
// where the left half ends. Both keep the full height of box.
func SideBySide(box Rect) (left, right Rect) {
	leftWidth := box.Width / 2
	rightWidth := box.Width - leftWidth

	left = box
	left.Width = leftWidth

	right = box
	right.Width = rightWidth
	right.Left += leftWidth
	return left, right
}

// SideBySideLetterbox splits box like SideBySide but halves the height of
// each region and centers it vertically, leaving a black bar above and
// below each eye image. The vertical offset is (H/2)/2 above the bottom of
// box, truncating at each halving.
func SideBySideLetterbox(box Rect) (left, right Rect) {
	left, right = SideBySide(box)

	height := box.Height / 2
	top := box.Top + height/2

	left.Height = height
	left.Top = top
	right.Height = height
	right.Top = top
	return left, right
}

// LetterboxClearRect returns the rectangle handed to the border clear in
// side-by-side letterbox mode. Shifting the box up by its own height moves
// it off the content area so the whole letterbox is cleared, producing the
// black bars. box itself is left untouched.
func LetterboxClearRect(box Rect) Rect {
	box.Top = box.Height
	return box
}

// TopBottom splits box horizontally. The lower region takes H - H/2 rows at
// the bottom of box; the upper region takes the H/2 rows above it.
func TopBottom(box Rect) (top, bottom Rect) {
	topHeight := box.Height / 2
	bottomHeight := box.Height - topHeight

	top = box
	top.Height = topHeight
	top.Top = box.Top + bottomHeight

	bottom = box
	bottom.Height = bottomHeight
	return top, bottom
}
