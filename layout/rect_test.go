// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package layout

import (
	"image"
	"testing"
)

func TestRect_ImageRect(t *testing.T) {
	tests := []struct {
		name   string
		r      Rect
		height int
		want   image.Rectangle
	}{
		{"full", NewRect(0, 0, 800, 600), 600, image.Rect(0, 0, 800, 600)},
		{"upper half", NewRect(0, 300, 800, 300), 600, image.Rect(0, 0, 800, 300)},
		{"lower half", NewRect(0, 0, 800, 300), 600, image.Rect(0, 300, 800, 600)},
		{"centered", NewRect(400, 150, 400, 300), 600, image.Rect(400, 150, 800, 450)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.ImageRect(tt.height); got != tt.want {
				t.Errorf("ImageRect(%d) = %v, want %v", tt.height, got, tt.want)
			}
		})
	}
}

func TestRect_ContainsOverlaps(t *testing.T) {
	box := NewRect(0, 0, 100, 100)

	if !box.Contains(NewRect(10, 10, 20, 20)) {
		t.Error("box should contain inner rect")
	}
	if box.Contains(NewRect(90, 0, 20, 20)) {
		t.Error("box should not contain rect crossing the right edge")
	}
	if !box.Contains(Rect{}) {
		t.Error("empty rect is contained everywhere")
	}
	if NewRect(0, 0, 50, 10).Overlaps(NewRect(50, 0, 50, 10)) {
		t.Error("adjacent rects must not overlap")
	}
	if !NewRect(0, 0, 51, 10).Overlaps(NewRect(50, 0, 50, 10)) {
		t.Error("rects sharing a column must overlap")
	}
}

func TestRect_Empty(t *testing.T) {
	if !(Rect{Width: 0, Height: 10}).Empty() {
		t.Error("zero width should be empty")
	}
	if (Rect{Width: 1, Height: 1}).Empty() {
		t.Error("1x1 should not be empty")
	}
	if got := (Rect{Width: -5, Height: 3}).Area(); got != 0 {
		t.Errorf("Area of negative rect = %d, want 0", got)
	}
}
