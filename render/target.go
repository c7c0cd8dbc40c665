// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"
	"image/color"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/stereo/layout"
)

// Target is a CPU-backed color buffer using *image.RGBA.
//
// Targets are used for eye render targets, stable eye textures, HMD eye
// textures and the output back buffers of the software implementation.
//
// Example:
//
//	target := render.NewTarget(800, 600)
//	target.Clear(color.Black)
//	img := target.Image()
type Target struct {
	img *image.RGBA
}

// NewTarget creates a new CPU-backed target.
func NewTarget(width, height int) *Target {
	return &Target{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// NewTargetFromImage wraps an existing *image.RGBA as a target.
// The image is used directly without copying.
func NewTargetFromImage(img *image.RGBA) *Target {
	return &Target{img: img}
}

// Width returns the target width in pixels.
func (t *Target) Width() int {
	return t.img.Bounds().Dx()
}

// Height returns the target height in pixels.
func (t *Target) Height() int {
	return t.img.Bounds().Dy()
}

// Format returns the pixel format (RGBA8).
func (t *Target) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// Pixels returns direct access to the pixel data.
func (t *Target) Pixels() []byte {
	return t.img.Pix
}

// Stride returns the number of bytes per row.
func (t *Target) Stride() int {
	return t.img.Stride
}

// Image returns the underlying *image.RGBA.
// The returned image shares memory with the target.
func (t *Target) Image() *image.RGBA {
	return t.img
}

// Clear fills the entire target with the given color.
func (t *Target) Clear(c color.Color) {
	t.Fill(t.img.Bounds(), c)
}

// Fill fills r, in image coordinates, with the given color.
func (t *Target) Fill(r image.Rectangle, c color.Color) {
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	r = r.Intersect(t.img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			t.img.SetRGBA(x, y, rgba)
		}
	}
}

// FillRect fills a bottom-origin rectangle with the given color.
func (t *Target) FillRect(r layout.Rect, c color.Color) {
	t.Fill(r.ImageRect(t.Height()), c)
}

// At returns the color at bottom-origin pixel (x, y).
func (t *Target) At(x, y int) color.RGBA {
	return t.img.RGBAAt(x, t.Height()-1-y)
}

// CopyFrom replaces the contents of t with src. Sizes must match;
// otherwise src is copied into the overlapping region.
func (t *Target) CopyFrom(src *Target) {
	if t.img.Bounds() == src.img.Bounds() {
		copy(t.img.Pix, src.img.Pix)
		return
	}
	r := t.img.Bounds().Intersect(src.img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		copy(t.img.Pix[t.img.PixOffset(r.Min.X, y):t.img.PixOffset(r.Max.X, y)],
			src.img.Pix[src.img.PixOffset(r.Min.X, y):src.img.PixOffset(r.Max.X, y)])
	}
}

// Resize creates a new buffer with the given dimensions.
// The contents are not preserved.
func (t *Target) Resize(width, height int) {
	t.img = image.NewRGBA(image.Rect(0, 0, width, height))
}
