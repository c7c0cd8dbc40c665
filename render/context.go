// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/stereo/hwstereo"
	"github.com/gogpu/stereo/layout"
	"github.com/gogpu/stereo/shader"
)

// EyeBuffers provides access to the per-eye buffers of a stereo frame.
//
// Every eye has a render target the scene is drawn into and a stable
// texture that survives until the eye is rendered again. Presentation
// samples the stable textures.
type EyeBuffers interface {
	// BindOutputFB binds the output (window) framebuffer for drawing.
	BindOutputFB()

	// BindEyeTexture binds the stable texture of eye to texture unit.
	BindEyeTexture(eye Eye, unit int)

	// BlitToEyeTexture copies the render target of eye into its stable
	// texture. With invalidate the render target contents are discarded
	// afterwards.
	BlitToEyeTexture(eye Eye, invalidate bool)

	// BindEyeFB binds the render target of eye, for drawing when
	// forWrite is set and for reading otherwise.
	BindEyeFB(eye Eye, forWrite bool)

	// CurrentEye returns the eye rendered most recently.
	CurrentEye() Eye

	// Width returns the width of the eye buffers in pixels.
	Width() int

	// Height returns the height of the eye buffers in pixels.
	Height() int
}

// DrawBuffer selects the back buffer drawing goes to.
type DrawBuffer int

const (
	// Back is the regular back buffer.
	Back DrawBuffer = iota

	// BackLeft is the left back buffer of a quad-buffered context.
	BackLeft

	// BackRight is the right back buffer of a quad-buffered context.
	BackRight
)

// String returns the draw buffer name.
func (b DrawBuffer) String() string {
	switch b {
	case Back:
		return "Back"
	case BackLeft:
		return "BackLeft"
	case BackRight:
		return "BackRight"
	default:
		return fmt.Sprintf("DrawBuffer(%d)", int(b))
	}
}

// TextureBindings is a snapshot of texture unit bindings.
type TextureBindings interface {
	// Restore puts the captured bindings back.
	Restore()
}

// Context is the output-side graphics context used by the presenter.
//
// Context also satisfies hwstereo.Prober so the capability detector can
// probe the output directly.
type Context interface {
	// ClearBorders clears the output outside box to black. Rows below
	// box.Top and above box.Bottom() are cleared when box.Top > 0, columns
	// left of box.Left and right of box.Right() when box.Left > 0.
	ClearBorders(box layout.Rect)

	// SetColorMask restricts which channels subsequent draws write.
	SetColorMask(mask gputypes.ColorWriteMask)

	// SetDrawBuffer selects the back buffer for subsequent draws.
	SetDrawBuffer(buf DrawBuffer)

	// SetViewport sets the viewport of subsequent draws.
	SetViewport(box layout.Rect)

	// SetTextureFilter sets the filtering of the texture bound to unit.
	SetTextureFilter(unit int, min, mag gputypes.FilterMode)

	// SaveTextureBindings captures the bindings of the first n units.
	SaveTextureBindings(n int) TextureBindings

	// DrawPresentTexture draws the texture bound to unit 0 into box,
	// applying display gamma when applyGamma is set.
	DrawPresentTexture(box layout.Rect, applyGamma bool)

	// BindProgram makes p the active program for RenderScreenQuad.
	BindProgram(p *shader.Program)

	// SetUniforms uploads the uniforms of the active program.
	SetUniforms(u shader.Uniforms)

	// RenderScreenQuad draws one quad covering the viewport with the
	// active program.
	RenderScreenQuad()

	// BindDefaultFramebuffer binds the default draw framebuffer.
	BindDefaultFramebuffer()

	// QueryCapability reports whether the bound output has c.
	QueryCapability(c hwstereo.Capability) bool

	// IsHWGammaActive reports whether display gamma is applied by the
	// hardware rather than by the present programs.
	IsHWGammaActive() bool
}

// Ensure Context can drive the capability detector.
var _ hwstereo.Prober = Context(nil)
