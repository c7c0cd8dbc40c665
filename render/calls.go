// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/stereo/layout"
	"github.com/gogpu/stereo/shader"
)

// Operation names recorded by Software.
const (
	OpBindOutputFB           = "BindOutputFB"
	OpBindEyeTexture         = "BindEyeTexture"
	OpBlitToEyeTexture       = "BlitToEyeTexture"
	OpBindEyeFB              = "BindEyeFB"
	OpClearBorders           = "ClearBorders"
	OpSetColorMask           = "SetColorMask"
	OpSetDrawBuffer          = "SetDrawBuffer"
	OpSetViewport            = "SetViewport"
	OpSetTextureFilter       = "SetTextureFilter"
	OpSaveTextureBindings    = "SaveTextureBindings"
	OpRestoreTextureBindings = "RestoreTextureBindings"
	OpDrawPresentTexture     = "DrawPresentTexture"
	OpBindProgram            = "BindProgram"
	OpSetUniforms            = "SetUniforms"
	OpRenderScreenQuad       = "RenderScreenQuad"
	OpBindDefaultFramebuffer = "BindDefaultFramebuffer"
	OpQueryCapability        = "QueryCapability"
	OpCreateEyeTexture       = "CreateEyeTexture"
	OpCopyEye                = "CopyEye"
)

// Call is one recorded boundary call. Only the fields relevant to Op are
// set.
type Call struct {
	Op string

	Eye  Eye
	Unit int
	Rect layout.Rect
	Flag bool

	Mask     gputypes.ColorWriteMask
	Buffer   DrawBuffer
	Min, Mag gputypes.FilterMode
	Program  shader.Kind
	Uniforms shader.Uniforms

	// Tex is the texture sampled or written by the call.
	Tex *Target
}

// Calls returns a copy of the recorded calls.
func (s *Software) Calls() []Call {
	out := make([]Call, len(s.calls))
	copy(out, s.calls)
	return out
}

// CallsOf returns the recorded calls with the given operation.
func (s *Software) CallsOf(op string) []Call {
	var out []Call
	for _, c := range s.calls {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

// Ops returns the operation names of the recorded calls in order.
func (s *Software) Ops() []string {
	out := make([]string, len(s.calls))
	for i, c := range s.calls {
		out[i] = c.Op
	}
	return out
}

// ResetCalls discards the recorded calls.
func (s *Software) ResetCalls() {
	s.calls = s.calls[:0]
}
