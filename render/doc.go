// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render defines the graphics boundary of the stereo presenter.
//
// The presenter never owns GPU objects. It receives two collaborators from
// the host application:
//
//   - EyeBuffers: the per-eye render targets and the stable per-eye
//     textures the scene renderer produced
//   - Context: the drawing operations needed to compose those textures
//     into the output surface
//
// # Coordinates
//
// Rectangles passed across the boundary are layout.Rect values with the
// origin at the bottom-left corner of the surface, as in OpenGL viewports.
//
// # Software implementation
//
// Software implements both interfaces on *image.RGBA targets. It is used
// by tests, by the demo command and by hosts without a GPU. Scaling uses
// golang.org/x/image/draw; the interleave programs run through the CPU
// reference of the shader package.
//
//	sw := render.NewSoftware(1280, 720, 1280, 720)
//	// render the left and right eye into sw.EyeTarget(render.Left/Right)
//	presenter, _ := stereo.NewPresenter(sw, sw)
//	presenter.PresentStereo()
//	img := sw.Output(render.Back).Image()
package render
