// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package hmd

import (
	"errors"
	"fmt"
)

// Session is one connection to the HMD compositor.
//
// A Session starts unstarted. Start is meant to be called on every present
// until it succeeds; after that it is never run again. Eye textures are
// created on first use and reused for every later frame.
//
// Session is NOT safe for concurrent use. It is owned by the presentation
// thread.
type Session struct {
	runtime  Runtime
	textures TextureProvider

	system     System
	compositor Compositor
	started    bool

	width, height int
	eyes          [2]Texture

	poses     []TrackedDevicePose
	head      Vec3
	headValid bool
}

// NewSession creates an unstarted session.
func NewSession(rt Runtime, textures TextureProvider) (*Session, error) {
	if rt == nil {
		return nil, ErrNilRuntime
	}
	if textures == nil {
		return nil, ErrNilTextureProvider
	}
	return &Session{
		runtime:  rt,
		textures: textures,
		poses:    make([]TrackedDevicePose, MaxTrackedDevices),
	}, nil
}

// Started reports whether Start has succeeded.
func (s *Session) Started() bool {
	return s.started
}

// Start connects to the runtime. It returns nil immediately if the session
// is already started.
//
// Returns ErrNoHMD when no headset is connected, an error wrapping the
// runtime's *InitError when initialization fails, and ErrNoCompositor when
// the runtime exposes no compositor. Each of these leaves the session
// unstarted so the next frame tries again.
func (s *Session) Start() error {
	if s.started {
		return nil
	}
	if !s.runtime.IsHMDPresent() {
		return ErrNoHMD
	}

	system, err := s.runtime.Init(AppScene)
	if err != nil {
		var ie *InitError
		if errors.As(err, &ie) {
			slogger().Warn("hmd: runtime init failed",
				"code", ie.Code, "symbol", ie.Symbol, "description", ie.Description)
		} else {
			slogger().Warn("hmd: runtime init failed", "error", err)
		}
		return fmt.Errorf("hmd: init: %w", err)
	}

	compositor := system.Compositor()
	if compositor == nil {
		slogger().Warn("hmd: runtime has no compositor")
		return ErrNoCompositor
	}

	s.system = system
	s.compositor = compositor
	s.width, s.height = system.RecommendedRenderTargetSize()
	s.started = true

	slogger().Info("hmd: session started", "width", s.width, "height", s.height)
	return nil
}

// RenderTargetSize returns the per-eye size recommended by the headset.
// Both values are zero before Start succeeds.
func (s *Session) RenderTargetSize() (width, height int) {
	return s.width, s.height
}

// EyeTexture returns the texture of eye, or nil if it has not been
// created yet.
func (s *Session) EyeTexture(eye Eye) Texture {
	if eye != EyeLeft && eye != EyeRight {
		return nil
	}
	return s.eyes[eye]
}

// PresentEye copies the rendered image of eye into its texture and submits
// it to the compositor. The texture is created on the first call.
//
// A non-success submission is logged and returned as a CompositorError;
// the eye is skipped for this frame and nothing is retried.
func (s *Session) PresentEye(eye Eye) error {
	if !s.started {
		return ErrNotStarted
	}
	if eye != EyeLeft && eye != EyeRight {
		return fmt.Errorf("hmd: invalid eye %d", int(eye))
	}

	tex := s.eyes[eye]
	if tex == nil {
		var err error
		tex, err = s.textures.CreateEyeTexture(eye, s.width, s.height)
		if err != nil {
			slogger().Warn("hmd: eye texture creation failed", "eye", eye, "error", err)
			return fmt.Errorf("hmd: create %s eye texture: %w", eye, err)
		}
		s.eyes[eye] = tex
		slogger().Debug("hmd: eye texture created", "eye", eye, "width", s.width, "height", s.height)
	}

	if err := s.textures.CopyEye(eye, tex); err != nil {
		slogger().Warn("hmd: eye copy failed", "eye", eye, "error", err)
		return fmt.Errorf("hmd: copy %s eye: %w", eye, err)
	}

	if code := s.compositor.Submit(eye, tex); !code.OK() {
		slogger().Warn("hmd: compositor submit failed", "eye", eye, "code", int(code), "status", code.String())
		return code
	}
	return nil
}

// WaitGetPoses retrieves the tracked device poses for the frame. It blocks
// for at most one frame interval by contract of the runtime.
//
// On a non-success status the poses are discarded, the failure is logged
// and returned. When the headset pose is valid its orientation becomes
// available from HeadOrientation.
//
// The returned slice is reused by the next call.
func (s *Session) WaitGetPoses() ([]TrackedDevicePose, error) {
	if !s.started {
		return nil, ErrNotStarted
	}

	if code := s.compositor.WaitGetPoses(s.poses); !code.OK() {
		slogger().Warn("hmd: compositor WaitGetPoses failed", "code", int(code), "status", code.String())
		s.headValid = false
		return nil, code
	}

	hmdPose := s.poses[HMDDeviceIndex]
	s.headValid = hmdPose.Valid
	if hmdPose.Valid {
		s.head = EulerFromMatrix(hmdPose.DeviceToAbsolute)
	}
	return s.poses, nil
}

// HeadOrientation returns the yaw, pitch and roll of the headset from the
// last successful WaitGetPoses, and whether that pose was valid.
func (s *Session) HeadOrientation() (Vec3, bool) {
	return s.head, s.headValid
}
