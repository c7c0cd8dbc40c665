// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package hmd

import (
	"fmt"
)

// Eye identifies one of the two headset displays.
type Eye int

const (
	// EyeLeft is the left eye.
	EyeLeft Eye = iota

	// EyeRight is the right eye.
	EyeRight
)

// String returns the string representation of Eye.
func (e Eye) String() string {
	switch e {
	case EyeLeft:
		return "Left"
	case EyeRight:
		return "Right"
	default:
		return fmt.Sprintf("Eye(%d)", int(e))
	}
}

// AppType is the application type announced to the runtime on
// initialization.
type AppType int

const (
	// AppScene is a 3D application that renders the scene itself and
	// submits eye images to the compositor.
	AppScene AppType = iota + 1

	// AppOverlay is an overlay drawn on top of another scene application.
	AppOverlay

	// AppBackground is an application without display output.
	AppBackground
)

// MaxTrackedDevices is the number of tracked device slots requested from
// WaitGetPoses.
const MaxTrackedDevices = 64

// HMDDeviceIndex is the tracked-device slot of the headset itself.
const HMDDeviceIndex = 0

// TrackedDevicePose is the pose of one tracked device for the frame.
type TrackedDevicePose struct {
	// DeviceToAbsolute transforms device space into tracking space.
	DeviceToAbsolute Mat34

	// Velocity is the linear velocity in tracking space, in m/s.
	Velocity Vec3

	// AngularVelocity is the angular velocity in radians/s.
	AngularVelocity Vec3

	// Valid reports whether the pose could be determined.
	Valid bool

	// Connected reports whether the device is connected.
	Connected bool
}

// Texture is an eye image handle understood by the compositor.
type Texture interface {
	// Width returns the texture width in pixels.
	Width() int

	// Height returns the texture height in pixels.
	Height() int
}

// Runtime is the entry point of an HMD SDK binding.
type Runtime interface {
	// IsHMDPresent reports whether a headset is connected.
	IsHMDPresent() bool

	// Init connects to the runtime. A non-nil error is an *InitError or
	// wraps one.
	Init(app AppType) (System, error)
}

// System is an initialized runtime connection.
type System interface {
	// RecommendedRenderTargetSize returns the per-eye render target size
	// preferred by the headset.
	RecommendedRenderTargetSize() (width, height int)

	// Compositor returns the compositor, or nil if it is not available.
	Compositor() Compositor
}

// Compositor accepts eye images and reports tracked poses.
type Compositor interface {
	// Submit hands the eye image to the compositor for the next frame.
	Submit(eye Eye, tex Texture) CompositorError

	// WaitGetPoses blocks until the compositor is ready for the next frame
	// (at most one frame interval) and fills poses.
	WaitGetPoses(poses []TrackedDevicePose) CompositorError
}

// TextureProvider creates eye textures and fills them from the rendered
// eye buffers.
type TextureProvider interface {
	// CreateEyeTexture allocates a texture for eye.
	CreateEyeTexture(eye Eye, width, height int) (Texture, error)

	// CopyEye copies the eye's rendered color buffer into tex.
	CopyEye(eye Eye, tex Texture) error
}
