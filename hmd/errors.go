// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package hmd

import (
	"errors"
	"fmt"
)

// Session errors.
var (
	// ErrNoHMD is returned by Start when no headset is connected.
	ErrNoHMD = errors.New("hmd: no headset present")

	// ErrNoCompositor is returned when the runtime has no compositor.
	ErrNoCompositor = errors.New("hmd: compositor not available")

	// ErrNotStarted is returned by frame operations before Start succeeded.
	ErrNotStarted = errors.New("hmd: session not started")

	// ErrNilRuntime is returned by NewSession for a nil runtime.
	ErrNilRuntime = errors.New("hmd: nil runtime")

	// ErrNilTextureProvider is returned by NewSession for a nil texture provider.
	ErrNilTextureProvider = errors.New("hmd: nil texture provider")
)

// InitError is a runtime initialization failure.
type InitError struct {
	// Code is the runtime's numeric error code.
	Code int

	// Symbol is the symbolic name of the code.
	Symbol string

	// Description is the human-readable explanation.
	Description string
}

// Error implements the error interface.
func (e *InitError) Error() string {
	if e.Symbol == "" && e.Description == "" {
		return fmt.Sprintf("hmd: init error %d", e.Code)
	}
	return fmt.Sprintf("hmd: %s %s", e.Symbol, e.Description)
}

// CompositorError is the status code returned by compositor calls.
type CompositorError int

// Compositor status codes.
const (
	CompositorErrorNone                         CompositorError = 0
	CompositorErrorRequestFailed                CompositorError = 1
	CompositorErrorIncompatibleVersion          CompositorError = 100
	CompositorErrorDoNotHaveFocus               CompositorError = 101
	CompositorErrorInvalidTexture               CompositorError = 102
	CompositorErrorIsNotSceneApplication        CompositorError = 103
	CompositorErrorTextureIsOnWrongDevice       CompositorError = 104
	CompositorErrorTextureUsesUnsupportedFormat CompositorError = 105
	CompositorErrorSharedTexturesNotSupported   CompositorError = 106
	CompositorErrorIndexOutOfRange              CompositorError = 107
	CompositorErrorAlreadySubmitted             CompositorError = 108
)

// OK reports whether e is CompositorErrorNone.
func (e CompositorError) OK() bool { return e == CompositorErrorNone }

// String returns the string representation of CompositorError.
func (e CompositorError) String() string {
	switch e {
	case CompositorErrorNone:
		return "None"
	case CompositorErrorRequestFailed:
		return "RequestFailed"
	case CompositorErrorIncompatibleVersion:
		return "IncompatibleVersion"
	case CompositorErrorDoNotHaveFocus:
		return "DoNotHaveFocus"
	case CompositorErrorInvalidTexture:
		return "InvalidTexture"
	case CompositorErrorIsNotSceneApplication:
		return "IsNotSceneApplication"
	case CompositorErrorTextureIsOnWrongDevice:
		return "TextureIsOnWrongDevice"
	case CompositorErrorTextureUsesUnsupportedFormat:
		return "TextureUsesUnsupportedFormat"
	case CompositorErrorSharedTexturesNotSupported:
		return "SharedTexturesNotSupported"
	case CompositorErrorIndexOutOfRange:
		return "IndexOutOfRange"
	case CompositorErrorAlreadySubmitted:
		return "AlreadySubmitted"
	default:
		return fmt.Sprintf("CompositorError(%d)", int(e))
	}
}

// Error implements the error interface.
func (e CompositorError) Error() string {
	return fmt.Sprintf("hmd: compositor error %d (%s)", int(e), e.String())
}
