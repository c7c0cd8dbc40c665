// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package hwstereo detects hardware quad-buffered stereo support.
//
// Right after the output context is created it may not report its
// capabilities correctly yet. The Detector therefore probes once per frame
// until the context reports double buffering, then resolves the stereo
// capability permanently. Probing stops after MaxProbeAttempts so a context
// that never becomes ready does not cost a query every frame forever; the
// state then stays Unknown, which consumers treat as unsupported.
//
// The detection state is an explicit value owned by the caller and injected
// into the Detector, so it can live for the whole process while remaining
// testable in isolation.
package hwstereo

import (
	"fmt"
)

// MaxProbeAttempts is the number of probes made before the detector gives
// up on an unready context.
const MaxProbeAttempts = 200

// Capability identifies a boolean capability of the output context.
type Capability int

const (
	// CapDoubleBuffer reports double-buffering support. A context that
	// reports it is considered ready.
	CapDoubleBuffer Capability = iota

	// CapStereo reports hardware stereo (separate left and right back
	// buffers).
	CapStereo
)

// String returns the string representation of Capability.
func (c Capability) String() string {
	switch c {
	case CapDoubleBuffer:
		return "DoubleBuffer"
	case CapStereo:
		return "Stereo"
	default:
		return fmt.Sprintf("Capability(%d)", int(c))
	}
}

// Prober queries the default output context.
type Prober interface {
	// BindDefaultFramebuffer makes the window's own framebuffer the draw
	// target, since the question is about the main display context.
	BindDefaultFramebuffer()

	// QueryCapability reports whether the bound context has the capability.
	QueryCapability(c Capability) bool
}

// Detector resolves quad-buffered stereo support with bounded retries.
//
// Detector is NOT safe for concurrent use; it is driven from the
// presentation thread.
type Detector struct {
	state         *State
	onUnsupported func()
}

// NewDetector creates a detector writing into state. onUnsupported, if not
// nil, is called exactly once when the context resolves as lacking stereo
// support, so the display-mode registry can demote quad-buffered stereo.
//
// A nil state gets a fresh State owned by the detector.
func NewDetector(state *State, onUnsupported func()) *Detector {
	if state == nil {
		state = new(State)
	}
	return &Detector{state: state, onUnsupported: onUnsupported}
}

// State returns the state the detector writes into.
func (d *Detector) State() *State {
	return d.state
}

// Check probes p if the state is still unresolved and the attempt budget
// is not exhausted, then reports whether quad-buffered stereo is supported.
// Once resolved, Check never probes again.
func (d *Detector) Check(p Prober) bool {
	s := d.state
	if s.status != Unknown || s.attempts >= MaxProbeAttempts {
		return s.status == Supported
	}

	s.attempts++
	p.BindDefaultFramebuffer()
	if !p.QueryCapability(CapDoubleBuffer) {
		return false
	}

	// The context is ready; this happens once per process.
	if p.QueryCapability(CapStereo) {
		s.status = Supported
		return true
	}

	s.status = Unsupported
	if d.onUnsupported != nil {
		d.onUnsupported()
	}
	return false
}
