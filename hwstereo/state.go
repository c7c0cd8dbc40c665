// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package hwstereo

import "fmt"

// Status is the resolution of the stereo capability.
type Status uint8

const (
	// Unknown means the context has not reported double buffering yet.
	Unknown Status = iota

	// Supported means the context has separate left and right back buffers.
	Supported

	// Unsupported means the context is ready but has no hardware stereo.
	Unsupported
)

// String returns the string representation of Status.
func (s Status) String() string {
	switch s {
	case Unknown:
		return "Unknown"
	case Supported:
		return "Supported"
	case Unsupported:
		return "Unsupported"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// State is the process-wide capability detection state. Transitions only
// go forward: Unknown to Supported or Unknown to Unsupported.
//
// The zero value is Unknown with no attempts made.
type State struct {
	status   Status
	attempts int
}

// Status returns the current resolution.
func (s *State) Status() Status { return s.status }

// Attempts returns the number of probes made so far.
func (s *State) Attempts() int { return s.attempts }

// Resolved reports whether the state has left Unknown.
func (s *State) Resolved() bool { return s.status != Unknown }

// Exhausted reports whether the probe budget ran out without resolving.
func (s *State) Exhausted() bool {
	return s.status == Unknown && s.attempts >= MaxProbeAttempts
}

// String returns a human-readable representation.
func (s *State) String() string {
	return fmt.Sprintf("State(%s, attempts=%d)", s.status, s.attempts)
}
