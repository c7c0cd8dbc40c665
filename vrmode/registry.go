// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package vrmode

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrModeUnavailable is returned by SetActive for a mode the current
// display cannot show.
var ErrModeUnavailable = errors.New("vrmode: mode unavailable")

// Entry describes a registered display mode.
type Entry struct {
	// Mode is the display mode.
	Mode Mode

	// Available reports if the mode can be shown on this system.
	Available func() bool
}

// Registry tracks which modes are available and which one is active.
//
// Registry is safe for concurrent use: configuration front-ends may read
// it while the presentation thread switches or demotes modes.
type Registry struct {
	mu      sync.RWMutex
	entries map[Mode]*Entry
	active  Mode

	quadBuffered bool
	hmdSupported bool

	onChange func(from, to Mode)
}

// Option configures a Registry.
type Option func(*Registry)

// WithHMDSupport marks HMD output as present or absent. Without HMD
// support the HMD mode is unavailable.
func WithHMDSupport(supported bool) Option {
	return func(r *Registry) {
		r.hmdSupported = supported
	}
}

// WithActive sets the initially active mode.
func WithActive(m Mode) Option {
	return func(r *Registry) {
		r.active = m
	}
}

// WithChangeListener registers fn to be called whenever the active mode
// changes, including demotions.
func WithChangeListener(fn func(from, to Mode)) Option {
	return func(r *Registry) {
		r.onChange = fn
	}
}

// NewRegistry creates a registry holding every known mode, with Mono
// active. Quad-buffered stereo starts out available until Recompute is
// told otherwise.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		entries:      make(map[Mode]*Entry),
		quadBuffered: true,
	}
	for _, m := range All() {
		r.register(m)
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// register adds the built-in availability rule for m.
func (r *Registry) register(m Mode) {
	var available func() bool
	switch m {
	case QuadStereo:
		available = func() bool { return r.quadBuffered }
	case HMD:
		available = func() bool { return r.hmdSupported }
	default:
		available = func() bool { return true }
	}
	r.entries[m] = &Entry{Mode: m, Available: available}
}

// Active returns the active mode.
func (r *Registry) Active() Mode {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.active
}

// EyeCount returns the number of eye views of the active mode.
func (r *Registry) EyeCount() int {
	return r.Active().EyeCount()
}

// SetActive switches the active mode.
//
// A known mode that is currently unavailable is rejected with
// ErrModeUnavailable. A value that names no mode is stored as-is: a
// mismatched setting is not an error, the presenter simply shows nothing
// extra for it.
func (r *Registry) SetActive(m Mode) error {
	r.mu.Lock()
	if e, ok := r.entries[m]; ok && !e.Available() {
		r.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrModeUnavailable, m)
	}
	from := r.active
	r.active = m
	fn := r.onChange
	r.mu.Unlock()

	if fn != nil && from != m {
		fn(from, m)
	}
	return nil
}

// IsAvailable reports whether m is known and can be shown.
func (r *Registry) IsAvailable(m Mode) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[m]
	return ok && e.Available()
}

// Available returns all available modes in ascending numeric order.
func (r *Registry) Available() []Mode {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Mode, 0, len(r.entries))
	for m, e := range r.entries {
		if e.Available() {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Get returns a snapshot of the entry for m. Its Available reports the
// availability at the time of the call; later Recompute calls do not
// change it.
func (r *Registry) Get(m Mode) (*Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[m]
	if !ok {
		return nil, false
	}
	available := e.Available()
	return &Entry{Mode: e.Mode, Available: func() bool { return available }}, true
}

// Recompute rebuilds mode availability. Passing false for
// considerQuadBuffered removes quad-buffered stereo, which is what the
// capability detector does once the display turns out not to support it.
// If the active mode became unavailable the registry falls back to Mono.
func (r *Registry) Recompute(considerQuadBuffered bool) {
	r.mu.Lock()
	r.quadBuffered = considerQuadBuffered

	from := r.active
	demoted := false
	if e, ok := r.entries[from]; ok && !e.Available() {
		r.active = Mono
		demoted = true
	}
	fn := r.onChange
	r.mu.Unlock()

	if demoted && fn != nil {
		fn(from, Mono)
	}
}
