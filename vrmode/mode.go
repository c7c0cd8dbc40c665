// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package vrmode enumerates the stereo display modes and keeps track of the
// active one.
//
// The numeric values of Mode match the integer display-mode setting, so a
// stored setting converts with a plain Mode(n). Values that name no mode
// are tolerated: the presenter treats them as "present nothing extra".
package vrmode

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Mode is a stereo display mode.
type Mode int

// Display modes. Value 10 is unused.
const (
	// Mono renders a single view; stereo presentation is off.
	Mono Mode = 0

	// GreenMagenta is an anaglyph with green for the left eye.
	GreenMagenta Mode = 1

	// RedCyan is an anaglyph with red for the left eye.
	RedCyan Mode = 2

	// SideBySideFull places both eyes next to each other at full aspect.
	SideBySideFull Mode = 3

	// SideBySideSquished places both eyes next to each other, each
	// horizontally compressed to half width upstream.
	SideBySideSquished Mode = 4

	// LeftEyeView renders only the left eye.
	LeftEyeView Mode = 5

	// RightEyeView renders only the right eye.
	RightEyeView Mode = 6

	// QuadStereo uses hardware left and right back buffers.
	QuadStereo Mode = 7

	// SideBySideLetterbox places both eyes next to each other at half
	// height with black bars above and below.
	SideBySideLetterbox Mode = 8

	// AmberBlue is an anaglyph with red and green for the left eye.
	AmberBlue Mode = 9

	// TopBottom stacks the left eye above the right eye.
	TopBottom Mode = 11

	// RowInterleaved alternates eyes per pixel row.
	RowInterleaved Mode = 12

	// ColumnInterleaved alternates eyes per pixel column.
	ColumnInterleaved Mode = 13

	// CheckerInterleaved alternates eyes in a checkerboard pattern.
	CheckerInterleaved Mode = 14

	// HMD submits both eyes to a head-mounted display compositor.
	HMD Mode = 15
)

// ErrUnknownMode is returned by Parse for a name that matches no mode.
var ErrUnknownMode = errors.New("vrmode: unknown mode")

// modeInfo describes a known mode.
type modeInfo struct {
	name     string
	eyeCount int
}

var modes = map[Mode]modeInfo{
	Mono:                {"mono", 1},
	GreenMagenta:        {"green-magenta", 2},
	RedCyan:             {"red-cyan", 2},
	SideBySideFull:      {"side-by-side-full", 2},
	SideBySideSquished:  {"side-by-side-squished", 2},
	LeftEyeView:         {"left-eye", 1},
	RightEyeView:        {"right-eye", 1},
	QuadStereo:          {"quad-stereo", 2},
	SideBySideLetterbox: {"side-by-side-letterbox", 2},
	AmberBlue:           {"amber-blue", 2},
	TopBottom:           {"top-bottom", 2},
	RowInterleaved:      {"row-interleaved", 2},
	ColumnInterleaved:   {"column-interleaved", 2},
	CheckerInterleaved:  {"checker-interleaved", 2},
	HMD:                 {"hmd", 2},
}

// Known reports whether m names a display mode.
func (m Mode) Known() bool {
	_, ok := modes[m]
	return ok
}

// EyeCount returns the number of eye views rendered in mode m.
// Unknown modes render a single view.
func (m Mode) EyeCount() int {
	if info, ok := modes[m]; ok {
		return info.eyeCount
	}
	return 1
}

// String returns the mode name as accepted by Parse.
func (m Mode) String() string {
	if info, ok := modes[m]; ok {
		return info.name
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// All returns every known mode in ascending numeric order.
func All() []Mode {
	out := make([]Mode, 0, len(modes))
	for m := Mono; m <= HMD; m++ {
		if m.Known() {
			out = append(out, m)
		}
	}
	return out
}

// Parse converts a mode name or its integer setting value into a Mode.
// Names are matched case-insensitively.
func Parse(s string) (Mode, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		m := Mode(n)
		if !m.Known() {
			return m, fmt.Errorf("%w: %d", ErrUnknownMode, n)
		}
		return m, nil
	}
	for m, info := range modes {
		if strings.EqualFold(info.name, s) {
			return m, nil
		}
	}
	return Mono, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}
