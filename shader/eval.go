// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shader

import "math"

// Eye indices returned by EyeAt.
const (
	LeftEye  = 0
	RightEye = 1
)

// EyeAt returns the eye shown at output pixel (x, y) by a program of the
// given kind. y counts rows from the bottom of the output surface.
func EyeAt(kind Kind, x, y int, parity int32) int {
	var n int
	switch kind {
	case Row:
		n = y
	case Column:
		n = x
	case Checker:
		n = x + y
	}
	if (n+int(parity))&1 == 0 {
		return LeftEye
	}
	return RightEye
}

// FragmentEye returns the eye a fragment stage picks for the framebuffer
// pixel (px, py), where py counts rows from the top as the fragment
// position does. The row is flipped against u.OutputHeight first.
func FragmentEye(kind Kind, px, py int, u Uniforms) int {
	return EyeAt(kind, px, int(u.OutputHeight)-1-py, u.WindowPositionParity)
}

// Correct applies the color correction of the present programs to an RGB
// color with channels in [0, 1].
func Correct(rgb [3]float32, u Uniforms) [3]float32 {
	var v [3]float64
	for i := range v {
		v[i] = math.Min(float64(rgb[i]), 2)
	}

	var gray float64
	if u.GrayFormula == 0 {
		gray = (v[0] + v[1] + v[2]) / 3
	} else {
		gray = v[0]*0.3 + v[1]*0.56 + v[2]*0.14
	}

	sat := float64(u.Saturation)
	contrast := float64(u.Contrast)
	scale := float64(u.ColorScale)

	var out [3]float32
	for i := range v {
		c := gray + (v[i]-gray)*sat
		c = c*contrast - (contrast-1)*0.5
		c += float64(u.Brightness) * 0.5
		c = math.Pow(math.Max(c, 0), float64(u.InvGamma))
		if u.HdrMode == 0 && scale > 0 {
			c = math.Floor(math.Min(c, 1)*scale+0.5) / scale
		}
		out[i] = float32(c)
	}
	return out
}
