package stereo

import (
	"github.com/gogpu/stereo/layout"
	"github.com/gogpu/stereo/shader"
)

// Correction holds the display color settings applied by the interleaved
// present modes.
type Correction struct {
	// Gamma is the display gamma; the programs apply its inverse.
	Gamma float32

	// Contrast scales colors around mid gray.
	Contrast float32

	// Brightness adds a constant offset.
	Brightness float32

	// Saturation mixes between gray (0) and the original color (1).
	// Values outside [0, 1] desaturate past gray or oversaturate.
	Saturation float32

	// GrayFormula selects the gray estimate of saturation: 0 averages
	// the channels, 1 uses weighted luma.
	GrayFormula int32

	// DitherBits is the quantization depth per channel;
	// -1 selects 8 bits, 0 disables quantization.
	DitherBits int
}

// DefaultCorrection returns settings that leave colors unchanged.
func DefaultCorrection() Correction {
	return Correction{
		Gamma:       1,
		Contrast:    1,
		Brightness:  0,
		Saturation:  1,
		GrayFormula: 0,
		DitherBits:  -1,
	}
}

// maxDitherBits bounds the quantization depth.
const maxDitherBits = 16

// interleaveUniforms builds the uniforms of an interleaved present.
// With hardware gamma active the color terms are neutral: the display
// applies the correction itself.
func interleaveUniforms(c Correction, hwGamma bool, screen layout.Rect, bufW, bufH int) shader.Uniforms {
	var u shader.Uniforms
	if hwGamma {
		u.InvGamma = 1
		u.Contrast = 1
		u.Brightness = 0
		u.Saturation = 1
	} else {
		u.InvGamma = 1 / clampf(c.Gamma, 0.1, 4)
		u.Contrast = clampf(c.Contrast, 0.1, 3)
		u.Brightness = clampf(c.Brightness, -0.8, 0.8)
		u.Saturation = clampf(c.Saturation, -15, 15)
		u.GrayFormula = c.GrayFormula
	}
	u.HdrMode = 0
	u.ColorScale = colorScale(c.DitherBits)
	u.Scale = [2]float32{ratio(screen.Width, bufW), ratio(screen.Height, bufH)}
	u.Offset = [2]float32{0, 0}
	return u
}

// colorScale maps a dither depth to the quantization scale.
func colorScale(bits int) float32 {
	if bits == -1 {
		return 255
	}
	bits = min(max(bits, 0), maxDitherBits)
	return float32(int(1)<<bits - 1)
}

// ratio returns num/den, or 1 for an empty denominator.
func ratio(num, den int) float32 {
	if den <= 0 {
		return 1
	}
	return float32(num) / float32(den)
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
