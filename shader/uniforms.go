// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shader

import (
	"encoding/binary"
	"math"
)

// UniformSize is the size in bytes of the PresentUniforms block.
const UniformSize = 64

// Uniforms is the parameter block of the interleave programs.
type Uniforms struct {
	InvGamma   float32
	Contrast   float32
	Brightness float32
	Saturation float32

	// GrayFormula selects the luminance estimate used by saturation:
	// 0 averages the channels, anything else uses weighted luma.
	GrayFormula int32

	// HdrMode disables quantization when non-zero.
	HdrMode int32

	// ColorScale is the number of quantization steps per channel minus one.
	// Zero disables quantization.
	ColorScale float32

	// OutputHeight is the height of the bound output surface. Fragment
	// rows are flipped against it so patterns count from the bottom.
	OutputHeight int32

	Scale  [2]float32
	Offset [2]float32

	// WindowPositionParity shifts the interleave pattern by one pixel.
	WindowPositionParity int32
}

// Identity returns uniforms that leave colors unchanged apart from
// 8-bit quantization.
func Identity() Uniforms {
	return Uniforms{
		InvGamma:   1,
		Contrast:   1,
		Saturation: 1,
		ColorScale: 255,
		Scale:      [2]float32{1, 1},
	}
}

// Bytes encodes u in the std140-compatible layout of PresentUniforms.
func (u Uniforms) Bytes() []byte {
	b := make([]byte, UniformSize)
	le := binary.LittleEndian
	le.PutUint32(b[0:], math.Float32bits(u.InvGamma))
	le.PutUint32(b[4:], math.Float32bits(u.Contrast))
	le.PutUint32(b[8:], math.Float32bits(u.Brightness))
	le.PutUint32(b[12:], math.Float32bits(u.Saturation))
	le.PutUint32(b[16:], uint32(u.GrayFormula))
	le.PutUint32(b[20:], uint32(u.HdrMode))
	le.PutUint32(b[24:], math.Float32bits(u.ColorScale))
	le.PutUint32(b[28:], uint32(u.OutputHeight))
	le.PutUint32(b[32:], math.Float32bits(u.Scale[0]))
	le.PutUint32(b[36:], math.Float32bits(u.Scale[1]))
	le.PutUint32(b[40:], math.Float32bits(u.Offset[0]))
	le.PutUint32(b[44:], math.Float32bits(u.Offset[1]))
	le.PutUint32(b[48:], uint32(u.WindowPositionParity))
	return b
}
