// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shader

import (
	"encoding/binary"
	"math"
	"testing"
)

func TestUniforms_Bytes(t *testing.T) {
	u := Uniforms{
		InvGamma:             0.5,
		Contrast:             1.25,
		Brightness:           -0.25,
		Saturation:           2,
		GrayFormula:          1,
		HdrMode:              0,
		ColorScale:           255,
		OutputHeight:         600,
		Scale:                [2]float32{0.75, 0.5},
		Offset:               [2]float32{0, 0},
		WindowPositionParity: 1,
	}
	b := u.Bytes()
	if len(b) != UniformSize {
		t.Fatalf("len(Bytes()) = %d, want %d", len(b), UniformSize)
	}

	f := func(off int) float32 { return math.Float32frombits(binary.LittleEndian.Uint32(b[off:])) }
	i := func(off int) int32 { return int32(binary.LittleEndian.Uint32(b[off:])) }

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"InvGamma", float64(f(0)), 0.5},
		{"Contrast", float64(f(4)), 1.25},
		{"Brightness", float64(f(8)), -0.25},
		{"Saturation", float64(f(12)), 2},
		{"GrayFormula", float64(i(16)), 1},
		{"HdrMode", float64(i(20)), 0},
		{"ColorScale", float64(f(24)), 255},
		{"OutputHeight", float64(i(28)), 600},
		{"Scale.X", float64(f(32)), 0.75},
		{"Scale.Y", float64(f(36)), 0.5},
		{"Offset.X", float64(f(40)), 0},
		{"Offset.Y", float64(f(44)), 0},
		{"Parity", float64(i(48)), 1},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestUniforms_BytesNegativeInt(t *testing.T) {
	u := Uniforms{GrayFormula: -1}
	b := u.Bytes()
	if got := int32(binary.LittleEndian.Uint32(b[16:])); got != -1 {
		t.Errorf("GrayFormula = %d, want -1", got)
	}
}
