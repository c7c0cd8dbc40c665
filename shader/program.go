// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package shader holds the interleaved stereo present programs.
//
// Each program is a WGSL module made of a shared prelude (uniform block,
// full-screen vertex stage, color correction) and a fragment stage that
// picks the eye from the fragment position. Programs compile to SPIR-V
// through naga. EyeAt and Correct reproduce the fragment rules on the
// CPU for software rendering and tests.
package shader

import (
	_ "embed"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/gogpu/naga"
)

//go:embed shaders/present.wgsl
var presentPrelude string

//go:embed shaders/row.wgsl
var rowFragment string

//go:embed shaders/column.wgsl
var columnFragment string

//go:embed shaders/checker.wgsl
var checkerFragment string

// ErrUnknownKind is returned for a Kind with no program.
var ErrUnknownKind = errors.New("shader: unknown program kind")

// Kind selects the interleave pattern of a program.
type Kind uint8

const (
	// Row alternates eyes per pixel row.
	Row Kind = iota

	// Column alternates eyes per pixel column.
	Column

	// Checker alternates eyes in a checkerboard.
	Checker
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Row:
		return "Row"
	case Column:
		return "Column"
	case Checker:
		return "Checker"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Entry points shared by every program.
const (
	VertexEntryPoint   = "vs_main"
	FragmentEntryPoint = "fs_main"
)

// Program is an interleaved present program.
type Program struct {
	kind   Kind
	source string
	spirv  []uint32
}

// NewProgram returns the program for kind. Compilation is deferred until
// SPIRV is first called.
func NewProgram(kind Kind) (*Program, error) {
	var frag string
	switch kind {
	case Row:
		frag = rowFragment
	case Column:
		frag = columnFragment
	case Checker:
		frag = checkerFragment
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, kind)
	}
	return &Program{kind: kind, source: presentPrelude + "\n" + frag}, nil
}

// Kind returns the interleave pattern.
func (p *Program) Kind() Kind { return p.kind }

// Label returns a debug label for GPU objects created from p.
func (p *Program) Label() string {
	return "stereo_interleave_" + p.kind.String()
}

// Source returns the complete WGSL source.
func (p *Program) Source() string { return p.source }

// SPIRV compiles the program on first use and returns the SPIR-V words.
func (p *Program) SPIRV() ([]uint32, error) {
	if p.spirv != nil {
		return p.spirv, nil
	}
	code, err := Compile(p.source)
	if err != nil {
		return nil, fmt.Errorf("shader: %s: %w", p.kind, err)
	}
	p.spirv = code
	return code, nil
}

// Compile compiles WGSL source to SPIR-V words.
func Compile(wgsl string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(wgsl)
	if err != nil {
		return nil, fmt.Errorf("failed to compile shader: %w", err)
	}
	if len(spirvBytes)%4 != 0 {
		return nil, fmt.Errorf("failed to compile shader: SPIR-V length %d not a multiple of 4", len(spirvBytes))
	}

	// SPIR-V is a stream of little-endian 32-bit words.
	code := make([]uint32, len(spirvBytes)/4)
	for i := range code {
		code[i] = binary.LittleEndian.Uint32(spirvBytes[i*4:])
	}
	return code, nil
}
