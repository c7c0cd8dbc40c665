// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package native

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/stereo/shader"
)

// InterleaveResources holds the GPU objects shared by the interleaved
// present modes.
type InterleaveResources struct {
	device   hal.Device
	queue    hal.Queue
	modules  map[shader.Kind]hal.ShaderModule
	sampler  hal.Sampler
	uniforms hal.Buffer
}

// CreateInterleaveResources compiles the row, column and checker programs
// and creates the sampler and uniform buffer they use. Eye textures are
// sampled with nearest filtering so each output pixel maps to exactly one
// eye texel.
func (d *Device) CreateInterleaveResources() (*InterleaveResources, error) {
	r := &InterleaveResources{
		device:  d.device,
		queue:   d.queue,
		modules: make(map[shader.Kind]hal.ShaderModule, 3),
	}

	for _, kind := range []shader.Kind{shader.Row, shader.Column, shader.Checker} {
		prog, err := shader.NewProgram(kind)
		if err != nil {
			r.Destroy()
			return nil, err
		}
		code, err := prog.SPIRV()
		if err != nil {
			r.Destroy()
			return nil, err
		}
		module, err := d.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
			Label: prog.Label(),
			Source: hal.ShaderSource{
				SPIRV: code,
			},
		})
		if err != nil {
			r.Destroy()
			return nil, fmt.Errorf("create %s shader module: %w", prog.Label(), err)
		}
		r.modules[kind] = module
	}

	sampler, err := d.device.CreateSampler(&hal.SamplerDescriptor{
		Label:        "stereo_interleave_sampler",
		AddressModeU: gputypes.AddressModeClampToEdge,
		AddressModeV: gputypes.AddressModeClampToEdge,
		AddressModeW: gputypes.AddressModeClampToEdge,
		MagFilter:    gputypes.FilterModeNearest,
		MinFilter:    gputypes.FilterModeNearest,
		MipmapFilter: gputypes.FilterModeNearest,
	})
	if err != nil {
		r.Destroy()
		return nil, fmt.Errorf("create interleave sampler: %w", err)
	}
	r.sampler = sampler

	buf, err := d.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "stereo_interleave_uniforms",
		Size:  shader.UniformSize,
		Usage: gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		r.Destroy()
		return nil, fmt.Errorf("create interleave uniform buffer: %w", err)
	}
	r.uniforms = buf

	slogger().Debug("native: interleave resources created", "modules", len(r.modules))
	return r, nil
}

// Module returns the shader module of kind, or nil.
func (r *InterleaveResources) Module(kind shader.Kind) hal.ShaderModule {
	return r.modules[kind]
}

// Sampler returns the nearest-filtering eye sampler.
func (r *InterleaveResources) Sampler() hal.Sampler { return r.sampler }

// UniformBuffer returns the uniform buffer.
func (r *InterleaveResources) UniformBuffer() hal.Buffer { return r.uniforms }

// WriteUniforms uploads u into the uniform buffer.
func (r *InterleaveResources) WriteUniforms(u shader.Uniforms) {
	if r.uniforms == nil {
		return
	}
	r.queue.WriteBuffer(r.uniforms, 0, u.Bytes())
}

// Destroy releases all resources. Safe to call more than once.
func (r *InterleaveResources) Destroy() {
	if r.device == nil {
		return
	}
	if r.uniforms != nil {
		r.device.DestroyBuffer(r.uniforms)
		r.uniforms = nil
	}
	if r.sampler != nil {
		r.device.DestroySampler(r.sampler)
		r.sampler = nil
	}
	for kind, m := range r.modules {
		r.device.DestroyShaderModule(m)
		delete(r.modules, kind)
	}
}
