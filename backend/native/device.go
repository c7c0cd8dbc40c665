// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package native provides the GPU resources of the stereo presenter on
// gogpu/wgpu HAL.
//
// The host application owns the device. Device wraps the HAL device and
// queue received from it and creates:
//
//   - HMD eye textures, filled from the presenter's eye textures through
//     queue.WriteTexture (TextureProvider implements hmd.TextureProvider)
//   - the interleave program resources: one shader module per pattern,
//     a nearest-filtering sampler and the uniform buffer
package native

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/stereo/render"
)

var (
	// ErrNilHALDevice is returned when no HAL device is available.
	ErrNilHALDevice = errors.New("native: HAL device is nil")

	// ErrNilHALQueue is returned when no HAL queue is available.
	ErrNilHALQueue = errors.New("native: HAL queue is nil")

	// ErrNoHALProvider is returned by NewFromProvider for providers that
	// do not expose HAL types.
	ErrNoHALProvider = errors.New("native: provider does not expose HAL types")
)

// Device is a borrowed HAL device and queue.
type Device struct {
	device hal.Device
	queue  hal.Queue
	format gputypes.TextureFormat
}

// New wraps a HAL device and queue. The device is not destroyed by the
// presenter.
func New(device hal.Device, queue hal.Queue) (*Device, error) {
	if device == nil {
		return nil, ErrNilHALDevice
	}
	if queue == nil {
		return nil, ErrNilHALQueue
	}
	return &Device{
		device: device,
		queue:  queue,
		format: gputypes.TextureFormatRGBA8Unorm,
	}, nil
}

// NewFromProvider extracts the HAL device and queue from a host device
// provider. Providers expose them through HalDevice and HalQueue methods.
// The surface format of the provider, when defined, becomes the format of
// eye textures.
func NewFromProvider(provider render.DeviceHandle) (*Device, error) {
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, ErrNoHALProvider
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, fmt.Errorf("%w: HalDevice is not hal.Device", ErrNilHALDevice)
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, fmt.Errorf("%w: HalQueue is not hal.Queue", ErrNilHALQueue)
	}

	d, err := New(device, queue)
	if err != nil {
		return nil, err
	}
	if f := provider.SurfaceFormat(); f != gputypes.TextureFormatUndefined {
		d.format = f
	}
	slogger().Debug("native: device from provider", "format", d.format)
	return d, nil
}

// Format returns the format of eye textures.
func (d *Device) Format() gputypes.TextureFormat { return d.format }

// HalDevice returns the wrapped HAL device.
func (d *Device) HalDevice() hal.Device { return d.device }

// HalQueue returns the wrapped HAL queue.
func (d *Device) HalQueue() hal.Queue { return d.queue }
