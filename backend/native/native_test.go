// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package native

import (
	"errors"
	"image/color"
	"strings"
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	"github.com/gogpu/wgpu/hal/noop"

	"github.com/gogpu/stereo/hmd"
	"github.com/gogpu/stereo/render"
	"github.com/gogpu/stereo/shader"
)

func createNoopDevice(t *testing.T) (hal.Device, hal.Queue, func()) {
	t.Helper()
	api := noop.API{}
	instance, err := api.CreateInstance(nil)
	if err != nil {
		t.Fatalf("CreateInstance failed: %v", err)
	}
	adapters := instance.EnumerateAdapters(nil)
	openDev, err := adapters[0].Adapter.Open(0, gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		t.Fatalf("Open failed: %v", err)
	}
	cleanup := func() {
		openDev.Device.Destroy()
		instance.Destroy()
	}
	return openDev.Device, openDev.Queue, cleanup
}

// halHost is a device provider exposing HAL objects the way gogpu does.
type halHost struct {
	render.NullDeviceHandle
	device any
	queue  any
	format gputypes.TextureFormat
}

func (h halHost) HalDevice() any                        { return h.device }
func (h halHost) HalQueue() any                         { return h.queue }
func (h halHost) SurfaceFormat() gputypes.TextureFormat { return h.format }

func TestNew(t *testing.T) {
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()

	if _, err := New(nil, queue); !errors.Is(err, ErrNilHALDevice) {
		t.Errorf("New(nil, queue) error = %v, want ErrNilHALDevice", err)
	}
	if _, err := New(device, nil); !errors.Is(err, ErrNilHALQueue) {
		t.Errorf("New(device, nil) error = %v, want ErrNilHALQueue", err)
	}
	d, err := New(device, queue)
	if err != nil {
		t.Fatalf("New error = %v", err)
	}
	if d.Format() != gputypes.TextureFormatRGBA8Unorm {
		t.Errorf("Format() = %v, want RGBA8Unorm", d.Format())
	}
	if d.HalDevice() != device || d.HalQueue() != queue {
		t.Error("device or queue not retained")
	}
}

func TestNewFromProvider(t *testing.T) {
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()

	t.Run("null device", func(t *testing.T) {
		if _, err := NewFromProvider(render.NullDeviceHandle{}); !errors.Is(err, ErrNoHALProvider) {
			t.Errorf("error = %v, want ErrNoHALProvider", err)
		}
	})

	t.Run("wrong device type", func(t *testing.T) {
		_, err := NewFromProvider(halHost{device: "gpu", queue: queue})
		if !errors.Is(err, ErrNilHALDevice) {
			t.Errorf("error = %v, want ErrNilHALDevice", err)
		}
	})

	t.Run("wrong queue type", func(t *testing.T) {
		_, err := NewFromProvider(halHost{device: device, queue: 42})
		if !errors.Is(err, ErrNilHALQueue) {
			t.Errorf("error = %v, want ErrNilHALQueue", err)
		}
	})

	t.Run("surface format", func(t *testing.T) {
		d, err := NewFromProvider(halHost{device: device, queue: queue, format: gputypes.TextureFormatBGRA8Unorm})
		if err != nil {
			t.Fatalf("error = %v", err)
		}
		if d.Format() != gputypes.TextureFormatBGRA8Unorm {
			t.Errorf("Format() = %v, want BGRA8Unorm", d.Format())
		}
	})

	t.Run("undefined format keeps default", func(t *testing.T) {
		d, err := NewFromProvider(halHost{device: device, queue: queue})
		if err != nil {
			t.Fatalf("error = %v", err)
		}
		if d.Format() != gputypes.TextureFormatRGBA8Unorm {
			t.Errorf("Format() = %v, want RGBA8Unorm", d.Format())
		}
	})
}

func TestTextureProvider(t *testing.T) {
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()

	d, err := New(device, queue)
	if err != nil {
		t.Fatal(err)
	}
	sw := render.NewSoftware(16, 8, 16, 8)
	sw.EyeTexture(render.Right).Clear(color.RGBA{G: 0xff, A: 0xff})
	p := NewTextureProvider(d, sw)

	if _, err := p.CreateEyeTexture(hmd.EyeLeft, 0, 8); !errors.Is(err, ErrInvalidTextureSize) {
		t.Errorf("CreateEyeTexture(0x8) error = %v, want ErrInvalidTextureSize", err)
	}

	tex, err := p.CreateEyeTexture(hmd.EyeRight, 32, 16)
	if err != nil {
		t.Fatalf("CreateEyeTexture error = %v", err)
	}
	et := tex.(*EyeTexture)
	if et.Width() != 32 || et.Height() != 16 || et.Eye() != hmd.EyeRight {
		t.Errorf("texture = %dx%d eye %v", et.Width(), et.Height(), et.Eye())
	}
	if et.Raw() == nil || et.View() == nil {
		t.Fatal("texture or view is nil")
	}

	if err := p.CopyEye(hmd.EyeRight, tex); err != nil {
		t.Fatalf("CopyEye error = %v", err)
	}
	if got := et.staging.RGBAAt(16, 8); got.G != 0xff || got.R != 0 {
		t.Errorf("staged pixel = %v, want green", got)
	}

	same, err := p.CreateEyeTexture(hmd.EyeLeft, 16, 8)
	if err != nil {
		t.Fatal(err)
	}
	if err := p.CopyEye(hmd.EyeLeft, same); err != nil {
		t.Fatalf("CopyEye(same size) error = %v", err)
	}

	if err := p.CopyEye(hmd.EyeLeft, foreignTexture{}); !errors.Is(err, ErrForeignTexture) {
		t.Errorf("CopyEye(foreign) error = %v, want ErrForeignTexture", err)
	}

	p.Destroy()
	if et.Raw() != nil || et.View() != nil {
		t.Error("Destroy left resources behind")
	}
	if err := p.CopyEye(hmd.EyeRight, tex); !errors.Is(err, ErrTextureDestroyed) {
		t.Errorf("CopyEye after Destroy error = %v, want ErrTextureDestroyed", err)
	}
	p.Destroy()
}

func TestTextureProvider_BGRA(t *testing.T) {
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()

	d, err := NewFromProvider(halHost{device: device, queue: queue, format: gputypes.TextureFormatBGRA8Unorm})
	if err != nil {
		t.Fatal(err)
	}
	sw := render.NewSoftware(4, 4, 4, 4)
	p := NewTextureProvider(d, sw)
	defer p.Destroy()

	tex, err := p.CreateEyeTexture(hmd.EyeLeft, 4, 4)
	if err != nil {
		t.Fatal(err)
	}
	if err := p.CopyEye(hmd.EyeLeft, tex); err != nil {
		t.Fatalf("CopyEye error = %v", err)
	}
}

type foreignTexture struct{}

func (foreignTexture) Width() int  { return 1 }
func (foreignTexture) Height() int { return 1 }

func TestSwizzleBGRA(t *testing.T) {
	got := swizzleBGRA([]byte{1, 2, 3, 4, 5, 6, 7, 8})
	want := []byte{3, 2, 1, 4, 7, 6, 5, 8}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("swizzleBGRA = %v, want %v", got, want)
		}
	}
}

func TestInterleaveResources(t *testing.T) {
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()

	d, err := New(device, queue)
	if err != nil {
		t.Fatal(err)
	}
	r, err := d.CreateInterleaveResources()
	if err != nil {
		if strings.Contains(err.Error(), "not yet implemented") || strings.Contains(err.Error(), "not supported") {
			t.Skipf("Skipping: naga feature not yet implemented: %v", err)
		}
		t.Fatalf("CreateInterleaveResources error = %v", err)
	}
	defer r.Destroy()

	for _, kind := range []shader.Kind{shader.Row, shader.Column, shader.Checker} {
		if r.Module(kind) == nil {
			t.Errorf("Module(%v) is nil", kind)
		}
	}
	if r.Sampler() == nil {
		t.Error("Sampler() is nil")
	}
	if r.UniformBuffer() == nil {
		t.Error("UniformBuffer() is nil")
	}
	r.WriteUniforms(shader.Identity())

	r.Destroy()
	if r.Sampler() != nil || r.UniformBuffer() != nil || r.Module(shader.Row) != nil {
		t.Error("Destroy left resources behind")
	}
}

func TestSetLogger(t *testing.T) {
	t.Cleanup(func() { SetLogger(nil) })
	SetLogger(nil)
	if slogger() == nil {
		t.Fatal("slogger() is nil after SetLogger(nil)")
	}
}
