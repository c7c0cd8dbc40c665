// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package native

import (
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	"golang.org/x/image/draw"

	"github.com/gogpu/stereo/hmd"
	"github.com/gogpu/stereo/render"
)

var (
	// ErrInvalidTextureSize is returned when texture dimensions are invalid.
	ErrInvalidTextureSize = errors.New("native: invalid texture size")

	// ErrForeignTexture is returned by CopyEye for a texture not created
	// by this provider.
	ErrForeignTexture = errors.New("native: texture not created by this provider")

	// ErrTextureDestroyed is returned when operating on a destroyed texture.
	ErrTextureDestroyed = errors.New("native: texture has been destroyed")
)

// EyeTexture is a GPU texture holding one eye image for the HMD
// compositor.
type EyeTexture struct {
	eye    hmd.Eye
	tex    hal.Texture
	view   hal.TextureView
	width  int
	height int

	// staging holds the eye pixels scaled to the texture size.
	staging *image.RGBA
}

// Width returns the texture width in pixels.
func (t *EyeTexture) Width() int { return t.width }

// Height returns the texture height in pixels.
func (t *EyeTexture) Height() int { return t.height }

// Eye returns the eye the texture belongs to.
func (t *EyeTexture) Eye() hmd.Eye { return t.eye }

// Raw returns the HAL texture, or nil after Destroy.
func (t *EyeTexture) Raw() hal.Texture { return t.tex }

// View returns the default view, or nil after Destroy.
func (t *EyeTexture) View() hal.TextureView { return t.view }

// EyeSource provides the stable per-eye textures of the presenter.
// render.Software satisfies it.
type EyeSource interface {
	EyeTexture(eye render.Eye) *render.Target
}

// TextureProvider creates HMD eye textures on the GPU and uploads eye
// images into them. It implements hmd.TextureProvider.
type TextureProvider struct {
	dev      *Device
	source   EyeSource
	textures []*EyeTexture
}

// NewTextureProvider creates a provider uploading from source.
func NewTextureProvider(dev *Device, source EyeSource) *TextureProvider {
	return &TextureProvider{dev: dev, source: source}
}

// CreateEyeTexture creates a sampled, copy-destination texture for eye.
func (p *TextureProvider) CreateEyeTexture(eye hmd.Eye, width, height int) (hmd.Texture, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidTextureSize, width, height)
	}
	label := fmt.Sprintf("stereo_hmd_eye_%d", int(eye))

	tex, err := p.dev.device.CreateTexture(&hal.TextureDescriptor{
		Label: label,
		Size: hal.Extent3D{
			Width:              uint32(width),
			Height:             uint32(height),
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        p.dev.format,
		Usage:         gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst | gputypes.TextureUsageCopySrc,
	})
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", label, err)
	}

	view, err := p.dev.device.CreateTextureView(tex, &hal.TextureViewDescriptor{
		Label:         label + "_view",
		Format:        p.dev.format,
		Dimension:     gputypes.TextureViewDimension2D,
		Aspect:        gputypes.TextureAspectAll,
		MipLevelCount: 1,
	})
	if err != nil {
		p.dev.device.DestroyTexture(tex)
		return nil, fmt.Errorf("create %s view: %w", label, err)
	}

	et := &EyeTexture{
		eye:     eye,
		tex:     tex,
		view:    view,
		width:   width,
		height:  height,
		staging: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
	p.textures = append(p.textures, et)
	slogger().Debug("native: created HMD eye texture", "eye", int(eye), "width", width, "height", height)
	return et, nil
}

// CopyEye uploads the stable texture of eye into tex, scaling it to the
// texture size.
func (p *TextureProvider) CopyEye(eye hmd.Eye, tex hmd.Texture) error {
	et, ok := tex.(*EyeTexture)
	if !ok {
		return ErrForeignTexture
	}
	if et.tex == nil {
		return ErrTextureDestroyed
	}

	src := p.source.EyeTexture(render.Eye(eye)).Image()
	if src.Bounds().Size() == et.staging.Bounds().Size() {
		copy(et.staging.Pix, src.Pix)
	} else {
		draw.ApproxBiLinear.Scale(et.staging, et.staging.Bounds(), src, src.Bounds(), draw.Src, nil)
	}
	pixels := et.staging.Pix
	if p.dev.format == gputypes.TextureFormatBGRA8Unorm {
		pixels = swizzleBGRA(pixels)
	}

	p.dev.queue.WriteTexture(
		&hal.ImageCopyTexture{
			Texture:  et.tex,
			MipLevel: 0,
		},
		pixels,
		&hal.ImageDataLayout{
			Offset:       0,
			BytesPerRow:  uint32(et.width * 4),
			RowsPerImage: uint32(et.height),
		},
		&hal.Extent3D{Width: uint32(et.width), Height: uint32(et.height), DepthOrArrayLayers: 1},
	)
	return nil
}

// Destroy releases every texture created by the provider.
func (p *TextureProvider) Destroy() {
	for _, t := range p.textures {
		if t.view != nil {
			p.dev.device.DestroyTextureView(t.view)
			t.view = nil
		}
		if t.tex != nil {
			p.dev.device.DestroyTexture(t.tex)
			t.tex = nil
		}
	}
	p.textures = nil
}

// swizzleBGRA returns a copy of RGBA pixels in BGRA order.
func swizzleBGRA(rgba []byte) []byte {
	out := make([]byte, len(rgba))
	for i := 0; i+3 < len(rgba); i += 4 {
		out[i+0] = rgba[i+2]
		out[i+1] = rgba[i+1]
		out[i+2] = rgba[i+0]
		out[i+3] = rgba[i+3]
	}
	return out
}

// Ensure TextureProvider implements hmd.TextureProvider.
var _ hmd.TextureProvider = (*TextureProvider)(nil)
