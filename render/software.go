// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/gputypes"
	"golang.org/x/image/draw"

	"github.com/gogpu/stereo/hmd"
	"github.com/gogpu/stereo/hwstereo"
	"github.com/gogpu/stereo/internal/parallel"
	"github.com/gogpu/stereo/layout"
	"github.com/gogpu/stereo/shader"
)

// MaxTextureUnits is the number of texture units of the software context.
const MaxTextureUnits = 8

// ErrForeignTexture is returned by CopyEye for a texture the software
// implementation did not create.
var ErrForeignTexture = errors.New("render: texture not created by this backend")

// unit is the state of one texture unit.
type unit struct {
	tex      *Target
	min, mag gputypes.FilterMode
}

// Software implements EyeBuffers and Context on CPU targets.
//
// Besides drawing, Software records every boundary call so the sequence
// issued by the presenter can be inspected. It also implements
// hmd.TextureProvider, handing out Target-backed HMD eye textures.
//
// Software is not safe for concurrent use. Its per-pixel passes run on
// worker goroutines after SetWorkers.
type Software struct {
	eyeTargets  [2]*Target
	eyeTextures [2]*Target
	current     Eye

	back      *Target
	backRight *Target
	drawFB    *Target
	drawBuf   DrawBuffer

	mask     gputypes.ColorWriteMask
	viewport layout.Rect
	units    [MaxTextureUnits]unit
	program  *shader.Program
	uniforms shader.Uniforms
	gamma    shader.Uniforms

	doubleBuffer bool
	stereo       bool
	readyAfter   int
	probes       int
	hwGamma      bool

	pool  *parallel.WorkerPool
	calls []Call
}

// NewSoftware creates a software context with eye buffers of eyeW x eyeH
// and an output surface of outW x outH. The output reports double
// buffering without hardware stereo.
func NewSoftware(eyeW, eyeH, outW, outH int) *Software {
	s := &Software{
		back:         NewTarget(outW, outH),
		backRight:    NewTarget(outW, outH),
		mask:         gputypes.ColorWriteMaskAll,
		viewport:     layout.NewRect(0, 0, outW, outH),
		gamma:        shader.Identity(),
		doubleBuffer: true,
	}
	for i := range s.eyeTargets {
		s.eyeTargets[i] = NewTarget(eyeW, eyeH)
		s.eyeTextures[i] = NewTarget(eyeW, eyeH)
	}
	for i := range s.units {
		s.units[i].min = gputypes.FilterModeLinear
		s.units[i].mag = gputypes.FilterModeLinear
	}
	s.drawFB = s.back
	return s
}

// DeviceHandle returns the null device; the software context has no GPU.
func (s *Software) DeviceHandle() DeviceHandle { return NullDeviceHandle{} }

// EyeTarget returns the render target of eye.
func (s *Software) EyeTarget(eye Eye) *Target { return s.eyeTargets[eye&1] }

// EyeTexture returns the stable texture of eye.
func (s *Software) EyeTexture(eye Eye) *Target { return s.eyeTextures[eye&1] }

// Output returns the output back buffer selected by buf.
func (s *Software) Output(buf DrawBuffer) *Target {
	if buf == BackRight {
		return s.backRight
	}
	return s.back
}

// SetCurrentEye sets the eye reported by CurrentEye.
func (s *Software) SetCurrentEye(eye Eye) { s.current = eye }

// SetCapabilities configures the output capabilities reported to
// QueryCapability.
func (s *Software) SetCapabilities(doubleBuffer, stereo bool) {
	s.doubleBuffer = doubleBuffer
	s.stereo = stereo
}

// SetReadyAfter makes the double-buffer query fail for the first n
// probes, the way a freshly created window does before it is realized.
func (s *Software) SetReadyAfter(n int) { s.readyAfter = n }

// SetHWGamma sets the result of IsHWGammaActive.
func (s *Software) SetHWGamma(active bool) { s.hwGamma = active }

// SetPresentGamma sets the correction applied by DrawPresentTexture when
// called with applyGamma.
func (s *Software) SetPresentGamma(u shader.Uniforms) { s.gamma = u }

// SetWorkers runs DrawPresentTexture and RenderScreenQuad on n worker
// goroutines, one band of rows each. n <= 1 renders on the calling
// goroutine.
func (s *Software) SetWorkers(n int) {
	s.Close()
	if n > 1 {
		s.pool = parallel.NewWorkerPool(n)
	}
}

// Close stops the worker goroutines started by SetWorkers.
func (s *Software) Close() {
	if s.pool != nil {
		s.pool.Close()
		s.pool = nil
	}
}

// ColorMask returns the current color write mask.
func (s *Software) ColorMask() gputypes.ColorWriteMask { return s.mask }

// DrawBuffer returns the selected back buffer.
func (s *Software) DrawBuffer() DrawBuffer { return s.drawBuf }

// TextureFilter returns the min and mag filters of unit.
func (s *Software) TextureFilter(unit int) (min, mag gputypes.FilterMode) {
	u := s.units[unit]
	return u.min, u.mag
}

// BoundTexture returns the texture bound to unit, or nil.
func (s *Software) BoundTexture(unit int) *Target { return s.units[unit].tex }

// --- EyeBuffers ---

// BindOutputFB binds the output framebuffer.
func (s *Software) BindOutputFB() {
	s.record(Call{Op: OpBindOutputFB})
	s.drawFB = s.Output(s.drawBuf)
}

// BindEyeTexture binds the stable texture of eye to unit.
func (s *Software) BindEyeTexture(eye Eye, unit int) {
	s.record(Call{Op: OpBindEyeTexture, Eye: eye, Unit: unit})
	if unit < 0 || unit >= MaxTextureUnits {
		return
	}
	s.units[unit].tex = s.eyeTextures[eye&1]
}

// BlitToEyeTexture copies the render target of eye into its stable texture.
func (s *Software) BlitToEyeTexture(eye Eye, invalidate bool) {
	s.record(Call{Op: OpBlitToEyeTexture, Eye: eye, Flag: invalidate})
	s.eyeTextures[eye&1].CopyFrom(s.eyeTargets[eye&1])
	if invalidate {
		s.eyeTargets[eye&1].Clear(color.Transparent)
	}
}

// BindEyeFB binds the render target of eye.
func (s *Software) BindEyeFB(eye Eye, forWrite bool) {
	s.record(Call{Op: OpBindEyeFB, Eye: eye, Flag: forWrite})
	if forWrite {
		s.drawFB = s.eyeTargets[eye&1]
	}
}

// CurrentEye returns the eye rendered most recently.
func (s *Software) CurrentEye() Eye { return s.current }

// Width returns the eye buffer width.
func (s *Software) Width() int { return s.eyeTargets[0].Width() }

// Height returns the eye buffer height.
func (s *Software) Height() int { return s.eyeTargets[0].Height() }

// --- Context ---

// ClearBorders clears the output outside box to black.
func (s *Software) ClearBorders(box layout.Rect) {
	s.record(Call{Op: OpClearBorders, Rect: box})

	out := s.Output(s.drawBuf)
	w, h := out.Width(), out.Height()
	black := color.RGBA{A: 0xff}
	if box.Top > 0 {
		s.clearMasked(out, layout.NewRect(0, 0, w, box.Top), black)
		s.clearMasked(out, layout.NewRect(0, box.Bottom(), w, h-box.Bottom()), black)
	}
	if box.Left > 0 {
		s.clearMasked(out, layout.NewRect(0, 0, box.Left, h), black)
		s.clearMasked(out, layout.NewRect(box.Right(), 0, w-box.Right(), h), black)
	}
}

// SetColorMask sets the color write mask.
func (s *Software) SetColorMask(mask gputypes.ColorWriteMask) {
	s.record(Call{Op: OpSetColorMask, Mask: mask})
	s.mask = mask
}

// SetDrawBuffer selects the back buffer.
func (s *Software) SetDrawBuffer(buf DrawBuffer) {
	s.record(Call{Op: OpSetDrawBuffer, Buffer: buf})
	s.drawBuf = buf
	if s.drawFB == s.back || s.drawFB == s.backRight {
		s.drawFB = s.Output(buf)
	}
}

// SetViewport sets the viewport.
func (s *Software) SetViewport(box layout.Rect) {
	s.record(Call{Op: OpSetViewport, Rect: box})
	s.viewport = box
}

// SetTextureFilter sets the filtering of unit.
func (s *Software) SetTextureFilter(unit int, min, mag gputypes.FilterMode) {
	s.record(Call{Op: OpSetTextureFilter, Unit: unit, Min: min, Mag: mag})
	if unit < 0 || unit >= MaxTextureUnits {
		return
	}
	s.units[unit].min = min
	s.units[unit].mag = mag
}

// savedBindings is the TextureBindings of Software.
type savedBindings struct {
	s     *Software
	units []unit
}

// Restore puts the captured bindings back.
func (b *savedBindings) Restore() {
	b.s.record(Call{Op: OpRestoreTextureBindings, Unit: len(b.units)})
	copy(b.s.units[:], b.units)
}

// SaveTextureBindings captures the first n texture units.
func (s *Software) SaveTextureBindings(n int) TextureBindings {
	s.record(Call{Op: OpSaveTextureBindings, Unit: n})
	n = min(max(n, 0), MaxTextureUnits)
	units := make([]unit, n)
	copy(units, s.units[:n])
	return &savedBindings{s: s, units: units}
}

// DrawPresentTexture scales the texture bound to unit 0 into box.
func (s *Software) DrawPresentTexture(box layout.Rect, applyGamma bool) {
	s.record(Call{Op: OpDrawPresentTexture, Rect: box, Flag: applyGamma, Tex: s.units[0].tex})

	src := s.units[0].tex
	if src == nil || box.Empty() {
		return
	}
	scaled := image.NewRGBA(image.Rect(0, 0, box.Width, box.Height))
	scaler(s.units[0].mag).Scale(scaled, scaled.Bounds(), src.Image(), src.Image().Bounds(), draw.Src, nil)

	dst := s.drawFB
	r := box.ImageRect(dst.Height())
	parallel.ForRows(s.pool, 0, box.Height, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := 0; x < box.Width; x++ {
				c := scaled.RGBAAt(x, y)
				if applyGamma {
					c = correct(c, s.gamma)
				}
				s.write(dst, r.Min.X+x, r.Min.Y+y, c)
			}
		}
	})
}

// BindProgram sets the active program.
func (s *Software) BindProgram(p *shader.Program) {
	c := Call{Op: OpBindProgram}
	if p != nil {
		c.Program = p.Kind()
	}
	s.record(c)
	s.program = p
}

// SetUniforms sets the uniforms of the active program.
func (s *Software) SetUniforms(u shader.Uniforms) {
	s.record(Call{Op: OpSetUniforms, Uniforms: u})
	s.uniforms = u
}

// RenderScreenQuad runs the active interleave program over the viewport.
// Eyes are picked per framebuffer pixel as the fragment stages do, so the
// uniforms must carry the output height. Eye textures are sampled with
// nearest filtering regardless of the unit filter.
func (s *Software) RenderScreenQuad() {
	s.record(Call{Op: OpRenderScreenQuad, Rect: s.viewport})

	if s.program == nil || s.viewport.Empty() {
		return
	}
	dst := s.drawFB
	h := dst.Height()
	vp := s.viewport
	r := vp.ImageRect(h).Intersect(dst.Image().Bounds())
	kind := s.program.Kind()
	u := s.uniforms

	parallel.ForRows(s.pool, r.Min.Y, r.Max.Y, func(y0, y1 int) {
		for iy := y0; iy < y1; iy++ {
			fy := h - 1 - iy
			for ix := r.Min.X; ix < r.Max.X; ix++ {
				eye := shader.FragmentEye(kind, ix, iy, u)
				tex := s.units[eye].tex
				if tex == nil {
					continue
				}
				tu := (float64(ix-vp.Left)+0.5)/float64(vp.Width)*float64(u.Scale[0]) + float64(u.Offset[0])
				tv := (float64(fy-vp.Top)+0.5)/float64(vp.Height)*float64(u.Scale[1]) + float64(u.Offset[1])
				tx := clampInt(int(tu*float64(tex.Width())), 0, tex.Width()-1)
				ty := clampInt(int(tv*float64(tex.Height())), 0, tex.Height()-1)
				s.write(dst, ix, iy, correct(tex.At(tx, ty), u))
			}
		}
	})
}

// BindDefaultFramebuffer binds the output as draw framebuffer.
func (s *Software) BindDefaultFramebuffer() {
	s.record(Call{Op: OpBindDefaultFramebuffer})
	s.drawFB = s.Output(s.drawBuf)
}

// QueryCapability reports the configured output capabilities.
func (s *Software) QueryCapability(c hwstereo.Capability) bool {
	s.record(Call{Op: OpQueryCapability, Unit: int(c)})
	switch c {
	case hwstereo.CapDoubleBuffer:
		s.probes++
		return s.doubleBuffer && s.probes > s.readyAfter
	case hwstereo.CapStereo:
		return s.stereo
	default:
		return false
	}
}

// IsHWGammaActive reports the configured hardware gamma state.
func (s *Software) IsHWGammaActive() bool { return s.hwGamma }

// --- hmd.TextureProvider ---

// CreateEyeTexture allocates a Target for an HMD eye.
func (s *Software) CreateEyeTexture(eye hmd.Eye, width, height int) (hmd.Texture, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("render: invalid eye texture size %dx%d", width, height)
	}
	s.record(Call{Op: OpCreateEyeTexture, Eye: Eye(eye), Rect: layout.NewRect(0, 0, width, height)})
	return NewTarget(width, height), nil
}

// CopyEye scales the stable texture of eye into tex.
func (s *Software) CopyEye(eye hmd.Eye, tex hmd.Texture) error {
	dst, ok := tex.(*Target)
	if !ok {
		return ErrForeignTexture
	}
	s.record(Call{Op: OpCopyEye, Eye: Eye(eye), Tex: dst})
	src := s.eyeTextures[int(eye)&1].Image()
	draw.ApproxBiLinear.Scale(dst.Image(), dst.Image().Bounds(), src, src.Bounds(), draw.Src, nil)
	return nil
}

// --- helpers ---

// clearMasked fills a bottom-origin rectangle honoring the color mask.
func (s *Software) clearMasked(dst *Target, r layout.Rect, c color.RGBA) {
	if r.Empty() {
		return
	}
	ir := r.ImageRect(dst.Height()).Intersect(dst.Image().Bounds())
	for y := ir.Min.Y; y < ir.Max.Y; y++ {
		for x := ir.Min.X; x < ir.Max.X; x++ {
			s.write(dst, x, y, c)
		}
	}
}

// write stores c at image pixel (x, y) of dst for the channels enabled in
// the color mask.
func (s *Software) write(dst *Target, x, y int, c color.RGBA) {
	img := dst.Image()
	if !(image.Point{X: x, Y: y}).In(img.Bounds()) {
		return
	}
	if s.mask == gputypes.ColorWriteMaskAll {
		img.SetRGBA(x, y, c)
		return
	}
	old := img.RGBAAt(x, y)
	if s.mask&gputypes.ColorWriteMaskRed != 0 {
		old.R = c.R
	}
	if s.mask&gputypes.ColorWriteMaskGreen != 0 {
		old.G = c.G
	}
	if s.mask&gputypes.ColorWriteMaskBlue != 0 {
		old.B = c.B
	}
	if s.mask&gputypes.ColorWriteMaskAlpha != 0 {
		old.A = c.A
	}
	img.SetRGBA(x, y, old)
}

func (s *Software) record(c Call) {
	s.calls = append(s.calls, c)
}

// scaler maps a filter mode onto an x/image/draw interpolator.
func scaler(mag gputypes.FilterMode) draw.Scaler {
	if mag == gputypes.FilterModeNearest {
		return draw.NearestNeighbor
	}
	return draw.ApproxBiLinear
}

// correct applies the present color correction to an 8-bit color.
func correct(c color.RGBA, u shader.Uniforms) color.RGBA {
	out := shader.Correct([3]float32{
		float32(c.R) / 255,
		float32(c.G) / 255,
		float32(c.B) / 255,
	}, u)
	return color.RGBA{R: to8(out[0]), G: to8(out[1]), B: to8(out[2]), A: 0xff}
}

func to8(v float32) uint8 {
	return uint8(clampInt(int(v*255+0.5), 0, 255))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Ensure Software implements the boundary interfaces.
var (
	_ EyeBuffers          = (*Software)(nil)
	_ Context             = (*Software)(nil)
	_ hmd.TextureProvider = (*Software)(nil)
)
