package stereo

import (
	"github.com/gogpu/stereo/hmd"
	"github.com/gogpu/stereo/hwstereo"
	"github.com/gogpu/stereo/layout"
	"github.com/gogpu/stereo/render"
	"github.com/gogpu/stereo/shader"
	"github.com/gogpu/stereo/vrmode"
)

// Viewports describes the regions of the output surface, with the origin
// at the bottom-left corner.
type Viewports struct {
	// OutputLetterbox is the part of the window showing the image.
	OutputLetterbox layout.Rect

	// ScreenViewport is the region of the eye buffers holding the 2D screen.
	ScreenViewport layout.Rect

	// SceneViewport is the region of the eye buffers holding the 3D scene.
	SceneViewport layout.Rect

	// OutputHeight is the height of the output surface. Zero means the
	// surface ends at the top of OutputLetterbox.
	OutputHeight int
}

func (v Viewports) outputHeight() int {
	if v.OutputHeight > 0 {
		return v.OutputHeight
	}
	return v.OutputLetterbox.Bottom()
}

// Presenter combines the two eye images of a frame into the output.
//
// Presenter is NOT safe for concurrent use. It is driven from the
// rendering thread, once per frame, after both eyes have been rendered.
type Presenter struct {
	buffers render.EyeBuffers
	ctx     render.Context

	modes    *vrmode.Registry
	detector *hwstereo.Detector
	session  *hmd.Session
	programs map[shader.Kind]*shader.Program

	correction    func() Correction
	viewports     Viewports
	desktopMirror bool
	hmdView       bool
}

// NewPresenter creates a presenter drawing from buffers into ctx.
func NewPresenter(buffers render.EyeBuffers, ctx render.Context, opts ...PresenterOption) (*Presenter, error) {
	if buffers == nil {
		return nil, ErrNilEyeBuffers
	}
	if ctx == nil {
		return nil, ErrNilContext
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	p := &Presenter{
		buffers:       buffers,
		ctx:           ctx,
		modes:         o.registry,
		session:       o.session,
		correction:    o.correction,
		desktopMirror: o.desktopMirror,
		hmdView:       o.hmdView,
		programs:      make(map[shader.Kind]*shader.Program, 3),
	}
	if p.modes == nil {
		p.modes = vrmode.NewRegistry(vrmode.WithHMDSupport(p.session != nil))
	}
	p.detector = hwstereo.NewDetector(o.state, p.demoteQuadStereo)

	for _, kind := range []shader.Kind{shader.Row, shader.Column, shader.Checker} {
		prog, err := shader.NewProgram(kind)
		if err != nil {
			return nil, err
		}
		p.programs[kind] = prog
	}

	if o.viewports != nil {
		p.viewports = *o.viewports
	} else {
		full := layout.NewRect(0, 0, buffers.Width(), buffers.Height())
		p.viewports = Viewports{
			OutputLetterbox: full,
			ScreenViewport:  full,
			SceneViewport:   full,
			OutputHeight:    buffers.Height(),
		}
	}
	return p, nil
}

// Registry returns the display-mode registry.
func (p *Presenter) Registry() *vrmode.Registry { return p.modes }

// StereoState returns the quad-buffered stereo capability state.
func (p *Presenter) StereoState() *hwstereo.State { return p.detector.State() }

// Session returns the HMD session, or nil without HMD support.
func (p *Presenter) Session() *hmd.Session { return p.session }

// Viewports returns the current output viewports.
func (p *Presenter) Viewports() Viewports { return p.viewports }

// SetViewports updates the output viewports, typically after a window
// resize.
func (p *Presenter) SetViewports(v Viewports) { p.viewports = v }

// SetDesktopMirror toggles the desktop mirror of HMD mode.
func (p *Presenter) SetDesktopMirror(enabled bool) { p.desktopMirror = enabled }

// SetHMDView toggles headset submission in HMD mode.
func (p *Presenter) SetHMDView(enabled bool) { p.hmdView = enabled }

// PresentStereo presents the current frame in the active display mode.
//
// Single-view modes and values naming no mode present nothing. Otherwise
// the eye rendered last is first copied into its stable texture, then the
// strategy of the mode runs.
func (p *Presenter) PresentStereo() {
	mode := p.modes.Active()
	if mode.EyeCount() <= 1 {
		return
	}

	// Keep the bound render target valid; it may still be read.
	p.buffers.BlitToEyeTexture(p.buffers.CurrentEye(), false)

	switch mode {
	case vrmode.GreenMagenta:
		p.presentAnaglyph(false, true, false)
	case vrmode.RedCyan:
		p.presentAnaglyph(true, false, false)
	case vrmode.AmberBlue:
		p.presentAnaglyph(true, true, false)
	case vrmode.SideBySideFull, vrmode.SideBySideSquished, vrmode.SideBySideLetterbox:
		p.presentSideBySide(mode)
	case vrmode.TopBottom:
		p.presentTopBottom()
	case vrmode.RowInterleaved:
		p.presentInterleaved(shader.Row)
	case vrmode.ColumnInterleaved:
		p.presentInterleaved(shader.Column)
	case vrmode.CheckerInterleaved:
		p.presentInterleaved(shader.Checker)
	case vrmode.QuadStereo:
		p.presentQuadStereo()
	case vrmode.HMD:
		p.presentHMD()
	}
}

// demoteQuadStereo is called once when the output lacks hardware stereo.
func (p *Presenter) demoteQuadStereo() {
	Logger().Info("stereo: quad-buffered stereo unsupported, removing mode",
		"active", p.modes.Active().String())
	p.modes.Recompute(false)
}

// drawEye draws the stable texture of eye into box.
func (p *Presenter) drawEye(eye render.Eye, box layout.Rect) {
	p.buffers.BindEyeTexture(eye, 0)
	p.ctx.DrawPresentTexture(box, true)
}
