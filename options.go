package stereo

import (
	"github.com/gogpu/stereo/hmd"
	"github.com/gogpu/stereo/hwstereo"
	"github.com/gogpu/stereo/vrmode"
)

// PresenterOption configures a Presenter during creation.
//
// Example:
//
//	p, err := stereo.NewPresenter(buffers, ctx,
//	    stereo.WithRegistry(modes),
//	    stereo.WithCorrection(settings.Correction),
//	)
type PresenterOption func(*presenterOptions)

// presenterOptions holds optional configuration for Presenter creation.
type presenterOptions struct {
	registry      *vrmode.Registry
	session       *hmd.Session
	state         *hwstereo.State
	correction    func() Correction
	viewports     *Viewports
	desktopMirror bool
	hmdView       bool
}

// defaultOptions returns the default presenter options.
func defaultOptions() presenterOptions {
	return presenterOptions{
		correction:    DefaultCorrection,
		desktopMirror: true,
		hmdView:       true,
	}
}

// WithRegistry sets the display-mode registry the presenter reads the
// active mode from. Without it the presenter creates its own registry
// with Mono active.
func WithRegistry(r *vrmode.Registry) PresenterOption {
	return func(o *presenterOptions) {
		o.registry = r
	}
}

// WithSession enables HMD output through s. Without a session the HMD
// mode presents nothing.
func WithSession(s *hmd.Session) PresenterOption {
	return func(o *presenterOptions) {
		o.session = s
	}
}

// WithStereoState sets the quad-buffered stereo capability state. The
// state outlives presenters, so a host recreating its presenter keeps the
// probe result and the attempt count.
func WithStereoState(s *hwstereo.State) PresenterOption {
	return func(o *presenterOptions) {
		o.state = s
	}
}

// WithCorrection sets the source of display color settings. It is called
// once per interleaved present.
func WithCorrection(fn func() Correction) PresenterOption {
	return func(o *presenterOptions) {
		if fn != nil {
			o.correction = fn
		}
	}
}

// WithViewports sets the initial output viewports.
func WithViewports(v Viewports) PresenterOption {
	return func(o *presenterOptions) {
		o.viewports = &v
	}
}

// WithDesktopMirror controls whether HMD mode also shows both eyes side
// by side on the desktop window. Enabled by default.
func WithDesktopMirror(enabled bool) PresenterOption {
	return func(o *presenterOptions) {
		o.desktopMirror = enabled
	}
}

// WithHMDView controls whether HMD mode submits the eyes to the headset.
// Enabled by default.
func WithHMDView(enabled bool) PresenterOption {
	return func(o *presenterOptions) {
		o.hmdView = enabled
	}
}
