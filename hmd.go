package stereo

import (
	"github.com/gogpu/stereo/hmd"
	"github.com/gogpu/stereo/render"
	"github.com/gogpu/stereo/vrmode"
)

// presentHMD drives the HMD session. The first successful call only
// starts the session; later calls mirror the eyes to the desktop and
// submit them to the headset. Failures are logged by the session and
// skipped for the frame.
func (p *Presenter) presentHMD() {
	s := p.session
	if s == nil {
		return
	}
	if !s.Started() {
		if err := s.Start(); err != nil {
			Logger().Debug("stereo: HMD session not started", "error", err)
		}
		return
	}

	if p.desktopMirror {
		p.presentSideBySide(vrmode.SideBySideFull)
	}

	if !p.hmdView {
		return
	}
	for _, eye := range [...]hmd.Eye{hmd.EyeLeft, hmd.EyeRight} {
		p.buffers.BindEyeFB(render.Eye(eye), false)
		_ = s.PresentEye(eye)
	}
	_, _ = s.WaitGetPoses()
}
