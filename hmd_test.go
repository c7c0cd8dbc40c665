package stereo

import (
	"testing"

	"github.com/gogpu/stereo/hmd"
	"github.com/gogpu/stereo/layout"
	"github.com/gogpu/stereo/render"
	"github.com/gogpu/stereo/vrmode"
)

type testCompositor struct {
	submitCodes map[hmd.Eye]hmd.CompositorError
	submitted   []hmd.Eye
	waits       int
}

func (c *testCompositor) Submit(eye hmd.Eye, _ hmd.Texture) hmd.CompositorError {
	c.submitted = append(c.submitted, eye)
	return c.submitCodes[eye]
}

func (c *testCompositor) WaitGetPoses(poses []hmd.TrackedDevicePose) hmd.CompositorError {
	c.waits++
	poses[hmd.HMDDeviceIndex].Valid = true
	return hmd.CompositorErrorNone
}

type testSystem struct {
	width, height int
	compositor    hmd.Compositor
}

func (s *testSystem) RecommendedRenderTargetSize() (int, int) { return s.width, s.height }
func (s *testSystem) Compositor() hmd.Compositor              { return s.compositor }

type testRuntime struct {
	present bool
	system  *testSystem
	inits   int
}

func (r *testRuntime) IsHMDPresent() bool { return r.present }

func (r *testRuntime) Init(hmd.AppType) (hmd.System, error) {
	r.inits++
	return r.system, nil
}

// newHMDPresenter returns an HMD presenter whose session draws its eye
// textures from the software context.
func newHMDPresenter(t *testing.T, opts ...PresenterOption) (*Presenter, *render.Software, *testRuntime, *testCompositor) {
	t.Helper()
	sw := render.NewSoftware(800, 600, 800, 600)
	sw.EyeTarget(render.Left).Clear(red)
	sw.EyeTarget(render.Right).Clear(green)
	sw.BlitToEyeTexture(render.Left, false)
	sw.BlitToEyeTexture(render.Right, false)
	sw.ResetCalls()

	comp := &testCompositor{submitCodes: map[hmd.Eye]hmd.CompositorError{}}
	rt := &testRuntime{present: true, system: &testSystem{width: 320, height: 240, compositor: comp}}
	session, err := hmd.NewSession(rt, sw)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}

	opts = append([]PresenterOption{WithSession(session)}, opts...)
	p, err := NewPresenter(sw, sw, opts...)
	if err != nil {
		t.Fatalf("NewPresenter: %v", err)
	}
	if !p.Registry().IsAvailable(vrmode.HMD) {
		t.Fatal("HMD unavailable with a session")
	}
	if err := p.Registry().SetActive(vrmode.HMD); err != nil {
		t.Fatalf("SetActive(HMD): %v", err)
	}
	return p, sw, rt, comp
}

func TestPresentHMD_FirstFrameStartsSession(t *testing.T) {
	p, sw, rt, comp := newHMDPresenter(t)

	p.PresentStereo()

	if !p.Session().Started() {
		t.Fatal("session not started")
	}
	if ops := sw.Ops(); len(ops) != 1 || ops[0] != render.OpBlitToEyeTexture {
		t.Errorf("first frame ops = %v, want only the blit", ops)
	}
	if len(comp.submitted) != 0 || comp.waits != 0 {
		t.Error("first frame must not submit")
	}

	for i := 0; i < 3; i++ {
		p.PresentStereo()
	}
	if rt.inits != 1 {
		t.Errorf("runtime initialized %d times, want 1", rt.inits)
	}
}

func TestPresentHMD_Frame(t *testing.T) {
	p, sw, _, comp := newHMDPresenter(t)
	p.PresentStereo()
	sw.ResetCalls()

	p.PresentStereo()

	// Desktop mirror.
	draws := sw.CallsOf(render.OpDrawPresentTexture)
	if len(draws) != 2 {
		t.Fatalf("mirror draws = %d, want 2", len(draws))
	}
	if draws[0].Rect != layout.NewRect(0, 0, 400, 600) || draws[1].Rect != layout.NewRect(400, 0, 400, 600) {
		t.Errorf("mirror regions = %v, %v", draws[0].Rect, draws[1].Rect)
	}

	// Headset textures at the recommended size.
	created := sw.CallsOf(render.OpCreateEyeTexture)
	if len(created) != 2 {
		t.Fatalf("created %d eye textures, want 2", len(created))
	}
	for _, c := range created {
		if c.Rect.Width != 320 || c.Rect.Height != 240 {
			t.Errorf("%v texture %dx%d, want 320x240", c.Eye, c.Rect.Width, c.Rect.Height)
		}
	}
	copies := sw.CallsOf(render.OpCopyEye)
	if len(copies) != 2 || copies[0].Eye != render.Left || copies[1].Eye != render.Right {
		t.Fatalf("copies = %+v, want left then right", copies)
	}
	if got := copies[0].Tex.At(160, 120); got != red {
		t.Errorf("left headset texture = %v, want red", got)
	}
	if got := copies[1].Tex.At(160, 120); got != green {
		t.Errorf("right headset texture = %v, want green", got)
	}

	binds := sw.CallsOf(render.OpBindEyeFB)
	if len(binds) != 2 || binds[0].Eye != render.Left || binds[1].Eye != render.Right {
		t.Errorf("BindEyeFB calls = %+v, want left then right", binds)
	}
	if len(comp.submitted) != 2 || comp.submitted[0] != hmd.EyeLeft || comp.submitted[1] != hmd.EyeRight {
		t.Errorf("submitted %v, want [Left Right]", comp.submitted)
	}
	if comp.waits != 1 {
		t.Errorf("WaitGetPoses called %d times, want 1", comp.waits)
	}
	if _, ok := p.Session().HeadOrientation(); !ok {
		t.Error("head pose not valid after the frame")
	}

	// Textures are reused.
	sw.ResetCalls()
	p.PresentStereo()
	if n := len(sw.CallsOf(render.OpCreateEyeTexture)); n != 0 {
		t.Errorf("created %d textures on the third frame, want 0", n)
	}
}

func TestPresentHMD_SubmitFailureSkipsEye(t *testing.T) {
	p, _, _, comp := newHMDPresenter(t)
	comp.submitCodes[hmd.EyeRight] = hmd.CompositorErrorDoNotHaveFocus
	p.PresentStereo()

	p.PresentStereo()

	if len(comp.submitted) != 2 || comp.submitted[0] != hmd.EyeLeft {
		t.Errorf("submitted %v, want left then right", comp.submitted)
	}
	if comp.waits != 1 {
		t.Errorf("WaitGetPoses called %d times, want 1", comp.waits)
	}
}

func TestPresentHMD_Toggles(t *testing.T) {
	tests := []struct {
		name      string
		opts      []PresenterOption
		draws     int
		submitted int
		wantPoses bool
	}{
		{name: "both", draws: 2, submitted: 2, wantPoses: true},
		{name: "no mirror", opts: []PresenterOption{WithDesktopMirror(false)}, draws: 0, submitted: 2, wantPoses: true},
		{name: "no headset view", opts: []PresenterOption{WithHMDView(false)}, draws: 2, submitted: 0},
		{name: "neither", opts: []PresenterOption{WithDesktopMirror(false), WithHMDView(false)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, sw, _, comp := newHMDPresenter(t, tt.opts...)
			p.PresentStereo()
			sw.ResetCalls()
			p.PresentStereo()

			if n := len(sw.CallsOf(render.OpDrawPresentTexture)); n != tt.draws {
				t.Errorf("draws = %d, want %d", n, tt.draws)
			}
			if n := len(comp.submitted); n != tt.submitted {
				t.Errorf("submitted = %d, want %d", n, tt.submitted)
			}
			if got := comp.waits > 0; got != tt.wantPoses {
				t.Errorf("poses retrieved = %v, want %v", got, tt.wantPoses)
			}
		})
	}
}

func TestPresentHMD_SetToggles(t *testing.T) {
	p, sw, _, comp := newHMDPresenter(t)
	p.PresentStereo()

	p.SetDesktopMirror(false)
	p.SetHMDView(false)
	sw.ResetCalls()
	p.PresentStereo()
	if ops := sw.Ops(); len(ops) != 1 {
		t.Errorf("ops = %v, want only the blit", ops)
	}

	p.SetHMDView(true)
	p.PresentStereo()
	if len(comp.submitted) != 2 {
		t.Errorf("submitted %d, want 2", len(comp.submitted))
	}
}

func TestPresentHMD_NoHeadset(t *testing.T) {
	p, sw, rt, comp := newHMDPresenter(t)
	rt.present = false

	for i := 0; i < 3; i++ {
		p.PresentStereo()
	}
	if p.Session().Started() {
		t.Error("session started without a headset")
	}
	if rt.inits != 0 {
		t.Errorf("runtime initialized %d times, want 0", rt.inits)
	}
	if n := len(sw.Calls()); n != 3 {
		t.Errorf("calls = %d (%v), want one blit per frame", n, sw.Ops())
	}
	if len(comp.submitted) != 0 {
		t.Error("submitted without a session")
	}

	// A headset plugged in later is picked up.
	rt.present = true
	p.PresentStereo()
	if !p.Session().Started() {
		t.Error("session not started after the headset appeared")
	}
}

func TestPresentHMD_NoSession(t *testing.T) {
	p, sw := newTestPresenter(t, vrmode.HMD)
	p.PresentStereo()
	if ops := sw.Ops(); len(ops) != 1 || ops[0] != render.OpBlitToEyeTexture {
		t.Errorf("ops = %v, want only the blit", ops)
	}
}
