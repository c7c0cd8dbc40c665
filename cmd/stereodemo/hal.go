package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	"github.com/gogpu/wgpu/hal/noop"

	"github.com/gogpu/stereo"
	"github.com/gogpu/stereo/backend/native"
	"github.com/gogpu/stereo/hmd"
	"github.com/gogpu/stereo/render"
	"github.com/gogpu/stereo/shader"
	"github.com/gogpu/stereo/vrmode"
)

// openNoopDevice opens the first adapter of the noop HAL backend.
func openNoopDevice() (hal.Device, hal.Queue, func(), error) {
	api := noop.API{}
	instance, err := api.CreateInstance(nil)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("create instance: %w", err)
	}
	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		instance.Destroy()
		return nil, nil, nil, errors.New("no adapters")
	}
	openDev, err := adapters[0].Adapter.Open(0, gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		return nil, nil, nil, fmt.Errorf("open adapter: %w", err)
	}
	release := func() {
		openDev.Device.Destroy()
		instance.Destroy()
	}
	return openDev.Device, openDev.Queue, release, nil
}

// simulatedCompositor accepts GPU eye textures and reports a fixed pose.
type simulatedCompositor struct {
	submitted []*native.EyeTexture
}

func (c *simulatedCompositor) Submit(eye hmd.Eye, tex hmd.Texture) hmd.CompositorError {
	et, ok := tex.(*native.EyeTexture)
	if !ok || et.Raw() == nil || et.Eye() != eye {
		return hmd.CompositorErrorInvalidTexture
	}
	c.submitted = append(c.submitted, et)
	return hmd.CompositorErrorNone
}

func (c *simulatedCompositor) WaitGetPoses(poses []hmd.TrackedDevicePose) hmd.CompositorError {
	poses[hmd.HMDDeviceIndex] = hmd.TrackedDevicePose{
		DeviceToAbsolute: hmd.IdentityMat34(),
		Valid:            true,
		Connected:        true,
	}
	return hmd.CompositorErrorNone
}

type simulatedSystem struct {
	width, height int
	compositor    *simulatedCompositor
}

func (s *simulatedSystem) RecommendedRenderTargetSize() (int, int) { return s.width, s.height }
func (s *simulatedSystem) Compositor() hmd.Compositor              { return s.compositor }

// simulatedRuntime is a connected headset backed by simulatedSystem.
type simulatedRuntime struct {
	system *simulatedSystem
}

func (r *simulatedRuntime) IsHMDPresent() bool { return true }

func (r *simulatedRuntime) Init(app hmd.AppType) (hmd.System, error) {
	if app != hmd.AppScene {
		return nil, &hmd.InitError{Code: 108, Symbol: "VRInitError_Init_InvalidApplicationType"}
	}
	return r.system, nil
}

// presentHAL presents HMD mode with eye textures on a noop HAL device and
// writes the desktop mirror to path. It returns the textures the
// compositor received.
func (r run) presentHAL(path string) ([]*native.EyeTexture, error) {
	device, queue, release, err := openNoopDevice()
	if err != nil {
		return nil, err
	}
	defer release()

	dev, err := native.New(device, queue)
	if err != nil {
		return nil, err
	}

	resources, err := dev.CreateInterleaveResources()
	if err != nil {
		log.Printf("Interleave programs unavailable: %v", err)
	} else {
		defer resources.Destroy()
		u := shader.Identity()
		u.OutputHeight = int32(r.height)
		resources.WriteUniforms(u)
	}

	sw := r.newSoftware()
	defer sw.Close()

	provider := native.NewTextureProvider(dev, sw)
	defer provider.Destroy()

	comp := &simulatedCompositor{}
	rt := &simulatedRuntime{system: &simulatedSystem{width: r.width / 2, height: r.height, compositor: comp}}
	session, err := hmd.NewSession(rt, provider)
	if err != nil {
		return nil, err
	}

	p, err := stereo.NewPresenter(sw, sw,
		stereo.WithSession(session),
		stereo.WithCorrection(func() stereo.Correction { return r.correction }),
	)
	if err != nil {
		return nil, err
	}
	if err := p.Registry().SetActive(vrmode.HMD); err != nil {
		return nil, err
	}

	// The first frame starts the session, the second submits.
	p.PresentStereo()
	p.PresentStereo()
	if !session.Started() {
		return nil, errors.New("hmd session did not start")
	}

	if err := savePNG(path, sw.Output(render.Back)); err != nil {
		return nil, err
	}
	w, h := session.RenderTargetSize()
	log.Printf("%s mirror saved to %s, %d eye textures submitted (%dx%d)\n",
		vrmode.HMD, path, len(comp.submitted), w, h)
	return comp.submitted, nil
}
