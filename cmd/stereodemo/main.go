// Command stereodemo renders a synthetic stereo pair and writes the
// presented output of a display mode as PNG.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/stereo"
	"github.com/gogpu/stereo/hwstereo"
	"github.com/gogpu/stereo/layout"
	"github.com/gogpu/stereo/render"
	"github.com/gogpu/stereo/vrmode"
)

func main() {
	var (
		width     = flag.Int("width", 800, "output width")
		height    = flag.Int("height", 600, "output height")
		modeName  = flag.String("mode", "red-cyan", "display mode name or number")
		all       = flag.Bool("all", false, "render every stereo mode")
		output    = flag.String("output", "stereo.png", "output file")
		quad      = flag.Bool("quad", false, "report hardware stereo support")
		gamma     = flag.Float64("gamma", 1, "display gamma for interleaved modes")
		dither    = flag.Int("dither", -1, "quantization bits, -1 for 8, 0 to disable")
		disparity = flag.Int("disparity", 24, "horizontal eye separation in pixels")
		workers   = flag.Int("workers", 0, "render goroutines, 0 for GOMAXPROCS")
		halPath   = flag.Bool("hal", false, "present HMD mode with GPU eye textures on the noop HAL device")
		verbose   = flag.Bool("v", false, "log debug output to stderr")
	)
	flag.Parse()

	if *verbose {
		stereo.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	modes := []vrmode.Mode{}
	if *all {
		for _, m := range vrmode.All() {
			if m.EyeCount() > 1 && m != vrmode.HMD {
				modes = append(modes, m)
			}
		}
	} else {
		m, err := vrmode.Parse(*modeName)
		if err != nil {
			log.Fatalf("Invalid mode: %v", err)
		}
		modes = append(modes, m)
	}

	correction := stereo.DefaultCorrection()
	correction.Gamma = float32(*gamma)
	correction.DitherBits = *dither

	r := run{
		width:      *width,
		height:     *height,
		disparity:  *disparity,
		quad:       *quad,
		workers:    *workers,
		correction: correction,
	}
	if *halPath {
		if _, err := r.presentHAL(*output); err != nil {
			log.Fatalf("Failed to present %s: %v", vrmode.HMD, err)
		}
		return
	}

	for _, m := range modes {
		path := *output
		if *all {
			path = withSuffix(*output, m.String())
		}
		if err := r.present(m, path); err != nil {
			log.Fatalf("Failed to present %s: %v", m, err)
		}
	}
}

type run struct {
	width, height int
	disparity     int
	quad          bool
	workers       int
	correction    stereo.Correction
}

// newSoftware returns a software context holding the synthetic pair, with
// the left eye rendered last.
func (r run) newSoftware() *render.Software {
	sw := render.NewSoftware(r.width, r.height, r.width, r.height)
	sw.SetCapabilities(true, r.quad)
	workers := r.workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	sw.SetWorkers(workers)

	drawEye(sw.EyeTarget(render.Right), render.Right, r.disparity)
	sw.BlitToEyeTexture(render.Right, false)
	drawEye(sw.EyeTarget(render.Left), render.Left, r.disparity)
	sw.SetCurrentEye(render.Left)
	return sw
}

func (r run) present(m vrmode.Mode, path string) error {
	sw := r.newSoftware()
	defer sw.Close()

	reg := vrmode.NewRegistry(vrmode.WithActive(m))
	p, err := stereo.NewPresenter(sw, sw,
		stereo.WithRegistry(reg),
		stereo.WithCorrection(func() stereo.Correction { return r.correction }),
	)
	if err != nil {
		return err
	}
	p.PresentStereo()

	if err := savePNG(path, sw.Output(render.Back)); err != nil {
		return err
	}
	log.Printf("%s saved to %s (%dx%d)\n", m, path, r.width, r.height)

	if m == vrmode.QuadStereo && p.StereoState().Status() == hwstereo.Supported {
		right := withSuffix(path, "right")
		if err := savePNG(right, sw.Output(render.BackRight)); err != nil {
			return err
		}
		log.Printf("%s right buffer saved to %s\n", m, right)
	}
	return nil
}

// drawEye paints a gradient with a square shifted by half the disparity
// and labels the eye.
func drawEye(t *render.Target, eye render.Eye, disparity int) {
	w, h := t.Width(), t.Height()
	img := t.Image()
	for y := 0; y < h; y++ {
		v := uint8(40 + 120*y/max(h, 1))
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: v / 2, G: v / 2, B: v, A: 0xff})
		}
	}

	shift := disparity / 2
	if eye == render.Left {
		shift = -shift
	}
	size := min(w, h) / 3
	square := layout.NewRect((w-size)/2+shift, (h-size)/2, size, size)
	t.FillRect(square, color.RGBA{R: 0xf0, G: 0xc0, B: 0x30, A: 0xff})

	d := font.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: basicfont.Face7x13,
		Dot:  fixed.P(12, 24),
	}
	d.DrawString(eye.String() + " eye")
}

func savePNG(path string, t *render.Target) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, t.Image()); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// withSuffix inserts suffix before the extension of path.
func withSuffix(path, suffix string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "-" + suffix + ext
}
