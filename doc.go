// Package stereo composes stereo-rendered frames into the output surface.
//
// After the scene renderer has produced one color buffer per eye, a
// Presenter combines them according to the active display mode:
//
//   - anaglyph color filtering (red/cyan, green/magenta, amber/blue)
//   - spatial splitting (side-by-side full, squished or letterboxed, and
//     top/bottom)
//   - pixel-parity interleaving (rows, columns or checkerboard) through
//     the interleave programs of package shader
//   - hardware quad-buffered stereo, with a bounded startup probe
//   - submission to a head-mounted display compositor
//
// The presenter owns no graphics objects. The host supplies the eye
// buffers and the output context through the interfaces of package
// render; render.Software implements both on the CPU.
//
// # Quick Start
//
//	sw := render.NewSoftware(1280, 720, 1280, 720)
//	modes := vrmode.NewRegistry(vrmode.WithActive(vrmode.RedCyan))
//	p, err := stereo.NewPresenter(sw, sw, stereo.WithRegistry(modes))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// each frame, after both eyes are rendered:
//	p.PresentStereo()
//
// # Error handling
//
// PresentStereo never fails. Unknown modes are ignored, an unready output
// context falls back to mono, and HMD failures are logged and skipped for
// the frame.
//
// # Logging
//
// Diagnostics go through log/slog and are silent by default; see
// SetLogger.
package stereo
