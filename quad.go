package stereo

import "github.com/gogpu/stereo/render"

// presentQuadStereo draws each eye into its own hardware back buffer. Until
// the output is known to support quad-buffered stereo only the left eye is
// drawn.
func (p *Presenter) presentQuadStereo() {
	box := p.viewports.OutputLetterbox

	if !p.detector.Check(p.ctx) {
		p.buffers.BindOutputFB()
		p.ctx.ClearBorders(box)
		p.drawEye(render.Left, box)
		return
	}

	p.buffers.BindOutputFB()
	defer p.ctx.SetDrawBuffer(render.Back)

	p.ctx.SetDrawBuffer(render.BackLeft)
	p.ctx.ClearBorders(box)
	p.drawEye(render.Left, box)

	p.ctx.SetDrawBuffer(render.BackRight)
	p.ctx.ClearBorders(box)
	p.drawEye(render.Right, box)
}
