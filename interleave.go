package stereo

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/stereo/layout"
	"github.com/gogpu/stereo/render"
	"github.com/gogpu/stereo/shader"
)

// presentInterleaved composes both eyes with the interleave program of
// kind in a single screen quad. Texture bindings of units 0 and 1 are
// restored afterwards.
func (p *Presenter) presentInterleaved(kind shader.Kind) {
	saved := p.ctx.SaveTextureBindings(2)
	defer saved.Restore()

	u := p.prepareInterleaved(kind)

	off := layout.ClientWindowOffset()
	height := p.viewports.OutputLetterbox.Height
	var parity int
	switch kind {
	case shader.Row:
		parity = layout.RowParity(off.Vertical, height)
	case shader.Column:
		parity = layout.ColumnParity(off.Horizontal)
	case shader.Checker:
		parity = layout.CheckerParity(off.Vertical, off.Horizontal, height)
	}
	u.WindowPositionParity = int32(parity)

	p.ctx.SetUniforms(u)
	p.ctx.RenderScreenQuad()
}

// prepareInterleaved binds the output, both eye textures with nearest
// filtering and the program, and returns the uniforms without parity.
func (p *Presenter) prepareInterleaved(kind shader.Kind) shader.Uniforms {
	box := p.viewports.OutputLetterbox

	p.buffers.BindOutputFB()
	p.ctx.ClearBorders(box)

	p.buffers.BindEyeTexture(render.Left, 0)
	p.buffers.BindEyeTexture(render.Right, 1)
	p.ctx.SetTextureFilter(0, gputypes.FilterModeNearest, gputypes.FilterModeNearest)
	p.ctx.SetTextureFilter(1, gputypes.FilterModeNearest, gputypes.FilterModeNearest)

	p.ctx.SetViewport(box)
	p.ctx.BindProgram(p.programs[kind])

	u := interleaveUniforms(p.correction(), p.ctx.IsHWGammaActive(),
		p.viewports.ScreenViewport, p.buffers.Width(), p.buffers.Height())
	u.OutputHeight = int32(p.viewports.outputHeight())
	return u
}
