package stereo

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/stereo/render"
)

// presentAnaglyph draws the left eye through the channels r, g, b and the
// right eye through the remaining color channels, both into the full
// letterbox.
func (p *Presenter) presentAnaglyph(r, g, b bool) {
	box := p.viewports.OutputLetterbox

	p.buffers.BindOutputFB()
	p.ctx.ClearBorders(box)
	defer p.ctx.SetColorMask(gputypes.ColorWriteMaskAll)

	p.ctx.SetColorMask(channelMask(r, g, b))
	p.drawEye(render.Left, box)

	p.ctx.SetColorMask(channelMask(!r, !g, !b))
	p.drawEye(render.Right, box)
}

// channelMask returns a write mask of the selected color channels plus
// alpha.
func channelMask(r, g, b bool) gputypes.ColorWriteMask {
	mask := gputypes.ColorWriteMaskAlpha
	if r {
		mask |= gputypes.ColorWriteMaskRed
	}
	if g {
		mask |= gputypes.ColorWriteMaskGreen
	}
	if b {
		mask |= gputypes.ColorWriteMaskBlue
	}
	return mask
}
