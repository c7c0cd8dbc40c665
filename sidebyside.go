package stereo

import (
	"github.com/gogpu/stereo/layout"
	"github.com/gogpu/stereo/render"
	"github.com/gogpu/stereo/vrmode"
)

// presentSideBySide draws the eyes next to each other. The letterboxed
// variant halves the height and centers both views vertically.
func (p *Presenter) presentSideBySide(mode vrmode.Mode) {
	box := p.viewports.OutputLetterbox

	var left, right layout.Rect
	switch mode {
	case vrmode.SideBySideFull, vrmode.SideBySideSquished:
		p.buffers.BindOutputFB()
		p.ctx.ClearBorders(box)
		left, right = layout.SideBySide(box)
	case vrmode.SideBySideLetterbox:
		p.buffers.BindOutputFB()
		// Clear with a shifted copy so the bars above and below the
		// half-height views are blanked too.
		p.ctx.ClearBorders(layout.LetterboxClearRect(box))
		left, right = layout.SideBySideLetterbox(box)
	default:
		return
	}

	p.drawEye(render.Left, left)
	p.drawEye(render.Right, right)
}

// presentTopBottom draws the left eye in the upper half and the right eye
// in the lower half.
func (p *Presenter) presentTopBottom() {
	box := p.viewports.OutputLetterbox

	p.buffers.BindOutputFB()
	p.ctx.ClearBorders(box)

	top, bottom := layout.TopBottom(box)
	p.drawEye(render.Left, top)
	p.drawEye(render.Right, bottom)
}
