package main

import (
	"github.com/braheezy/glass-pavilion/internal/scene"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	overlayFontSize = 16
	overlayMargin   = 10
	overlayWidth    = 420
)

var (
	overlayText     = mgl32.Vec3{0.9, 0.9, 0.9}
	overlaySelected = mgl32.Vec3{1.0, 0.85, 0.2}
)

// overlay draws the debug panel on top of the finished frame.
type overlay struct {
	panel *scene.Panel
	text  *TextRenderer
}

func (o *overlay) draw(width, height int) {
	if !o.panel.Visible() {
		return
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	defer gl.Enable(gl.DEPTH_TEST)
	defer gl.Enable(gl.CULL_FACE)

	o.text.setProjection(width, height)

	lines := o.panel.Lines()
	lineHeight := o.text.LineHeight()
	o.text.RenderRect(overlayMargin, overlayMargin, overlayWidth, float32(len(lines)+1)*lineHeight, mgl32.Vec3{0, 0, 0}, 0.6)

	y := overlayMargin + lineHeight
	for i, line := range lines {
		color := overlayText
		// first line is the title, rows follow
		if i == o.panel.Selected()+1 {
			color = overlaySelected
		}
		o.text.RenderText(line, 2*overlayMargin, y, 1, color)
		y += lineHeight
	}
}
