package main

import (
	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/mathgl/mgl32"

	"quasicrystal/wave"
)

// unitSquare maps [0, 1] x [0, 1] onto the viewport, y up.
var unitSquare = mgl32.Ortho2D(0, 1, 0, 1)

// drawAdjuster draws the layout with the fixed function pipeline: black
// guides and bars, the selected bar in green.
func drawAdjuster(l wave.Layout) {
	if l.Empty() {
		return
	}
	gl.UseProgram(0)
	gl.MatrixMode(gl.PROJECTION)
	gl.PushMatrix()
	gl.LoadMatrixf(&unitSquare[0])
	gl.MatrixMode(gl.MODELVIEW)
	gl.PushMatrix()
	gl.LoadIdentity()

	gl.Color3f(0, 0, 0)
	gl.Begin(gl.LINES)
	for _, line := range l.Guides {
		gl.Vertex2f(float32(line.X0), float32(line.Y))
		gl.Vertex2f(float32(line.X1), float32(line.Y))
	}
	gl.End()

	gl.Begin(gl.QUADS)
	quad(l.Axis)
	for _, bar := range l.Bars {
		if bar.Selected {
			gl.Color3f(0, 1, 0)
		} else {
			gl.Color3f(0, 0, 0)
		}
		quad(bar.Rect)
	}
	gl.End()

	gl.PopMatrix()
	gl.MatrixMode(gl.PROJECTION)
	gl.PopMatrix()
	gl.MatrixMode(gl.MODELVIEW)
}

func quad(r wave.Rect) {
	gl.Vertex2f(float32(r.X0), float32(r.Y0))
	gl.Vertex2f(float32(r.X1), float32(r.Y0))
	gl.Vertex2f(float32(r.X1), float32(r.Y1))
	gl.Vertex2f(float32(r.X0), float32(r.Y1))
}
