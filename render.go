package main

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"quasicrystal/wave"
)

// Draw renders the pattern, the adjuster and the optional overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	start := time.Now()
	if err := g.renderer().Draw(screen, g.ctrl.Params); err != nil {
		g.drawErr = err
	}
	g.lastDraw = time.Since(start)

	drawAdjuster(screen, g.ctrl.Adjuster().Layout())

	if g.showOverlay {
		p := g.ctrl.Params
		state := "running"
		if p.Paused {
			state = "paused"
		}
		msg := fmt.Sprintf("FPS: %.1f  TPS: %.1f\nRenderer: %s (%.2f ms, G)\nWaves: %d mix %.2f (up/down)\nFreq: %.3f (+/-)  Speed: %.2f ([/])  %s\nAdjusting: %s (tab)",
			ebiten.ActualFPS(), ebiten.ActualTPS(),
			g.renderer().Name(), g.lastDraw.Seconds()*1000,
			p.NumWaves, p.Mix,
			p.Freq, p.Speed, state,
			g.ctrl.Target())
		ebitenutil.DebugPrint(screen, msg)
	}
}

// Layout reports the logical screen size used by Ebiten.
func (g *Game) Layout(_, _ int) (int, int) { return g.width, g.height }

// drawAdjuster maps the unit-square layout onto the screen, flipping y.
func drawAdjuster(screen *ebiten.Image, l wave.Layout) {
	if l.Empty() {
		return
	}
	b := screen.Bounds()
	sx, sy := float32(b.Dx()), float32(b.Dy())
	toScreen := func(x, y float64) (float32, float32) {
		return float32(x) * sx, (1 - float32(y)) * sy
	}

	for _, line := range l.Guides {
		x0, y := toScreen(line.X0, line.Y)
		x1, _ := toScreen(line.X1, line.Y)
		vector.StrokeLine(screen, x0, y, x1, y, 1, adjusterGuideColor, false)
	}
	fillRect(screen, l.Axis, toScreen, adjusterBarColor)
	for _, bar := range l.Bars {
		clr := adjusterBarColor
		if bar.Selected {
			clr = adjusterSelectedColor
		}
		fillRect(screen, bar.Rect, toScreen, clr)
	}
}

func fillRect(screen *ebiten.Image, r wave.Rect, toScreen func(x, y float64) (float32, float32), clr color.Color) {
	x0, y0 := toScreen(r.X0, r.Y1)
	x1, y1 := toScreen(r.X1, r.Y0)
	vector.DrawFilledRect(screen, x0, y0, x1-x0, y1-y0, clr, false)
}
