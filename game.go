package main

import (
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"quasicrystal/wave"
)

// Game holds the live wave parameters, the renderers and the window state.
type Game struct {
	width, height int

	ctrl *wave.Controller

	renderers []patternRenderer
	active    int

	showOverlay   bool
	snapshotDir   string
	lastDraw      time.Duration
	lastStatusLog time.Time

	// drawErr carries a renderer failure from Draw to the next Update.
	drawErr error
}

// newGame constructs a Game drawing p with the given renderers.
func newGame(width, height int, p wave.Params, renderers []patternRenderer) *Game {
	return &Game{
		width:       width,
		height:      height,
		ctrl:        wave.NewController(p),
		renderers:   renderers,
		showOverlay: *debugFlag,
		snapshotDir: *snapshotDirFlag,
	}
}

func (g *Game) renderer() patternRenderer { return g.renderers[g.active] }

// Update applies keyboard input and advances the animation by one step.
func (g *Game) Update() error {
	if g.drawErr != nil {
		err := g.drawErr
		g.drawErr = nil
		if !g.dropActiveRenderer(err) {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(keyQuit) {
		return ebiten.Termination
	}

	for _, a := range pressedActions() {
		g.ctrl.Apply(a)
	}
	if inpututil.IsKeyJustPressed(keyCycleRenderer) {
		g.cycleRenderer()
	}
	if inpututil.IsKeyJustPressed(keyToggleOverlay) {
		g.showOverlay = !g.showOverlay
	}
	if inpututil.IsKeyJustPressed(keySnapshot) {
		g.takeSnapshot()
	}

	g.ctrl.Step()
	g.logStatus()
	return nil
}

// cycleRenderer switches to the next renderer that initialised.
func (g *Game) cycleRenderer() {
	if len(g.renderers) < 2 {
		log.Printf("Only the %s renderer is available", g.renderer().Name())
		return
	}
	g.active = (g.active + 1) % len(g.renderers)
	log.Printf("Switched to %s renderer", g.renderer().Name())
}

// dropActiveRenderer removes a failing renderer. It reports false when no
// renderer is left to fall back to.
func (g *Game) dropActiveRenderer(err error) bool {
	r := g.renderer()
	log.Printf("Renderer %s failed: %v", r.Name(), err)
	if len(g.renderers) < 2 {
		return false
	}
	r.Close()
	g.renderers = append(g.renderers[:g.active], g.renderers[g.active+1:]...)
	g.active %= len(g.renderers)
	log.Printf("Falling back to %s renderer", g.renderer().Name())
	return true
}

// takeSnapshot writes the current frame, computed on the CPU, as a PNG.
func (g *Game) takeSnapshot() {
	name := filepath.Join(g.snapshotDir, fmt.Sprintf(snapshotFilePattern, time.Now().Unix()))
	if err := savePNG(name, g.ctrl.Params, g.width, g.height); err != nil {
		log.Printf("Snapshot failed: %v", err)
		return
	}
	log.Printf("Saved snapshot %s", name)
}

func (g *Game) logStatus() {
	if !g.showOverlay {
		return
	}
	now := time.Now()
	if now.Sub(g.lastStatusLog) < statusLogInterval {
		return
	}
	g.lastStatusLog = now
	p := g.ctrl.Params
	log.Printf("%s renderer: %d waves (mix %.2f), freq %.3f, speed %.2f, draw %.2f ms",
		g.renderer().Name(), p.NumWaves, p.Mix, p.Freq, p.Speed, g.lastDraw.Seconds()*1000)
}

// Close releases every renderer.
func (g *Game) Close() {
	for _, r := range g.renderers {
		r.Close()
	}
	g.renderers = nil
}
