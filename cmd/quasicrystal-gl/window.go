package main

import (
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"quasicrystal/wave"
)

// keyActions maps GLFW keys to wave actions.
var keyActions = map[glfw.Key]wave.Action{
	glfw.KeyUp:           wave.ActionMoreWaves,
	glfw.KeyDown:         wave.ActionFewerWaves,
	glfw.KeyLeft:         wave.ActionSelectLeft,
	glfw.KeyRight:        wave.ActionSelectRight,
	glfw.KeyW:            wave.ActionIncrease,
	glfw.KeyPageUp:       wave.ActionIncrease,
	glfw.KeyS:            wave.ActionDecrease,
	glfw.KeyPageDown:     wave.ActionDecrease,
	glfw.KeyTab:          wave.ActionNextArray,
	glfw.KeyEqual:        wave.ActionFreqUp,
	glfw.KeyKPAdd:        wave.ActionFreqUp,
	glfw.KeyMinus:        wave.ActionFreqDown,
	glfw.KeyKPSubtract:   wave.ActionFreqDown,
	glfw.KeyRightBracket: wave.ActionFaster,
	glfw.KeyLeftBracket:  wave.ActionSlower,
	glfw.KeySpace:        wave.ActionTogglePause,
	glfw.KeyH:            wave.ActionToggleAdjuster,
	glfw.KeyR:            wave.ActionReset,
}

// repeatActions fire again on platform key repeat while held. Every other
// action needs a fresh press.
var repeatActions = map[wave.Action]bool{
	wave.ActionSelectLeft:  true,
	wave.ActionSelectRight: true,
	wave.ActionIncrease:    true,
	wave.ActionDecrease:    true,
	wave.ActionFreqUp:      true,
	wave.ActionFreqDown:    true,
}

// fires reports whether a key event with the given state triggers a.
func fires(a wave.Action, action glfw.Action) bool {
	switch action {
	case glfw.Press:
		return true
	case glfw.Repeat:
		return repeatActions[a]
	default:
		return false
	}
}

// waveWindow is a GLFW window showing the pattern through the fragment
// shader, with the adjuster drawn on top.
type waveWindow struct {
	*glfw.Window
	ctrl    *wave.Controller
	program *waveProgram

	width, height int
	snapshotDir   string
}

func newWaveWindow(width, height int, p wave.Params, snapshotDir string) (*waveWindow, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	window, err := glfw.CreateWindow(width, height, "quasicrystal", nil, nil)
	if err != nil {
		return nil, fmt.Errorf("glfw.CreateWindow failed: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		window.Destroy()
		return nil, fmt.Errorf("gl.Init failed: %w", err)
	}
	log.Println("OpenGL version", gl.GoStr(gl.GetString(gl.VERSION)))

	program, err := newWaveProgram()
	if err != nil {
		window.Destroy()
		return nil, err
	}

	w := &waveWindow{
		Window:      window,
		ctrl:        wave.NewController(p),
		program:     program,
		snapshotDir: snapshotDir,
	}
	window.SetKeyCallback(w.key)
	window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.resize(width, height)
	})
	gl.ClearColor(0, 0, 0, 1)
	w.resize(window.GetFramebufferSize())
	return w, nil
}

func (w *waveWindow) key(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if action == glfw.Release {
		return
	}
	switch key {
	case glfw.KeyEscape:
		w.SetShouldClose(true)
		return
	case glfw.KeyP:
		if action == glfw.Press {
			w.snapshot()
		}
		return
	}
	if a, ok := keyActions[key]; ok && fires(a, action) {
		w.ctrl.Apply(a)
	}
}

// resize sets up an orthographic projection in pixel coordinates.
func (w *waveWindow) resize(width, height int) {
	w.width, w.height = width, height
	gl.Viewport(0, 0, int32(width), int32(height))
	proj := mgl32.Ortho2D(0, float32(width), 0, float32(height))
	gl.MatrixMode(gl.PROJECTION)
	gl.LoadMatrixf(&proj[0])
	gl.MatrixMode(gl.MODELVIEW)
	gl.LoadIdentity()
}

func (w *waveWindow) draw() {
	gl.Clear(gl.COLOR_BUFFER_BIT)

	w.program.use(w.ctrl.Params, w.height)
	gl.Begin(gl.QUADS)
	gl.Vertex2i(0, 0)
	gl.Vertex2i(int32(w.width), 0)
	gl.Vertex2i(int32(w.width), int32(w.height))
	gl.Vertex2i(0, int32(w.height))
	gl.End()

	drawAdjuster(w.ctrl.Adjuster().Layout())
}

// run loops until the window is closed: events, one animation step, draw.
func (w *waveWindow) run() {
	for !w.ShouldClose() {
		glfw.PollEvents()
		w.ctrl.Step()
		w.draw()
		w.SwapBuffers()
	}
}

// snapshot reads the back buffer and writes it as a PNG.
func (w *waveWindow) snapshot() {
	w.draw()
	img := image.NewNRGBA(image.Rect(0, 0, w.width, w.height))
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w.width), int32(w.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	flipRows(img)

	name := filepath.Join(w.snapshotDir, fmt.Sprintf("quasicrystal-gl-%d.png", time.Now().Unix()))
	if err := writePNG(name, img); err != nil {
		log.Printf("Snapshot failed: %v", err)
		return
	}
	log.Printf("Saved snapshot %s", name)
}

// flipRows turns a bottom-up framebuffer read into a top-down image.
func flipRows(img *image.NRGBA) {
	h := img.Bounds().Dy()
	tmp := make([]byte, img.Stride)
	for y := 0; y < h/2; y++ {
		top := img.Pix[y*img.Stride : (y+1)*img.Stride]
		bottom := img.Pix[(h-1-y)*img.Stride : (h-y)*img.Stride]
		copy(tmp, top)
		copy(top, bottom)
		copy(bottom, tmp)
	}
}

func writePNG(name string, img image.Image) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		os.Remove(name)
		return fmt.Errorf("encoding %s: %w", name, err)
	}
	return f.Close()
}

func (w *waveWindow) destroy() {
	w.program.delete()
	w.Destroy()
}
