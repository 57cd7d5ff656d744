// Command quasicrystal-gl shows the quasicrystal pattern through an
// OpenGL 2.1 fragment shader in a GLFW window.
package main

import (
	"flag"
	"log"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"quasicrystal/wave"
)

var (
	widthFlag       = flag.Int("width", 640, "width of output image")
	heightFlag      = flag.Int("height", 480, "height of output image")
	numWavesFlag    = flag.Int("num-waves", wave.DefaultNumWaves, "number of waves to use")
	freqFlag        = flag.Float64("freq", wave.DefaultFreq, "frequency of waves")
	snapshotDirFlag = flag.String("snapshot-dir", ".", "directory for PNG snapshots taken with P")
)

func init() {
	// GLFW event handling must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	flag.Parse()

	p := wave.DefaultParams()
	p.NumWaves = *numWavesFlag
	p.Freq = *freqFlag
	if err := p.Validate(); err != nil {
		log.Fatalf("Invalid parameters: %v", err)
	}

	if err := glfw.Init(); err != nil {
		log.Fatalf("glfw.Init failed: %v", err)
	}
	defer glfw.Terminate()

	w, err := newWaveWindow(*widthFlag, *heightFlag, p, *snapshotDirFlag)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer w.destroy()
	w.run()
}
