package main

import (
	"image/color"
	"time"
)

// Window, timing and input configuration constants. The wave parameters
// themselves live in the wave package and are seeded from flags.
const (
	defaultWidth        = 640
	defaultHeight       = 480
	windowScale         = 1
	defaultTPS          = 60
	defaultBenchSteps   = 10
	keyRepeatDelay      = 15
	keyRepeatInterval   = 3
	snapshotFilePattern = "quasicrystal-%d.png"
	statusLogInterval   = 5 * time.Second
)

// Adjuster colours, matching the classic black bars with a green selection.
var (
	adjusterBarColor      = color.RGBA{0, 0, 0, 255}
	adjusterSelectedColor = color.RGBA{0, 255, 0, 255}
	adjusterGuideColor    = color.RGBA{0, 0, 0, 255}
)
