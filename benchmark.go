package main

import (
	"log"
	"time"

	"quasicrystal/wave"
)

// runBenchmark renders steps frames on the worker pool without a window
// and returns the first pixel of the last frame so the work is observable.
func runBenchmark(p wave.Params, width, height, steps, workers int) float32 {
	pool := wave.NewPool(workers)
	defer pool.Close()

	pixels := make([]float32, width*height)
	start := time.Now()
	for i := 0; i < steps; i++ {
		p.Time = float64(i)
		pool.Render(pixels, width, height, p)
	}
	elapsed := time.Since(start)

	perFrame := time.Duration(0)
	if steps > 0 {
		perFrame = elapsed / time.Duration(steps)
	}
	log.Printf("Rendered %d frames of %dx%d with %d waves on %d workers in %v (%v per frame)",
		steps, width, height, p.NumWaves, pool.Workers(), elapsed, perFrame)
	return pixels[0]
}
