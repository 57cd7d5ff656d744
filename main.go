package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"quasicrystal/wave"
)

func main() {
	flag.Parse()

	params, err := paramsFromFlags()
	if err != nil {
		log.Fatalf("Invalid parameters: %v", err)
	}
	width, height := *widthFlag, *heightFlag

	if *cpuProfileFlag != "" {
		stop, err := startCPUProfile(*cpuProfileFlag)
		if err != nil {
			log.Fatalf("CPU profiling failed: %v", err)
		}
		defer stop()
	}

	switch {
	case *snapshotFlag != "":
		if err := savePNG(*snapshotFlag, params, width, height); err != nil {
			log.Fatalf("Snapshot failed: %v", err)
		}
		log.Printf("Saved snapshot %s", *snapshotFlag)
		return
	case *benchmarkFlag:
		secret := runBenchmark(params, width, height, *benchmarkStepsFlag, *workersFlag)
		fmt.Printf("Don't optimize me away! secret = %v\n", secret)
		return
	}

	if err := runWindow(params, width, height); err != nil {
		log.Fatalf("%v", err)
	}
}

// runWindow opens the interactive window and blocks until it closes.
func runWindow(params wave.Params, width, height int) error {
	renderers, err := availableRenderers(*rendererFlag, width, height)
	if err != nil {
		return err
	}
	g := newGame(width, height, params, renderers)
	defer g.Close()
	log.Printf("Starting with the %s renderer", g.renderer().Name())

	ebiten.SetWindowSize(width*windowScale, height*windowScale)
	ebiten.SetWindowTitle("quasicrystal")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(defaultTPS)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
