package main

import (
	"flag"
	"fmt"
	"runtime"

	"quasicrystal/wave"
)

// Command-line flags controlling the window, the initial wave parameters
// and the headless modes.
var (
	widthFlag  = flag.Int("width", defaultWidth, "width of output image")
	heightFlag = flag.Int("height", defaultHeight, "height of output image")

	// numWavesFlag is the initial wave count, 1-15.
	numWavesFlag = flag.Int("num-waves", wave.DefaultNumWaves, "number of waves to use")

	// freqFlag is the global spatial frequency of every wave.
	freqFlag = flag.Float64("freq", wave.DefaultFreq, "frequency of waves")

	speedFlag = flag.Float64("speed", wave.DefaultSpeed, "animation time advanced per frame")

	// rendererFlag selects the starting renderer; G cycles at runtime.
	rendererFlag = flag.String("renderer", rendererShader, "renderer to start with: cpu, shader or opencl")

	workersFlag = flag.Int("workers", runtime.NumCPU(), "worker goroutines for the cpu renderer")

	// preferFP16Flag asks the OpenCL renderer for half precision output.
	preferFP16Flag = flag.Bool("prefer-fp16", true, "read OpenCL output back as 16-bit floats")

	// debugFlag enables the FPS and parameter overlay.
	debugFlag = flag.Bool("debug", false, "show FPS and parameter overlay")

	// benchmarkFlag runs the CPU renderer without a window.
	benchmarkFlag      = flag.Bool("benchmark", false, "run the cpu benchmark instead of the visualization")
	benchmarkStepsFlag = flag.Int("benchmark-steps", defaultBenchSteps, "number of steps to take in benchmark")

	snapshotFlag    = flag.String("snapshot", "", "render a single frame to this PNG file and exit")
	snapshotDirFlag = flag.String("snapshot-dir", ".", "directory for PNG snapshots taken with P")

	cpuProfileFlag = flag.String("cpuprofile", "", "write a CPU profile to this file")
)

// paramsFromFlags builds the starting wave parameters.
func paramsFromFlags() (wave.Params, error) {
	p := wave.DefaultParams()
	p.NumWaves = *numWavesFlag
	p.Freq = *freqFlag
	p.Speed = *speedFlag
	if err := p.Validate(); err != nil {
		return p, err
	}
	if *speedFlag < wave.MinSpeed || *speedFlag > wave.MaxSpeed {
		return p, fmt.Errorf("speed %v not in [%v, %v]", *speedFlag, wave.MinSpeed, wave.MaxSpeed)
	}
	if *widthFlag < 1 || *heightFlag < 1 {
		return p, fmt.Errorf("invalid size %dx%d", *widthFlag, *heightFlag)
	}
	return p, nil
}
