package main

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"quasicrystal/wave"
)

const (
	rendererCPU    = "cpu"
	rendererShader = "shader"
	rendererOpenCL = "opencl"
)

// patternRenderer draws one frame of the pattern onto the screen.
type patternRenderer interface {
	Name() string
	Draw(screen *ebiten.Image, p wave.Params) error
	Close()
}

// newRenderer constructs the named renderer for a width x height screen.
func newRenderer(name string, width, height int) (patternRenderer, error) {
	switch name {
	case rendererCPU:
		return newCPURenderer(width, height, *workersFlag), nil
	case rendererShader:
		r, err := newShaderRenderer()
		if err != nil {
			return nil, err
		}
		return r, nil
	case rendererOpenCL:
		r, err := newOpenCLRenderer(width, height, *preferFP16Flag)
		if err != nil {
			return nil, err
		}
		log.Printf("OpenCL renderer enabled (device: %s)", r.DeviceName())
		return r, nil
	default:
		return nil, fmt.Errorf("unknown renderer %q", name)
	}
}

// availableRenderers constructs every renderer that initialises, starting
// with preferred. Failures are logged and skipped.
func availableRenderers(preferred string, width, height int) ([]patternRenderer, error) {
	order := []string{preferred}
	for _, name := range []string{rendererShader, rendererCPU, rendererOpenCL} {
		if name != preferred {
			order = append(order, name)
		}
	}
	var out []patternRenderer
	for _, name := range order {
		r, err := newRenderer(name, width, height)
		if err != nil {
			if name == preferred {
				log.Printf("Renderer %s unavailable: %v", name, err)
			}
			continue
		}
		out = append(out, r)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no renderer could be initialised")
	}
	if out[0].Name() != preferred {
		log.Printf("Falling back to %s renderer", out[0].Name())
	}
	return out, nil
}

// cpuRenderer computes intensities on the worker pool and uploads them.
type cpuRenderer struct {
	width, height int
	pool          *wave.Pool
	intensity     []float32
	pixels        []byte
}

func newCPURenderer(width, height, workers int) *cpuRenderer {
	return &cpuRenderer{
		width:     width,
		height:    height,
		pool:      wave.NewPool(workers),
		intensity: make([]float32, width*height),
		pixels:    make([]byte, width*height*4),
	}
}

func (r *cpuRenderer) Name() string { return rendererCPU }

func (r *cpuRenderer) Draw(screen *ebiten.Image, p wave.Params) error {
	r.pool.Render(r.intensity, r.width, r.height, p)
	greyToRGBA(r.pixels, r.intensity)
	screen.WritePixels(r.pixels)
	return nil
}

func (r *cpuRenderer) Close() { r.pool.Close() }

// greyToRGBA expands intensities into opaque grey RGBA pixels.
func greyToRGBA(dst []byte, src []float32) {
	for i, v := range src {
		b := wave.ToByte(v)
		base := i * 4
		dst[base] = b
		dst[base+1] = b
		dst[base+2] = b
		dst[base+3] = 255
	}
}
