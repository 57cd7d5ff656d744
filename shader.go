package main

import (
	_ "embed"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"quasicrystal/wave"
)

//go:embed shader.kage
var quasicrystalKage []byte

// shaderRenderer evaluates the wave sum per fragment on the GPU.
type shaderRenderer struct {
	shader   *ebiten.Shader
	uniforms map[string]any
	omega    []float32
	phase    []float32
	scale    []float32
}

func newShaderRenderer() (*shaderRenderer, error) {
	s, err := ebiten.NewShader(quasicrystalKage)
	if err != nil {
		return nil, fmt.Errorf("compiling kage shader: %w", err)
	}
	r := &shaderRenderer{
		shader:   s,
		uniforms: make(map[string]any, 7),
		omega:    make([]float32, wave.MaxWaves),
		phase:    make([]float32, wave.MaxWaves),
		scale:    make([]float32, wave.MaxWaves),
	}
	return r, nil
}

func (r *shaderRenderer) Name() string { return rendererShader }

// loadUniforms copies p into the uniform map in shader precision.
func (r *shaderRenderer) loadUniforms(p wave.Params) map[string]any {
	for i := 0; i < wave.MaxWaves; i++ {
		r.omega[i] = float32(p.Omega[i])
		r.phase[i] = float32(p.Phase[i])
		r.scale[i] = float32(p.Scale[i])
	}
	r.uniforms["Time"] = float32(p.Time)
	r.uniforms["NumWaves"] = float32(p.NumWaves)
	r.uniforms["Mix"] = float32(p.Mix)
	r.uniforms["Freq"] = float32(p.Freq)
	r.uniforms["Omega"] = r.omega
	r.uniforms["Phase"] = r.phase
	r.uniforms["Scale"] = r.scale
	return r.uniforms
}

func (r *shaderRenderer) Draw(screen *ebiten.Image, p wave.Params) error {
	b := screen.Bounds()
	op := &ebiten.DrawRectShaderOptions{}
	op.Uniforms = r.loadUniforms(p)
	screen.DrawRectShader(b.Dx(), b.Dy(), r.shader, op)
	return nil
}

func (r *shaderRenderer) Close() {
	r.shader.Deallocate()
}
