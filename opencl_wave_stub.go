//go:build !opencl

package main

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"quasicrystal/wave"
)

var errOpenCLDisabled = errors.New("OpenCL support is not enabled; rebuild with -tags opencl")

type openCLRenderer struct{}

func newOpenCLRenderer(width, height int, preferHalf bool) (*openCLRenderer, error) {
	return nil, errOpenCLDisabled
}

func (r *openCLRenderer) Name() string { return rendererOpenCL }

func (r *openCLRenderer) Draw(screen *ebiten.Image, p wave.Params) error {
	return errOpenCLDisabled
}

func (r *openCLRenderer) Close() {}

func (r *openCLRenderer) DeviceName() string { return "" }
