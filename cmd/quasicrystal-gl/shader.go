package main

import (
	_ "embed"
	"fmt"
	"runtime"
	"strings"

	"github.com/go-gl/gl/v2.1/gl"

	"quasicrystal/wave"
)

//go:embed quasicrystal.frag
var fragmentSource string

// waveProgram is the linked fragment shader and its uniform locations.
type waveProgram struct {
	id       uint32
	height   int32
	time     int32
	numWaves int32
	mix      int32
	freq     int32
	omega    int32
	phase    int32
	scale    int32

	arr [wave.MaxWaves]float32
}

func newWaveProgram() (*waveProgram, error) {
	shader, err := compileShader(fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(shader)

	id := gl.CreateProgram()
	gl.AttachShader(id, shader)
	gl.LinkProgram(id)

	var status int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var l int32
		gl.GetProgramiv(id, gl.INFO_LOG_LENGTH, &l)
		log := strings.Repeat("\x00", int(l+1))
		gl.GetProgramInfoLog(id, l, nil, gl.Str(log))
		gl.DeleteProgram(id)
		return nil, fmt.Errorf("failed to link program: %v", log)
	}

	p := &waveProgram{id: id}
	for _, u := range p.uniforms() {
		*u.loc = gl.GetUniformLocation(id, gl.Str(u.name+"\x00"))
		if *u.loc < 0 {
			gl.DeleteProgram(id)
			return nil, fmt.Errorf("uniform %s not found in fragment shader", u.name)
		}
	}
	return p, nil
}

type uniform struct {
	name string
	loc  *int32
}

// uniforms pairs each GLSL uniform name with the field holding its location.
func (w *waveProgram) uniforms() []uniform {
	return []uniform{
		{"height", &w.height},
		{"time", &w.time},
		{"numWaves", &w.numWaves},
		{"mixWeight", &w.mix},
		{"freq", &w.freq},
		{"omega", &w.omega},
		{"phase", &w.phase},
		{"scale", &w.scale},
	}
}

// use binds the program and uploads p.
func (w *waveProgram) use(p wave.Params, height int) {
	gl.UseProgram(w.id)
	gl.Uniform1f(w.height, float32(height))
	gl.Uniform1f(w.time, float32(p.Time))
	gl.Uniform1f(w.numWaves, float32(p.NumWaves))
	gl.Uniform1f(w.mix, float32(p.Mix))
	gl.Uniform1f(w.freq, float32(p.Freq))
	w.uniformArray(w.omega, &p.Omega)
	w.uniformArray(w.phase, &p.Phase)
	w.uniformArray(w.scale, &p.Scale)
}

func (w *waveProgram) uniformArray(loc int32, v *[wave.MaxWaves]float64) {
	for i, x := range v {
		w.arr[i] = float32(x)
	}
	gl.Uniform1fv(loc, wave.MaxWaves, &w.arr[0])
}

func (w *waveProgram) delete() {
	gl.DeleteProgram(w.id)
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	source += "\x00"
	defer runtime.KeepAlive(source)
	csources, free := gl.Strs(source)
	defer free()

	shader := gl.CreateShader(shaderType)
	gl.ShaderSource(shader, 1, csources, nil)
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var l int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &l)
		log := strings.Repeat("\x00", int(l+1))
		gl.GetShaderInfoLog(shader, l, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("shader failed to compile: %v", log)
	}
	return shader, nil
}
