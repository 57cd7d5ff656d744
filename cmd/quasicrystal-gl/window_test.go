package main

import (
	"image"
	"image/color"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"

	"quasicrystal/wave"
)

func TestFlipRows(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 3))
	for y := 0; y < 3; y++ {
		img.SetNRGBA(0, y, color.NRGBA{R: uint8(y), A: 255})
	}
	flipRows(img)
	for y := 0; y < 3; y++ {
		if r := img.NRGBAAt(0, y).R; r != uint8(2-y) {
			t.Errorf("row %d holds %d, want %d", y, r, 2-y)
		}
	}
}

func TestKeyActionsCoverController(t *testing.T) {
	bound := map[wave.Action]bool{}
	for _, a := range keyActions {
		bound[a] = true
	}
	for a := wave.ActionMoreWaves; a <= wave.ActionReset; a++ {
		if !bound[a] {
			t.Errorf("action %v has no key", a)
		}
	}
}

func TestKeyRepeat(t *testing.T) {
	for _, tc := range []struct {
		action wave.Action
		state  glfw.Action
		want   bool
	}{
		{wave.ActionIncrease, glfw.Press, true},
		{wave.ActionIncrease, glfw.Repeat, true},
		{wave.ActionSelectLeft, glfw.Repeat, true},
		{wave.ActionFreqDown, glfw.Repeat, true},
		{wave.ActionTogglePause, glfw.Press, true},
		{wave.ActionTogglePause, glfw.Repeat, false},
		{wave.ActionMoreWaves, glfw.Repeat, false},
		{wave.ActionReset, glfw.Repeat, false},
		{wave.ActionNextArray, glfw.Repeat, false},
		{wave.ActionIncrease, glfw.Release, false},
	} {
		if got := fires(tc.action, tc.state); got != tc.want {
			t.Errorf("fires(%v, %v) = %v, want %v", tc.action, tc.state, got, tc.want)
		}
	}
}

func TestFragmentShaderDeclaresUniforms(t *testing.T) {
	var p waveProgram
	for _, u := range p.uniforms() {
		re := regexp.MustCompile(`(?m)^uniform float ` + u.name + `\b`)
		if !re.MatchString(fragmentSource) {
			t.Errorf("quasicrystal.frag does not declare uniform %s", u.name)
		}
	}
}

func TestFragmentShaderArrayLength(t *testing.T) {
	want := "#define MAX_WAVES " + strconv.Itoa(wave.MaxWaves)
	if !strings.Contains(fragmentSource, want) {
		t.Errorf("quasicrystal.frag lacks %q", want)
	}
}
