package main

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"quasicrystal/wave"
)

func TestKeyBindingsUnique(t *testing.T) {
	seen := map[ebiten.Key]wave.Action{}
	for _, k := range []ebiten.Key{keyQuit, keyCycleRenderer, keySnapshot, keyToggleOverlay} {
		seen[k] = wave.ActionNone
	}
	actions := map[wave.Action]bool{}
	for _, b := range keyBindings {
		if actions[b.action] {
			t.Errorf("action %v bound twice", b.action)
		}
		actions[b.action] = true
		for _, k := range b.keys {
			if prev, ok := seen[k]; ok {
				t.Errorf("key %v bound to %v and %v", k, prev, b.action)
			}
			seen[k] = b.action
		}
	}
	for a := wave.ActionMoreWaves; a <= wave.ActionReset; a++ {
		if !actions[a] {
			t.Errorf("action %v has no key", a)
		}
	}
}

func TestShouldRepeat(t *testing.T) {
	var fired []int
	for d := 0; d <= keyRepeatDelay+2*keyRepeatInterval; d++ {
		if shouldRepeat(d) {
			fired = append(fired, d)
		}
	}
	want := []int{1, keyRepeatDelay, keyRepeatDelay + keyRepeatInterval, keyRepeatDelay + 2*keyRepeatInterval}
	if len(fired) != len(want) {
		t.Fatalf("fired at %v, want %v", fired, want)
	}
	for i := range want {
		if fired[i] != want[i] {
			t.Fatalf("fired at %v, want %v", fired, want)
		}
	}
}

func TestGreyToRGBA(t *testing.T) {
	dst := make([]byte, 8)
	greyToRGBA(dst, []float32{0, 1})
	want := []byte{0, 0, 0, 255, 255, 255, 255, 255}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("have %v, want %v", dst, want)
		}
	}
}
