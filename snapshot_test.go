package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"quasicrystal/wave"
)

func TestSavePNG(t *testing.T) {
	name := filepath.Join(t.TempDir(), "frame.png")
	p := wave.DefaultParams()
	p.Time = 12
	if err := savePNG(name, p, 32, 24); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(name)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 32 || b.Dy() != 24 {
		t.Fatalf("bounds %v", b)
	}
	want := wave.Image(p, 32, 24)
	for y := 0; y < 24; y++ {
		for x := 0; x < 32; x++ {
			r, _, _, _ := img.At(x, y).RGBA()
			if byte(r>>8) != want.GrayAt(x, y).Y {
				t.Fatalf("(%d, %d): have %d, want %d", x, y, r>>8, want.GrayAt(x, y).Y)
			}
		}
	}
}

func TestSavePNGBadPath(t *testing.T) {
	name := filepath.Join(t.TempDir(), "missing", "frame.png")
	if err := savePNG(name, wave.DefaultParams(), 4, 4); err == nil {
		t.Error("expected an error for a missing directory")
	}
}
