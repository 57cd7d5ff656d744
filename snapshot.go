package main

import (
	"fmt"
	"image/png"
	"os"

	"quasicrystal/wave"
)

// savePNG renders p at width x height and writes it to name. A partially
// written file is removed on failure.
func savePNG(name string, p wave.Params, width, height int) (err error) {
	img := wave.Image(p, width, height)

	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("creating %s: %w", name, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("closing %s: %w", name, cerr)
		}
		if err != nil {
			os.Remove(name)
		}
	}()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encoding %s: %w", name, err)
	}
	return nil
}
