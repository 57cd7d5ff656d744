// Package wave computes quasicrystal interference patterns: sums of plane
// waves at evenly spaced angles, folded through a cosine so that the
// accumulated intensity wraps instead of saturating.
package wave

import (
	"image"
	"math"
)

// term holds the per-frame constants of one plane wave.
type term struct {
	kx, ky float64
	phase  float64
	weight float64
}

// terms precomputes direction, wavenumber and phase for every active wave.
func terms(p *Params) []term {
	n := float64(p.NumWaves) + p.Mix
	count := p.ActiveWaves()
	ts := make([]term, count)
	for i := 0; i < count; i++ {
		angle := float64(i) * math.Pi / n
		k := p.Freq * p.Scale[i]
		ts[i] = term{
			kx:     k * math.Cos(angle),
			ky:     k * math.Sin(angle),
			phase:  p.Time*p.Omega[i] + p.Phase[i],
			weight: 1,
		}
	}
	if p.Mix > 0 {
		ts[count-1].weight = p.Mix
	}
	return ts
}

func intensity(ts []term, x, y float64) float64 {
	var s float64
	for i := range ts {
		t := &ts[i]
		s += t.weight * 0.5 * (math.Cos(t.kx*x+t.ky*y+t.phase) + 1)
	}
	return 0.5 * (math.Cos(math.Pi*s) + 1)
}

// Intensity returns the pattern value in [0, 1] at pixel (x, y).
func Intensity(p Params, x, y float64) float64 {
	return intensity(terms(&p), x, y)
}

// Render fills dst, a row-major width*height buffer, with one frame.
func Render(dst []float32, width, height int, p Params) {
	RenderRows(dst, width, 0, height, p)
}

// RenderRows fills rows [y0, y1) of dst.
func RenderRows(dst []float32, width, y0, y1 int, p Params) {
	renderRows(dst, width, y0, y1, terms(&p))
}

func renderRows(dst []float32, width, y0, y1 int, ts []term) {
	for y := y0; y < y1; y++ {
		row := dst[y*width : (y+1)*width]
		fy := float64(y)
		for x := range row {
			row[x] = float32(intensity(ts, float64(x), fy))
		}
	}
}

// Image renders one frame as a greyscale image.
func Image(p Params, width, height int) *image.Gray {
	buf := make([]float32, width*height)
	Render(buf, width, height, p)
	img := image.NewGray(image.Rect(0, 0, width, height))
	for i, v := range buf {
		img.Pix[i] = ToByte(v)
	}
	return img
}

// ToByte maps an intensity to an 8 bit grey level.
func ToByte(v float32) byte {
	return byte(clamp(float64(v), 0, 1)*255 + 0.5)
}
