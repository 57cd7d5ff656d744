package wave

import (
	"math"
	"testing"
)

// reference is the plain per-pixel loop: phase step*0.05*(w+1) and
// angles w*pi/N, written out without any precomputation.
func reference(numWaves int, freq float64, step int, x, y float64) float64 {
	var p float64
	for w := 0; w < numWaves; w++ {
		angle := float64(w) * math.Pi / float64(numWaves)
		cx := math.Cos(angle) * x
		sy := math.Sin(angle) * y
		phase := float64(step) * 0.05 * float64(w+1)
		p += (math.Cos(freq*(cx+sy)+phase) + 1) / 2
	}
	return (math.Cos(math.Pi*p) + 1) / 2
}

func TestIntensityMatchesClassicLoop(t *testing.T) {
	for _, tc := range []struct {
		waves int
		freq  float64
		step  int
	}{
		{7, 0.2, 0},
		{7, 0.2, 13},
		{3, 0.5, 100},
		{1, 1, 7},
		{15, 0.05, 999},
	} {
		p := DefaultParams()
		p.NumWaves = tc.waves
		p.Freq = tc.freq
		p.Time = float64(tc.step)
		for _, pt := range [][2]float64{{0, 0}, {10, 3}, {199, 57}, {320, 240}} {
			have := Intensity(p, pt[0], pt[1])
			want := reference(tc.waves, tc.freq, tc.step, pt[0], pt[1])
			if math.Abs(have-want) > 1e-9 {
				t.Errorf("waves=%d freq=%v step=%d at %v: have %v, want %v",
					tc.waves, tc.freq, tc.step, pt, have, want)
			}
		}
	}
}

func TestIntensityAtOrigin(t *testing.T) {
	for n := 1; n <= MaxWaves; n++ {
		p := DefaultParams()
		p.NumWaves = n
		want := 1.0
		if n%2 == 1 {
			want = 0
		}
		if have := Intensity(p, 0, 0); math.Abs(have-want) > 1e-12 {
			t.Errorf("n=%d: have %v, want %v", n, have, want)
		}
	}
}

func TestIntensityRange(t *testing.T) {
	p := DefaultParams()
	p.Time = 42
	p.Mix = 0.37
	for y := 0; y < 50; y++ {
		for x := 0; x < 50; x++ {
			v := Intensity(p, float64(x), float64(y))
			if v < 0 || v > 1 {
				t.Fatalf("intensity %v at (%d, %d) outside [0, 1]", v, x, y)
			}
		}
	}
}

func TestMixEndpoints(t *testing.T) {
	blend := DefaultParams()
	blend.NumWaves = 5
	blend.Mix = 1
	blend.Time = 17

	whole := DefaultParams()
	whole.NumWaves = 6
	whole.Time = 17

	a := make([]float32, 64*48)
	b := make([]float32, 64*48)
	Render(a, 64, 48, blend)
	Render(b, 64, 48, whole)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("pixel %d: mix=1 gives %v, next wave count gives %v", i, a[i], b[i])
		}
	}
}

func TestMixZeroIgnoresNextWave(t *testing.T) {
	p := DefaultParams()
	p.Time = 3
	q := p
	q.Omega[p.NumWaves] = 123
	q.Scale[p.NumWaves] = 9
	if Intensity(p, 31, 7) != Intensity(q, 31, 7) {
		t.Error("inactive wave parameters changed the result")
	}
}

func TestRenderDeterministic(t *testing.T) {
	p := DefaultParams()
	p.Time = 250
	p.Phase[2] = 0.7
	a := make([]float32, 80*60)
	b := make([]float32, 80*60)
	Render(a, 80, 60, p)
	Render(b, 80, 60, p)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("pixel %d differs between runs: %v != %v", i, a[i], b[i])
		}
	}
}

func TestRenderRowsLayout(t *testing.T) {
	p := DefaultParams()
	p.Time = 9
	const w, h = 17, 11
	buf := make([]float32, w*h)
	RenderRows(buf, w, 4, 6, p)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := buf[y*w+x]
			if y < 4 || y >= 6 {
				if v != 0 {
					t.Fatalf("row %d outside band was written", y)
				}
				continue
			}
			want := float32(Intensity(p, float64(x), float64(y)))
			if v != want {
				t.Fatalf("(%d, %d): have %v, want %v", x, y, v, want)
			}
		}
	}
}

func TestImage(t *testing.T) {
	p := DefaultParams()
	img := Image(p, 20, 10)
	if b := img.Bounds(); b.Dx() != 20 || b.Dy() != 10 {
		t.Fatalf("bounds %v", b)
	}
	// odd wave count: black at the origin
	if v := img.GrayAt(0, 0).Y; v != 0 {
		t.Errorf("origin grey %d, want 0", v)
	}
	if want := ToByte(float32(Intensity(p, 5, 3))); img.GrayAt(5, 3).Y != want {
		t.Errorf("grey at (5, 3) = %d, want %d", img.GrayAt(5, 3).Y, want)
	}
}

func TestToByte(t *testing.T) {
	for _, tc := range []struct {
		in   float32
		want byte
	}{
		{-1, 0},
		{0, 0},
		{0.5, 128},
		{1, 255},
		{2, 255},
	} {
		if have := ToByte(tc.in); have != tc.want {
			t.Errorf("ToByte(%v) = %d, want %d", tc.in, have, tc.want)
		}
	}
}

func BenchmarkRender(b *testing.B) {
	p := DefaultParams()
	buf := make([]float32, 400*400)
	for i := 0; i < b.N; i++ {
		p.Time = float64(i)
		Render(buf, 400, 400, p)
	}
}
