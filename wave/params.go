package wave

import (
	"errors"
	"fmt"
	"math"
)

// MaxWaves bounds the per-wave parameter arrays.
const MaxWaves = 15

const (
	DefaultNumWaves = 7
	DefaultFreq     = 1.0 / 5.0
	DefaultSpeed    = 1.0
	DefaultOmega    = 0.05

	MinFreq  = 0.01
	MaxFreq  = 5.0
	MinSpeed = -4.0
	MaxSpeed = 4.0
)

var (
	ErrNumWaves = errors.New("number of waves out of range")
	ErrFreq     = errors.New("frequency out of range")
	ErrMix      = errors.New("mix out of range")
)

// Params is the flat parameter set shared by every renderer.
type Params struct {
	NumWaves int
	// Mix weights wave NumWaves (the next one) while blending from
	// NumWaves to NumWaves+1 waves.
	Mix   float64
	Freq  float64
	Speed float64
	Time  float64

	Paused bool

	Omega [MaxWaves]float64
	Phase [MaxWaves]float64
	Scale [MaxWaves]float64
}

// DefaultParams reproduces the classic seven wave pattern.
func DefaultParams() Params {
	p := Params{
		NumWaves: DefaultNumWaves,
		Freq:     DefaultFreq,
		Speed:    DefaultSpeed,
	}
	p.ResetWaves()
	return p
}

// ResetWaves restores the per-wave arrays.
func (p *Params) ResetWaves() {
	for i := 0; i < MaxWaves; i++ {
		p.Omega[i] = DefaultOmega * float64(i+1)
		p.Phase[i] = 0
		p.Scale[i] = 1
	}
}

// Validate reports whether p satisfies the wave count and blend bounds.
func (p *Params) Validate() error {
	if p.NumWaves < 1 || p.NumWaves > MaxWaves {
		return fmt.Errorf("%w: %d not in [1, %d]", ErrNumWaves, p.NumWaves, MaxWaves)
	}
	if p.Mix < 0 || p.Mix > 1 || math.IsNaN(p.Mix) {
		return fmt.Errorf("%w: %v", ErrMix, p.Mix)
	}
	if p.Mix > 0 && p.NumWaves == MaxWaves {
		return fmt.Errorf("%w: cannot blend past %d waves", ErrMix, MaxWaves)
	}
	if p.Freq < MinFreq || p.Freq > MaxFreq || math.IsNaN(p.Freq) {
		return fmt.Errorf("%w: %v not in [%v, %v]", ErrFreq, p.Freq, MinFreq, MaxFreq)
	}
	return nil
}

// ActiveWaves is the number of waves with a non-zero weight.
func (p *Params) ActiveWaves() int {
	if p.Mix > 0 {
		return p.NumWaves + 1
	}
	return p.NumWaves
}

// Advance moves time forward by speed*steps unless paused.
func (p *Params) Advance(steps float64) {
	if p.Paused {
		return
	}
	p.Time += p.Speed * steps
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
