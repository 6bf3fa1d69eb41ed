package waveform

import (
	"math"

	"github.com/san-kum/motorwave/internal/wave"
)

const SinePoints = 100

// Sine is the basic viewer: y_k = A·sin(x_k + φ) over x in [0, 2π],
// with the phase φ being time wrapped into [0, 2π).
type Sine struct {
	xs []float64
}

func NewSine() *Sine {
	xs := make([]float64, SinePoints)
	for i := range xs {
		xs[i] = 2 * math.Pi * float64(i) / float64(SinePoints-1)
	}
	return &Sine{xs: xs}
}

func (s *Sine) Channels() int { return len(s.xs) }

// X returns the fixed abscissa of the curve.
func (s *Sine) X() []float64 { return s.xs }

func (s *Sine) Sample(t float64, p *wave.Params) (wave.Vector, error) {
	phase := math.Mod(t, 2*math.Pi)
	if phase < 0 {
		phase += 2 * math.Pi
	}
	out := make(wave.Vector, len(s.xs))
	for i, x := range s.xs {
		out[i] = p.Amplitude * math.Sin(x+phase)
	}
	if !out.IsValid() {
		return nil, wave.ErrInvalidSample
	}
	return out, nil
}
