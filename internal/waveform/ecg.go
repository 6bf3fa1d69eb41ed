package waveform

import (
	"math"

	"github.com/san-kum/motorwave/internal/wave"
)

// segment maps [From, To) of the one-second cycle to a constant level.
type segment struct {
	From, To, Level float64
}

// cardiacCycle approximates P, Q, R, S and the flat T-to-P baseline.
var cardiacCycle = []segment{
	{0.00, 0.10, 0.1},
	{0.10, 0.20, -0.5},
	{0.20, 0.25, 1.5},
	{0.25, 0.30, -0.75},
	{0.30, 1.00, 0},
}

// ECG produces a single scalar per tick from the piecewise cycle.
type ECG struct{}

func NewECG() *ECG { return &ECG{} }

func (e *ECG) Channels() int { return 1 }

func (e *ECG) Sample(t float64, p *wave.Params) (wave.Vector, error) {
	v := ECGLevel(t) * p.Amplitude
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, wave.ErrInvalidSample
	}
	return wave.Vector{v}, nil
}

// ECGLevel returns the unscaled level at t. The cycle position is the
// floored remainder so negative times still land in [0, 1).
func ECGLevel(t float64) float64 {
	f := t - math.Floor(t)
	for _, s := range cardiacCycle {
		if f >= s.From && f < s.To {
			return s.Level
		}
	}
	return 0
}
