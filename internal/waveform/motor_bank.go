package waveform

import (
	"math"

	"github.com/san-kum/motorwave/internal/wave"
)

const (
	DefaultChannels = 12
	BankFrequency   = 0.5
	PhaseUnit       = math.Pi / 6
)

// MotorBank implements the per-channel oscillator.
//
//	value[i] = A·sin(2π·f·t + i·φ·w)
//
// where A is the amplitude, f the bank frequency, φ the phase unit and w
// the wave factor.
type MotorBank struct {
	channels  int
	frequency float64
	phaseUnit float64
}

func NewMotorBank(channels int) *MotorBank {
	if channels <= 0 {
		channels = DefaultChannels
	}
	return &MotorBank{
		channels:  channels,
		frequency: BankFrequency,
		phaseUnit: PhaseUnit,
	}
}

func (b *MotorBank) Channels() int { return b.channels }

func (b *MotorBank) Sample(t float64, p *wave.Params) (wave.Vector, error) {
	out := make(wave.Vector, b.channels)
	shift := b.phaseUnit * p.WaveFactor
	for i := range out {
		out[i] = p.Amplitude * math.Sin(2*math.Pi*b.frequency*t+float64(i)*shift)
	}
	if !out.IsValid() {
		return nil, wave.ErrInvalidSample
	}
	return out, nil
}
