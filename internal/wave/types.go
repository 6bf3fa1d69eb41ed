package wave

import (
	"fmt"
	"math"
)

const (
	DefaultAmplitude    = 1.0
	DefaultStep         = 0.05
	MinWaveFactor       = 0.0
	MaxWaveFactor       = 1.0
	MinStrokeLength     = 1
	MaxStrokeLength     = 10
	DefaultStrokeLength = 1
)

// Params holds the live parameters every sampler and renderer reads.
// Controls write through the same pointer so readers never see a stale copy.
type Params struct {
	Amplitude    float64 `yaml:"amplitude" json:"amplitude"`
	WaveFactor   float64 `yaml:"wave_factor" json:"wave_factor"`
	StrokeLength int     `yaml:"stroke_length" json:"stroke_length"`
}

func DefaultParams() *Params {
	return &Params{
		Amplitude:    DefaultAmplitude,
		WaveFactor:   MinWaveFactor,
		StrokeLength: DefaultStrokeLength,
	}
}

func (p *Params) Clone() *Params {
	c := *p
	return &c
}

// Validate reports the first field outside its declared range.
func (p *Params) Validate() error {
	if math.IsNaN(p.Amplitude) || math.IsInf(p.Amplitude, 0) {
		return fmt.Errorf("amplitude %v: %w", p.Amplitude, ErrInvalidSample)
	}
	if p.WaveFactor < MinWaveFactor || p.WaveFactor > MaxWaveFactor {
		return fmt.Errorf("wave factor %v: %w", p.WaveFactor, ErrOutOfRange)
	}
	if p.StrokeLength < MinStrokeLength || p.StrokeLength > MaxStrokeLength {
		return fmt.Errorf("stroke length %d: %w", p.StrokeLength, ErrOutOfRange)
	}
	return nil
}

type Vector []float64

func (v Vector) Clone() Vector {
	c := make(Vector, len(v))
	copy(c, v)
	return c
}

func (v Vector) IsValid() bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

func (v Vector) MaxAbs() float64 {
	m := 0.0
	for _, x := range v {
		if math.Abs(x) > m {
			m = math.Abs(x)
		}
	}
	return m
}

// Frame is one tick of output: the sample and the time it was taken at.
type Frame struct {
	Step   int
	Time   float64
	Values Vector
}

// Clock is monotonically increasing simulated time.
type Clock struct {
	T    float64
	Step float64
	n    int
}

func NewClock(step float64) *Clock {
	if step <= 0 {
		step = DefaultStep
	}
	return &Clock{Step: step}
}

// Advance moves time forward by one step. T is recomputed from the tick
// count so long runs do not accumulate rounding drift.
func (c *Clock) Advance() {
	c.n++
	c.T = float64(c.n) * c.Step
}

func (c *Clock) Ticks() int { return c.n }

// Sampler produces the sample at time t for the current parameters.
type Sampler interface {
	Sample(t float64, p *Params) (Vector, error)
	Channels() int
}

type Observer interface {
	OnFrame(f Frame)
}

type ObserverFunc func(f Frame)

func (fn ObserverFunc) OnFrame(f Frame) { fn(f) }
