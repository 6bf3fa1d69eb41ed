package controls

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/san-kum/motorwave/internal/wave"
)

// Slider maps an integer position in [Min, Max] to Position/Scale.
type Slider struct {
	name  string
	Min   int
	Max   int
	Scale float64
	pos   int
	set   func(float64)
}

func NewSlider(name string, min, max, initial int, scale float64, set func(float64)) *Slider {
	s := &Slider{name: name, Min: min, Max: max, Scale: scale, set: set}
	s.SetPosition(initial)
	return s
}

// WaveFactorSlider covers 0..100 hundredths of the wave factor.
func WaveFactorSlider(p *wave.Params, initial int) *Slider {
	return NewSlider("wave factor", 0, 100, initial, 100, func(v float64) { p.WaveFactor = v })
}

// CoarseWaveFactorSlider covers 0..10 tenths of the wave factor.
func CoarseWaveFactorSlider(p *wave.Params, initial int) *Slider {
	return NewSlider("wave factor", 0, 10, initial, 10, func(v float64) { p.WaveFactor = v })
}

func StrokeLengthSlider(p *wave.Params, initial int) *Slider {
	return NewSlider("stroke length", wave.MinStrokeLength, wave.MaxStrokeLength, initial, 1, func(v float64) { p.StrokeLength = int(v) })
}

// AmplitudeSlider covers 1..100 tenths of the amplitude.
func AmplitudeSlider(p *wave.Params, initial int) *Slider {
	return NewSlider("amplitude", 1, 100, initial, 10, func(v float64) { p.Amplitude = v })
}

func (s *Slider) Name() string   { return s.name }
func (s *Slider) Position() int  { return s.pos }
func (s *Slider) Value() float64 { return float64(s.pos) / s.Scale }

func (s *Slider) Bounds() (lo, hi float64) {
	return float64(s.Min) / s.Scale, float64(s.Max) / s.Scale
}

func (s *Slider) Text() string {
	if s.Scale == 1 {
		return strconv.Itoa(s.pos)
	}
	return strconv.FormatFloat(s.Value(), 'f', -1, 64)
}

// SetPosition moves the knob, clamping to the slider range, and commits
// the mapped value.
func (s *Slider) SetPosition(pos int) {
	if pos < s.Min {
		pos = s.Min
	}
	if pos > s.Max {
		pos = s.Max
	}
	s.pos = pos
	s.set(s.Value())
}

// Apply accepts a knob position; a slider cannot hold an invalid value, so
// unparsable text leaves it where it is.
func (s *Slider) Apply(text string) error {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return fmt.Errorf("%s %q: %w", s.name, text, wave.ErrParse)
	}
	s.SetPosition(n)
	return nil
}

func (s *Slider) Increment() { s.SetPosition(s.pos + 1) }
func (s *Slider) Decrement() { s.SetPosition(s.pos - 1) }
