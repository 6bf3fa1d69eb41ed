package controls

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/san-kum/motorwave/internal/wave"
)

// roundDigits bounds the precision kept after a step so that repeated
// decimal steps (0.1 + 0.1 + ...) land on the bound exactly.
const roundDigits = 1e9

// Control is the common surface of fields and sliders.
type Control interface {
	Name() string
	Value() float64
	Bounds() (lo, hi float64)
	Text() string
	Apply(text string) error
	Increment()
	Decrement()
}

// Field is a clamped numeric text entry.
type Field struct {
	name     string
	Min      float64
	Max      float64
	Step     float64
	Fallback float64
	Integer  bool
	get      func() float64
	set      func(float64)
}

func NewField(name string, min, max, step, fallback float64, integer bool, get func() float64, set func(float64)) *Field {
	return &Field{
		name:     name,
		Min:      min,
		Max:      max,
		Step:     step,
		Fallback: fallback,
		Integer:  integer,
		get:      get,
		set:      set,
	}
}

// WaveFactorField edits p.WaveFactor in [0, 1] by steps of 0.1; invalid
// input resets it to 0.
func WaveFactorField(p *wave.Params) *Field {
	return NewField("wave factor", wave.MinWaveFactor, wave.MaxWaveFactor, 0.1, wave.MinWaveFactor, false,
		func() float64 { return p.WaveFactor },
		func(v float64) { p.WaveFactor = v },
	)
}

// StrokeLengthField edits p.StrokeLength in [1, 10] by steps of 1; invalid
// input resets it to fallback.
func StrokeLengthField(p *wave.Params, fallback int) *Field {
	return NewField("stroke length", wave.MinStrokeLength, wave.MaxStrokeLength, 1, float64(fallback), true,
		func() float64 { return float64(p.StrokeLength) },
		func(v float64) { p.StrokeLength = int(v) },
	)
}

func (f *Field) Name() string   { return f.name }
func (f *Field) Value() float64 { return f.get() }

func (f *Field) Bounds() (lo, hi float64) { return f.Min, f.Max }

func (f *Field) Text() string {
	if f.Integer {
		return strconv.Itoa(int(f.get()))
	}
	return strconv.FormatFloat(f.get(), 'f', -1, 64)
}

// Apply parses text and commits it when it lies in [Min, Max]. Otherwise the
// fallback is committed and the returned error says why; the parameter is
// valid in both cases.
func (f *Field) Apply(text string) error {
	v, err := f.parse(strings.TrimSpace(text))
	if err != nil {
		f.set(f.Fallback)
		return fmt.Errorf("%s %q: %w", f.name, text, err)
	}
	if !(v >= f.Min && v <= f.Max) {
		f.set(f.Fallback)
		return fmt.Errorf("%s %q not in [%g, %g]: %w", f.name, text, f.Min, f.Max, wave.ErrOutOfRange)
	}
	f.set(v)
	return nil
}

func (f *Field) parse(s string) (float64, error) {
	if f.Integer {
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, wave.ErrParse
		}
		return float64(n), nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, wave.ErrParse
	}
	return v, nil
}

func (f *Field) Increment() { f.set(f.clamp(f.get() + f.Step)) }
func (f *Field) Decrement() { f.set(f.clamp(f.get() - f.Step)) }

func (f *Field) clamp(v float64) float64 {
	v = math.Round(v*roundDigits) / roundDigits
	if v > f.Max {
		return f.Max
	}
	if v < f.Min {
		return f.Min
	}
	return v
}
