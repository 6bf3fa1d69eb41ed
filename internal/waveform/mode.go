package waveform

import (
	"fmt"
	"math"

	"github.com/san-kum/motorwave/internal/wave"
)

// Mode selects how a bank channel value is turned into a bar.
type Mode string

const (
	// ModePosition moves a fixed-height bar so its bottom sits at the value.
	ModePosition Mode = "position"
	// ModeStroke scales the motion by stroke/amplitude and sets the bar
	// height to the stroke length.
	ModeStroke Mode = "stroke"
	// ModeAmplitude draws a bar from zero to stroke·value.
	ModeAmplitude Mode = "amplitude"
)

const PositionBarHeight = 0.5

// Bar is one rendered channel: it spans [Bottom, Bottom+Height].
type Bar struct {
	Bottom float64
	Height float64
}

func (b Bar) Top() float64 { return b.Bottom + b.Height }

func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModePosition, ModeStroke, ModeAmplitude:
		return Mode(s), nil
	case "":
		return ModePosition, nil
	}
	return "", fmt.Errorf("unknown display mode: %s", s)
}

// Bars lays out one bar per channel value.
func (m Mode) Bars(values wave.Vector, p *wave.Params) ([]Bar, error) {
	bars := make([]Bar, len(values))
	stroke := float64(p.StrokeLength)

	switch m {
	case ModeStroke:
		if p.Amplitude == 0 {
			return nil, wave.ErrZeroAmplitude
		}
		for i, v := range values {
			bars[i] = Bar{Bottom: v * stroke / p.Amplitude, Height: stroke}
		}
	case ModeAmplitude:
		for i, v := range values {
			h := v * stroke
			bars[i] = Bar{Bottom: math.Min(0, h), Height: math.Abs(h)}
		}
	default:
		for i, v := range values {
			bars[i] = Bar{Bottom: v, Height: PositionBarHeight}
		}
	}
	return bars, nil
}

// Range is the vertical axis extent used to draw the bars.
func (m Mode) Range(p *wave.Params) (lo, hi float64) {
	switch m {
	case ModeStroke:
		s := float64(wave.MaxStrokeLength)
		return -s, 2 * s
	case ModeAmplitude:
		s := float64(wave.MaxStrokeLength) * math.Max(math.Abs(p.Amplitude), 1)
		return -s, s
	default:
		a := math.Max(math.Abs(p.Amplitude), 1e-6)
		return -1.5 * a, 1.5 * a
	}
}

const (
	ECGLimit  = 2.0
	SineLimit = 10.0
)

// Extent is the vertical axis extent of a demo's view. Bank demos use the
// display mode range; the ECG grows with amplitude and the sine axis is
// fixed at the largest amplitude the slider allows.
func Extent(demo string, m Mode, p *wave.Params) (lo, hi float64) {
	switch demo {
	case DemoECG:
		a := math.Max(math.Abs(p.Amplitude), 1)
		return -ECGLimit * a, ECGLimit * a
	case DemoSine:
		return -SineLimit, SineLimit
	}
	return m.Range(p)
}
