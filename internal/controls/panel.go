package controls

import (
	"fmt"

	"github.com/san-kum/motorwave/internal/wave"
)

// Layout names the control set a demo variant exposes.
type Layout string

const (
	LayoutNone          Layout = "none"
	LayoutWaveFactor    Layout = "wave_factor"
	LayoutFields        Layout = "fields"
	LayoutSliders       Layout = "sliders"
	LayoutCoarseSliders Layout = "coarse_sliders"
	LayoutSine          Layout = "sine"
)

// Panel is an ordered set of controls with one selected at a time.
type Panel struct {
	controls []Control
	selected int
}

func NewPanel(controls ...Control) *Panel {
	return &Panel{controls: controls}
}

// Build creates the controls for layout bound to p. strokeFallback is the
// value an invalid stroke length entry resets to.
func Build(layout Layout, p *wave.Params, strokeFallback int) (*Panel, error) {
	switch layout {
	case LayoutNone, "":
		return NewPanel(), nil
	case LayoutWaveFactor:
		return NewPanel(WaveFactorField(p)), nil
	case LayoutFields:
		return NewPanel(WaveFactorField(p), StrokeLengthField(p, strokeFallback)), nil
	case LayoutSliders:
		return NewPanel(
			WaveFactorSlider(p, int(p.WaveFactor*100+0.5)),
			StrokeLengthSlider(p, p.StrokeLength),
		), nil
	case LayoutCoarseSliders:
		return NewPanel(
			CoarseWaveFactorSlider(p, int(p.WaveFactor*10+0.5)),
			StrokeLengthSlider(p, p.StrokeLength),
		), nil
	case LayoutSine:
		return NewPanel(AmplitudeSlider(p, int(p.Amplitude*10+0.5))), nil
	}
	return nil, fmt.Errorf("unknown control layout: %s", layout)
}

func (p *Panel) Len() int            { return len(p.controls) }
func (p *Panel) Controls() []Control { return p.controls }

func (p *Panel) Selected() Control {
	if len(p.controls) == 0 {
		return nil
	}
	return p.controls[p.selected]
}

func (p *Panel) SelectedIndex() int { return p.selected }

func (p *Panel) Next() {
	if len(p.controls) == 0 {
		return
	}
	p.selected = (p.selected + 1) % len(p.controls)
}

// Find returns the control with the given name.
func (p *Panel) Find(name string) (Control, bool) {
	for _, c := range p.controls {
		if c.Name() == name {
			return c, true
		}
	}
	return nil, false
}
