package controls

import (
	"errors"
	"testing"

	"github.com/san-kum/motorwave/internal/wave"
)

func TestSlider_Mapping(t *testing.T) {
	p := wave.DefaultParams()

	wf := WaveFactorSlider(p, 100)
	if p.WaveFactor != 1.0 {
		t.Errorf("wave factor = %v, want 1.0", p.WaveFactor)
	}
	wf.SetPosition(25)
	if p.WaveFactor != 0.25 {
		t.Errorf("wave factor = %v, want 0.25", p.WaveFactor)
	}

	amp := AmplitudeSlider(p, 10)
	if p.Amplitude != 1.0 {
		t.Errorf("amplitude = %v, want 1.0", p.Amplitude)
	}
	amp.SetPosition(55)
	if p.Amplitude != 5.5 {
		t.Errorf("amplitude = %v, want 5.5", p.Amplitude)
	}
}

func TestCoarseWaveFactorSlider(t *testing.T) {
	p := wave.DefaultParams()
	s := CoarseWaveFactorSlider(p, 0)
	s.Increment()
	if p.WaveFactor != 0.1 {
		t.Errorf("one notch = %v, want 0.1", p.WaveFactor)
	}
	s.SetPosition(15)
	if s.Position() != 10 || p.WaveFactor != 1 {
		t.Errorf("expected clamp to 1.0, got pos=%d wf=%v", s.Position(), p.WaveFactor)
	}
	if lo, hi := s.Bounds(); lo != 0 || hi != 1 {
		t.Errorf("bounds = [%v, %v], want [0, 1]", lo, hi)
	}
}

func TestBuild_WaveFactorOnly(t *testing.T) {
	panel, err := Build(LayoutWaveFactor, wave.DefaultParams(), 10)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := panel.Find("stroke length"); ok {
		t.Error("wave factor layout should not expose stroke length")
	}
	if _, ok := panel.Find("wave factor"); !ok {
		t.Error("wave factor layout is missing its field")
	}
}

func TestSlider_Clamps(t *testing.T) {
	p := wave.DefaultParams()
	s := StrokeLengthSlider(p, 5)

	s.SetPosition(42)
	if s.Position() != 10 || p.StrokeLength != 10 {
		t.Errorf("expected clamp to 10, got pos=%d stroke=%d", s.Position(), p.StrokeLength)
	}
	s.Increment()
	if p.StrokeLength != 10 {
		t.Errorf("increment past max: got %d", p.StrokeLength)
	}
	s.SetPosition(-3)
	if p.StrokeLength != 1 {
		t.Errorf("expected clamp to 1, got %d", p.StrokeLength)
	}
}

func TestSlider_ApplyRejectsText(t *testing.T) {
	p := wave.DefaultParams()
	s := AmplitudeSlider(p, 20)
	if err := s.Apply("loud"); !errors.Is(err, wave.ErrParse) {
		t.Errorf("expected ErrParse, got %v", err)
	}
	if s.Position() != 20 || p.Amplitude != 2.0 {
		t.Errorf("slider moved on bad input: pos=%d amp=%v", s.Position(), p.Amplitude)
	}
}

func TestBuild(t *testing.T) {
	tests := []struct {
		layout Layout
		count  int
	}{
		{LayoutNone, 0},
		{LayoutWaveFactor, 1},
		{LayoutFields, 2},
		{LayoutSliders, 2},
		{LayoutCoarseSliders, 2},
		{LayoutSine, 1},
	}

	for _, tt := range tests {
		panel, err := Build(tt.layout, wave.DefaultParams(), 10)
		if err != nil {
			t.Fatalf("%s: %v", tt.layout, err)
		}
		if panel.Len() != tt.count {
			t.Errorf("%s: expected %d controls, got %d", tt.layout, tt.count, panel.Len())
		}
	}

	if _, err := Build("knobs", wave.DefaultParams(), 10); err == nil {
		t.Error("expected error for unknown layout")
	}
}

func TestPanel_Selection(t *testing.T) {
	panel, _ := Build(LayoutFields, wave.DefaultParams(), 10)
	if panel.Selected().Name() != "wave factor" {
		t.Fatalf("unexpected first control %q", panel.Selected().Name())
	}
	panel.Next()
	if panel.Selected().Name() != "stroke length" {
		t.Errorf("unexpected second control %q", panel.Selected().Name())
	}
	panel.Next()
	if panel.SelectedIndex() != 0 {
		t.Error("selection should wrap")
	}
	if _, ok := panel.Find("stroke length"); !ok {
		t.Error("Find should locate stroke length")
	}
	if NewPanel().Selected() != nil {
		t.Error("empty panel should have no selection")
	}
}
