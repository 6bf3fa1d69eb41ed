package waveform

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/motorwave/internal/wave"
)

func TestMotorBank_Formula(t *testing.T) {
	bank := NewMotorBank(12)
	tests := []struct {
		amp, wf float64
	}{
		{1.0, 0.0},
		{1.0, 0.5},
		{2.5, 1.0},
		{0.3, 0.7},
	}

	for _, tt := range tests {
		p := &wave.Params{Amplitude: tt.amp, WaveFactor: tt.wf, StrokeLength: 1}
		for _, ts := range []float64{0, 0.05, 1.3, 17.25} {
			values, err := bank.Sample(ts, p)
			if err != nil {
				t.Fatalf("sample failed: %v", err)
			}
			for i, got := range values {
				want := tt.amp * math.Sin(math.Pi*ts+float64(i)*(math.Pi/6*tt.wf))
				if got != want {
					t.Errorf("amp=%v wf=%v t=%v ch=%d: got %v, want %v", tt.amp, tt.wf, ts, i, got, want)
				}
			}
		}
	}
}

func TestMotorBank_ZeroWaveFactorIsInPhase(t *testing.T) {
	bank := NewMotorBank(12)
	values, _ := bank.Sample(0.4, wave.DefaultParams())
	for i := 1; i < len(values); i++ {
		if values[i] != values[0] {
			t.Fatalf("channel %d = %v, want %v", i, values[i], values[0])
		}
	}
}

func TestMotorBank_Channels(t *testing.T) {
	if NewMotorBank(0).Channels() != DefaultChannels {
		t.Error("zero channels should fall back to the default bank size")
	}
	if NewMotorBank(4).Channels() != 4 {
		t.Error("expected 4 channels")
	}
}

func TestMotorBank_InvalidAmplitude(t *testing.T) {
	bank := NewMotorBank(3)
	p := &wave.Params{Amplitude: math.Inf(1), StrokeLength: 1}
	if _, err := bank.Sample(0.5, p); !errors.Is(err, wave.ErrInvalidSample) {
		t.Errorf("expected ErrInvalidSample, got %v", err)
	}
}
