package metrics

import (
	"context"
	"math"
	"testing"

	"github.com/san-kum/motorwave/internal/anim"
	"github.com/san-kum/motorwave/internal/wave"
	"github.com/san-kum/motorwave/internal/waveform"
)

func record(t *testing.T, sampler wave.Sampler, p *wave.Params, step float64, n int, set Set) {
	t.Helper()
	loop := anim.New(sampler, p, wave.NewClock(step))
	loop.AddObserver(set)
	if _, err := loop.Record(context.Background(), n); err != nil {
		t.Fatal(err)
	}
}

func TestBankMetrics(t *testing.T) {
	p := wave.DefaultParams()
	p.Amplitude = 2
	set := ForDemo(waveform.DemoBank, p)
	record(t, waveform.NewMotorBank(12), p, 0.01, 2000, set)
	v := set.Values()

	if math.Abs(v["rms"]-2/math.Sqrt2) > 0.01 {
		t.Errorf("rms = %v, want %v", v["rms"], 2/math.Sqrt2)
	}
	if math.Abs(v["peak"]-2) > 1e-3 {
		t.Errorf("peak = %v, want 2", v["peak"])
	}
	if v["spread"] != 0 {
		t.Errorf("in-phase channels should have zero spread, got %v", v["spread"])
	}
	if math.Abs(v["frequency"]-waveform.BankFrequency) > 0.01 {
		t.Errorf("frequency = %v, want %v", v["frequency"], waveform.BankFrequency)
	}
}

func TestSpreadGrowsWithWaveFactor(t *testing.T) {
	p := wave.DefaultParams()
	p.WaveFactor = 1
	s := NewSpread()
	record(t, waveform.NewMotorBank(12), p, 0.05, 100, Set{s})
	if s.Value() <= 1 {
		t.Errorf("spread = %v, expected phased channels to spread out", s.Value())
	}
}

func TestECGHeartRate(t *testing.T) {
	p := wave.DefaultParams()
	set := ForDemo(waveform.DemoECG, p)
	record(t, waveform.NewECG(), p, 0.01, 1000, set)
	if f := set.Values()["frequency"]; math.Abs(f-1) > 0.01 {
		t.Errorf("ecg frequency = %v, want one beat per second", f)
	}
	if peak := set.Values()["peak"]; peak != 1.5 {
		t.Errorf("ecg peak = %v, want 1.5", peak)
	}
}

func TestECGHeartRate_Amplitude(t *testing.T) {
	tests := []struct {
		amplitude float64
		want      float64
	}{
		{0.3, 1},
		{1, 1},
		{6, 1},
		{-2, 1},
		{0, 0},
	}

	for _, tt := range tests {
		p := wave.DefaultParams()
		p.Amplitude = tt.amplitude
		set := ForDemo(waveform.DemoECG, p)
		record(t, waveform.NewECG(), p, 0.01, 1000, set)
		if f := set.Values()["frequency"]; math.Abs(f-tt.want) > 0.01 {
			t.Errorf("amplitude %v: frequency = %v, want %v", tt.amplitude, f, tt.want)
		}
	}
}

func TestRelativeFrequency_FollowsLiveAmplitude(t *testing.T) {
	p := wave.DefaultParams()
	q := NewRelativeFrequency(0, 0.5, p)
	p.Amplitude = 4
	for i, v := range []float64{0, 3, 0, 3, 0, 3} {
		q.Observe(wave.Frame{Time: float64(i) * 0.5, Values: wave.Vector{v}})
	}
	if q.Value() != 1 {
		t.Errorf("frequency = %v, want 1", q.Value())
	}
	q.Reset()
	if q.params != p {
		t.Error("Reset dropped the amplitude reference")
	}
}

func TestReset(t *testing.T) {
	set := Set{NewRMS(), NewPeak(), NewSpread(), NewFrequency(0, 0)}
	set.OnFrame(wave.Frame{Time: 0, Values: wave.Vector{-1, 3}})
	set.OnFrame(wave.Frame{Time: 1, Values: wave.Vector{1, 3}})
	set.Reset()
	for name, v := range set.Values() {
		if v != 0 {
			t.Errorf("%s = %v after reset", name, v)
		}
	}
}

func TestNames(t *testing.T) {
	names := Names(map[string]float64{"peak": 1, "frequency": 2, "rms": 3})
	if len(names) != 3 || names[0] != "frequency" || names[2] != "rms" {
		t.Errorf("unexpected order %v", names)
	}
}
